package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	d "sekolahku_backend/internals/features/school/grade/dto"
	m "sekolahku_backend/internals/features/school/grade/model"
	guard "sekolahku_backend/internals/features/users/user/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB) *GradeController {
	return &GradeController{DB: db, Validate: validator.New()}
}

// PUT /grades/:student_name/:subject
func (gc *GradeController) Update(c *fiber.Ctx) error {
	studentName := c.Params("student_name")
	subject := c.Params("subject")

	var req d.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := gc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := guard.EnsureRole(gc.DB, req.UserName, constants.RoleTeacher); err != nil {
		if errors.Is(err, guard.ErrUserNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		if errors.Is(err, guard.ErrWrongRole) {
			return helper.Error(c, fiber.StatusForbidden, "Access denied: Only teachers can perform this action")
		}
		log.Printf("[ERROR] grade role check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error verifying role")
	}

	res := gc.DB.Model(&m.GradeModel{}).
		Where("student_name = ? AND subject = ?", studentName, subject).
		Update("grade", req.Grade)
	if res.Error != nil {
		log.Printf("[ERROR] update grade: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Error updating grade")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student or subject not found")
	}

	return helper.Success(c, "Grade updated successfully", nil)
}

// POST /grades/init/:student_name
// Membuat baris untuk 8 mapel tetap dengan grade masih kosong.
func (gc *GradeController) Init(c *fiber.Ctx) error {
	studentName := c.Params("student_name")

	var req d.InitGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := gc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := guard.EnsureRole(gc.DB, req.UserName, constants.RoleTeacher); err != nil {
		if errors.Is(err, guard.ErrUserNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		if errors.Is(err, guard.ErrWrongRole) {
			return helper.Error(c, fiber.StatusForbidden, "Access denied: Only teachers can perform this action")
		}
		log.Printf("[ERROR] grade role check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error verifying role")
	}

	grades := make([]m.GradeModel, 0, len(constants.Subjects))
	for _, subject := range constants.Subjects {
		grades = append(grades, m.GradeModel{
			StudentName: studentName,
			Subject:     subject,
		})
	}
	if err := gc.DB.Create(&grades).Error; err != nil {
		log.Printf("[ERROR] init grades: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error initializing grades")
	}

	return helper.Success(c, "Grades initialized successfully", nil)
}

// GET /grades/:student_name , tanpa role gate.
func (gc *GradeController) Get(c *fiber.Ctx) error {
	studentName := c.Params("student_name")

	var grades []m.GradeModel
	if err := gc.DB.Where("student_name = ?", studentName).Find(&grades).Error; err != nil {
		log.Printf("[ERROR] get grades: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error fetching grades")
	}
	if len(grades) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Grades not found for this student")
	}

	return helper.Success(c, "Grades fetched successfully", grades)
}
