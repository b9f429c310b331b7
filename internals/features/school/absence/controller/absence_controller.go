package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	d "sekolahku_backend/internals/features/school/absence/dto"
	m "sekolahku_backend/internals/features/school/absence/model"
	guard "sekolahku_backend/internals/features/users/user/service"
	helper "sekolahku_backend/internals/helpers"
)

type AbsenceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB) *AbsenceController {
	return &AbsenceController{DB: db, Validate: validator.New()}
}

// POST /add-absences
func (ac *AbsenceController) Add(c *fiber.Ctx) error {
	var req d.AddAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Cek role dari DB di setiap panggilan. Cek dan insert tidak satu
	// transaksi: perubahan role di antara keduanya adalah race yang
	// diterima pada skala ini.
	if err := guard.EnsureRole(ac.DB, req.UserName, constants.RoleTeacher); err != nil {
		if errors.Is(err, guard.ErrUserNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		if errors.Is(err, guard.ErrWrongRole) {
			return helper.Error(c, fiber.StatusForbidden, "Only teachers can add absences")
		}
		log.Printf("[ERROR] add absence role check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error verifying role")
	}

	absence := m.AbsenceModel{
		StudentName: req.StudentName,
		Class:       req.Class,
		Date:        req.Date,
		Status:      req.Status,
	}
	if err := ac.DB.Create(&absence).Error; err != nil {
		log.Printf("[ERROR] add absence: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Absence added successfully", fiber.Map{
		"absence_id": absence.AbsenceID,
	})
}

// GET /absences : listing tanpa absence_id, tanpa role gate.
func (ac *AbsenceController) List(c *fiber.Ctx) error {
	var absences []d.AbsenceItem
	if err := ac.DB.Model(&m.AbsenceModel{}).
		Select("student_name", "class", "date", "status").
		Find(&absences).Error; err != nil {
		log.Printf("[ERROR] list absences: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "Absences fetched successfully", absences)
}
