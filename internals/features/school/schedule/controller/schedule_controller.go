package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	d "sekolahku_backend/internals/features/school/schedule/dto"
	m "sekolahku_backend/internals/features/school/schedule/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db, Validate: validator.New()}
}

// POST /add-schedule
func (sc *ScheduleController) Add(c *fiber.Ctx) error {
	var req d.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	day, ok := constants.NormalizeDay(req.Day)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid day")
	}

	schedule := m.ScheduleModel{
		UserName: req.UserName,
		Day:      day,
		Subject:  req.Subject,
		Period:   req.Period,
	}
	if err := sc.DB.Create(&schedule).Error; err != nil {
		log.Printf("[ERROR] add schedule: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule created successfully", schedule)
}

// GET /view-schedule/:username
// Hasil dikelompokkan per hari; urutan entri mengikuti urutan kembalinya
// storage, tidak di-sort ulang. Hari tanpa jadwal tidak muncul sebagai key.
func (sc *ScheduleController) ViewByUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Username is required")
	}

	var schedules []m.ScheduleModel
	if err := sc.DB.Where("username = ?", username).Find(&schedules).Error; err != nil {
		log.Printf("[ERROR] view schedule: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}

	grouped := make(map[string][]m.ScheduleModel)
	for _, s := range schedules {
		grouped[s.Day] = append(grouped[s.Day], s)
	}

	return helper.Success(c, "Schedules fetched successfully", grouped)
}

// GET /view-schedule/:username/:day
// Satu handler berparameter menggantikan tujuh route per-hari; hari yang
// tidak dikenal ditolak 400, bukan dibiarkan match nol baris.
func (sc *ScheduleController) ViewByDay(c *fiber.Ctx) error {
	username := c.Params("username")
	day, ok := constants.NormalizeDay(c.Params("day"))
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid day")
	}

	var schedules []m.ScheduleModel
	if err := sc.DB.Where("username = ? AND day = ?", username, day).Find(&schedules).Error; err != nil {
		log.Printf("[ERROR] view schedule by day: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.Success(c, "Schedules fetched successfully", fiber.Map{
		"day":       day,
		"schedules": schedules,
	})
}

// PUT /edit-schedule/:schedule_id
func (sc *ScheduleController) Edit(c *fiber.Ctx) error {
	scheduleID, err := c.ParamsInt("schedule_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req d.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	day, ok := constants.NormalizeDay(req.Day)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid day")
	}

	// Filter schedule_id + username sekaligus: nol baris berarti jadwal tidak
	// ada ATAU bukan milik username tersebut; dua kasus itu memang tidak
	// bisa dibedakan dari sini.
	res := sc.DB.Model(&m.ScheduleModel{}).
		Where("schedule_id = ? AND username = ?", scheduleID, req.UserName).
		Updates(map[string]interface{}{
			"day":     day,
			"subject": req.Subject,
			"period":  req.Period,
		})
	if res.Error != nil {
		log.Printf("[ERROR] edit schedule: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Schedule not found or does not belong to the specified user")
	}

	return helper.Success(c, "Schedule updated successfully", fiber.Map{
		"schedule_id": scheduleID,
		"username":    req.UserName,
		"day":         day,
		"subject":     req.Subject,
		"period":      req.Period,
	})
}

// DELETE /del-schedule/:schedule_id
func (sc *ScheduleController) Delete(c *fiber.Ctx) error {
	scheduleID, err := c.ParamsInt("schedule_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req d.DeleteScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Schedule ID and username are required")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := sc.DB.Where("schedule_id = ? AND username = ?", scheduleID, req.UserName).
		Delete(&m.ScheduleModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete schedule: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Schedule not found or does not belong to the specified user")
	}

	return helper.Success(c, "Schedule deleted successfully", nil)
}
