package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/absence/controller"
)

func AbsenceRoutes(app *fiber.App, db *gorm.DB) {
	absenceController := controller.New(db)

	app.Post("/add-absences", absenceController.Add)
	app.Get("/absences", absenceController.List)
}
