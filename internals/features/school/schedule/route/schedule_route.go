package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/schedule/controller"
)

func ScheduleRoutes(app *fiber.App, db *gorm.DB) {
	scheduleController := controller.New(db)

	app.Post("/add-schedule", scheduleController.Add)
	app.Get("/view-schedule/:username", scheduleController.ViewByUser)
	app.Get("/view-schedule/:username/:day", scheduleController.ViewByDay)
	app.Put("/edit-schedule/:schedule_id", scheduleController.Edit)
	app.Delete("/del-schedule/:schedule_id", scheduleController.Delete)
}
