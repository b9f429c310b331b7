package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grade/controller"
)

func GradeRoutes(app *fiber.App, db *gorm.DB) {
	gradeController := controller.New(db)

	// init didaftarkan sebelum GET :student_name supaya path literal
	// tidak tertelan parameter.
	app.Post("/grades/init/:student_name", gradeController.Init)
	app.Put("/grades/:student_name/:subject", gradeController.Update)
	app.Get("/grades/:student_name", gradeController.Get)
}
