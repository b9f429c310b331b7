package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absenceRoute "sekolahku_backend/internals/features/school/absence/route"
	gradeRoute "sekolahku_backend/internals/features/school/grade/route"
	scheduleRoute "sekolahku_backend/internals/features/school/schedule/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authService "sekolahku_backend/internals/features/users/auth/service"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, tokens *authService.TokenService) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, tokens)

	log.Println("[INFO] Setting up ScheduleRoutes...")
	scheduleRoute.ScheduleRoutes(app, db)

	log.Println("[INFO] Setting up AbsenceRoutes...")
	absenceRoute.AbsenceRoutes(app, db)

	log.Println("[INFO] Setting up GradeRoutes...")
	gradeRoute.GradeRoutes(app, db)
}
