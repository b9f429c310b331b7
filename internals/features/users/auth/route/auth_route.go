package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/features/users/auth/service"
	rateLimiter "sekolahku_backend/internals/middlewares"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, tokens *service.TokenService) {
	authController := controller.NewAuthController(db, tokens)

	app.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	app.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	app.Post("/protected", authMw.AuthMiddleware(tokens), authController.Protected)
}
