package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
)

// AuthMiddleware mengambil "Authorization: Bearer <token>" dan memverifikasinya.
// Header yang hilang dibedakan dari token yang tidak valid; penyebab
// invalid (palsu vs kedaluwarsa) tidak dibedakan ke klien.
func AuthMiddleware(tokens *service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Authorization header missing")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("claims", claims)
		return c.Next()
	}
}
