package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	d "sekolahku_backend/internals/features/users/auth/dto"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	"sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Tokens   *service.TokenService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, tokens *service.TokenService) *AuthController {
	return &AuthController{DB: db, Tokens: tokens, Validate: validator.New()}
}

// POST /register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error registering user")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: hashed,
		// Registrasi tidak pernah menaikkan role sendiri; akun baru selalu
		// student. Akun teacher dibuat out-of-band lewat seeder.
		Role: constants.RoleStudent,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Username or email already exists")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"user_id":  user.ID,
		"username": user.UserName,
	})
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ac.DB.Where("username = ?", req.UserName).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}

	ok, err := authHelper.CheckPasswordHash(req.Password, user.Password)
	if err != nil {
		log.Printf("[ERROR] login hash: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := ac.Tokens.Issue(user.ID)
	if err != nil {
		log.Printf("[ERROR] login issue token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error generating token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token": token,
	})
}

// POST /protected. Claims sudah divalidasi oleh auth middleware.
func (ac *AuthController) Protected(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*service.AccessClaims)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}
	return helper.Success(c, "Access granted", fiber.Map{
		"user": fiber.Map{
			"user_id": claims.UserID,
			"exp":     claims.ExpiresAt,
		},
	})
}
