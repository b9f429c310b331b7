package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	"sekolahku_backend/internals/features/users/user/model"
)

// SeedTeacherFromEnv membuat akun teacher awal dari
// SEED_TEACHER_USERNAME / SEED_TEACHER_EMAIL / SEED_TEACHER_PASSWORD.
// Ini satu-satunya jalur resmi user mendapat role teacher; registrasi
// biasa selalu menghasilkan student. Tanpa env lengkap, seeder dilewati.
func SeedTeacherFromEnv(db *gorm.DB) {
	username := os.Getenv("SEED_TEACHER_USERNAME")
	email := os.Getenv("SEED_TEACHER_EMAIL")
	password := os.Getenv("SEED_TEACHER_PASSWORD")
	if username == "" || email == "" || password == "" {
		log.Println("ℹ️ SEED_TEACHER_* tidak lengkap, seeder teacher dilewati.")
		return
	}

	var existing model.UserModel
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Teacher '%s' sudah ada, dilewati.", username)
		return
	}

	hashedPassword, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("❌ Gagal hash password teacher '%s': %v", username, err)
		return
	}

	teacher := model.UserModel{
		UserName: username,
		Email:    email,
		Password: hashedPassword,
		Role:     constants.RoleTeacher,
	}
	if err := db.Create(&teacher).Error; err != nil {
		log.Printf("❌ Gagal membuat teacher '%s': %v", username, err)
		return
	}
	log.Printf("✅ Teacher '%s' dibuat.", username)
}
