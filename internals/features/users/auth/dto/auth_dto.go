package dto

import "strings"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegisterRequest: register user baru. Role TIDAK bisa dikirim dari sini;
// akun baru selalu student, akun teacher dibuat lewat seeder.
type RegisterRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// Normalize: trim & normalisasi dasar
func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type LoginRequest struct {
	UserName string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
}
