package service

import (
	"errors"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/user/model"
)

var (
	// ErrUserNotFound: username tidak ada di tabel users (→ 404 di controller).
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongRole: user ada tapi role tidak sesuai (→ 403 di controller).
	ErrWrongRole = errors.New("role tidak sesuai")
)

// EnsureRole memeriksa role aktor SELALU dari database pada saat dipanggil;
// role tidak pernah dipercaya dari cache atau dari nilai kiriman klien.
//
// Catatan trust boundary: username diambil dari body request apa adanya,
// TIDAK dicocokkan dengan identitas di bearer token. Klien lama bergantung
// pada kontrak lemah ini; jangan diperketat tanpa perubahan yang diumumkan.
func EnsureRole(db *gorm.DB, username, requiredRole string) error {
	var user model.UserModel
	err := db.Select("role").Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.Role != requiredRole {
		return ErrWrongRole
	}
	return nil
}
