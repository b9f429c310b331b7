package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database.
// Kolom role sengaja TANPA default: satu-satunya penulis adalah jalur
// registrasi (selalu student) dan seeder (untuk akun teacher).
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserName  string    `gorm:"size:50;uniqueIndex;not null;column:username" json:"username"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate mengisi user_id di aplikasi, bukan lewat default DB,
// supaya jalan juga di sqlite saat test.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
