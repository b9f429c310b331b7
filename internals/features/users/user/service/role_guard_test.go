package service

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) {
	t.Helper()
	u := model.UserModel{
		UserName: username,
		Email:    username + "@sekolah.id",
		Password: "x",
		Role:     role,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func TestEnsureRole_UserNotFound(t *testing.T) {
	db := newTestDB(t)

	err := EnsureRole(db, "tidak-ada", constants.RoleTeacher)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("EnsureRole() = %v, want ErrUserNotFound", err)
	}
}

func TestEnsureRole_WrongRole(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "budi", constants.RoleStudent)

	err := EnsureRole(db, "budi", constants.RoleTeacher)
	if !errors.Is(err, ErrWrongRole) {
		t.Errorf("EnsureRole() = %v, want ErrWrongRole", err)
	}
}

func TestEnsureRole_Allow(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "bu-guru", constants.RoleTeacher)

	if err := EnsureRole(db, "bu-guru", constants.RoleTeacher); err != nil {
		t.Errorf("EnsureRole() = %v, want nil", err)
	}
}

func TestEnsureRole_CaseSensitiveUsername(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "BuGuru", constants.RoleTeacher)

	// pencocokan username harus exact
	if err := EnsureRole(db, "buguru", constants.RoleTeacher); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("EnsureRole() = %v, want ErrUserNotFound", err)
	}
}

// Role selalu dibaca ulang dari store: perubahan role langsung terlihat
// pada panggilan berikutnya.
func TestEnsureRole_RereadsRole(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "cici", constants.RoleTeacher)

	if err := EnsureRole(db, "cici", constants.RoleTeacher); err != nil {
		t.Fatalf("EnsureRole() sebelum demote = %v", err)
	}

	if err := db.Model(&model.UserModel{}).
		Where("username = ?", "cici").
		Update("role", constants.RoleStudent).Error; err != nil {
		t.Fatalf("demote: %v", err)
	}

	if err := EnsureRole(db, "cici", constants.RoleTeacher); !errors.Is(err, ErrWrongRole) {
		t.Errorf("EnsureRole() setelah demote = %v, want ErrWrongRole", err)
	}
}
