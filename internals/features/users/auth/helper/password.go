package helper

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost 10: cukup lambat untuk menahan brute force tanpa bikin login terasa berat.
const bcryptCost = 10

// HashPassword menghasilkan hash bcrypt bersalt. Dua pemanggilan dengan
// plaintext sama menghasilkan output berbeda (salt tertanam di hash).
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash mengembalikan (false, nil) untuk password salah;
// error hanya untuk hash yang rusak/bukan format bcrypt.
func CheckPasswordHash(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
