package helper

import (
	"errors"
	"strings"
)

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation mendeteksi unique violation Postgres (kode "23505").
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	// string fallback (kompatibel untuk driver yang dibungkus, termasuk sqlite saat test)
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
