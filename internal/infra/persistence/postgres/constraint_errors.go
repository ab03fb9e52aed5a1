package postgres

import (
	"strings"

	"moodify/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on gorm.Config.TranslateError being enabled.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// 23505 is unique_violation when translation did not happen.
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}
