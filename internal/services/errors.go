package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinels shared across services. Handlers map these to HTTP
// statuses; services never touch fiber.
var (
	// ErrForbidden marks a role or ownership check failure.
	ErrForbidden = errors.New("access denied")

	// ErrIntegrityViolation marks a database constraint failure caught
	// at commit. The wrapped message describes the violation; callers
	// get a 400, never a raw database error.
	ErrIntegrityViolation = errors.New("integrity violation")
)

func isIntegrityViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "foreign key")
}
