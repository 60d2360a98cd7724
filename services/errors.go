package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Service errors recovered at the request boundary and surfaced as flash
// notices. Anything else is treated as an unexpected store failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("not authorized")
	ErrConflict           = errors.New("already exists")
	ErrRoomFull           = errors.New("room is full")
	ErrNotFound           = errors.New("record not found")
	ErrNotActive          = errors.New("allocation is not active")
	ErrValidation         = errors.New("invalid input")
)

// isDuplicate matches unique-constraint violations across MySQL and
// SQLite, which report them with different error text.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
