package database

import (
	"strings"

	"addressbook/internal/errors"

	"gorm.io/gorm"
)

// isNotNullConstraintViolation matches PostgreSQL 23502 and MySQL 1048 messages.
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "cannot be null") ||
		strings.Contains(errMsg, "23502")
}

// isCheckConstraintViolation matches GORM's translated error, PostgreSQL 23514 and MySQL 3819.
func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514")
}
