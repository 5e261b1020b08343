package postgres

import (
	"strings"

	"foodcart/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for the constraints the schema declares.
const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, sqlStateForeignKeyViolation, "foreign key")
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateNotNullViolation, "null value")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, sqlStateCheckViolation, "check constraint")
}

// hasSQLState matches the driver's error text, since errors are not
// translated unless the dialector enables it.
func hasSQLState(err error, code, phrase string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, code) || strings.Contains(msg, phrase)
}
