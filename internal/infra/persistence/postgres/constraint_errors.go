package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helpers for PostgreSQL constraint errors. They rely on gorm's
// TranslateError so the driver error codes are mapped before reaching here.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
