package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isForeignKeyConstraintViolation reports whether err is a foreign key
// violation surfaced through GORM's error translation. Offer creation uses it
// to distinguish a bad order/driver reference from other database failures.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
