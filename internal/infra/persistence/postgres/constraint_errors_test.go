package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(
		errors.Wrap(gorm.ErrForeignKeyViolated, "create offers")))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrRecordNotFound))
}
