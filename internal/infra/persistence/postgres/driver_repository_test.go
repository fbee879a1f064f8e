package postgres

import (
	"context"
	"testing"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// captureQuery opens a dry-run GORM session that records the rendered SQL and
// bind variables of every query instead of executing it.
func captureQuery(t *testing.T) (*gorm.DB, *string, *[]any) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var capturedSQL string
	var capturedVars []any
	err = db.Callback().Query().After("gorm:query").
		Register("capture_query", func(tx *gorm.DB) {
			capturedSQL = tx.Statement.SQL.String()
			capturedVars = tx.Statement.Vars
		})
	require.NoError(t, err)

	return db, &capturedSQL, &capturedVars
}

func TestDriverRepository_FindEligibleDriversByStore_FiltersOnAvailableStatus(t *testing.T) {
	db, capturedSQL, capturedVars := captureQuery(t)
	repo := NewDriverRepository(db)

	storeID := uuid.New()
	_, err := repo.FindEligibleDriversByStore(context.Background(), storeID)
	require.NoError(t, err)

	// The status clause must demand equality with "available"; a not-equal
	// comparison would admit offline drivers whose flags are still set.
	assert.Contains(t, *capturedSQL, "status = ?")
	assert.NotContains(t, *capturedSQL, "status <> ?")
	assert.Contains(t, *capturedVars, entity.DriverStatusAvailable)
	assert.NotContains(t, *capturedVars, entity.DriverStatusBusy)
	assert.Contains(t, *capturedVars, storeID)
}
