package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsUniqueViolation(pgErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", pgErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsExclusionConflict(t *testing.T) {
	assert.True(t, IsExclusionConflict(&pgconn.PgError{Code: "23P01"}))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsExclusionConflict(nil))
}

func TestBusinessError(t *testing.T) {
	err := ErrBusinessMsg("cancellation_window_closed", "Less than 1 hour remaining (12 minutes)")

	assert.True(t, IsBusiness(err, "cancellation_window_closed"))
	assert.False(t, IsBusiness(err, "slot_taken"))
	assert.Equal(t, "Less than 1 hour remaining (12 minutes)", BusinessMessage(err))

	wrapped := fmt.Errorf("cancel: %w", err)
	assert.True(t, IsBusiness(wrapped, "cancellation_window_closed"))

	assert.Equal(t, "", BusinessMessage(errors.New("plain")))
}
