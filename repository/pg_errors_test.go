package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsSerializationError(t *testing.T) {
	assert.True(t, IsSerializationError(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsSerializationError(&pgconn.PgError{Code: "40P01"}))

	// wrapped errors are unwrapped
	wrapped := fmt.Errorf("checkout: %w", &pgconn.PgError{Code: "40001"})
	assert.True(t, IsSerializationError(wrapped))

	assert.False(t, IsSerializationError(nil))
	assert.False(t, IsSerializationError(errors.New("connection refused")))
	assert.False(t, IsSerializationError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsSerializationError(gorm.ErrRecordNotFound))
}
