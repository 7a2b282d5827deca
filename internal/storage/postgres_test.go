package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/storefront/internal/apperr"
)

func TestMapWriteError_UniqueViolationIsConflict(t *testing.T) {
	raw := fmt.Errorf("exec: %w", &pq.Error{Code: "23505", Constraint: "admins_email_key"})

	err := mapWriteError(raw, adminConflictMessage, "create admin")
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, adminConflictMessage, apperr.As(err).Message)
}

func TestMapWriteError_OtherErrors(t *testing.T) {
	err := mapWriteError(&pq.Error{Code: "23502"}, categoryConflictMessage, "create category")
	assert.False(t, apperr.Is(err, apperr.KindConflict))
	assert.Contains(t, err.Error(), "failed to create category")

	err = mapWriteError(errors.New("connection reset"), categoryConflictMessage, "create category")
	assert.Equal(t, apperr.KindInternal, apperr.As(err).Kind)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("0b5c1f3e-8a8e-4c3a-9d51-3c7c3b0c2f1a"))
	assert.False(t, isUUID("PROD-1767225600000-abc"))
	assert.False(t, isUUID(""))
}
