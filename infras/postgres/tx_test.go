package postgres_test

import (
	"cowork/infras/postgres"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	exclusion := &pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
	unique := &pq.Error{Code: "23505"}

	assert.Equal(t, "23P01", postgres.ErrorCode(fmt.Errorf("insert booking: %w", exclusion)))
	assert.True(t, postgres.IsExclusionViolation(fmt.Errorf("wrapped: %w", exclusion)))
	assert.False(t, postgres.IsExclusionViolation(unique))
	assert.Empty(t, postgres.ErrorCode(errors.New("connection reset")))
}
