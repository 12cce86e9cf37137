package repository_test

import (
	"context"
	"fmt"
	"testing"

	"pms/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23505"}
	assert.True(t, repository.IsUniqueViolation(fmt.Errorf("insert: %w", pqErr)))
	assert.False(t, repository.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.True(t, repository.IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.False(t, repository.IsUniqueViolation(assert.AnError))

	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Insert(ctx, room{ID: "room-1", Number: "101", Status: "available"}))

	err := repo.Insert(ctx, room{ID: "room-1", Number: "101", Status: "available"})
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))
}
