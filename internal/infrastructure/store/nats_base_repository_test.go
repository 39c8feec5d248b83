// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntity for testing the base repository
type TestEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestNatsBaseRepository_IsReady(t *testing.T) {
	tests := []struct {
		name     string
		kvStore  INatsKeyValue
		expected bool
	}{
		{
			name:     "ready when kvStore is not nil",
			kvStore:  newMockNatsKeyValue(),
			expected: true,
		},
		{
			name:     "not ready when kvStore is nil",
			kvStore:  nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewNatsBaseRepository[TestEntity](tt.kvStore, "test")
			assert.Equal(t, tt.expected, repo.IsReady())
		})
	}
}

func TestNatsBaseRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("successful get", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		entity := &TestEntity{ID: "test-1", Name: "Test Entity"}
		entityJSON, _ := json.Marshal(entity)
		mockKV.data["test-key"] = entityJSON
		mockKV.revisions["test-key"] = 1

		result, err := repo.Get(ctx, "test-key")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, entity.ID, result.ID)
		assert.Equal(t, entity.Name, result.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		result, err := repo.Get(ctx, "nonexistent")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})

	t.Run("repository not ready", func(t *testing.T) {
		repo := NewNatsBaseRepository[TestEntity](nil, "test")

		result, err := repo.Get(ctx, "test-key")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))
	})
}

func TestNatsBaseRepository_GetWithRevision(t *testing.T) {
	ctx := context.Background()
	mockKV := newMockNatsKeyValue()
	repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

	entity := &TestEntity{ID: "test-1", Name: "Test Entity"}
	entityJSON, _ := json.Marshal(entity)
	mockKV.data["test-key"] = entityJSON
	mockKV.revisions["test-key"] = 5

	result, revision, err := repo.GetWithRevision(ctx, "test-key")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, entity.ID, result.ID)
	assert.Equal(t, uint64(5), revision)
}

func TestNatsBaseRepository_Create(t *testing.T) {
	ctx := context.Background()
	entity := &TestEntity{ID: "test-1", Name: "Test Entity"}

	t.Run("successful create", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		err := repo.Create(ctx, "test-key", entity)

		require.NoError(t, err)
		assert.Contains(t, mockKV.data, "test-key")
	})

	t.Run("repository not ready", func(t *testing.T) {
		repo := NewNatsBaseRepository[TestEntity](nil, "test")

		err := repo.Create(ctx, "test-key", entity)

		assert.Error(t, err)
		assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))
	})
}

func TestNatsBaseRepository_Update(t *testing.T) {
	ctx := context.Background()

	seed := func(mockKV *mockNatsKeyValue) {
		entity := &TestEntity{ID: "test-1", Name: "Before"}
		entityJSON, _ := json.Marshal(entity)
		mockKV.data["test-key"] = entityJSON
		mockKV.revisions["test-key"] = 3
	}

	t.Run("successful update", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		seed(mockKV)
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		err := repo.Update(ctx, "test-key", &TestEntity{ID: "test-1", Name: "After"}, 3)

		require.NoError(t, err)
		assert.Equal(t, uint64(4), mockKV.revisions["test-key"])
	})

	t.Run("revision mismatch is a conflict", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		seed(mockKV)
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		err := repo.Update(ctx, "test-key", &TestEntity{ID: "test-1", Name: "After"}, 2)

		assert.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	})

	t.Run("missing key is not found", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		err := repo.Update(ctx, "missing", &TestEntity{ID: "x"}, 1)

		assert.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestNatsBaseRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		mockKV.data["test-key"] = []byte(`{"id":"test-1"}`)
		mockKV.revisions["test-key"] = 1
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		err := repo.Delete(ctx, "test-key", 1)

		require.NoError(t, err)
		assert.NotContains(t, mockKV.data, "test-key")
	})

	t.Run("missing key is not found", func(t *testing.T) {
		mockKV := newMockNatsKeyValue()
		repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

		err := repo.Delete(ctx, "missing", 1)

		assert.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestNatsBaseRepository_Exists(t *testing.T) {
	ctx := context.Background()
	mockKV := newMockNatsKeyValue()
	mockKV.data["present"] = []byte(`{"id":"test-1"}`)
	repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

	exists, err := repo.Exists(ctx, "present")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNatsBaseRepository_ListEntities(t *testing.T) {
	ctx := context.Background()
	mockKV := newMockNatsKeyValue()
	repo := NewNatsBaseRepository[TestEntity](mockKV, "test")

	for _, id := range []string{"a", "b", "c"} {
		entityJSON, _ := json.Marshal(&TestEntity{ID: id})
		mockKV.data[id] = entityJSON
	}

	entities, err := repo.ListEntities(ctx)

	require.NoError(t, err)
	assert.Len(t, entities, 3)
}
