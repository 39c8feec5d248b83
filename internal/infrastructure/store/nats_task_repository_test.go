// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTask(t *testing.T, mockKV *mockNatsKeyValue, task *models.Task) {
	t.Helper()
	data, err := json.Marshal(task)
	require.NoError(t, err)
	mockKV.data[task.UID] = data
	mockKV.revisions[task.UID] = 1
}

func TestNatsTaskRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	mockKV := newMockNatsKeyValue()
	repo := NewNatsTaskRepository(mockKV)

	task := &models.Task{
		UID:        "task-1",
		LicenseUID: "license-1",
		ClientUID:  "client-1",
		Title:      "MVA-melding",
		Frequency:  models.FrequencyBiMonthly,
		StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.TaskStatusOpen,
	}

	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.Get(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "MVA-melding", got.Title)
	assert.Equal(t, models.FrequencyBiMonthly, got.Frequency)
}

func TestNatsTaskRepository_ListByLicense(t *testing.T) {
	ctx := context.Background()
	mockKV := newMockNatsKeyValue()
	repo := NewNatsTaskRepository(mockKV)

	seedTask(t, mockKV, &models.Task{UID: "task-1", LicenseUID: "license-1"})
	seedTask(t, mockKV, &models.Task{UID: "task-2", LicenseUID: "license-2"})
	seedTask(t, mockKV, &models.Task{UID: "task-3", LicenseUID: "license-1"})

	tasks, err := repo.ListByLicense(ctx, "license-1")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, "license-1", task.LicenseUID)
	}
}

func TestNatsTaskRepository_ListByClient(t *testing.T) {
	ctx := context.Background()
	mockKV := newMockNatsKeyValue()
	repo := NewNatsTaskRepository(mockKV)

	seedTask(t, mockKV, &models.Task{UID: "task-1", ClientUID: "client-1"})
	seedTask(t, mockKV, &models.Task{UID: "task-2", ClientUID: "client-2"})

	tasks, err := repo.ListByClient(ctx, "client-2")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "task-2", tasks[0].UID)
}

func TestNatsClientRepository_ListByLicense(t *testing.T) {
	ctx := context.Background()
	mockKV := newMockNatsKeyValue()
	repo := NewNatsClientRepository(mockKV)

	for _, c := range []*models.Client{
		{UID: "client-1", LicenseUID: "license-1", Name: "Fjordvik AS"},
		{UID: "client-2", LicenseUID: "license-2", Name: "Nordlys Regnskap AS"},
	} {
		data, err := json.Marshal(c)
		require.NoError(t, err)
		mockKV.data[c.UID] = data
		mockKV.revisions[c.UID] = 1
	}

	clients, err := repo.ListByLicense(ctx, "license-1")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Fjordvik AS", clients[0].Name)
}
