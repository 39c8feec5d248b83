// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// NatsTaskRepository is the NATS KV store repository for tasks.
type NatsTaskRepository struct {
	*NatsBaseRepository[models.Task]
}

// NewNatsTaskRepository creates a new NATS KV store repository for tasks.
func NewNatsTaskRepository(kvStore INatsKeyValue) *NatsTaskRepository {
	return &NatsTaskRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Task](kvStore, "task"),
	}
}

var _ domain.TaskRepository = (*NatsTaskRepository)(nil)

// Create stores a new task keyed by its UID.
func (r *NatsTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.NatsBaseRepository.Create(ctx, task.UID, task)
}

// Update replaces a task with optimistic concurrency control.
func (r *NatsTaskRepository) Update(ctx context.Context, task *models.Task, revision uint64) error {
	return r.NatsBaseRepository.Update(ctx, task.UID, task, revision)
}

// ListAll returns every task in the bucket.
func (r *NatsTaskRepository) ListAll(ctx context.Context) ([]*models.Task, error) {
	return r.ListEntities(ctx)
}

// ListByLicense returns all tasks belonging to the given license (tenant).
func (r *NatsTaskRepository) ListByLicense(ctx context.Context, licenseUID string) ([]*models.Task, error) {
	tasks, err := r.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*models.Task
	for _, task := range tasks {
		if task.LicenseUID == licenseUID {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// ListByClient returns all tasks attached to the given client.
func (r *NatsTaskRepository) ListByClient(ctx context.Context, clientUID string) ([]*models.Task, error) {
	tasks, err := r.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*models.Task
	for _, task := range tasks {
		if task.ClientUID == clientUID {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}
