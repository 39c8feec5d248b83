// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// TaskRepository defines the interface for task storage operations.
// This interface can be implemented by different storage backends (NATS, PostgreSQL, etc.)
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	Exists(ctx context.Context, taskUID string) (bool, error)
	Get(ctx context.Context, taskUID string) (*models.Task, error)
	GetWithRevision(ctx context.Context, taskUID string) (*models.Task, uint64, error)
	Update(ctx context.Context, task *models.Task, revision uint64) error
	Delete(ctx context.Context, taskUID string, revision uint64) error

	// Bulk operations
	ListAll(ctx context.Context) ([]*models.Task, error)
	ListByLicense(ctx context.Context, licenseUID string) ([]*models.Task, error)
	ListByClient(ctx context.Context, clientUID string) ([]*models.Task, error)
}

// ClientRepository defines the interface for client storage operations.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	Exists(ctx context.Context, clientUID string) (bool, error)
	Get(ctx context.Context, clientUID string) (*models.Client, error)
	GetWithRevision(ctx context.Context, clientUID string) (*models.Client, uint64, error)
	Update(ctx context.Context, client *models.Client, revision uint64) error
	Delete(ctx context.Context, clientUID string, revision uint64) error

	// Bulk operations
	ListByLicense(ctx context.Context, licenseUID string) ([]*models.Client, error)
}
