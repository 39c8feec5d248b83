// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// NatsClientRepository is the NATS KV store repository for clients.
type NatsClientRepository struct {
	*NatsBaseRepository[models.Client]
}

// NewNatsClientRepository creates a new NATS KV store repository for clients.
func NewNatsClientRepository(kvStore INatsKeyValue) *NatsClientRepository {
	return &NatsClientRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Client](kvStore, "client"),
	}
}

var _ domain.ClientRepository = (*NatsClientRepository)(nil)

// Create stores a new client keyed by its UID.
func (r *NatsClientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.NatsBaseRepository.Create(ctx, client.UID, client)
}

// Update replaces a client with optimistic concurrency control.
func (r *NatsClientRepository) Update(ctx context.Context, client *models.Client, revision uint64) error {
	return r.NatsBaseRepository.Update(ctx, client.UID, client, revision)
}

// ListByLicense returns all clients belonging to the given license (tenant).
func (r *NatsClientRepository) ListByLicense(ctx context.Context, licenseUID string) ([]*models.Client, error) {
	clients, err := r.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*models.Client
	for _, client := range clients {
		if client.LicenseUID == licenseUID {
			filtered = append(filtered, client)
		}
	}
	return filtered, nil
}
