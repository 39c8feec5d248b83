// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/concurrent"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
	"github.com/google/uuid"
)

// ClientService implements the client registry operations.
type ClientService struct {
	clientRepository domain.ClientRepository
	messageSender    domain.ClientMessageSender
	config           ServiceConfig
}

// NewClientService creates a new ClientService.
func NewClientService(
	clientRepository domain.ClientRepository,
	messageSender domain.ClientMessageSender,
	config ServiceConfig,
) *ClientService {
	return &ClientService{
		clientRepository: clientRepository,
		messageSender:    messageSender,
		config:           config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *ClientService) ServiceReady() bool {
	return s.clientRepository != nil &&
		s.messageSender != nil
}

func (s *ClientService) validateCreateClientPayload(client *models.Client) error {
	if client == nil {
		return domain.NewValidationError("client payload is required")
	}
	if client.LicenseUID == "" {
		return domain.NewValidationError("license UID is required")
	}
	if strings.TrimSpace(client.Name) == "" {
		return domain.NewValidationError("name is required")
	}

	return nil
}

// CreateClient creates a new client in the caller's license.
func (s *ClientService) CreateClient(ctx context.Context, clientReq *models.Client) (*models.Client, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.validateCreateClientPayload(clientReq); err != nil {
		return nil, err
	}

	clientReq.UID = uuid.New().String()
	now := time.Now().UTC()
	clientReq.CreatedAt = utils.TimePtr(now)
	clientReq.UpdatedAt = utils.TimePtr(now)

	if err := s.clientRepository.Create(ctx, clientReq); err != nil {
		slog.ErrorContext(ctx, "error creating client", logging.ErrKey, err)
		return nil, err
	}

	// Use WorkerPool for concurrent NATS message sending
	pool := concurrent.NewWorkerPool(2) // 2 messages to send
	messages := []func() error{
		func() error {
			return s.messageSender.SendIndexClient(ctx, models.ActionCreated, *clientReq)
		},
		func() error {
			return s.messageSender.SendUpdateAccessClient(ctx, models.ClientAccessMessage{
				UID:        clientReq.UID,
				LicenseUID: clientReq.LicenseUID,
			})
		},
	}

	if err := pool.Run(ctx, messages...); err != nil {
		slog.ErrorContext(ctx, "failed to send NATS messages", logging.ErrKey, err)
		// Don't fail the operation if messaging fails
	}

	return clientReq, nil
}

// GetClient returns a client along with its revision for ETag purposes.
func (s *ClientService) GetClient(ctx context.Context, uid, licenseUID string) (*models.Client, string, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, "", domain.NewUnavailableError("service not initialized")
	}

	client, revision, err := s.clientRepository.GetWithRevision(ctx, uid)
	if err != nil {
		slog.ErrorContext(ctx, "error getting client", logging.ErrKey, err)
		return nil, "", err
	}
	if err := guardLicense(client.LicenseUID, licenseUID, "client not found"); err != nil {
		slog.WarnContext(ctx, "client belongs to another license", "client_uid", uid)
		return nil, "", err
	}

	return client, strconv.FormatUint(revision, 10), nil
}

// UpdateClient updates a client.
func (s *ClientService) UpdateClient(ctx context.Context, clientReq *models.Client, revision uint64) (*models.Client, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if clientReq == nil || clientReq.UID == "" {
		slog.WarnContext(ctx, "client UID is required")
		return nil, domain.NewValidationError("client UID is required for update")
	}

	existing, existingRevision, err := s.clientRepository.GetWithRevision(ctx, clientReq.UID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting client from store", logging.ErrKey, err)
		return nil, err
	}
	if err := guardLicense(existing.LicenseUID, clientReq.LicenseUID, "client not found"); err != nil {
		slog.WarnContext(ctx, "client belongs to another license", "client_uid", clientReq.UID)
		return nil, err
	}

	if s.config.SkipEtagValidation {
		// If skipping the Etag validation, use the key revision from the store.
		revision = existingRevision
	}

	if err := s.validateCreateClientPayload(clientReq); err != nil {
		return nil, err
	}

	clientReq.CreatedAt = existing.CreatedAt
	clientReq.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.clientRepository.Update(ctx, clientReq, revision); err != nil {
		slog.ErrorContext(ctx, "error updating client", logging.ErrKey, err)
		return nil, err
	}

	// Use WorkerPool for concurrent NATS message sending
	pool := concurrent.NewWorkerPool(2) // 2 messages to send
	messages := []func() error{
		func() error {
			return s.messageSender.SendIndexClient(ctx, models.ActionUpdated, *clientReq)
		},
		func() error {
			return s.messageSender.SendUpdateAccessClient(ctx, models.ClientAccessMessage{
				UID:        clientReq.UID,
				LicenseUID: clientReq.LicenseUID,
			})
		},
	}

	if err := pool.Run(ctx, messages...); err != nil {
		slog.ErrorContext(ctx, "failed to send NATS messages", logging.ErrKey, err)
		// Don't fail the operation if messaging fails
	}

	return clientReq, nil
}

// DeleteClient deletes a client and triggers the cascade that removes the
// client's tasks.
func (s *ClientService) DeleteClient(ctx context.Context, uid, licenseUID string, revision uint64) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("service not initialized")
	}

	existing, existingRevision, err := s.clientRepository.GetWithRevision(ctx, uid)
	if err != nil {
		slog.ErrorContext(ctx, "error getting client from store", logging.ErrKey, err)
		return err
	}
	if err := guardLicense(existing.LicenseUID, licenseUID, "client not found"); err != nil {
		slog.WarnContext(ctx, "client belongs to another license", "client_uid", uid)
		return err
	}

	if s.config.SkipEtagValidation {
		revision = existingRevision
	}

	if err := s.clientRepository.Delete(ctx, uid, revision); err != nil {
		slog.ErrorContext(ctx, "error deleting client", logging.ErrKey, err)
		return err
	}

	// Use WorkerPool for concurrent NATS deletion message sending. The
	// client-deleted event triggers the task cascade in the message handler.
	pool := concurrent.NewWorkerPool(3) // 3 messages to send
	messages := []func() error{
		func() error {
			return s.messageSender.SendDeleteIndexClient(ctx, uid)
		},
		func() error {
			return s.messageSender.SendDeleteAllAccessClient(ctx, uid)
		},
		func() error {
			return s.messageSender.SendClientDeleted(ctx, models.ClientDeletedMessage{
				ClientUID:  uid,
				LicenseUID: existing.LicenseUID,
			})
		},
	}

	if err := pool.Run(ctx, messages...); err != nil {
		slog.ErrorContext(ctx, "failed to send NATS deletion messages", logging.ErrKey, err)
		// Don't fail the operation if messaging fails - the deletion already succeeded
	}

	return nil
}

// ListClients returns the clients of the caller's license.
func (s *ClientService) ListClients(ctx context.Context, licenseUID string) ([]*models.Client, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if licenseUID == "" {
		return nil, domain.NewValidationError("license UID is required")
	}

	clients, err := s.clientRepository.ListByLicense(ctx, licenseUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing clients", logging.ErrKey, err)
		return nil, err
	}

	return clients, nil
}
