// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package email

import (
	"context"
	"log/slog"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
)

// NoOpService is a no-operation email service that logs but doesn't send emails
type NoOpService struct{}

// NewNoOpService creates a new no-op email service
func NewNoOpService() *NoOpService {
	return &NoOpService{}
}

// Ensure NoOpService implements domain.EmailService
var _ domain.EmailService = (*NoOpService)(nil)

// SendTaskReminder logs the reminder but doesn't send an email
func (s *NoOpService) SendTaskReminder(ctx context.Context, reminder domain.EmailTaskReminder) error {
	ctx = logging.AppendCtx(ctx, slog.String("recipient_email", reminder.RecipientEmail))
	ctx = logging.AppendCtx(ctx, slog.String("task_title", reminder.TaskTitle))

	slog.DebugContext(ctx, "email service disabled, skipping reminder email")
	return nil
}
