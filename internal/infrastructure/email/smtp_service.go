// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
)

// SMTPService implements the EmailService interface using SMTP
type SMTPService struct {
	config       SMTPConfig
	templates    TaskTemplateManager
	icsGenerator TaskICSGenerator
}

// SMTPConfig holds the SMTP server configuration
type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	Username string // Optional for authenticated SMTP
	Password string // Optional for authenticated SMTP
}

// NewSMTPService creates a new SMTP email service
func NewSMTPService(config SMTPConfig) (*SMTPService, error) {
	templates, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	return &SMTPService{
		config:       config,
		templates:    templates,
		icsGenerator: NewICSGenerator(),
	}, nil
}

// Ensure SMTPService implements domain.EmailService
var _ domain.EmailService = (*SMTPService)(nil)

// SendTaskReminder sends a reminder email for an upcoming task due date.
func (s *SMTPService) SendTaskReminder(ctx context.Context, reminder domain.EmailTaskReminder) error {
	ctx = logging.AppendCtx(ctx, slog.String("recipient_email", reminder.RecipientEmail))
	ctx = logging.AppendCtx(ctx, slog.String("task_uid", reminder.TaskUID))
	ctx = logging.AppendCtx(ctx, slog.String("task_title", reminder.TaskTitle))

	// Generate email content from templates
	rendered, err := s.templates.RenderTaskReminder(reminder)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render reminder templates", logging.ErrKey, err)
		return fmt.Errorf("failed to render reminder templates: %w", err)
	}

	// Generate the ICS attachment for the due date
	icsContent, err := s.icsGenerator.GenerateTaskReminderICS(ICSTaskReminderParams{
		TaskUID:        reminder.TaskUID,
		TaskTitle:      reminder.TaskTitle,
		Description:    reminder.Description,
		ClientName:     reminder.ClientName,
		Frequency:      reminder.Frequency,
		DueDate:        reminder.DueDate,
		RecipientEmail: reminder.RecipientEmail,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate reminder ICS", logging.ErrKey, err)
		return fmt.Errorf("failed to generate reminder ICS: %w", err)
	}

	// Build and send the email
	subject := fmt.Sprintf("Påminnelse: %s", reminder.TaskTitle)
	message := buildEmailMessageWithICS(reminder.RecipientEmail, subject, rendered.HTML, rendered.Text, icsContent, s.config)
	err = sendEmailMessage(reminder.RecipientEmail, message, s.config)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send reminder email", logging.ErrKey, err)
		return err
	}

	slog.InfoContext(ctx, "reminder email sent successfully")
	return nil
}
