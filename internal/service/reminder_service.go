// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/concurrent"
	"github.com/robfig/cron/v3"
)

// ReminderConfig is the configuration for the reminder sweep.
type ReminderConfig struct {
	// Schedule is the cron spec for the sweep. Default is every morning at 07:00 UTC.
	Schedule string
	// LookaheadDays is how many days ahead of the due date a reminder is sent.
	LookaheadDays int
}

// DefaultReminderSchedule runs the sweep every morning before office hours.
const DefaultReminderSchedule = "0 7 * * *"

// DefaultReminderLookaheadDays is the default reminder window.
const DefaultReminderLookaheadDays = 3

// ReminderService sweeps open tasks on a cron schedule and emails assignees
// whose tasks come due inside the lookahead window.
type ReminderService struct {
	taskRepository   domain.TaskRepository
	clientRepository domain.ClientRepository
	emailService     domain.EmailService
	config           ReminderConfig

	cron *cron.Cron
}

// NewReminderService creates a new ReminderService.
func NewReminderService(
	taskRepository domain.TaskRepository,
	clientRepository domain.ClientRepository,
	emailService domain.EmailService,
	config ReminderConfig,
) *ReminderService {
	if config.Schedule == "" {
		config.Schedule = DefaultReminderSchedule
	}
	if config.LookaheadDays <= 0 {
		config.LookaheadDays = DefaultReminderLookaheadDays
	}

	return &ReminderService{
		taskRepository:   taskRepository,
		clientRepository: clientRepository,
		emailService:     emailService,
		config:           config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *ReminderService) ServiceReady() bool {
	return s.taskRepository != nil &&
		s.clientRepository != nil &&
		s.emailService != nil
}

// Start registers the sweep on the cron schedule and starts the scheduler.
func (s *ReminderService) Start(ctx context.Context) error {
	if !s.ServiceReady() {
		return domain.NewUnavailableError("reminder service not initialized")
	}

	s.cron = cron.New(cron.WithLocation(time.UTC))
	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.Sweep(ctx); err != nil {
			slog.ErrorContext(ctx, "reminder sweep failed", logging.ErrKey, err)
		}
	})
	if err != nil {
		return domain.NewInternalError("invalid reminder schedule", err)
	}

	s.cron.Start()
	slog.InfoContext(ctx, "reminder service started",
		"schedule", s.config.Schedule,
		"lookahead_days", s.config.LookaheadDays,
	)

	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Sweep finds open tasks due inside the lookahead window and emails their
// assignees. Individual send failures don't stop the sweep.
func (s *ReminderService) Sweep(ctx context.Context) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("service not initialized")
	}

	tasks, err := s.taskRepository.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error listing tasks for reminder sweep", logging.ErrKey, err)
		return err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	windowEnd := today.AddDate(0, 0, s.config.LookaheadDays)

	// Client names are looked up once per client, not once per task.
	clientNames := make(map[string]string)

	var sends []func() error
	for _, task := range tasks {
		if !task.IsOpen() || task.NextDue == nil || task.AssigneeEmail == "" {
			continue
		}
		due := task.NextDue.UTC().Truncate(24 * time.Hour)
		if due.Before(today) || due.After(windowEnd) {
			continue
		}

		clientName, ok := clientNames[task.ClientUID]
		if !ok {
			client, err := s.clientRepository.Get(ctx, task.ClientUID)
			if err != nil {
				slog.WarnContext(ctx, "could not resolve client for reminder", logging.ErrKey, err,
					"client_uid", task.ClientUID)
			} else {
				clientName = client.Name
			}
			clientNames[task.ClientUID] = clientName
		}

		reminder := domain.EmailTaskReminder{
			RecipientEmail: task.AssigneeEmail,
			TaskUID:        task.UID,
			TaskTitle:      task.Title,
			Description:    task.Description,
			ClientName:     clientName,
			Frequency:      task.Frequency,
			DueDate:        due,
			StartDate:      task.StartDate,
		}
		sends = append(sends, func() error {
			return s.emailService.SendTaskReminder(ctx, reminder)
		})
	}

	if len(sends) == 0 {
		slog.DebugContext(ctx, "no reminders due", "lookahead_days", s.config.LookaheadDays)
		return nil
	}

	pool := concurrent.NewWorkerPool(4)
	if errs := pool.RunAll(ctx, sends...); len(errs) > 0 {
		for _, err := range errs {
			slog.ErrorContext(ctx, "error sending reminder email", logging.ErrKey, err)
		}
	}

	slog.InfoContext(ctx, "reminder sweep finished", "reminders", len(sends))

	return nil
}
