// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// EmailService defines the interface for sending task reminder emails.
type EmailService interface {
	SendTaskReminder(ctx context.Context, reminder EmailTaskReminder) error
}

// EmailTaskReminder contains the information needed to send a reminder email
// for an upcoming task due date.
type EmailTaskReminder struct {
	RecipientEmail string
	TaskUID        string
	TaskTitle      string
	Description    string
	ClientName     string
	Frequency      models.Frequency
	DueDate        time.Time
	StartDate      time.Time
}
