// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package email

import (
	"context"
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPService(t *testing.T) {
	config := SMTPConfig{
		Host: "localhost",
		Port: 1025,
		From: "test@example.com",
	}

	service, err := NewSMTPService(config)
	require.NoError(t, err)
	assert.NotNil(t, service)
	assert.Equal(t, config, service.config)
	assert.NotNil(t, service.templates)
	assert.NotNil(t, service.icsGenerator)
}

func TestSMTPService_SendTaskReminder(t *testing.T) {
	server := NewMockSMTPServerForTesting(t, DefaultSuccessfulSMTPResponses())
	defer func() {
		_ = server.Close()
	}()

	host, err := server.GetHost()
	require.NoError(t, err)
	port, err := server.GetPort()
	require.NoError(t, err)

	service, err := NewSMTPService(SMTPConfig{
		Host: host,
		Port: port,
		From: "oppgaver@regnskapsky.no",
	})
	require.NoError(t, err)

	reminder := domain.EmailTaskReminder{
		RecipientEmail: "kari@fjordvik.no",
		TaskUID:        "task-123",
		TaskTitle:      "MVA-melding",
		Description:    "Levering av mva-melding for termin.",
		ClientName:     "Fjordvik AS",
		Frequency:      models.FrequencyBiMonthly,
		DueDate:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		StartDate:      time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
	}

	err = service.SendTaskReminder(context.Background(), reminder)
	assert.NoError(t, err)
}

func TestNoOpService(t *testing.T) {
	service := NewNoOpService()
	assert.NotNil(t, service)

	reminder := domain.EmailTaskReminder{
		RecipientEmail: "user@example.com",
		TaskUID:        "task-123",
		TaskTitle:      "Lønnskjøring",
		Frequency:      models.FrequencyMonthly,
		DueDate:        time.Now().Add(24 * time.Hour),
	}

	t.Run("SendTaskReminder", func(t *testing.T) {
		err := service.SendTaskReminder(context.Background(), reminder)
		assert.NoError(t, err)
	})
}
