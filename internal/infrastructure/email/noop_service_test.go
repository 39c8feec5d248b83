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
)

// TestNoOpService_ImplementsInterface verifies that NoOpService correctly implements
// the EmailService interface and that all methods execute without panicking.
func TestNoOpService_ImplementsInterface(t *testing.T) {
	// Compile-time check that NoOpService implements domain.EmailService
	var _ domain.EmailService = (*NoOpService)(nil)

	service := NewNoOpService()
	ctx := context.Background()

	// Runtime check that all methods execute without panicking and return nil
	assert.NotPanics(t, func() {
		err := service.SendTaskReminder(ctx, domain.EmailTaskReminder{
			RecipientEmail: "kari@fjordvik.no",
			TaskTitle:      "MVA-melding",
			ClientName:     "Fjordvik AS",
			Frequency:      models.FrequencyBiMonthly,
			DueDate:        time.Now().AddDate(0, 0, 1),
			StartDate:      time.Now().AddDate(0, -2, 0),
		})
		assert.NoError(t, err)
	})
}
