// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// OccurrenceCalculator defines the interface for computing due dates of
// recurring tasks.
type OccurrenceCalculator interface {
	// NextOccurrence computes the next due date of a schedule with the given
	// canonical frequency, anchored to startDate, relative to fromDate.
	// A zero fromDate means "now".
	NextOccurrence(frequency models.Frequency, startDate, fromDate time.Time) (time.Time, error)

	// OccurrencesFromDate computes up to limit upcoming due dates for a task,
	// starting from a specific date. This is typically used to render a
	// schedule preview.
	OccurrencesFromDate(task *models.Task, fromDate time.Time, limit int) ([]models.TaskOccurrence, error)
}
