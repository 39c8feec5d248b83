// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// OccurrenceService implements the domain.OccurrenceCalculator interface.
// All date arithmetic is calendar-date based in UTC; time-of-day on the
// inputs is ignored.
type OccurrenceService struct{}

// NewOccurrenceService creates a new OccurrenceService
func NewOccurrenceService() *OccurrenceService {
	return &OccurrenceService{}
}

var _ domain.OccurrenceCalculator = (*OccurrenceService)(nil)

// NextOccurrence computes the next due date on or after the effective floor,
// which is the later of startDate and fromDate. The schedule is anchored to
// startDate: weekly occurrences land on startDate's weekday, monthly-family
// occurrences on startDate's day-of-month, yearly occurrences on startDate's
// month and day.
//
// A month-anchored day that does not exist in the candidate month rolls over
// into the following month (day 31 anchored in February yields early March).
// That is time.Date's native normalization and is pinned down by tests.
func (s *OccurrenceService) NextOccurrence(frequency models.Frequency, startDate, fromDate time.Time) (time.Time, error) {
	if startDate.IsZero() {
		return time.Time{}, domain.NewValidationError("start date must be a valid date")
	}
	if fromDate.IsZero() {
		fromDate = time.Now().UTC()
	}

	start := dateOnly(startDate)
	from := dateOnly(fromDate)

	// The effective floor: occurrences are never produced before the task
	// becomes eligible.
	floor := from
	if start.After(from) {
		floor = start
	}

	switch frequency {
	case models.FrequencyOnce:
		// A once task keeps its start date even when it is already in the
		// past; the caller decides whether that means "expired".
		return start, nil

	case models.FrequencyDaily:
		if floor.After(from) {
			return floor, nil
		}
		return from.AddDate(0, 0, 1), nil

	case models.FrequencyWeekly:
		base := from
		if start.After(from) {
			base = start.AddDate(0, 0, -1)
		}
		candidate := base.AddDate(0, 0, 1)
		for candidate.Weekday() != start.Weekday() {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate, nil

	case models.FrequencyMonthly:
		candidate := monthAnchoredCandidate(floor, start)
		if !candidate.After(floor) {
			candidate = candidate.AddDate(0, 1, 0)
		}
		return candidate, nil

	case models.FrequencyBiMonthly:
		candidate := monthAnchoredCandidate(floor, start)
		for !candidate.After(floor) {
			candidate = candidate.AddDate(0, 2, 0)
		}
		return candidate, nil

	case models.FrequencyQuarterly:
		candidate := monthAnchoredCandidate(floor, start)
		for !candidate.After(floor) {
			candidate = candidate.AddDate(0, 3, 0)
		}
		return candidate, nil

	case models.FrequencyYearly:
		candidate := time.Date(floor.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		if !candidate.After(floor) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate, nil
	}

	// Unreachable for canonical frequencies.
	return from, nil
}

// OccurrencesFromDate computes up to limit upcoming due dates for a task by
// iterating NextOccurrence. A once task yields at most its single start date.
func (s *OccurrenceService) OccurrencesFromDate(task *models.Task, fromDate time.Time, limit int) ([]models.TaskOccurrence, error) {
	if task == nil || limit <= 0 {
		return []models.TaskOccurrence{}, nil
	}

	occurrences := make([]models.TaskOccurrence, 0, limit)

	if task.Frequency == models.FrequencyOnce {
		due, err := s.NextOccurrence(task.Frequency, task.StartDate, fromDate)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, models.TaskOccurrence{TaskUID: task.UID, DueDate: due})
		return occurrences, nil
	}

	from := fromDate
	for len(occurrences) < limit {
		due, err := s.NextOccurrence(task.Frequency, task.StartDate, from)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, models.TaskOccurrence{TaskUID: task.UID, DueDate: due})
		from = due
	}

	return occurrences, nil
}

// monthAnchoredCandidate constructs a candidate date in from's month carrying
// start's day-of-month, letting time.Date normalize out-of-range days.
func monthAnchoredCandidate(from, start time.Time) time.Time {
	return time.Date(from.Year(), from.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
}

// dateOnly strips the time-of-day and normalizes to UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
