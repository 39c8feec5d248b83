// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestOccurrenceService_NextOccurrence(t *testing.T) {
	service := NewOccurrenceService()

	tests := []struct {
		name      string
		frequency models.Frequency
		startDate time.Time
		fromDate  time.Time
		expected  time.Time
	}{
		{
			name:      "once returns start date",
			frequency: models.FrequencyOnce,
			startDate: date(2024, time.June, 15),
			fromDate:  date(2024, time.March, 1),
			expected:  date(2024, time.June, 15),
		},
		{
			name:      "once returns start date even when already past",
			frequency: models.FrequencyOnce,
			startDate: date(2024, time.January, 2),
			fromDate:  date(2024, time.March, 1),
			expected:  date(2024, time.January, 2),
		},
		{
			name:      "daily advances one day past from date",
			frequency: models.FrequencyDaily,
			startDate: date(2024, time.January, 1),
			fromDate:  date(2024, time.March, 1),
			expected:  date(2024, time.March, 2),
		},
		{
			name:      "daily with future start jumps to start",
			frequency: models.FrequencyDaily,
			startDate: date(2024, time.April, 10),
			fromDate:  date(2024, time.March, 1),
			expected:  date(2024, time.April, 10),
		},
		{
			name:      "weekly anchors to start weekday",
			frequency: models.FrequencyWeekly,
			// Monday June 3rd 2024; from Wednesday June 5th.
			startDate: date(2024, time.June, 3),
			fromDate:  date(2024, time.June, 5),
			expected:  date(2024, time.June, 10), // next Monday
		},
		{
			name:      "weekly from same weekday advances a full week",
			frequency: models.FrequencyWeekly,
			startDate: date(2024, time.June, 3),  // Monday
			fromDate:  date(2024, time.June, 10), // also a Monday
			expected:  date(2024, time.June, 17),
		},
		{
			name:      "weekly with future start returns start",
			frequency: models.FrequencyWeekly,
			startDate: date(2024, time.June, 3),
			fromDate:  date(2024, time.May, 1),
			expected:  date(2024, time.June, 3),
		},
		{
			name:      "monthly anchors to start day of month",
			frequency: models.FrequencyMonthly,
			startDate: date(2024, time.January, 15),
			fromDate:  date(2024, time.March, 1),
			expected:  date(2024, time.March, 15),
		},
		{
			name:      "monthly candidate on or before from advances a month",
			frequency: models.FrequencyMonthly,
			startDate: date(2024, time.January, 15),
			fromDate:  date(2024, time.March, 15),
			expected:  date(2024, time.April, 15),
		},
		{
			name:      "monthly month-end anchor rolls over instead of clamping",
			frequency: models.FrequencyMonthly,
			// Day 31 anchored in February 2024 (29 days) rolls to March 2.
			startDate: date(2024, time.January, 31),
			fromDate:  date(2024, time.February, 15),
			expected:  date(2024, time.March, 2),
		},
		{
			name:      "bi-monthly steps two months until past from",
			frequency: models.FrequencyBiMonthly,
			startDate: date(2024, time.January, 10),
			fromDate:  date(2024, time.March, 20),
			expected:  date(2024, time.May, 10),
		},
		{
			name:      "bi-monthly candidate after from needs no advance",
			frequency: models.FrequencyBiMonthly,
			startDate: date(2024, time.January, 25),
			fromDate:  date(2024, time.March, 20),
			expected:  date(2024, time.March, 25),
		},
		{
			name:      "quarterly steps three months until past from",
			frequency: models.FrequencyQuarterly,
			startDate: date(2024, time.January, 5),
			fromDate:  date(2024, time.March, 10),
			expected:  date(2024, time.June, 5),
		},
		{
			name:      "yearly anchors to start month and day",
			frequency: models.FrequencyYearly,
			startDate: date(2020, time.May, 17),
			fromDate:  date(2024, time.March, 1),
			expected:  date(2024, time.May, 17),
		},
		{
			name:      "yearly candidate on or before from advances a year",
			frequency: models.FrequencyYearly,
			startDate: date(2020, time.May, 17),
			fromDate:  date(2024, time.May, 17),
			expected:  date(2025, time.May, 17),
		},
		{
			name:      "unknown frequency returns from date",
			frequency: models.Frequency("fortnightly"),
			startDate: date(2024, time.January, 1),
			fromDate:  date(2024, time.March, 1),
			expected:  date(2024, time.March, 1),
		},
		{
			name:      "time of day on inputs is ignored",
			frequency: models.FrequencyMonthly,
			startDate: time.Date(2024, time.January, 15, 23, 45, 0, 0, time.UTC),
			fromDate:  time.Date(2024, time.March, 1, 6, 30, 0, 0, time.UTC),
			expected:  date(2024, time.March, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.NextOccurrence(tt.frequency, tt.startDate, tt.fromDate)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOccurrenceService_NextOccurrence_InvalidStartDate(t *testing.T) {
	service := NewOccurrenceService()

	_, err := service.NextOccurrence(models.FrequencyMonthly, time.Time{}, date(2024, time.March, 1))
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
}

func TestOccurrenceService_NextOccurrence_ZeroFromDateMeansNow(t *testing.T) {
	service := NewOccurrenceService()

	got, err := service.NextOccurrence(models.FrequencyDaily, date(2020, time.January, 1), time.Time{})
	require.NoError(t, err)
	assert.True(t, got.After(time.Now().UTC().AddDate(0, 0, -1)))
}

func TestOccurrenceService_NextOccurrence_Monotonicity(t *testing.T) {
	service := NewOccurrenceService()

	recurring := []models.Frequency{
		models.FrequencyDaily,
		models.FrequencyWeekly,
		models.FrequencyMonthly,
		models.FrequencyBiMonthly,
		models.FrequencyQuarterly,
		models.FrequencyYearly,
	}

	starts := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 31),
		date(2024, time.June, 15),
		date(2025, time.December, 31),
	}
	froms := []time.Time{
		date(2024, time.February, 15),
		date(2024, time.June, 15),
		date(2025, time.March, 1),
	}

	for _, frequency := range recurring {
		for _, start := range starts {
			for _, from := range froms {
				got, err := service.NextOccurrence(frequency, start, from)
				require.NoError(t, err)

				floor := from
				if start.After(from) {
					floor = start
				}
				assert.False(t, got.Before(floor),
					"frequency=%s start=%s from=%s got=%s", frequency, start, from, got)
			}
		}
	}
}

func TestOccurrenceService_OccurrencesFromDate(t *testing.T) {
	service := NewOccurrenceService()

	t.Run("nil task yields no occurrences", func(t *testing.T) {
		occurrences, err := service.OccurrencesFromDate(nil, date(2024, time.March, 1), 5)
		require.NoError(t, err)
		assert.Empty(t, occurrences)
	})

	t.Run("non-positive limit yields no occurrences", func(t *testing.T) {
		task := &models.Task{UID: "t1", Frequency: models.FrequencyDaily, StartDate: date(2024, time.January, 1)}
		occurrences, err := service.OccurrencesFromDate(task, date(2024, time.March, 1), 0)
		require.NoError(t, err)
		assert.Empty(t, occurrences)
	})

	t.Run("monthly series", func(t *testing.T) {
		task := &models.Task{
			UID:       "t1",
			Frequency: models.FrequencyMonthly,
			StartDate: date(2024, time.January, 15),
		}
		occurrences, err := service.OccurrencesFromDate(task, date(2024, time.March, 1), 3)
		require.NoError(t, err)
		require.Len(t, occurrences, 3)
		assert.Equal(t, date(2024, time.March, 15), occurrences[0].DueDate)
		assert.Equal(t, date(2024, time.April, 15), occurrences[1].DueDate)
		assert.Equal(t, date(2024, time.May, 15), occurrences[2].DueDate)
		assert.Equal(t, "t1", occurrences[0].TaskUID)
	})

	t.Run("once task yields a single occurrence", func(t *testing.T) {
		task := &models.Task{
			UID:       "t2",
			Frequency: models.FrequencyOnce,
			StartDate: date(2024, time.June, 15),
		}
		occurrences, err := service.OccurrencesFromDate(task, date(2024, time.March, 1), 5)
		require.NoError(t, err)
		require.Len(t, occurrences, 1)
		assert.Equal(t, date(2024, time.June, 15), occurrences[0].DueDate)
	})

	t.Run("invalid start date surfaces the validation error", func(t *testing.T) {
		task := &models.Task{UID: "t3", Frequency: models.FrequencyMonthly}
		_, err := service.OccurrencesFromDate(task, date(2024, time.March, 1), 3)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})
}

func TestOccurrenceService_EndToEndScenario(t *testing.T) {
	// The dashboard flow: a label entered as "Månedlig" is normalized and the
	// next due date computed relative to March 1st.
	service := NewOccurrenceService()

	frequency := models.NormalizeFrequency("Månedlig")
	require.Equal(t, models.FrequencyMonthly, frequency)

	got, err := service.NextOccurrence(frequency, date(2024, time.January, 15), date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), got)
}
