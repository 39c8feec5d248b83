// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package email

import (
	"strings"
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICSGenerator_GenerateTaskReminderICS(t *testing.T) {
	generator := NewICSGenerator()

	baseParams := ICSTaskReminderParams{
		TaskUID:        "task-123",
		TaskTitle:      "MVA-melding",
		Description:    "Levering av mva-melding for termin.",
		ClientName:     "Fjordvik AS",
		Frequency:      models.FrequencyBiMonthly,
		DueDate:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		RecipientEmail: "kari@fjordvik.no",
	}

	t.Run("generates valid calendar structure", func(t *testing.T) {
		ics, err := generator.GenerateTaskReminderICS(baseParams)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
		assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
		assert.Contains(t, ics, "VERSION:2.0\r\n")
		assert.Contains(t, ics, "PRODID:"+ICSProdID+"\r\n")
		assert.Contains(t, ics, "METHOD:REQUEST\r\n")
		assert.Contains(t, ics, "BEGIN:VEVENT\r\n")
		assert.Contains(t, ics, "END:VEVENT\r\n")
	})

	t.Run("event is all-day on the due date", func(t *testing.T) {
		ics, err := generator.GenerateTaskReminderICS(baseParams)
		require.NoError(t, err)

		assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240610\r\n")
		assert.Contains(t, ics, "DTEND;VALUE=DATE:20240611\r\n")
	})

	t.Run("uses task UID as event UID", func(t *testing.T) {
		ics, err := generator.GenerateTaskReminderICS(baseParams)
		require.NoError(t, err)

		assert.Contains(t, ics, "UID:task-123\r\n")
	})

	t.Run("includes attendee and organizer", func(t *testing.T) {
		ics, err := generator.GenerateTaskReminderICS(baseParams)
		require.NoError(t, err)

		assert.Contains(t, ics, "ORGANIZER;CN="+OrganizerName+":mailto:"+OrganizerEmail)
		assert.Contains(t, ics, "mailto:kari@fjordvik.no")
	})

	t.Run("includes client name in description", func(t *testing.T) {
		ics, err := generator.GenerateTaskReminderICS(baseParams)
		require.NoError(t, err)

		assert.Contains(t, ics, "Klient: Fjordvik AS")
	})

	t.Run("missing task UID", func(t *testing.T) {
		params := baseParams
		params.TaskUID = ""
		_, err := generator.GenerateTaskReminderICS(params)
		assert.Error(t, err)
	})

	t.Run("missing due date", func(t *testing.T) {
		params := baseParams
		params.DueDate = time.Time{}
		_, err := generator.GenerateTaskReminderICS(params)
		assert.Error(t, err)
	})
}

func TestGenerateRRule(t *testing.T) {
	tests := []struct {
		frequency models.Frequency
		expected  string
	}{
		{models.FrequencyDaily, "FREQ=DAILY"},
		{models.FrequencyWeekly, "FREQ=WEEKLY"},
		{models.FrequencyMonthly, "FREQ=MONTHLY"},
		{models.FrequencyBiMonthly, "FREQ=MONTHLY;INTERVAL=2"},
		{models.FrequencyQuarterly, "FREQ=MONTHLY;INTERVAL=3"},
		{models.FrequencyYearly, "FREQ=YEARLY"},
		{models.FrequencyOnce, ""},
		{models.Frequency("unknown"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.expected, generateRRule(tt.frequency))
		})
	}
}

func TestGenerateTaskReminderICS_RRulePerFrequency(t *testing.T) {
	generator := NewICSGenerator()

	t.Run("recurring task carries RRULE", func(t *testing.T) {
		ics, err := generator.GenerateTaskReminderICS(ICSTaskReminderParams{
			TaskUID:   "task-123",
			TaskTitle: "Lønnskjøring",
			Frequency: models.FrequencyMonthly,
			DueDate:   time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Contains(t, ics, "RRULE:FREQ=MONTHLY\r\n")
	})

	t.Run("one-off task has no RRULE", func(t *testing.T) {
		ics, err := generator.GenerateTaskReminderICS(ICSTaskReminderParams{
			TaskUID:   "task-456",
			TaskTitle: "Stiftelsesdokument",
			Frequency: models.FrequencyOnce,
			DueDate:   time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.NotContains(t, ics, "RRULE:")
	})
}

func TestEscapeICSText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Simple text",
			expected: "Simple text",
		},
		{
			name:     "escapes commas",
			input:    "Regnskap, lønn",
			expected: "Regnskap\\, lønn",
		},
		{
			name:     "escapes semicolons",
			input:    "a;b",
			expected: "a\\;b",
		},
		{
			name:     "escapes newlines",
			input:    "line1\nline2",
			expected: "line1\\nline2",
		},
		{
			name:     "escapes backslashes",
			input:    "a\\b",
			expected: "a\\\\b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeICSText(tt.input))
		})
	}
}

func TestFoldICSLine(t *testing.T) {
	t.Run("short line unchanged", func(t *testing.T) {
		assert.Equal(t, "short", foldICSLine("short", ICALMaxLineLength))
	})

	t.Run("long line is folded with continuation space", func(t *testing.T) {
		long := strings.Repeat("a", 200)
		folded := foldICSLine(long, ICALMaxLineLength)

		lines := strings.Split(folded, "\r\n")
		assert.Greater(t, len(lines), 1)
		for i, line := range lines {
			if i > 0 {
				assert.True(t, strings.HasPrefix(line, " "), "continued line must start with space")
			}
			assert.LessOrEqual(t, len(line), ICALMaxLineLength)
		}

		// No content lost
		joined := strings.ReplaceAll(folded, "\r\n ", "")
		assert.Equal(t, long, joined)
	})

	t.Run("does not split UTF-8 sequences", func(t *testing.T) {
		long := strings.Repeat("å", 120)
		folded := foldICSLine(long, ICALMaxLineLength)

		joined := strings.ReplaceAll(folded, "\r\n ", "")
		assert.Equal(t, long, joined)
		for _, line := range strings.Split(folded, "\r\n") {
			trimmed := strings.TrimPrefix(line, " ")
			assert.True(t, strings.Count(trimmed, "å")*2 == len(trimmed), "each line must hold whole runes")
		}
	})
}
