// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package email

import (
	"strings"
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateManager(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)
	assert.NotNil(t, tm)
	assert.NotNil(t, tm.templates.Task.Reminder.HTML)
	assert.NotNil(t, tm.templates.Task.Reminder.Text)
}

func TestTemplateManager_RenderTaskReminder(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	data := domain.EmailTaskReminder{
		RecipientEmail: "kari@fjordvik.no",
		TaskUID:        "task-123",
		TaskTitle:      "MVA-melding",
		Description:    "Levering av mva-melding for termin.\nHusk bilagene.",
		ClientName:     "Fjordvik AS",
		Frequency:      models.FrequencyBiMonthly,
		DueDate:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		StartDate:      time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
	}

	rendered, err := tm.RenderTaskReminder(data)
	require.NoError(t, err)
	require.NotNil(t, rendered)

	t.Run("text version", func(t *testing.T) {
		assert.Contains(t, rendered.Text, "MVA-melding")
		assert.Contains(t, rendered.Text, "Fjordvik AS")
		assert.Contains(t, rendered.Text, "Annenhver måned")
		assert.Contains(t, rendered.Text, "mandag 10. juni 2024")
	})

	t.Run("html version", func(t *testing.T) {
		assert.Contains(t, rendered.HTML, "MVA-melding")
		assert.Contains(t, rendered.HTML, "Fjordvik AS")
		assert.Contains(t, rendered.HTML, "Annenhver måned")
		assert.Contains(t, rendered.HTML, "mandag 10. juni 2024")
		// Newlines in the description become break tags
		assert.Contains(t, rendered.HTML, "<br>")
	})

	t.Run("omits client row when client name is empty", func(t *testing.T) {
		noClient := data
		noClient.ClientName = ""
		rendered, err := tm.RenderTaskReminder(noClient)
		require.NoError(t, err)
		assert.NotContains(t, rendered.Text, "Klient:")
		assert.NotContains(t, rendered.HTML, "Klient:")
	})
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "weekday in january",
			date:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			expected: "mandag 15. januar 2024",
		},
		{
			name:     "weekend in december",
			date:     time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC),
			expected: "lørdag 28. desember 2024",
		},
		{
			name:     "leap day",
			date:     time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			expected: "torsdag 29. februar 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDate(tt.date))
		})
	}
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		frequency models.Frequency
		expected  string
	}{
		{models.FrequencyDaily, "Daglig"},
		{models.FrequencyWeekly, "Ukentlig"},
		{models.FrequencyMonthly, "Månedlig"},
		{models.FrequencyBiMonthly, "Annenhver måned"},
		{models.FrequencyQuarterly, "Kvartalsvis"},
		{models.FrequencyYearly, "Årlig"},
		{models.FrequencyOnce, "Engangsoppgave"},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFrequency(tt.frequency))
		})
	}

	t.Run("unknown frequency falls back to raw value", func(t *testing.T) {
		assert.Equal(t, "whatever", formatFrequency(models.Frequency("whatever")))
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", capitalize("hello"))
	assert.Equal(t, "Hello", capitalize("HELLO"))
	assert.Equal(t, "", capitalize(""))
}

func TestNewLineToBreakLine(t *testing.T) {
	result := newLineToBreakLine("line one\nline two")
	assert.Equal(t, "line one<br>line two", string(result))

	t.Run("escapes html", func(t *testing.T) {
		result := newLineToBreakLine("<script>alert(1)</script>")
		assert.False(t, strings.Contains(string(result), "<script>"))
	})
}
