// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFrequency_Norwegian(t *testing.T) {
	tests := []struct {
		label    string
		expected Frequency
	}{
		{"daglig", FrequencyDaily},
		{"løpende", FrequencyDaily},
		{"ukentlig", FrequencyWeekly},
		{"månedlig", FrequencyMonthly},
		{"maanedlig", FrequencyMonthly},
		{"mnd", FrequencyMonthly},
		{"annenhver måned", FrequencyBiMonthly},
		{"annenhver mnd", FrequencyBiMonthly},
		{"2 hver mnd", FrequencyBiMonthly},
		{"2 vær mnd", FrequencyBiMonthly},
		{"kvartalsvis", FrequencyQuarterly},
		{"årlig", FrequencyYearly},
		{"aarlig", FrequencyYearly},
		{"engangs", FrequencyOnce},
		{"engang", FrequencyOnce},
		{"spesifikk dato", FrequencyOnce},
		{"bestemt dato", FrequencyOnce},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFrequency(tt.label))
		})
	}
}

func TestNormalizeFrequency_English(t *testing.T) {
	tests := []struct {
		label    string
		expected Frequency
	}{
		{"daily", FrequencyDaily},
		{"day", FrequencyDaily},
		{"weekly", FrequencyWeekly},
		{"week", FrequencyWeekly},
		{"monthly", FrequencyMonthly},
		{"month", FrequencyMonthly},
		{"bi-monthly", FrequencyBiMonthly},
		{"bimonthly", FrequencyBiMonthly},
		{"quarterly", FrequencyQuarterly},
		{"yearly", FrequencyYearly},
		{"annual", FrequencyYearly},
		{"once", FrequencyOnce},
		{"specific_date", FrequencyOnce},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFrequency(tt.label))
		})
	}
}

func TestNormalizeFrequency_CaseAndWhitespace(t *testing.T) {
	assert.Equal(t, FrequencyDaily, NormalizeFrequency("  DAGLIG "))
	assert.Equal(t, FrequencyDaily, NormalizeFrequency("daglig"))
	assert.Equal(t, FrequencyMonthly, NormalizeFrequency("Månedlig"))
	assert.Equal(t, FrequencyQuarterly, NormalizeFrequency("\tKvartalsvis\n"))
}

func TestNormalizeFrequency_BiMonthlyHeuristic(t *testing.T) {
	tests := []struct {
		label    string
		expected Frequency
	}{
		{"2 hver måned", FrequencyBiMonthly},
		{"annenhver mnd.", FrequencyBiMonthly},
		{"hver 2. mnd", FrequencyBiMonthly},
		// "2" without a month fragment must not trigger the heuristic.
		{"2 ganger i uken", FrequencyMonthly},
		// month fragment without "2"/"annenhver" must not trigger it either.
		{"mndlig rapport", FrequencyMonthly},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFrequency(tt.label))
		})
	}
}

func TestNormalizeFrequency_UnknownDefaultsToMonthly(t *testing.T) {
	tests := []string{"xyzzy", "", "   ", "hvert sekund", "fortnightly"}

	for _, label := range tests {
		t.Run("label="+label, func(t *testing.T) {
			assert.Equal(t, FrequencyMonthly, NormalizeFrequency(label))
		})
	}
}

func TestNormalizeFrequency_TotalAndDeterministic(t *testing.T) {
	labels := []string{"daglig", "xyzzy", "", "2 vær mnd", "Annual", "en gang"}

	for _, label := range labels {
		first := NormalizeFrequency(label)
		assert.True(t, first.IsValid(), "label %q produced invalid frequency %q", label, first)
		assert.Equal(t, first, NormalizeFrequency(label))
	}
}

func TestFrequencyIsValid(t *testing.T) {
	for _, f := range Frequencies() {
		assert.True(t, f.IsValid())
	}
	assert.False(t, Frequency("fortnightly").IsValid())
	assert.False(t, Frequency("").IsValid())
}
