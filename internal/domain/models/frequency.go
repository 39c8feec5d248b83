// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package models

import "strings"

// Frequency is the canonical recurrence vocabulary that all scheduling logic
// operates on, independent of the language or spelling the label was
// originally entered in.
type Frequency string

// Canonical frequency values.
const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyBiMonthly Frequency = "bi-monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOnce      Frequency = "once"
)

// Frequencies lists all canonical frequency values.
func Frequencies() []Frequency {
	return []Frequency{
		FrequencyDaily,
		FrequencyWeekly,
		FrequencyMonthly,
		FrequencyBiMonthly,
		FrequencyQuarterly,
		FrequencyYearly,
		FrequencyOnce,
	}
}

// IsValid reports whether f is one of the canonical frequency values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyBiMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyOnce:
		return true
	}
	return false
}

// nbFrequencies maps Norwegian frequency labels, including known misspellings
// seen in imported client data, to canonical values.
var nbFrequencies = map[string]Frequency{
	"daglig":          FrequencyDaily,
	"løpende":         FrequencyDaily,
	"ukentlig":        FrequencyWeekly,
	"månedlig":        FrequencyMonthly,
	"maanedlig":       FrequencyMonthly,
	"mnd":             FrequencyMonthly,
	"annenhver måned": FrequencyBiMonthly,
	"annenhver mnd":   FrequencyBiMonthly,
	"2 hver mnd":      FrequencyBiMonthly,
	"2 vær mnd":       FrequencyBiMonthly,
	"kvartalsvis":     FrequencyQuarterly,
	"årlig":           FrequencyYearly,
	"aarlig":          FrequencyYearly,
	"engangs":         FrequencyOnce,
	"engang":          FrequencyOnce,
	"spesifikk dato":  FrequencyOnce,
	"bestemt dato":    FrequencyOnce,
}

// enFrequencies maps English frequency aliases to canonical values.
var enFrequencies = map[string]Frequency{
	"daily":         FrequencyDaily,
	"day":           FrequencyDaily,
	"weekly":        FrequencyWeekly,
	"week":          FrequencyWeekly,
	"monthly":       FrequencyMonthly,
	"month":         FrequencyMonthly,
	"bi-monthly":    FrequencyBiMonthly,
	"bimonthly":     FrequencyBiMonthly,
	"quarterly":     FrequencyQuarterly,
	"yearly":        FrequencyYearly,
	"annual":        FrequencyYearly,
	"once":          FrequencyOnce,
	"specific_date": FrequencyOnce,
}

// NormalizeFrequency converts a free-text frequency label into exactly one
// canonical Frequency. It tolerates Norwegian and English labels and known
// misspellings, and never fails: an unrecognized label falls back to
// monthly, which is the most common recurrence for accounting engagements
// and a safer guess than weekly for an unrecognized "daglig"-like term.
func NormalizeFrequency(label string) Frequency {
	normalized := strings.ToLower(strings.TrimSpace(label))

	if frequency, ok := nbFrequencies[normalized]; ok {
		return frequency
	}
	if frequency, ok := enFrequencies[normalized]; ok {
		return frequency
	}

	// Heuristic for bi-monthly phrasings not covered by the tables, e.g.
	// "2 hver måned" or "annenhver mnd.".
	if strings.Contains(normalized, "2") || strings.Contains(normalized, "annenhver") {
		if strings.Contains(normalized, "mån") || strings.Contains(normalized, "mnd") {
			return FrequencyBiMonthly
		}
	}

	return FrequencyMonthly
}
