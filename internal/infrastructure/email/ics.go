// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package email

import (
	"fmt"
	"strings"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// ICS constants for consistent values across all generated ICS files
const (
	ICSProdID         = "-//RegnskapSky//RegnskapSky Task Service//EN"
	ICALVersion       = "2.0"
	ICALScale         = "GREGORIAN"
	ICALMaxLineLength = 75 // this is arbitrarily set to 75 characters to avoid long lines
)

// ICS organizer information
const (
	OrganizerEmail = "oppgaver@regnskapsky.no"
	OrganizerName  = "RegnskapSky"
)

// UTF-8 byte masks for line folding safety
const (
	UTF8TwoBitMask         = 0xC0 // Mask to isolate first two bits (11000000)
	UTF8ContinuationPrefix = 0x80 // UTF-8 continuation byte prefix (10000000)
)

// TaskICSGenerator is the interface for generating ICS calendar files
type TaskICSGenerator interface {
	GenerateTaskReminderICS(params ICSTaskReminderParams) (string, error)
}

// ICSGenerator generates ICS (iCalendar) files for task due dates
type ICSGenerator struct{}

// NewICSGenerator creates a new ICS generator
func NewICSGenerator() *ICSGenerator {
	return &ICSGenerator{}
}

// Ensure [ICSGenerator] implements [TaskICSGenerator]
var _ TaskICSGenerator = (*ICSGenerator)(nil)

// ICSTaskReminderParams contains all the information needed to generate an ICS
// file for a task due date
type ICSTaskReminderParams struct {
	TaskUID        string // Unique task identifier for consistent ICS UID
	TaskTitle      string
	Description    string
	ClientName     string
	Frequency      models.Frequency
	DueDate        time.Time
	RecipientEmail string
	Sequence       int // ICS sequence number for calendar updates
}

// GenerateTaskReminderICS generates an ICS file for a task due date. Due
// dates are date-only, so the event is generated as an all-day event with
// a recurrence rule matching the task frequency.
func (g *ICSGenerator) GenerateTaskReminderICS(params ICSTaskReminderParams) (string, error) {
	if params.TaskUID == "" {
		return "", fmt.Errorf("task UID is required")
	}
	if params.DueDate.IsZero() {
		return "", fmt.Errorf("due date is required")
	}

	uid := params.TaskUID
	dtstamp := time.Now().UTC().Format("20060102T150405Z")

	// All-day event on the due date
	dtstart := params.DueDate.Format("20060102")
	dtend := params.DueDate.AddDate(0, 0, 1).Format("20060102")

	var ics strings.Builder

	// Calendar header
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString(fmt.Sprintf("VERSION:%s\r\n", ICALVersion))
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", ICSProdID))
	ics.WriteString(fmt.Sprintf("CALSCALE:%s\r\n", ICALScale))
	ics.WriteString("METHOD:REQUEST\r\n")

	// Event
	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", uid))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", dtstamp))
	ics.WriteString(fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s\r\n", OrganizerName, OrganizerEmail))
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", dtstart))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", dtend))

	// Add recurrence rule matching the task frequency
	rrule := generateRRule(params.Frequency)
	if rrule != "" {
		ics.WriteString(fmt.Sprintf("RRULE:%s\r\n", rrule))
	}

	// Task details
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICSText(params.TaskTitle)))

	descriptionText := params.Description
	if params.ClientName != "" {
		if descriptionText != "" {
			descriptionText += "\n\n"
		}
		descriptionText += fmt.Sprintf("Klient: %s", params.ClientName)
	}
	if descriptionText != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICSText(descriptionText)))
	}

	// Attendee
	if params.RecipientEmail != "" {
		ics.WriteString(fmt.Sprintf("ATTENDEE;CUTYPE=INDIVIDUAL;ROLE=REQ-PARTICIPANT;PARTSTAT=NEEDS-ACTION;RSVP=TRUE;CN=%s:mailto:%s\r\n",
			params.RecipientEmail, params.RecipientEmail))
	}

	// Event properties
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("CLASS:PUBLIC\r\n")
	ics.WriteString("PRIORITY:5\r\n")
	ics.WriteString(fmt.Sprintf("SEQUENCE:%d\r\n", params.Sequence))

	// Alarm the morning of the due date
	ics.WriteString("BEGIN:VALARM\r\n")
	ics.WriteString("TRIGGER:PT9H\r\n")
	ics.WriteString("ACTION:DISPLAY\r\n")
	ics.WriteString(fmt.Sprintf("DESCRIPTION:Påminnelse: %s\r\n", escapeICSText(params.TaskTitle)))
	ics.WriteString("END:VALARM\r\n")

	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String(), nil
}

// generateRRule generates a recurrence rule (RRULE) from the task frequency
func generateRRule(frequency models.Frequency) string {
	switch frequency {
	case models.FrequencyDaily:
		return "FREQ=DAILY"
	case models.FrequencyWeekly:
		return "FREQ=WEEKLY"
	case models.FrequencyMonthly:
		return "FREQ=MONTHLY"
	case models.FrequencyBiMonthly:
		return "FREQ=MONTHLY;INTERVAL=2"
	case models.FrequencyQuarterly:
		return "FREQ=MONTHLY;INTERVAL=3"
	case models.FrequencyYearly:
		return "FREQ=YEARLY"
	case models.FrequencyOnce:
		// One-off tasks don't recur
		return ""
	default:
		return ""
	}
}

// escapeICSText escapes special characters according to RFC5545
func escapeICSText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "\n", "\\n")
	text = strings.ReplaceAll(text, ",", "\\,")
	text = strings.ReplaceAll(text, ";", "\\;")

	// Fold long lines (75 characters max per line, continued lines start with space)
	return foldICSLine(text, ICALMaxLineLength)
}

// foldICSLine folds long lines according to RFC5545 (75 octets max)
func foldICSLine(line string, maxLength int) string {
	if len(line) <= maxLength {
		return line
	}

	var folded strings.Builder
	remaining := line
	first := true

	for len(remaining) > 0 {
		cutLength := maxLength
		if !first {
			cutLength = maxLength - 1 // Account for leading space on continued lines
		}

		if len(remaining) <= cutLength {
			if !first {
				folded.WriteString("\r\n ")
			}
			folded.WriteString(remaining)
			break
		}

		// Find a safe place to break (not in the middle of a UTF-8 sequence)
		breakPoint := cutLength
		for breakPoint > 0 && remaining[breakPoint-1]&UTF8TwoBitMask == UTF8ContinuationPrefix {
			breakPoint--
		}

		if !first {
			folded.WriteString("\r\n ")
		}
		folded.WriteString(remaining[:breakPoint])
		remaining = remaining[breakPoint:]
		first = false
	}

	return folded.String()
}
