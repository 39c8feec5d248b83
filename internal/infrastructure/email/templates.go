// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

// Package email contains the SMTP delivery and template rendering for task
// reminder emails.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

//go:embed templates/*
var templateFS embed.FS

// RenderedEmail holds both HTML and text versions of a rendered email
type RenderedEmail struct {
	HTML string
	Text string
}

// TaskTemplateManager defines the interface for rendering task email templates
type TaskTemplateManager interface {
	RenderTaskReminder(data domain.EmailTaskReminder) (*RenderedEmail, error)
}

// TemplateManager is the default implementation of TaskTemplateManager
type TemplateManager struct {
	templates Templates
}

// NewTemplateManager creates a new template manager with all templates loaded
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{}

	// Define all templates to load
	templateConfigs := map[string]templateConfig{
		"reminderHTML": {"task_reminder.html", "templates/task_reminder.html"},
		"reminderText": {"task_reminder.txt", "templates/task_reminder.txt"},
	}

	// Load all templates
	loadedTemplates := make(map[string]*template.Template)
	for key, cfg := range templateConfigs {
		tmpl, err := loadTemplate(cfg)
		if err != nil {
			return nil, err
		}
		loadedTemplates[key] = tmpl
	}

	tm.templates = Templates{
		Task: TaskTemplates{
			Reminder: TemplateSet{
				HTML: loadedTemplates["reminderHTML"],
				Text: loadedTemplates["reminderText"],
			},
		},
	}

	return tm, nil
}

// Ensure TemplateManager implements TaskTemplateManager
var _ TaskTemplateManager = (*TemplateManager)(nil)

// RenderTaskReminder renders a task reminder email with both HTML and text versions
func (tm *TemplateManager) RenderTaskReminder(data domain.EmailTaskReminder) (*RenderedEmail, error) {
	html, err := renderTemplate(tm.templates.Task.Reminder.HTML, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render reminder HTML: %w", err)
	}

	text, err := renderTemplate(tm.templates.Task.Reminder.Text, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render reminder text: %w", err)
	}

	return &RenderedEmail{HTML: html, Text: text}, nil
}

// TemplateSet holds HTML and text versions of a template
type TemplateSet struct {
	HTML *template.Template
	Text *template.Template
}

// TaskTemplates holds all task-related templates
type TaskTemplates struct {
	Reminder TemplateSet
}

// Templates holds all template categories
type Templates struct {
	Task TaskTemplates
}

// templateConfig defines a template to be loaded
type templateConfig struct {
	name string
	path string
}

// loadTemplate loads a single template with the shared function map
func loadTemplate(config templateConfig) (*template.Template, error) {
	tmpl, err := template.New(config.name).Funcs(template.FuncMap{
		"formatDate":         formatDate,
		"formatFrequency":    formatFrequency,
		"capitalize":         capitalize,
		"newLineToBreakLine": newLineToBreakLine,
	}).ParseFS(templateFS, config.path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", config.name, err)
	}
	return tmpl, nil
}

// renderTemplate renders any template with the provided data
func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatDate formats a due date for display in emails.
// Example: mandag 15. januar 2024
func formatDate(t time.Time) string {
	weekdays := map[time.Weekday]string{
		time.Sunday:    "søndag",
		time.Monday:    "mandag",
		time.Tuesday:   "tirsdag",
		time.Wednesday: "onsdag",
		time.Thursday:  "torsdag",
		time.Friday:    "fredag",
		time.Saturday:  "lørdag",
	}
	months := map[time.Month]string{
		time.January:   "januar",
		time.February:  "februar",
		time.March:     "mars",
		time.April:     "april",
		time.May:       "mai",
		time.June:      "juni",
		time.July:      "juli",
		time.August:    "august",
		time.September: "september",
		time.October:   "oktober",
		time.November:  "november",
		time.December:  "desember",
	}

	return fmt.Sprintf("%s %d. %s %d",
		weekdays[t.Weekday()],
		t.Day(),
		months[t.Month()],
		t.Year())
}

// formatFrequency formats a canonical frequency for display in emails.
func formatFrequency(frequency models.Frequency) string {
	switch frequency {
	case models.FrequencyDaily:
		return "Daglig"
	case models.FrequencyWeekly:
		return "Ukentlig"
	case models.FrequencyMonthly:
		return "Månedlig"
	case models.FrequencyBiMonthly:
		return "Annenhver måned"
	case models.FrequencyQuarterly:
		return "Kvartalsvis"
	case models.FrequencyYearly:
		return "Årlig"
	case models.FrequencyOnce:
		return "Engangsoppgave"
	default:
		return string(frequency)
	}
}

// capitalize capitalizes the first letter of a string
func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// newLineToBreakLine converts newlines to HTML break tags for proper email formatting
func newLineToBreakLine(s string) template.HTML {
	// Replace newlines with <br> tags
	escaped := template.HTMLEscapeString(s)
	replaced := strings.ReplaceAll(escaped, "\n", "<br>")
	// Return as template.HTML to prevent double escaping
	return template.HTML(replaced)
}
