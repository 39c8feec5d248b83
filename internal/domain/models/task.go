// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package models

import (
	"time"
)

// Task statuses.
const (
	TaskStatusOpen   = "open"
	TaskStatusPaused = "paused"
	TaskStatusDone   = "done"
)

// Task is the key-value store representation of a recurring client task.
type Task struct {
	UID            string     `json:"uid"`
	LicenseUID     string     `json:"license_uid"`
	ClientUID      string     `json:"client_uid"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	FrequencyLabel string     `json:"frequency_label,omitempty"`
	Frequency      Frequency  `json:"frequency"`
	StartDate      time.Time  `json:"start_date"`
	NextDue        *time.Time `json:"next_due,omitempty"`
	AssigneeEmail  string     `json:"assignee_email,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// TaskOccurrence is a single computed due date of a recurring task.
type TaskOccurrence struct {
	TaskUID string    `json:"task_uid"`
	DueDate time.Time `json:"due_date"`
}

// Tags generates a list of tags for the task used by the search indexer.
func (t *Task) Tags() []string {
	var tags []string

	if t == nil {
		return nil
	}

	if t.UID != "" {
		tags = append(tags, t.UID)
	}
	if t.LicenseUID != "" {
		tags = append(tags, t.LicenseUID)
	}
	if t.ClientUID != "" {
		tags = append(tags, t.ClientUID)
	}
	if t.Title != "" {
		tags = append(tags, t.Title)
	}
	if t.Frequency != "" {
		tags = append(tags, string(t.Frequency))
	}
	if t.Status != "" {
		tags = append(tags, t.Status)
	}

	return tags
}

// IsOpen reports whether the task is eligible for scheduling and reminders.
func (t *Task) IsOpen() bool {
	return t != nil && t.Status == TaskStatusOpen
}
