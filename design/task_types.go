// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package design

import (
	. "goa.design/goa/v3/dsl" //nolint:staticcheck // ST1001: the recommended way of using the goa DSL package is with the . import
)

// TaskUIDAttribute is the unique identifier of a task.
func TaskUIDAttribute() {
	Attribute("uid", String, "The unique identifier of the task", func() {
		Example("7cad5a8d-19d0-41a4-81a6-043453daf9ee")
		Format(FormatUUID)
	})
}

// ClientUIDAttribute is the identifier of the client a task belongs to.
func ClientUIDAttribute() {
	Attribute("client_uid", String, "The unique identifier of the client", func() {
		Example("a33899b0-0b48-4d0c-a915-6a0b4b2a8b59")
		Format(FormatUUID)
	})
}

// TitleAttribute is the title of a task.
func TitleAttribute() {
	Attribute("title", String, "The title of the task", func() {
		Example("MVA-melding")
		MaxLength(200)
	})
}

// DescriptionAttribute is the free-text description of a task.
func DescriptionAttribute() {
	Attribute("description", String, "The description of the task", func() {
		Example("Levere MVA-melding for termin")
		MaxLength(2000)
	})
}

// FrequencyLabelAttribute is the user-supplied frequency wording.
func FrequencyLabelAttribute() {
	Attribute("frequency_label", String, "The frequency as written by the user, in Norwegian or English", func() {
		Example("annenhver måned")
	})
}

// FrequencyAttribute is the canonical frequency of a task.
func FrequencyAttribute() {
	// Read-only attribute: resolved from the frequency label.
	Attribute("frequency", String, "The canonical frequency of the task", func() {
		Enum("daily", "weekly", "monthly", "bi-monthly", "quarterly", "yearly", "once")
		Example("bi-monthly")
	})
}

// StartDateAttribute is the anchor date of the task schedule.
func StartDateAttribute() {
	Attribute("start_date", String, "The start date anchoring the task schedule", func() {
		Example("2024-01-15T00:00:00Z")
		Format(FormatDateTime)
	})
}

// NextDueAttribute is the next computed due date of a task.
func NextDueAttribute() {
	// Read-only attribute: computed from the frequency and start date.
	Attribute("next_due", String, "The next due date of the task", func() {
		Example("2024-03-15T00:00:00Z")
		Format(FormatDateTime)
	})
}

// AssigneeEmailAttribute is the email of the accountant responsible for a task.
func AssigneeEmailAttribute() {
	Attribute("assignee_email", String, "The email of the accountant responsible for the task", func() {
		Example("kari@fjordvik.no")
		Format(FormatEmail)
	})
}

// TaskStatusAttribute is the status of a task.
func TaskStatusAttribute() {
	Attribute("status", String, "The status of the task", func() {
		Enum("open", "paused", "done")
		Default("open")
		Example("open")
	})
}

// CreateTaskPayload represents the payload for creating a task.
var CreateTaskPayload = Type("CreateTaskPayload", func() {
	Description("Payload for creating a new recurring task")
	ClientUIDAttribute()
	TitleAttribute()
	DescriptionAttribute()
	FrequencyLabelAttribute()
	StartDateAttribute()
	AssigneeEmailAttribute()
	TaskStatusAttribute()
	Required("client_uid", "title", "start_date")
})

// Task is the DSL type for a recurring client task.
var Task = Type("Task", func() {
	Description("A recurring task for an accounting-firm client.")
	TaskUIDAttribute()
	ClientUIDAttribute()
	TitleAttribute()
	DescriptionAttribute()
	FrequencyLabelAttribute()
	FrequencyAttribute()
	StartDateAttribute()
	NextDueAttribute()
	AssigneeEmailAttribute()
	TaskStatusAttribute()
	CreatedAtAttribute()
	UpdatedAtAttribute()
})

// TaskOccurrence is the DSL type for a computed due date of a task.
var TaskOccurrence = Type("TaskOccurrence", func() {
	Description("A single computed due date of a recurring task.")
	Attribute("task_uid", String, "The unique identifier of the task", func() {
		Example("7cad5a8d-19d0-41a4-81a6-043453daf9ee")
		Format(FormatUUID)
	})
	Attribute("due_date", String, "The computed due date", func() {
		Example("2024-03-15T00:00:00Z")
		Format(FormatDateTime)
	})
	Required("task_uid", "due_date")
})
