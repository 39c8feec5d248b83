// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package models

// NATS subjects that the task service sends messages about.
const (
	// IndexTaskSubject is the subject for the task indexing.
	// The subject is of the form: regnskapsky.index.task
	IndexTaskSubject = "regnskapsky.index.task"

	// IndexClientSubject is the subject for the client indexing.
	// The subject is of the form: regnskapsky.index.client
	IndexClientSubject = "regnskapsky.index.client"

	// UpdateAccessTaskSubject is the subject for the task access control updates.
	// The subject is of the form: regnskapsky.update_access.task
	UpdateAccessTaskSubject = "regnskapsky.update_access.task"

	// DeleteAllAccessTaskSubject is the subject for the task access control deletion.
	// The subject is of the form: regnskapsky.delete_all_access.task
	DeleteAllAccessTaskSubject = "regnskapsky.delete_all_access.task"

	// UpdateAccessClientSubject is the subject for the client access control updates.
	// The subject is of the form: regnskapsky.update_access.client
	UpdateAccessClientSubject = "regnskapsky.update_access.client"

	// DeleteAllAccessClientSubject is the subject for the client access control deletion.
	// The subject is of the form: regnskapsky.delete_all_access.client
	DeleteAllAccessClientSubject = "regnskapsky.delete_all_access.client"
)

// NATS wildcard subjects that the task service handles messages about.
const (
	// TasksAPIQueue is the queue name for the tasks API.
	// The queue is of the form: regnskapsky.tasks-api.queue
	TasksAPIQueue = "regnskapsky.tasks-api.queue"
)

// NATS specific subjects that the task service handles messages about.
const (
	// TaskGetTitleSubject is the subject for the task get title request.
	// The subject is of the form: regnskapsky.tasks-api.get_title
	TaskGetTitleSubject = "regnskapsky.tasks-api.get_title"

	// ClientDeletedSubject is the subject for client deletion events.
	// The subject is of the form: regnskapsky.tasks-api.client_deleted
	ClientDeletedSubject = "regnskapsky.tasks-api.client_deleted"
)

// MessageAction is a type for the action of a resource message.
type MessageAction string

// MessageAction constants for the action of a resource message.
const (
	// ActionCreated is the action for a resource creation message.
	ActionCreated MessageAction = "created"
	// ActionUpdated is the action for a resource update message.
	ActionUpdated MessageAction = "updated"
	// ActionDeleted is the action for a resource deletion message.
	ActionDeleted MessageAction = "deleted"
)

// TaskIndexerMessage is a NATS message schema for sending messages related to
// task and client CRUD operations to the search indexer.
type TaskIndexerMessage struct {
	Action  MessageAction     `json:"action"`
	Headers map[string]string `json:"headers"`
	Data    any               `json:"data"`
	// Tags is a list of tags to be set on the indexed resource for search.
	Tags []string `json:"tags"`
}

// TaskAccessMessage is the schema for the data in the message sent to the
// permission-sync consumer. These are the fields it needs in order to update
// row-level permissions for a task.
type TaskAccessMessage struct {
	UID        string `json:"uid"`
	LicenseUID string `json:"license_uid"`
	ClientUID  string `json:"client_uid"`
	Assignee   string `json:"assignee,omitempty"`
}

// ClientAccessMessage is the schema for the data in the message sent to the
// permission-sync consumer for client resources.
type ClientAccessMessage struct {
	UID        string `json:"uid"`
	LicenseUID string `json:"license_uid"`
}

// ClientDeletedMessage is the schema for the message sent when a client is
// deleted. It is used internally to trigger cleanup of the client's tasks.
type ClientDeletedMessage struct {
	ClientUID  string `json:"client_uid"`
	LicenseUID string `json:"license_uid"`
}
