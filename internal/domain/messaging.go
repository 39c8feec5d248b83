// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// Message represents a domain message interface
type Message interface {
	Subject() string
	Data() []byte
	Respond(data []byte) error
	HasReply() bool
}

// MessageHandler defines how the service handles incoming messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg Message)
	HandlerReady() bool
}

// TaskIndexSender handles indexing operations for tasks.
type TaskIndexSender interface {
	SendIndexTask(ctx context.Context, action models.MessageAction, data models.Task) error
	SendDeleteIndexTask(ctx context.Context, data string) error
}

// ClientIndexSender handles indexing operations for clients.
type ClientIndexSender interface {
	SendIndexClient(ctx context.Context, action models.MessageAction, data models.Client) error
	SendDeleteIndexClient(ctx context.Context, data string) error
}

// TaskAccessSender handles access control operations for tasks.
type TaskAccessSender interface {
	SendUpdateAccessTask(ctx context.Context, data models.TaskAccessMessage) error
	SendDeleteAllAccessTask(ctx context.Context, data string) error
}

// ClientAccessSender handles access control operations for clients.
type ClientAccessSender interface {
	SendUpdateAccessClient(ctx context.Context, data models.ClientAccessMessage) error
	SendDeleteAllAccessClient(ctx context.Context, data string) error
}

// ClientDeletedSender publishes the internal cleanup event emitted when a
// client is removed.
type ClientDeletedSender interface {
	SendClientDeleted(ctx context.Context, data models.ClientDeletedMessage) error
}

// TaskMessageSender aggregates all messaging operations the task service needs.
type TaskMessageSender interface {
	TaskIndexSender
	TaskAccessSender
}

// ClientMessageSender aggregates all messaging operations the client service needs.
type ClientMessageSender interface {
	ClientIndexSender
	ClientAccessSender
	ClientDeletedSender
}
