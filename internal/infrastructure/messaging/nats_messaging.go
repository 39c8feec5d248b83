// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

// Package messaging contains the NATS message publishing for the task service.
package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/constants"
	"github.com/go-viper/mapstructure/v2"
)

// INatsConn is a NATS connection interface needed for publishing.
type INatsConn interface {
	IsConnected() bool
	Publish(subj string, data []byte) error
}

// MessageBuilder builds messages and sends them to the NATS server.
type MessageBuilder struct {
	NatsConn INatsConn
}

// NewMessageBuilder creates a new MessageBuilder.
func NewMessageBuilder(natsConn INatsConn) *MessageBuilder {
	return &MessageBuilder{
		NatsConn: natsConn,
	}
}

var (
	_ domain.TaskMessageSender   = (*MessageBuilder)(nil)
	_ domain.ClientMessageSender = (*MessageBuilder)(nil)
)

// sendMessage sends the message to the NATS server.
func (m *MessageBuilder) sendMessage(ctx context.Context, subject string, data []byte) error {
	err := m.NatsConn.Publish(subject, data)
	if err != nil {
		slog.ErrorContext(ctx, "error sending message to NATS", logging.ErrKey, err, "subject", subject)
		return err
	}
	slog.DebugContext(ctx, "sent message to NATS", "subject", subject)
	return nil
}

// sendIndexerMessage sends the message to the NATS server for the indexer.
func (m *MessageBuilder) sendIndexerMessage(ctx context.Context, subject string, action models.MessageAction, data []byte, tags []string) error {
	headers := make(map[string]string)
	if authorization, ok := ctx.Value(constants.AuthorizationContextID).(string); ok {
		headers[constants.AuthorizationHeader] = authorization
	} else {
		// Fallback for system-generated events (reminder sweeps, cascade
		// cleanup) that don't have user auth context. The indexer requires
		// an authorization header to process the message.
		headers[constants.AuthorizationHeader] = "Bearer tasks-api"
	}
	if principal, ok := ctx.Value(constants.PrincipalContextID).(string); ok {
		headers[constants.XOnBehalfOfHeader] = principal
	}

	var payload any
	switch action {
	case models.ActionCreated, models.ActionUpdated:
		// The data should be a JSON object.
		var jsonData any
		if err := json.Unmarshal(data, &jsonData); err != nil {
			slog.ErrorContext(ctx, "error unmarshalling data into JSON", logging.ErrKey, err, "subject", subject)
			return err
		}

		// Decode the JSON data into a map[string]any since that is what the indexer expects.
		config := mapstructure.DecoderConfig{
			TagName: "json",
			Result:  &payload,
		}
		decoder, err := mapstructure.NewDecoder(&config)
		if err != nil {
			slog.ErrorContext(ctx, "error creating decoder", logging.ErrKey, err, "subject", subject)
			return err
		}
		err = decoder.Decode(jsonData)
		if err != nil {
			slog.ErrorContext(ctx, "error decoding data", logging.ErrKey, err, "subject", subject)
			return err
		}
	case models.ActionDeleted:
		// The data should just be a string of the UID being deleted.
		payload = string(data)
	}

	message := models.TaskIndexerMessage{
		Action:  action,
		Headers: headers,
		Data:    payload,
		Tags:    tags,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message into JSON", logging.ErrKey, err, "subject", subject)
		return err
	}

	slog.DebugContext(ctx, "constructed indexer message",
		"subject", subject,
		"action", action,
		"tags_count", len(tags),
	)

	return m.sendMessage(ctx, subject, messageBytes)
}

// sendAccessMessage marshals an access control payload and sends it.
func (m *MessageBuilder) sendAccessMessage(ctx context.Context, subject string, data any) error {
	messageBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling access message into JSON", logging.ErrKey, err, "subject", subject)
		return err
	}
	return m.sendMessage(ctx, subject, messageBytes)
}

// SendIndexTask sends the message to the NATS server for the task indexing.
func (m *MessageBuilder) SendIndexTask(ctx context.Context, action models.MessageAction, data models.Task) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendIndexerMessage(ctx, models.IndexTaskSubject, action, dataBytes, data.Tags())
}

// SendDeleteIndexTask sends the message to the NATS server to remove a task
// from the index.
func (m *MessageBuilder) SendDeleteIndexTask(ctx context.Context, data string) error {
	return m.sendIndexerMessage(ctx, models.IndexTaskSubject, models.ActionDeleted, []byte(data), nil)
}

// SendIndexClient sends the message to the NATS server for the client indexing.
func (m *MessageBuilder) SendIndexClient(ctx context.Context, action models.MessageAction, data models.Client) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendIndexerMessage(ctx, models.IndexClientSubject, action, dataBytes, data.Tags())
}

// SendDeleteIndexClient sends the message to the NATS server to remove a
// client from the index.
func (m *MessageBuilder) SendDeleteIndexClient(ctx context.Context, data string) error {
	return m.sendIndexerMessage(ctx, models.IndexClientSubject, models.ActionDeleted, []byte(data), nil)
}

// SendUpdateAccessTask sends the message for task access control updates.
func (m *MessageBuilder) SendUpdateAccessTask(ctx context.Context, data models.TaskAccessMessage) error {
	return m.sendAccessMessage(ctx, models.UpdateAccessTaskSubject, data)
}

// SendDeleteAllAccessTask sends the message for task access control deletion.
func (m *MessageBuilder) SendDeleteAllAccessTask(ctx context.Context, data string) error {
	return m.sendMessage(ctx, models.DeleteAllAccessTaskSubject, []byte(data))
}

// SendUpdateAccessClient sends the message for client access control updates.
func (m *MessageBuilder) SendUpdateAccessClient(ctx context.Context, data models.ClientAccessMessage) error {
	return m.sendAccessMessage(ctx, models.UpdateAccessClientSubject, data)
}

// SendDeleteAllAccessClient sends the message for client access control deletion.
func (m *MessageBuilder) SendDeleteAllAccessClient(ctx context.Context, data string) error {
	return m.sendMessage(ctx, models.DeleteAllAccessClientSubject, []byte(data))
}

// SendClientDeleted sends the internal cleanup event for a deleted client.
func (m *MessageBuilder) SendClientDeleted(ctx context.Context, data models.ClientDeletedMessage) error {
	messageBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling client deleted message into JSON", logging.ErrKey, err)
		return err
	}
	return m.sendMessage(ctx, models.ClientDeletedSubject, messageBytes)
}
