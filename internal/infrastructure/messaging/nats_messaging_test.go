// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/constants"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
	"github.com/stretchr/testify/mock"
)

// MockNATSConn is a mock NATS connection for testing.
type MockNATSConn struct {
	mock.Mock
}

func (m *MockNATSConn) IsConnected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockNATSConn) Publish(subj string, data []byte) error {
	args := m.Called(subj, data)
	return args.Error(0)
}

func TestMessageBuilder_sendMessage(t *testing.T) {
	tests := []struct {
		name         string
		publishError error
		subject      string
		data         []byte
		expectError  bool
	}{
		{
			name:         "successful send",
			publishError: nil,
			subject:      "test.subject",
			data:         []byte("test data"),
			expectError:  false,
		},
		{
			name:         "publish error",
			publishError: errors.New("publish failed"),
			subject:      "test.subject",
			data:         []byte("test data"),
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockConn := new(MockNATSConn)
			mockConn.On("Publish", tt.subject, tt.data).Return(tt.publishError)

			builder := &MessageBuilder{
				NatsConn: mockConn,
			}

			ctx := context.Background()
			err := builder.sendMessage(ctx, tt.subject, tt.data)

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error but got: %v", err)
			}

			mockConn.AssertExpectations(t)
		})
	}
}

func TestMessageBuilder_sendIndexerMessage(t *testing.T) {
	t.Run("send created action with authorization", func(t *testing.T) {
		mockConn := new(MockNATSConn)

		// Use mock.MatchedBy to capture and verify the published message
		mockConn.On("Publish", "test.subject", mock.MatchedBy(func(data []byte) bool {
			var indexerMsg models.TaskIndexerMessage
			err := json.Unmarshal(data, &indexerMsg)
			if err != nil {
				t.Errorf("failed to unmarshal message: %v", err)
				return false
			}

			if indexerMsg.Action != models.ActionCreated {
				t.Errorf("expected action %v, got %v", models.ActionCreated, indexerMsg.Action)
				return false
			}
			if indexerMsg.Headers[constants.AuthorizationHeader] != "Bearer test-token" {
				t.Errorf("expected authorization header %q, got %q", "Bearer test-token", indexerMsg.Headers[constants.AuthorizationHeader])
				return false
			}
			if indexerMsg.Headers[constants.XOnBehalfOfHeader] != "test-user" {
				t.Errorf("expected on-behalf-of header %q, got %q", "test-user", indexerMsg.Headers[constants.XOnBehalfOfHeader])
				return false
			}
			if len(indexerMsg.Tags) != 2 {
				t.Errorf("expected 2 tags, got %d", len(indexerMsg.Tags))
				return false
			}
			return true
		})).Return(nil)

		builder := &MessageBuilder{
			NatsConn: mockConn,
		}

		ctx := context.WithValue(context.Background(), constants.AuthorizationContextID, "Bearer test-token")
		ctx = context.WithValue(ctx, constants.PrincipalContextID, "test-user")

		data := map[string]string{"uid": "task-123", "title": "MVA-melding"}
		dataBytes, _ := json.Marshal(data)
		tags := []string{"tag1", "tag2"}

		err := builder.sendIndexerMessage(ctx, "test.subject", models.ActionCreated, dataBytes, tags)
		if err != nil {
			t.Errorf("expected no error, got: %v", err)
		}

		mockConn.AssertExpectations(t)
	})

	t.Run("send deleted action without authorization", func(t *testing.T) {
		mockConn := new(MockNATSConn)
		uid := "task-123"

		mockConn.On("Publish", "test.subject", mock.MatchedBy(func(data []byte) bool {
			var indexerMsg models.TaskIndexerMessage
			err := json.Unmarshal(data, &indexerMsg)
			if err != nil {
				t.Errorf("failed to unmarshal message: %v", err)
				return false
			}

			if indexerMsg.Action != models.ActionDeleted {
				t.Errorf("expected action %v, got %v", models.ActionDeleted, indexerMsg.Action)
				return false
			}
			// Should have fallback authorization for system-generated events
			if indexerMsg.Headers[constants.AuthorizationHeader] != "Bearer tasks-api" {
				t.Errorf("expected fallback authorization header %q, got %q", "Bearer tasks-api", indexerMsg.Headers[constants.AuthorizationHeader])
				return false
			}
			// Payload should be the UID string
			if dataStr, ok := indexerMsg.Data.(string); !ok || dataStr != uid {
				t.Errorf("expected data %q, got %v", uid, indexerMsg.Data)
				return false
			}
			return true
		})).Return(nil)

		builder := &MessageBuilder{
			NatsConn: mockConn,
		}

		ctx := context.Background()
		tags := []string{"task_uid:task-123"}

		err := builder.sendIndexerMessage(ctx, "test.subject", models.ActionDeleted, []byte(uid), tags)
		if err != nil {
			t.Errorf("expected no error, got: %v", err)
		}

		mockConn.AssertExpectations(t)
	})

	t.Run("send with invalid JSON data", func(t *testing.T) {
		mockConn := new(MockNATSConn)
		// No publish expected for invalid JSON

		builder := &MessageBuilder{
			NatsConn: mockConn,
		}

		ctx := context.Background()
		invalidJSON := []byte("{invalid json")
		tags := []string{"tag1"}

		err := builder.sendIndexerMessage(ctx, "test.subject", models.ActionCreated, invalidJSON, tags)
		if err == nil {
			t.Error("expected error for invalid JSON, got nil")
		}

		mockConn.AssertExpectations(t)
	})

	t.Run("send with publish error", func(t *testing.T) {
		expectedErr := errors.New("publish failed")
		mockConn := new(MockNATSConn)
		mockConn.On("Publish", "test.subject", mock.Anything).Return(expectedErr)

		builder := &MessageBuilder{
			NatsConn: mockConn,
		}

		ctx := context.Background()
		data := map[string]string{"uid": "task-123"}
		dataBytes, _ := json.Marshal(data)
		tags := []string{"tag1"}

		err := builder.sendIndexerMessage(ctx, "test.subject", models.ActionCreated, dataBytes, tags)
		if err == nil {
			t.Error("expected publish error, got nil")
		}

		mockConn.AssertExpectations(t)
	})
}

func TestMessageBuilder_SendIndexTask(t *testing.T) {
	mockConn := new(MockNATSConn)
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	task := models.Task{
		UID:            "task-123",
		LicenseUID:     "license-1",
		ClientUID:      "client-1",
		Title:          "MVA-melding",
		FrequencyLabel: "Månedlig",
		Frequency:      models.FrequencyMonthly,
		StartDate:      start,
		Status:         models.TaskStatusOpen,
		CreatedAt:      utils.TimePtr(start),
	}

	mockConn.On("Publish", models.IndexTaskSubject, mock.MatchedBy(func(data []byte) bool {
		var indexerMsg models.TaskIndexerMessage
		if err := json.Unmarshal(data, &indexerMsg); err != nil {
			return false
		}
		payload, ok := indexerMsg.Data.(map[string]any)
		if !ok {
			t.Errorf("expected map payload, got %T", indexerMsg.Data)
			return false
		}
		if payload["uid"] != "task-123" {
			t.Errorf("expected payload uid %q, got %v", "task-123", payload["uid"])
			return false
		}
		if payload["frequency"] != "monthly" {
			t.Errorf("expected payload frequency %q, got %v", "monthly", payload["frequency"])
			return false
		}
		return indexerMsg.Action == models.ActionCreated
	})).Return(nil)

	builder := &MessageBuilder{NatsConn: mockConn}

	err := builder.SendIndexTask(context.Background(), models.ActionCreated, task)
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	mockConn.AssertExpectations(t)
}

func TestMessageBuilder_SendDeleteIndexTask(t *testing.T) {
	mockConn := new(MockNATSConn)
	mockConn.On("Publish", models.IndexTaskSubject, mock.MatchedBy(func(data []byte) bool {
		var indexerMsg models.TaskIndexerMessage
		if err := json.Unmarshal(data, &indexerMsg); err != nil {
			return false
		}
		dataStr, ok := indexerMsg.Data.(string)
		return ok && dataStr == "task-123" && indexerMsg.Action == models.ActionDeleted
	})).Return(nil)

	builder := &MessageBuilder{NatsConn: mockConn}

	err := builder.SendDeleteIndexTask(context.Background(), "task-123")
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	mockConn.AssertExpectations(t)
}

func TestMessageBuilder_SendIndexClient(t *testing.T) {
	mockConn := new(MockNATSConn)
	client := models.Client{
		UID:        "client-1",
		LicenseUID: "license-1",
		Name:       "Fjordvik AS",
		OrgNumber:  "987654321",
	}

	mockConn.On("Publish", models.IndexClientSubject, mock.MatchedBy(func(data []byte) bool {
		var indexerMsg models.TaskIndexerMessage
		if err := json.Unmarshal(data, &indexerMsg); err != nil {
			return false
		}
		payload, ok := indexerMsg.Data.(map[string]any)
		return ok && payload["name"] == "Fjordvik AS" && indexerMsg.Action == models.ActionUpdated
	})).Return(nil)

	builder := &MessageBuilder{NatsConn: mockConn}

	err := builder.SendIndexClient(context.Background(), models.ActionUpdated, client)
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	mockConn.AssertExpectations(t)
}

func TestMessageBuilder_SendUpdateAccessTask(t *testing.T) {
	mockConn := new(MockNATSConn)
	access := models.TaskAccessMessage{
		UID:        "task-123",
		LicenseUID: "license-1",
		ClientUID:  "client-1",
		Assignee:   "kari@fjordvik.no",
	}

	mockConn.On("Publish", models.UpdateAccessTaskSubject, mock.MatchedBy(func(data []byte) bool {
		var msg models.TaskAccessMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return false
		}
		return msg == access
	})).Return(nil)

	builder := &MessageBuilder{NatsConn: mockConn}

	err := builder.SendUpdateAccessTask(context.Background(), access)
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	mockConn.AssertExpectations(t)
}

func TestMessageBuilder_SendDeleteAllAccessTask(t *testing.T) {
	mockConn := new(MockNATSConn)
	mockConn.On("Publish", models.DeleteAllAccessTaskSubject, []byte("task-123")).Return(nil)

	builder := &MessageBuilder{NatsConn: mockConn}

	err := builder.SendDeleteAllAccessTask(context.Background(), "task-123")
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	mockConn.AssertExpectations(t)
}

func TestMessageBuilder_SendClientDeleted(t *testing.T) {
	mockConn := new(MockNATSConn)
	event := models.ClientDeletedMessage{
		ClientUID:  "client-1",
		LicenseUID: "license-1",
	}

	mockConn.On("Publish", models.ClientDeletedSubject, mock.MatchedBy(func(data []byte) bool {
		var msg models.ClientDeletedMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return false
		}
		return msg == event
	})).Return(nil)

	builder := &MessageBuilder{NatsConn: mockConn}

	err := builder.SendClientDeleted(context.Background(), event)
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	mockConn.AssertExpectations(t)
}
