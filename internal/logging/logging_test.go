// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCtx(t *testing.T) {
	t.Run("nil parent creates background context", func(t *testing.T) {
		ctx := AppendCtx(nil, slog.String("key", "value")) //nolint:staticcheck // SA1012: nil context is the case under test
		require.NotNil(t, ctx)

		attrs, ok := ctx.Value(slogFields).([]slog.Attr)
		require.True(t, ok)
		require.Len(t, attrs, 1)
		assert.Equal(t, "key", attrs[0].Key)
	})

	t.Run("appends to existing attributes", func(t *testing.T) {
		ctx := AppendCtx(context.Background(), slog.String("first", "1"))
		ctx = AppendCtx(ctx, slog.String("second", "2"))

		attrs, ok := ctx.Value(slogFields).([]slog.Attr)
		require.True(t, ok)
		require.Len(t, attrs, 2)
		assert.Equal(t, "first", attrs[0].Key)
		assert.Equal(t, "second", attrs[1].Key)
	})
}

func TestContextHandlerAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	handler := contextHandler{slog.NewJSONHandler(&buf, nil)}
	logger := slog.New(handler)

	ctx := AppendCtx(context.Background(), slog.String("task_uid", "abc-123"))
	logger.InfoContext(ctx, "processing task")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "processing task", record["msg"])
	assert.Equal(t, "abc-123", record["task_uid"])
}

func TestPriority(t *testing.T) {
	attr := Priority("high")
	assert.Equal(t, "priority", attr.Key)
	assert.Equal(t, "high", attr.Value.String())

	critical := PriorityCritical()
	assert.Equal(t, "priority", critical.Key)
	assert.Equal(t, "critical", critical.Value.String())
}
