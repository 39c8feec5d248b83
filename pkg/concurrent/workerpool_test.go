// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerPool(t *testing.T) {
	tests := []struct {
		name        string
		workerCount int
		expected    int
	}{
		{name: "positive worker count", workerCount: 4, expected: 4},
		{name: "zero defaults to one", workerCount: 0, expected: 1},
		{name: "negative defaults to one", workerCount: -3, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workerCount)
			require.NotNil(t, pool)
			assert.Equal(t, tt.expected, pool.workerCount)
		})
	}
}

func TestWorkerPool_Run(t *testing.T) {
	t.Run("runs all functions", func(t *testing.T) {
		pool := NewWorkerPool(3)
		var counter atomic.Int32

		functions := make([]func() error, 10)
		for i := range functions {
			functions[i] = func() error {
				counter.Add(1)
				return nil
			}
		}

		err := pool.Run(context.Background(), functions...)
		require.NoError(t, err)
		assert.Equal(t, int32(10), counter.Load())
	})

	t.Run("no functions is a no-op", func(t *testing.T) {
		pool := NewWorkerPool(2)
		assert.NoError(t, pool.Run(context.Background()))
	})

	t.Run("returns first error", func(t *testing.T) {
		pool := NewWorkerPool(1)
		wantErr := errors.New("publish failed")

		err := pool.Run(context.Background(),
			func() error { return nil },
			func() error { return wantErr },
		)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("cancelled context stops pending work", func(t *testing.T) {
		pool := NewWorkerPool(1)
		ctx, cancel := context.WithCancel(context.Background())

		var ran atomic.Int32
		err := pool.Run(ctx,
			func() error {
				cancel()
				time.Sleep(10 * time.Millisecond)
				return nil
			},
			func() error {
				ran.Add(1)
				return nil
			},
		)
		require.Error(t, err)
		assert.Equal(t, int32(0), ran.Load())
	})
}

func TestWorkerPool_RunAll(t *testing.T) {
	t.Run("collects all errors without cancelling", func(t *testing.T) {
		pool := NewWorkerPool(2)
		wantErr := errors.New("send failed")
		var counter atomic.Int32

		errs := pool.RunAll(context.Background(),
			func() error { counter.Add(1); return wantErr },
			func() error { counter.Add(1); return nil },
			func() error { counter.Add(1); return wantErr },
		)

		assert.Equal(t, int32(3), counter.Load())
		assert.Len(t, errs, 2)
	})

	t.Run("no functions returns nil", func(t *testing.T) {
		pool := NewWorkerPool(2)
		assert.Nil(t, pool.RunAll(context.Background()))
	})
}
