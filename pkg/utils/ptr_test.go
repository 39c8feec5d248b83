// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringPtrRoundTrip(t *testing.T) {
	p := StringPtr("regnskap")
	assert.Equal(t, "regnskap", StringValue(p))
	assert.Equal(t, "", StringValue(nil))
}

func TestBoolPtrRoundTrip(t *testing.T) {
	p := BoolPtr(true)
	assert.True(t, BoolValue(p))
	assert.False(t, BoolValue(nil))
}

func TestIntPtrRoundTrip(t *testing.T) {
	p := IntPtr(42)
	assert.Equal(t, 42, IntValue(p))
	assert.Equal(t, 0, IntValue(nil))
}

func TestTimePtrRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	p := TimePtr(now)
	assert.Equal(t, now, TimeValue(p))
	assert.True(t, TimeValue(nil).IsZero())
}

func TestCoalesceString(t *testing.T) {
	assert.Equal(t, "a", CoalesceString("", "a", "b"))
	assert.Equal(t, "", CoalesceString("", ""))
	assert.Equal(t, "x", CoalesceString("x"))
}
