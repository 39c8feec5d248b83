// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"
)

type taggedStruct struct {
	Title     string `json:"title" xml:"title"`
	Count     int    `json:"count"`
	Active    bool   `json:"active,omitempty"`
	secret    string `json:"secret"` //nolint:govet // unexported field used for testing
	NoTag     string
	OrgNumber string `json:"org_number"`
}

func TestFieldByTag(t *testing.T) {
	obj := taggedStruct{
		Title:     "MVA-melding",
		Count:     3,
		Active:    true,
		secret:    "hidden",
		NoTag:     "plain",
		OrgNumber: "987654321",
	}

	tests := []struct {
		name     string
		tagType  string
		tagValue string
		expected any
		found    bool
	}{
		{
			name:     "string field",
			tagType:  "json",
			tagValue: "title",
			expected: "MVA-melding",
			found:    true,
		},
		{
			name:     "int field",
			tagType:  "json",
			tagValue: "count",
			expected: 3,
			found:    true,
		},
		{
			name:     "field with tag options",
			tagType:  "json",
			tagValue: "active",
			expected: true,
			found:    true,
		},
		{
			name:     "other tag type",
			tagType:  "xml",
			tagValue: "title",
			expected: "MVA-melding",
			found:    true,
		},
		{
			name:     "snake case tag",
			tagType:  "json",
			tagValue: "org_number",
			expected: "987654321",
			found:    true,
		},
		{
			name:     "non-existent tag",
			tagType:  "json",
			tagValue: "nonexistent",
			expected: nil,
			found:    false,
		},
		{
			name:     "wrong tag type",
			tagType:  "yaml",
			tagValue: "title",
			expected: nil,
			found:    false,
		},
		{
			name:     "unexported field is skipped",
			tagType:  "json",
			tagValue: "secret",
			expected: nil,
			found:    false,
		},
		{
			name:     "field name is not a tag",
			tagType:  "json",
			tagValue: "NoTag",
			expected: nil,
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, found := FieldByTag(obj, tt.tagType, tt.tagValue)
			if found != tt.found {
				t.Errorf("expected found %t, got %t", tt.found, found)
			}
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFieldByTag_WithPointer(t *testing.T) {
	obj := &taggedStruct{Title: "Lønnskjøring"}

	result, found := FieldByTag(obj, "json", "title")
	if !found {
		t.Error("expected to find field")
	}
	if result != "Lønnskjøring" {
		t.Errorf("expected 'Lønnskjøring', got %v", result)
	}
}

func TestFieldByTag_NilPointer(t *testing.T) {
	var obj *taggedStruct

	result, found := FieldByTag(obj, "json", "title")
	if found {
		t.Error("expected not to find field with nil pointer")
	}
	if result != nil {
		t.Errorf("expected nil result, got %v", result)
	}
}

func TestFieldByTag_NonStruct(t *testing.T) {
	inputs := []any{
		nil,
		"string",
		42,
		[]string{"slice"},
		map[string]string{"key": "value"},
	}

	for _, obj := range inputs {
		result, found := FieldByTag(obj, "json", "field")
		if found {
			t.Errorf("expected not to find field in %T", obj)
		}
		if result != nil {
			t.Errorf("expected nil result, got %v", result)
		}
	}
}

func TestFieldByTag_DuplicateTags(t *testing.T) {
	type duplicateTagStruct struct {
		First  string `json:"duplicate"`
		Second string `json:"duplicate"` //nolint:govet // duplicate tag used for testing
	}

	obj := duplicateTagStruct{First: "first", Second: "second"}

	// The first matching field wins
	result, found := FieldByTag(obj, "json", "duplicate")
	if !found {
		t.Error("expected to find field with duplicate tag")
	}
	if result != "first" {
		t.Errorf("expected 'first', got %v", result)
	}
}
