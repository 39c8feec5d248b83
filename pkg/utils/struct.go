// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package utils

import (
	"reflect"
	"strings"
)

// FieldByTag returns the value of the first exported struct field whose tag
// of the given type matches tagValue. Pointers are dereferenced. The second
// return value reports whether a matching field was found.
func FieldByTag(obj any, tagType, tagValue string) (any, bool) {
	if obj == nil {
		return nil, false
	}

	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, false
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, false
	}

	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		tag, ok := field.Tag.Lookup(tagType)
		if !ok {
			continue
		}

		// Tag options such as omitempty don't participate in the match.
		name, _, _ := strings.Cut(tag, ",")
		if name == tagValue {
			return value.Field(i).Interface(), true
		}
	}

	return nil, false
}
