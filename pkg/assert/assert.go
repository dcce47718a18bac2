// Package assert validates caller input before a request is built. Every
// function returns nil on success or an *InvalidArgumentError, and accepts an
// optional custom message whose %s placeholders receive the offending value
// (and, for range checks, the bounds).
package assert

import (
	"cmp"
	"encoding/base64"
	"reflect"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// String asserts that v holds a string.
func String(v any, message ...string) error {
	if _, ok := v.(string); !ok {
		return fail(v, nil, "%s must be a string", message, v)
	}
	return nil
}

// Integer asserts that v holds a signed or unsigned integer.
func Integer(v any, message ...string) error {
	if v != nil {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return nil
		}
	}
	return fail(v, nil, "%s must be an integer", message, v)
}

// Boolean asserts that v holds a bool.
func Boolean(v any, message ...string) error {
	if _, ok := v.(bool); !ok {
		return fail(v, nil, "%s must be a boolean", message, v)
	}
	return nil
}

// Array asserts that v is a slice, an array or a map.
func Array(v any, message ...string) error {
	if v != nil {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return nil
		}
	}
	return fail(v, nil, "%s must be an array", message, v)
}

// Range asserts that min <= v <= max.
func Range[T cmp.Ordered](v, min, max T, message ...string) error {
	if v < min || v > max {
		return fail(v, nil, "%s must be in the range [%s..%s]", message, v, min, max)
	}
	return nil
}

// OneOf asserts that v is a member of allowed.
func OneOf[T comparable](v T, allowed []T, message ...string) error {
	if !slices.Contains(allowed, v) {
		return fail(v, nil, "%s is not one of the allowed values", message, v)
	}
	return nil
}

// Base64Data asserts that v is non-empty, strictly base64 encoded data.
func Base64Data(v string, message ...string) error {
	if err := validation.Validate(v, validation.Required, strictBase64); err != nil {
		return fail(v, err, "%s must be base64 encoded", message, v)
	}
	return nil
}

// strictBase64 rejects padding errors and input that decodes to nothing.
var strictBase64 = validation.By(func(value interface{}) error {
	decoded, err := base64.StdEncoding.Strict().DecodeString(value.(string))
	if err != nil {
		return err
	}
	if len(decoded) == 0 {
		return validation.ErrRequired
	}
	return nil
})
