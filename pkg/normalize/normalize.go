// Package normalize turns ReportingCloud response bodies into caller-facing
// values: records keyed by snake_case keys with timestamps in place of wire
// dates, typed structs, and decoded binary payloads.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/hashicorp-forge/reportingcloud/pkg/filter"
	"github.com/hashicorp-forge/reportingcloud/pkg/propertymap"
)

// JSON decodes a response body. An empty body yields nil.
func JSON(body []byte) (any, error) {
	if isEmpty(body) {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return v, nil
}

// Records renames the wire properties in records to caller keys and converts
// date-time fields to unix timestamps, at any depth.
func Records(records any, pm *propertymap.PropertyMap) (any, error) {
	if records == nil {
		return nil, nil
	}
	return timestamps(pm.ToKeys(records))
}

// IsDateTimeKey reports whether values under key carry a wire date.
func IsDateTimeKey(key string) bool {
	return key == "modified" ||
		strings.HasSuffix(key, "_date") ||
		strings.HasSuffix(key, "_time") ||
		strings.HasSuffix(key, "_until")
}

func timestamps(data any) (any, error) {
	switch v := data.(type) {
	case map[string]any:
		for k, val := range v {
			if s, ok := val.(string); ok && IsDateTimeKey(k) {
				if s == "" {
					continue
				}
				ts, err := filter.DateTimeToTimestamp(s)
				if err != nil {
					return nil, fmt.Errorf("field %s: %w", k, err)
				}
				v[k] = ts
				continue
			}
			converted, err := timestamps(val)
			if err != nil {
				return nil, err
			}
			v[k] = converted
		}
		return v, nil
	case []any:
		for i, val := range v {
			converted, err := timestamps(val)
			if err != nil {
				return nil, err
			}
			v[i] = converted
		}
		return v, nil
	default:
		return data, nil
	}
}

// Decode decodes normalized records into out, which must be a pointer.
// Struct fields are matched through their mapstructure tags.
func Decode(records any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(records); err != nil {
		return fmt.Errorf("failed to decode records: %w", err)
	}
	return nil
}

// Binary decodes a base64 payload sent either as a JSON string or as raw
// base64 text. An empty body or JSON null yields nil.
func Binary(body []byte) ([]byte, error) {
	if isEmpty(body) {
		return nil, nil
	}

	encoded := string(bytes.TrimSpace(body))
	if encoded == "null" {
		return nil, nil
	}
	if strings.HasPrefix(encoded, `"`) {
		if err := json.Unmarshal(body, &encoded); err != nil {
			return nil, fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return filter.DecodeBase64(encoded)
}

// BinaryList decodes a JSON array of base64 payloads, keeping their order.
// An empty body yields nil; an empty array yields an empty slice.
func BinaryList(body []byte) ([][]byte, error) {
	if isEmpty(body) {
		return nil, nil
	}

	var encoded []string
	if err := json.Unmarshal(body, &encoded); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	if encoded == nil {
		return nil, nil
	}

	out := make([][]byte, 0, len(encoded))
	for i, e := range encoded {
		data, err := filter.DecodeBase64(e)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, data)
	}
	return out, nil
}

func isEmpty(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0
}
