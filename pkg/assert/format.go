package assert

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp-forge/reportingcloud/pkg/document"
)

const (
	ZoomFactorMin = 1
	ZoomFactorMax = 400

	PageMin = 1
	PageMax = math.MaxInt64

	TimestampMin = 0
	TimestampMax = math.MaxInt64
)

// ReturnFormat asserts that v (case-insensitive) is a supported return format.
func ReturnFormat(v string, message ...string) error {
	return format(v, document.ReturnFormats, "%s contains an unsupported return format", message)
}

// TemplateFormat asserts that v (case-insensitive) is a supported template format.
func TemplateFormat(v string, message ...string) error {
	return format(v, document.TemplateFormats, "%s contains an unsupported template format", message)
}

// ImageFormat asserts that v (case-insensitive) is a supported image format.
func ImageFormat(v string, message ...string) error {
	return format(v, document.ImageFormats, "%s contains an unsupported image format", message)
}

func format(v string, allowed []string, def string, message []string) error {
	if !slices.Contains(allowed, strings.ToUpper(v)) {
		return fail(v, nil, def, message, v)
	}
	return nil
}

// DocumentDivider asserts that v is one of document.Dividers.
func DocumentDivider(v document.Divider, message ...string) error {
	if !slices.Contains(document.Dividers, v) {
		return fail(v, nil, "%s contains an unsupported document divider", message, raw(strconv.FormatInt(int64(v), 10)))
	}
	return nil
}

// ZoomFactor asserts that v is a zoom percentage in [1..400].
func ZoomFactor(v int, message ...string) error {
	if v < ZoomFactorMin || v > ZoomFactorMax {
		return fail(v, nil, "Zoom factor (%s) must be in the range [%s..%s]", message, v, ZoomFactorMin, ZoomFactorMax)
	}
	return nil
}

// Page asserts that v is a page number, counted from 1.
func Page(v int64, message ...string) error {
	if v < PageMin {
		return fail(v, nil, "Page number (%s) must be in the range [%s..%s]", message, v, PageMin, int64(PageMax))
	}
	return nil
}

// Timestamp asserts that v is a non-negative unix timestamp.
func Timestamp(v int64, message ...string) error {
	if v < TimestampMin {
		return fail(v, nil, "Timestamp (%s) must be in the range [%s..%s]", message, v, TimestampMin, int64(TimestampMax))
	}
	return nil
}
