// Package filter converts values between their Go form and the textual form
// the ReportingCloud service exchanges: wire dates, boolean query flags and
// base64 payloads.
package filter

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the service's date-time format.
const DateLayout = "2006-01-02T15:04:05-07:00"

// DateTime converts between unix timestamps and wire dates in a fixed
// location.
type DateTime struct {
	Layout   string
	Location *time.Location
}

// DefaultDateTime renders wire dates in UTC.
var DefaultDateTime = DateTime{
	Layout:   DateLayout,
	Location: time.UTC,
}

// Format renders timestamp ts as a wire date.
func (d DateTime) Format(ts int64) string {
	return time.Unix(ts, 0).In(d.location()).Format(d.layout())
}

// Parse converts a wire date into a unix timestamp. The configured layout is
// tried first; dates the service emits in other shapes (fractional seconds,
// missing offsets) are parsed tolerantly in the configured location.
// Sub-second precision is discarded.
func (d DateTime) Parse(s string) (int64, error) {
	t, err := time.ParseInLocation(d.layout(), s, d.location())
	if err != nil {
		var terr error
		t, terr = dateparse.ParseIn(s, d.location())
		if terr != nil {
			return 0, fmt.Errorf("failed to parse date %q: %w", s, err)
		}
	}
	return t.Unix(), nil
}

func (d DateTime) layout() string {
	if d.Layout == "" {
		return DateLayout
	}
	return d.Layout
}

func (d DateTime) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

// TimestampToDateTime renders ts using DefaultDateTime.
func TimestampToDateTime(ts int64) string {
	return DefaultDateTime.Format(ts)
}

// DateTimeToTimestamp parses s using DefaultDateTime.
func DateTimeToTimestamp(s string) (int64, error) {
	return DefaultDateTime.Parse(s)
}

// BooleanToString renders b as "true" or "false". Some service query
// parameters reject the numeric 1/0 form.
func BooleanToString(b bool) string {
	return strconv.FormatBool(b)
}

// EncodeBase64 encodes data with standard padded base64.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes standard padded base64.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, nil
}
