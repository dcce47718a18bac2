// Package builder assembles validated request payloads for the ReportingCloud
// service from caller input.
package builder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/pkg/assert"
	"github.com/hashicorp-forge/reportingcloud/pkg/document"
	"github.com/hashicorp-forge/reportingcloud/pkg/filter"
	"github.com/hashicorp-forge/reportingcloud/pkg/propertymap"
)

// DocumentEntry is a local document to append. A zero Divider is omitted.
type DocumentEntry struct {
	Filename string
	Divider  document.Divider
}

// Document is the wire form of a DocumentEntry.
type Document struct {
	Document        string `json:"document"`
	DocumentDivider int    `json:"documentDivider,omitempty"`
}

// EncodeFile reads filename from fsys and returns its base64 encoding.
func EncodeFile(fsys afero.Fs, filename string) (string, error) {
	data, err := afero.ReadFile(fsys, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return filter.EncodeBase64(data), nil
}

// Documents validates entries and encodes them in order.
func Documents(fsys afero.Fs, entries []DocumentEntry) ([]Document, error) {
	if len(entries) == 0 {
		return nil, assert.NewInvalidArgument(entries, "At least one document is required")
	}

	out := make([]Document, 0, len(entries))
	for _, e := range entries {
		if err := assert.FilenameExists(fsys, e.Filename); err != nil {
			return nil, err
		}
		if err := assert.DocumentExtension(e.Filename); err != nil {
			return nil, err
		}

		var d Document
		if e.Divider != 0 {
			if err := assert.DocumentDivider(e.Divider); err != nil {
				return nil, err
			}
			d.DocumentDivider = int(e.Divider)
		}

		encoded, err := EncodeFile(fsys, e.Filename)
		if err != nil {
			return nil, err
		}
		d.Document = encoded

		out = append(out, d)
	}
	return out, nil
}

// DocumentSettings whitelists in against pm and renames it to wire
// properties. Unknown keys are dropped.
func DocumentSettings(pm *propertymap.PropertyMap, in map[string]any) (map[string]any, error) {
	return settings(pm, in)
}

// MergeSettings whitelists in against pm and renames it to wire properties.
// Unknown keys are dropped.
func MergeSettings(pm *propertymap.PropertyMap, in map[string]any) (map[string]any, error) {
	return settings(pm, in)
}

func settings(pm *propertymap.PropertyMap, in map[string]any) (map[string]any, error) {
	if in == nil {
		return nil, nil
	}

	out := make(map[string]any)
	for _, e := range pm.Map() {
		v, ok := in[e.Key]
		if !ok || v == nil {
			continue
		}

		switch {
		case e.Key == "culture":
			if err := assert.String(v); err != nil {
				return nil, err
			}
			if err := assert.Culture(v.(string)); err != nil {
				return nil, err
			}
		case strings.HasPrefix(e.Key, "remove_") || e.Key == "merge_html":
			if err := assert.Boolean(v); err != nil {
				return nil, err
			}
		case strings.HasSuffix(e.Key, "_date"):
			ts, ok := toInt64(v)
			if !ok {
				return nil, assert.NewInvalidArgument(v, "%s must be a timestamp")
			}
			if err := assert.Timestamp(ts); err != nil {
				return nil, err
			}
			v = filter.TimestampToDateTime(ts)
		}

		out[e.Property] = v
	}
	return out, nil
}

func toInt64(v any) (int64, bool) {
	if assert.Integer(v) != nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	if rv.CanInt() {
		return rv.Int(), true
	}
	u := rv.Uint()
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// FindAndReplaceData is an insertion-ordered set of placeholder
// replacements. Setting an existing placeholder keeps its position.
type FindAndReplaceData struct {
	keys   []string
	values map[string]string
}

// NewFindAndReplaceData builds data from placeholder/replacement pairs. A
// trailing placeholder without replacement maps to "".
func NewFindAndReplaceData(pairs ...string) *FindAndReplaceData {
	d := &FindAndReplaceData{values: make(map[string]string)}
	for i := 0; i < len(pairs); i += 2 {
		var r string
		if i+1 < len(pairs) {
			r = pairs[i+1]
		}
		d.Set(pairs[i], r)
	}
	return d
}

// Set adds or replaces a placeholder.
func (d *FindAndReplaceData) Set(placeholder, replacement string) *FindAndReplaceData {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[placeholder]; !ok {
		d.keys = append(d.keys, placeholder)
	}
	d.values[placeholder] = replacement
	return d
}

// Len returns the number of placeholders.
func (d *FindAndReplaceData) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// FindAndReplace returns data as ordered [placeholder, replacement] pairs.
func FindAndReplace(data *FindAndReplaceData) [][]string {
	out := make([][]string, 0, data.Len())
	if data == nil {
		return out
	}
	for _, k := range data.keys {
		out = append(out, []string{k, data.values[k]})
	}
	return out
}

// TemplateReference names a stored template or a local template file. At
// most one of the fields may be set.
type TemplateReference struct {
	Name     string
	Filename string
}

// IsZero reports whether neither field is set.
func (r TemplateReference) IsZero() bool {
	return r.Name == "" && r.Filename == ""
}

// TemplateSource is the validated form of a TemplateReference: either the
// stored template name or the encoded local file.
type TemplateSource struct {
	Name     string
	Template string
}

// Template validates ref and reads the local template file, if any.
func Template(fsys afero.Fs, ref TemplateReference) (TemplateSource, error) {
	switch {
	case ref.Name != "" && ref.Filename != "":
		return TemplateSource{}, assert.NewInvalidArgument(ref,
			"Template name and template filename are mutually exclusive")
	case ref.Name != "":
		if err := assert.TemplateName(ref.Name); err != nil {
			return TemplateSource{}, err
		}
		return TemplateSource{Name: ref.Name}, nil
	case ref.Filename != "":
		if err := assert.FilenameExists(fsys, ref.Filename); err != nil {
			return TemplateSource{}, err
		}
		if err := assert.TemplateExtension(ref.Filename); err != nil {
			return TemplateSource{}, err
		}
		encoded, err := EncodeFile(fsys, ref.Filename)
		if err != nil {
			return TemplateSource{}, err
		}
		return TemplateSource{Template: encoded}, nil
	default:
		return TemplateSource{}, nil
	}
}

// AppendQueryValue renders the append flag of the merge endpoint. The
// service rejects the numeric form.
func AppendQueryValue(b bool) string {
	return filter.BooleanToString(b)
}

// TestQueryValue renders the test flag of the document endpoints.
func TestQueryValue(b bool) string {
	return filter.BooleanToString(b)
}
