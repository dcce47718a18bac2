package reportingcloud

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/hashicorp-forge/reportingcloud/pkg/assert"
	"github.com/hashicorp-forge/reportingcloud/pkg/builder"
	"github.com/hashicorp-forge/reportingcloud/pkg/filter"
	"github.com/hashicorp-forge/reportingcloud/pkg/normalize"
)

// TrackedChanges lists the tracked changes of a local document.
func (c *Client) TrackedChanges(ctx context.Context, filename string) ([]TrackedChange, error) {
	encoded, err := c.encodeDocument(filename)
	if err != nil {
		return nil, err
	}

	body, err := c.send(ctx, call{
		op:      "tracked_changes",
		method:  http.MethodPost,
		path:    "/processing/review/trackedchanges",
		body:    encoded,
		success: http.StatusOK,
	})
	if err != nil {
		return nil, noResult(err)
	}

	data, err := normalize.JSON(body)
	if err != nil || data == nil {
		return nil, err
	}

	var out []TrackedChange
	if _, err := c.decode(data, c.registry.TrackedChanges, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []TrackedChange{}
	}
	return out, nil
}

// RemoveTrackedChange accepts or rejects the tracked change id of a local
// document. It returns the updated document and whether the change was
// removed; a failed operation yields (nil, false, nil).
func (c *Client) RemoveTrackedChange(ctx context.Context, filename string, id int, accept bool) ([]byte, bool, error) {
	if err := assert.Range(id, 0, math.MaxInt); err != nil {
		return nil, false, err
	}
	encoded, err := c.encodeDocument(filename)
	if err != nil {
		return nil, false, err
	}

	body, err := c.send(ctx, call{
		op:     "remove_tracked_change",
		method: http.MethodPost,
		path:   "/processing/review/removetrackedchange",
		query: map[string]string{
			"id":     strconv.Itoa(id),
			"accept": filter.BooleanToString(accept),
		},
		body:    encoded,
		success: http.StatusOK,
	})
	if err != nil {
		return nil, false, noResult(err)
	}

	var result struct {
		Document string `mapstructure:"document"`
		Removed  bool   `mapstructure:"removed"`
	}
	data, err := normalize.JSON(body)
	if err != nil || data == nil {
		return nil, false, err
	}
	if err := normalize.Decode(data, &result); err != nil {
		return nil, false, err
	}

	doc, err := filter.DecodeBase64(result.Document)
	if err != nil {
		return nil, false, err
	}
	return doc, result.Removed, nil
}

func (c *Client) encodeDocument(filename string) (string, error) {
	if err := assert.DocumentExtension(filename); err != nil {
		return "", err
	}
	if err := assert.FilenameExists(c.fs, filename); err != nil {
		return "", err
	}
	return builder.EncodeFile(c.fs, filename)
}
