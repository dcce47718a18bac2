package reportingcloud

import (
	"context"
	"net/http"
	"strings"

	"github.com/hashicorp-forge/reportingcloud/pkg/assert"
	"github.com/hashicorp-forge/reportingcloud/pkg/builder"
	"github.com/hashicorp-forge/reportingcloud/pkg/normalize"
)

// MergeRequest merges MergeData into a template.
type MergeRequest struct {
	// MergeData is a record or a list of records (maps or slices).
	MergeData any

	ReturnFormat string

	// Template names a stored template or a local template file. Without
	// one the service uses its default template.
	Template builder.TemplateReference

	// Append merges all records into a single document. Nil leaves the
	// choice to the service.
	Append *bool

	// MergeSettings is keyed by snake_case setting names, e.g.
	// "remove_empty_blocks". Unknown keys are ignored.
	MergeSettings map[string]any
}

// FindAndReplaceRequest replaces placeholders in a template.
type FindAndReplaceRequest struct {
	Data          *builder.FindAndReplaceData
	ReturnFormat  string
	Template      builder.TemplateReference
	MergeSettings map[string]any
}

// AppendRequest concatenates documents into one.
type AppendRequest struct {
	Documents    []builder.DocumentEntry
	ReturnFormat string

	// DocumentSettings is keyed by snake_case setting names, e.g.
	// "document_title". Unknown keys are ignored.
	DocumentSettings map[string]any
}

type mergeBody struct {
	MergeData     any            `json:"mergeData"`
	Template      string         `json:"template,omitempty"`
	MergeSettings map[string]any `json:"mergeSettings,omitempty"`
}

type findAndReplaceBody struct {
	FindAndReplaceData [][]string     `json:"findAndReplaceData"`
	Template           string         `json:"template,omitempty"`
	MergeSettings      map[string]any `json:"mergeSettings,omitempty"`
}

type appendBody struct {
	Documents        []builder.Document `json:"documents"`
	DocumentSettings map[string]any     `json:"documentSettings,omitempty"`
}

// ConvertDocument converts a local document to returnFormat. An unexpected
// status code is returned as an *OperationError.
func (c *Client) ConvertDocument(ctx context.Context, filename, returnFormat string) ([]byte, error) {
	if err := assert.DocumentExtension(filename); err != nil {
		return nil, err
	}
	if err := assert.FilenameExists(c.fs, filename); err != nil {
		return nil, err
	}
	if err := assert.ReturnFormat(returnFormat); err != nil {
		return nil, err
	}

	encoded, err := builder.EncodeFile(c.fs, filename)
	if err != nil {
		return nil, err
	}

	body, err := c.send(ctx, call{
		op:      "convert_document",
		method:  http.MethodPost,
		path:    "/document/convert",
		query:   c.documentQuery(strings.ToUpper(returnFormat)),
		body:    encoded,
		success: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return normalize.Binary(body)
}

// MergeDocument merges data into a template and returns one document per
// record (or a single document when appending), in record order. An
// unexpected status code is returned as an *OperationError.
func (c *Client) MergeDocument(ctx context.Context, req MergeRequest) ([][]byte, error) {
	if err := assert.Array(req.MergeData); err != nil {
		return nil, err
	}
	if err := assert.ReturnFormat(req.ReturnFormat); err != nil {
		return nil, err
	}
	tmpl, err := builder.Template(c.fs, req.Template)
	if err != nil {
		return nil, err
	}
	settings, err := builder.MergeSettings(c.registry.MergeSettings, req.MergeSettings)
	if err != nil {
		return nil, err
	}

	query := c.documentQuery(strings.ToUpper(req.ReturnFormat))
	if tmpl.Name != "" {
		query["templateName"] = tmpl.Name
	}
	if req.Append != nil {
		query["append"] = builder.AppendQueryValue(*req.Append)
	}

	body, err := c.send(ctx, call{
		op:     "merge_document",
		method: http.MethodPost,
		path:   "/document/merge",
		query:  query,
		body: mergeBody{
			MergeData:     req.MergeData,
			Template:      tmpl.Template,
			MergeSettings: settings,
		},
		success: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return normalize.BinaryList(body)
}

// FindAndReplace replaces the placeholders of req.Data in a template. An
// unexpected status code is returned as an *OperationError.
func (c *Client) FindAndReplace(ctx context.Context, req FindAndReplaceRequest) ([]byte, error) {
	if req.Data == nil {
		return nil, assert.NewInvalidArgument(nil, "Find and replace data is required")
	}
	if err := assert.ReturnFormat(req.ReturnFormat); err != nil {
		return nil, err
	}
	tmpl, err := builder.Template(c.fs, req.Template)
	if err != nil {
		return nil, err
	}
	settings, err := builder.MergeSettings(c.registry.MergeSettings, req.MergeSettings)
	if err != nil {
		return nil, err
	}

	query := c.documentQuery(strings.ToUpper(req.ReturnFormat))
	if tmpl.Name != "" {
		query["templateName"] = tmpl.Name
	}

	body, err := c.send(ctx, call{
		op:     "find_and_replace",
		method: http.MethodPost,
		path:   "/document/findandreplace",
		query:  query,
		body: findAndReplaceBody{
			FindAndReplaceData: builder.FindAndReplace(req.Data),
			Template:           tmpl.Template,
			MergeSettings:      settings,
		},
		success: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return normalize.Binary(body)
}

// AppendDocuments concatenates local documents in order. An unexpected
// status code is returned as an *OperationError.
func (c *Client) AppendDocuments(ctx context.Context, req AppendRequest) ([]byte, error) {
	if err := assert.ReturnFormat(req.ReturnFormat); err != nil {
		return nil, err
	}
	docs, err := builder.Documents(c.fs, req.Documents)
	if err != nil {
		return nil, err
	}
	settings, err := builder.DocumentSettings(c.registry.DocumentSettings, req.DocumentSettings)
	if err != nil {
		return nil, err
	}

	body, err := c.send(ctx, call{
		op:     "append_documents",
		method: http.MethodPost,
		path:   "/document/append",
		query:  c.documentQuery(strings.ToUpper(req.ReturnFormat)),
		body: appendBody{
			Documents:        docs,
			DocumentSettings: settings,
		},
		success: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return normalize.Binary(body)
}

// DocumentThumbnails renders pages fromPage..toPage of a local document as
// images, zoomed by zoomFactor percent.
func (c *Client) DocumentThumbnails(ctx context.Context, filename string, zoomFactor int, fromPage, toPage int64, imageFormat string) ([][]byte, error) {
	if err := assert.DocumentThumbnailExtension(filename); err != nil {
		return nil, err
	}
	if err := assert.FilenameExists(c.fs, filename); err != nil {
		return nil, err
	}
	query, err := thumbnailQuery(zoomFactor, fromPage, toPage, imageFormat)
	if err != nil {
		return nil, err
	}

	encoded, err := builder.EncodeFile(c.fs, filename)
	if err != nil {
		return nil, err
	}

	body, err := c.send(ctx, call{
		op:      "document_thumbnails",
		method:  http.MethodPost,
		path:    "/document/thumbnails",
		query:   query,
		body:    encoded,
		success: http.StatusOK,
	})
	if err != nil {
		return nil, noResult(err)
	}
	return normalize.BinaryList(body)
}
