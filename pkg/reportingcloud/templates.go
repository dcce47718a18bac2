package reportingcloud

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp-forge/reportingcloud/pkg/assert"
	"github.com/hashicorp-forge/reportingcloud/pkg/builder"
	"github.com/hashicorp-forge/reportingcloud/pkg/normalize"
)

// TemplateList lists the stored templates, or returns nil if the service
// returned nothing.
func (c *Client) TemplateList(ctx context.Context) ([]TemplateListEntry, error) {
	var out []TemplateListEntry
	ok, err := c.records(ctx, "template_list", "/templates/list", nil, c.registry.TemplateList, &out)
	if err != nil || !ok {
		return nil, err
	}
	if out == nil {
		out = []TemplateListEntry{}
	}
	return out, nil
}

// TemplateCount returns the number of stored templates. ok is false if the
// service did not answer with a count.
func (c *Client) TemplateCount(ctx context.Context) (count int, ok bool, err error) {
	data, err := c.get(ctx, "template_count", "/templates/count", nil)
	if err != nil {
		return 0, false, err
	}
	return toInt(data)
}

// TemplateInfo describes the merge blocks and fields of a stored template.
func (c *Client) TemplateInfo(ctx context.Context, templateName string) (*TemplateInfo, error) {
	if err := assert.TemplateName(templateName); err != nil {
		return nil, err
	}

	var out TemplateInfo
	ok, err := c.records(ctx, "template_info", "/templates/info", templateQuery(templateName), c.registry.TemplateInfo, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// TemplatePageCount returns the number of pages of a stored template.
func (c *Client) TemplatePageCount(ctx context.Context, templateName string) (count int, ok bool, err error) {
	if err := assert.TemplateName(templateName); err != nil {
		return 0, false, err
	}

	data, err := c.get(ctx, "template_page_count", "/templates/pagecount", templateQuery(templateName))
	if err != nil {
		return 0, false, err
	}
	return toInt(data)
}

// TemplateExists reports whether a template is stored under templateName.
func (c *Client) TemplateExists(ctx context.Context, templateName string) (bool, error) {
	if err := assert.TemplateName(templateName); err != nil {
		return false, err
	}

	data, err := c.get(ctx, "template_exists", "/templates/exists", templateQuery(templateName))
	if err != nil {
		return false, err
	}
	exists, _ := data.(bool)
	return exists, nil
}

// TemplateThumbnails renders pages fromPage..toPage of a stored template as
// images, zoomed by zoomFactor percent.
func (c *Client) TemplateThumbnails(ctx context.Context, templateName string, zoomFactor int, fromPage, toPage int64, imageFormat string) ([][]byte, error) {
	if err := assert.TemplateName(templateName); err != nil {
		return nil, err
	}
	query, err := thumbnailQuery(zoomFactor, fromPage, toPage, imageFormat)
	if err != nil {
		return nil, err
	}
	query["templateName"] = templateName

	body, err := c.send(ctx, call{
		op:      "template_thumbnails",
		method:  http.MethodGet,
		path:    "/templates/thumbnails",
		query:   query,
		success: http.StatusOK,
	})
	if err != nil {
		return nil, noResult(err)
	}
	return normalize.BinaryList(body)
}

// DownloadTemplate returns the content of a stored template.
func (c *Client) DownloadTemplate(ctx context.Context, templateName string) ([]byte, error) {
	if err := assert.TemplateName(templateName); err != nil {
		return nil, err
	}

	body, err := c.send(ctx, call{
		op:      "download_template",
		method:  http.MethodGet,
		path:    "/templates/download",
		query:   templateQuery(templateName),
		success: http.StatusOK,
	})
	if err != nil {
		return nil, noResult(err)
	}
	return normalize.Binary(body)
}

// UploadTemplate stores a local template file under its base name.
func (c *Client) UploadTemplate(ctx context.Context, filename string) (bool, error) {
	if err := assert.TemplateExtension(filename); err != nil {
		return false, err
	}
	if err := assert.FilenameExists(c.fs, filename); err != nil {
		return false, err
	}

	encoded, err := builder.EncodeFile(c.fs, filename)
	if err != nil {
		return false, err
	}
	return c.upload(ctx, encoded, filepath.Base(filename))
}

// UploadTemplateFromBase64 stores base64 encoded template data under
// templateName.
func (c *Client) UploadTemplateFromBase64(ctx context.Context, data, templateName string) (bool, error) {
	if err := assert.Base64Data(data); err != nil {
		return false, err
	}
	if err := assert.TemplateName(templateName); err != nil {
		return false, err
	}
	return c.upload(ctx, data, templateName)
}

func (c *Client) upload(ctx context.Context, encoded, templateName string) (bool, error) {
	_, err := c.send(ctx, call{
		op:      "upload_template",
		method:  http.MethodPost,
		path:    "/templates/upload",
		query:   templateQuery(templateName),
		body:    encoded,
		success: http.StatusCreated,
	})
	if err != nil {
		return false, noResult(err)
	}
	return true, nil
}

// DeleteTemplate deletes a stored template and reports whether the service
// did so.
func (c *Client) DeleteTemplate(ctx context.Context, templateName string) (bool, error) {
	if err := assert.TemplateName(templateName); err != nil {
		return false, err
	}

	_, err := c.send(ctx, call{
		op:      "delete_template",
		method:  http.MethodDelete,
		path:    "/templates/delete",
		query:   templateQuery(templateName),
		success: http.StatusNoContent,
	})
	if err != nil {
		return false, noResult(err)
	}
	return true, nil
}

func templateQuery(templateName string) map[string]string {
	return map[string]string{"templateName": templateName}
}

func thumbnailQuery(zoomFactor int, fromPage, toPage int64, imageFormat string) (map[string]string, error) {
	if err := assert.ZoomFactor(zoomFactor); err != nil {
		return nil, err
	}
	if err := assert.Page(fromPage); err != nil {
		return nil, err
	}
	if err := assert.Page(toPage); err != nil {
		return nil, err
	}
	if toPage < fromPage {
		return nil, assert.NewInvalidArgument(toPage, "toPage %s must not be less than fromPage")
	}
	if err := assert.ImageFormat(imageFormat); err != nil {
		return nil, err
	}
	return map[string]string{
		"zoomFactor":  strconv.Itoa(zoomFactor),
		"fromPage":    strconv.FormatInt(fromPage, 10),
		"toPage":      strconv.FormatInt(toPage, 10),
		"imageFormat": strings.ToUpper(imageFormat),
	}, nil
}

// toInt reads a JSON number (or numeric string) returned by a count
// endpoint.
func toInt(data any) (int, bool, error) {
	switch v := data.(type) {
	case float64:
		return int(v), true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false, nil
		}
		return n, true, nil
	default:
		return 0, false, nil
	}
}
