package reportingcloud

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hashicorp-forge/reportingcloud/pkg/assert"
)

// AccountSettings returns the quota of the account, or nil if the service
// did not return any.
func (c *Client) AccountSettings(ctx context.Context) (*AccountSettings, error) {
	var out AccountSettings
	ok, err := c.records(ctx, "account_settings", "/account/settings", nil, c.registry.AccountSettings, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// APIKeys lists the API keys of the account.
func (c *Client) APIKeys(ctx context.Context) ([]APIKey, error) {
	var out []APIKey
	ok, err := c.records(ctx, "api_keys", "/account/apikeys", nil, c.registry.APIKey, &out)
	if err != nil || !ok {
		return nil, err
	}
	if out == nil {
		out = []APIKey{}
	}
	return out, nil
}

// CreateAPIKey creates a new API key and returns it. An empty key means the
// service refused.
func (c *Client) CreateAPIKey(ctx context.Context) (string, error) {
	body, err := c.send(ctx, call{
		op:      "create_api_key",
		method:  http.MethodGet,
		path:    "/account/apikey",
		success: http.StatusCreated,
	})
	if err != nil {
		return "", noResult(err)
	}

	var key string
	if len(body) > 0 {
		if err := json.Unmarshal(body, &key); err != nil {
			return "", err
		}
	}
	return key, nil
}

// DeleteAPIKey deletes key and reports whether the service did so.
func (c *Client) DeleteAPIKey(ctx context.Context, key string) (bool, error) {
	if err := assert.APIKey(key); err != nil {
		return false, err
	}

	_, err := c.send(ctx, call{
		op:      "delete_api_key",
		method:  http.MethodDelete,
		path:    "/account/apikey",
		query:   map[string]string{"key": key},
		success: http.StatusOK,
	})
	if err != nil {
		return false, noResult(err)
	}
	return true, nil
}

// FontList returns the names of the fonts installed on the service.
func (c *Client) FontList(ctx context.Context) ([]string, error) {
	return c.stringList(ctx, "font_list", "/fonts/list", nil)
}

// stringList fetches a JSON array of strings.
func (c *Client) stringList(ctx context.Context, op, path string, query map[string]string) ([]string, error) {
	data, err := c.get(ctx, op, path, query)
	if err != nil || data == nil {
		return nil, err
	}

	items, ok := data.([]any)
	if !ok {
		return nil, nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
