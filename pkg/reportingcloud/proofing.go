package reportingcloud

import (
	"context"
	"strconv"

	"github.com/hashicorp-forge/reportingcloud/pkg/assert"
)

// AvailableDictionaries lists the dictionaries the proofing service has
// installed, e.g. "en_US.dic".
func (c *Client) AvailableDictionaries(ctx context.Context) ([]string, error) {
	return c.stringList(ctx, "available_dictionaries", "/proofing/availabledictionaries", nil)
}

// ProofingSuggestions returns at most limit spelling suggestions for word.
func (c *Client) ProofingSuggestions(ctx context.Context, word, language string, limit int) ([]string, error) {
	if err := assert.Language(language); err != nil {
		return nil, err
	}
	if err := assert.Range(limit, 1, 100); err != nil {
		return nil, err
	}

	return c.stringList(ctx, "proofing_suggestions", "/proofing/suggestions", map[string]string{
		"word":     word,
		"language": language,
		"max":      strconv.Itoa(limit),
	})
}

// CheckText spell checks text and returns the incorrect words.
func (c *Client) CheckText(ctx context.Context, text, language string) ([]IncorrectWord, error) {
	if err := assert.Language(language); err != nil {
		return nil, err
	}

	var out []IncorrectWord
	ok, err := c.records(ctx, "check_text", "/proofing/check", map[string]string{
		"text":     text,
		"language": language,
	}, c.registry.IncorrectWord, &out)
	if err != nil || !ok {
		return nil, err
	}
	if out == nil {
		out = []IncorrectWord{}
	}
	return out, nil
}
