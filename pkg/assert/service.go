package assert

import (
	"net/url"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"
)

// BaseHost is the service host every base URI must point at (or below).
const BaseHost = "api.reporting.cloud"

const (
	APIKeyMinLength = 20
	APIKeyMaxLength = 45
)

var (
	apiKeyPattern  = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	culturePattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)
)

// APIKey asserts that v looks like a ReportingCloud API key.
func APIKey(v string, message ...string) error {
	err := validation.Validate(v,
		validation.Required,
		validation.Length(APIKeyMinLength, APIKeyMaxLength),
		validation.Match(apiKeyPattern),
	)
	if err != nil {
		return fail(v, err, "API key must be %s to %s alphanumeric characters", message,
			APIKeyMinLength, APIKeyMaxLength)
	}
	return nil
}

// BaseURI asserts that v is an absolute http(s) URL whose host is
// api.reporting.cloud or one of its subdomains.
func BaseURI(v string, message ...string) error {
	const def = `Expected base URI to end in "api.reporting.cloud". Got %s`

	if err := validation.Validate(v, validation.Required); err != nil {
		return fail(v, err, def, message, v)
	}

	u, err := url.Parse(v)
	if err != nil {
		return fail(v, err, def, message, v)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fail(v, nil, def, message, v)
	}

	host := strings.ToLower(u.Hostname())
	if host != BaseHost && !strings.HasSuffix(host, "."+BaseHost) {
		return fail(v, nil, def, message, v)
	}
	return nil
}

// Culture asserts that v is a locale tag such as "de-DE".
func Culture(v string, message ...string) error {
	err := validation.Validate(v,
		validation.Required,
		validation.Match(culturePattern),
	)
	if err == nil {
		_, err = language.Parse(v)
	}
	if err != nil {
		return fail(v, err, "%s contains an unsupported culture", message, v)
	}
	return nil
}

// TemplateName asserts that v is a bare template file name (no directory)
// with a template extension.
func TemplateName(v string, message ...string) error {
	err := validation.Validate(v,
		validation.Required,
		validation.By(func(any) error {
			if strings.ContainsAny(v, `/\`) || v == "." || v == ".." {
				return validation.NewError("template_name_path", "must not contain a path")
			}
			return nil
		}),
	)
	if err != nil {
		return fail(v, err, "%s contains an illegal template name", message, v)
	}
	if err := TemplateExtension(v); err != nil {
		return fail(v, err, "%s contains an unsupported template extension", message, v)
	}
	return nil
}

