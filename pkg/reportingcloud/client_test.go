package reportingcloud

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rcassert "github.com/hashicorp-forge/reportingcloud/pkg/assert"
	"github.com/hashicorp-forge/reportingcloud/pkg/builder"
	"github.com/hashicorp-forge/reportingcloud/pkg/document"
)

// stubTransport records requests and answers each with the same response.
type stubTransport struct {
	requests []*Request
	response *Response
	err      error
}

func (s *stubTransport) Send(_ context.Context, req *Request) (*Response, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubTransport) last(t *testing.T) *Request {
	t.Helper()
	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

type testClient struct {
	*Client
	stub     *stubTransport
	fs       afero.Fs
	failures []*OperationError
}

func newTestClient(t *testing.T, status int, body string) *testClient {
	t.Helper()

	tc := &testClient{
		stub: &stubTransport{response: &Response{StatusCode: status, Body: []byte(body)}},
		fs:   afero.NewMemMapFs(),
	}
	client, err := NewClient(&Config{
		Transport: tc.stub,
		Fs:        tc.fs,
		OnOperationFailure: func(e *OperationError) {
			tc.failures = append(tc.failures, e)
		},
	})
	require.NoError(t, err)
	tc.Client = client
	return tc
}

func (tc *testClient) writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(tc.fs, name, []byte(content), 0o644))
}

func decodeBody(t *testing.T, req *Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	return body
}

func TestDeleteTemplate(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		tc := newTestClient(t, http.StatusNoContent, "")

		ok, err := tc.DeleteTemplate(context.Background(), "sample_invoice.tx")
		require.NoError(t, err)
		assert.True(t, ok)

		req := tc.stub.last(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/v1/templates/delete", req.Path)
		assert.Equal(t, map[string]string{"templateName": "sample_invoice.tx"}, req.Query)
		assert.Empty(t, req.Body)
		assert.Empty(t, tc.failures)
	})

	t.Run("not found", func(t *testing.T) {
		tc := newTestClient(t, http.StatusNotFound, `{"message":"template not found"}`)

		ok, err := tc.DeleteTemplate(context.Background(), "sample_invoice.tx")
		require.NoError(t, err)
		assert.False(t, ok)

		require.Len(t, tc.failures, 1)
		assert.Equal(t, "delete_template", tc.failures[0].Operation)
		assert.Equal(t, http.StatusNotFound, tc.failures[0].StatusCode)
		assert.Contains(t, tc.failures[0].Message, "template not found")
	})

	t.Run("invalid name", func(t *testing.T) {
		tc := newTestClient(t, http.StatusNoContent, "")

		ok, err := tc.DeleteTemplate(context.Background(), "../sample_invoice.tx")
		require.Error(t, err)
		assert.True(t, rcassert.IsInvalidArgument(err))
		assert.False(t, ok)
		assert.Empty(t, tc.stub.requests)
	})
}

func TestMergeDocument(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `["QQ==","Qg=="]`)
	appendDocs := false

	docs, err := tc.MergeDocument(context.Background(), MergeRequest{
		MergeData:    []map[string]any{{"name": "A"}, {"name": "B"}},
		ReturnFormat: "pdf",
		Template:     builder.TemplateReference{Name: "sample_invoice.tx"},
		Append:       &appendDocs,
		MergeSettings: map[string]any{
			"remove_empty_blocks": true,
			"unknown_key":         "x",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("A"), []byte("B")}, docs)

	req := tc.stub.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/document/merge", req.Path)
	assert.Equal(t, map[string]string{
		"returnFormat": "PDF",
		"templateName": "sample_invoice.tx",
		"append":       "false",
	}, req.Query)
	assert.Equal(t, "application/json", req.Header["Content-Type"])

	body := decodeBody(t, req)
	assert.Equal(t, map[string]any{"removeEmptyBlocks": true}, body["mergeSettings"])
	assert.Len(t, body["mergeData"], 2)
	assert.NotContains(t, body, "template")
}

func TestMergeDocumentWithTemplateFile(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `["QQ=="]`)
	tc.writeFile(t, "/templates/invoice.tx", "template")

	docs, err := tc.MergeDocument(context.Background(), MergeRequest{
		MergeData:    map[string]any{"name": "A"},
		ReturnFormat: "DOCX",
		Template:     builder.TemplateReference{Filename: "/templates/invoice.tx"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	req := tc.stub.last(t)
	assert.NotContains(t, req.Query, "templateName")
	assert.NotContains(t, req.Query, "append")

	body := decodeBody(t, req)
	assert.Equal(t, "dGVtcGxhdGU=", body["template"])
	assert.NotContains(t, body, "mergeSettings")
}

func TestMergeDocumentFailures(t *testing.T) {
	t.Run("operation error", func(t *testing.T) {
		tc := newTestClient(t, http.StatusBadRequest, "Template not found")

		docs, err := tc.MergeDocument(context.Background(), MergeRequest{
			MergeData:    []any{},
			ReturnFormat: "PDF",
			Template:     builder.TemplateReference{Name: "missing.tx"},
		})
		require.Error(t, err)
		assert.Nil(t, docs)

		var opErr *OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "merge_document", opErr.Operation)
		assert.Equal(t, http.StatusBadRequest, opErr.StatusCode)
		assert.Equal(t, "Template not found", opErr.Message)
		assert.Len(t, tc.failures, 1)
	})

	t.Run("invalid input", func(t *testing.T) {
		tc := newTestClient(t, http.StatusOK, "[]")

		inputs := []MergeRequest{
			{MergeData: "not an array", ReturnFormat: "PDF"},
			{MergeData: []any{}, ReturnFormat: "XLS"},
			{MergeData: []any{}, ReturnFormat: "PDF", Template: builder.TemplateReference{Name: "a.tx", Filename: "/a.tx"}},
			{MergeData: []any{}, ReturnFormat: "PDF", MergeSettings: map[string]any{"remove_empty_fields": "yes"}},
		}
		for _, in := range inputs {
			_, err := tc.MergeDocument(context.Background(), in)
			require.Error(t, err)
			assert.True(t, rcassert.IsInvalidArgument(err))
		}
		assert.Empty(t, tc.stub.requests)
	})

	t.Run("empty array", func(t *testing.T) {
		tc := newTestClient(t, http.StatusOK, "[]")

		docs, err := tc.MergeDocument(context.Background(), MergeRequest{MergeData: []any{}, ReturnFormat: "PDF"})
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})
}

func TestTransportErrorIsReturnedVerbatim(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, "")
	sentinel := errors.New("connection refused")
	tc.stub.err = sentinel

	_, err := tc.TemplateList(context.Background())
	assert.Same(t, sentinel, err)

	ok, err := tc.DeleteTemplate(context.Background(), "a.tx")
	assert.Same(t, sentinel, err)
	assert.False(t, ok)

	_, err = tc.MergeDocument(context.Background(), MergeRequest{MergeData: []any{}, ReturnFormat: "PDF"})
	assert.Same(t, sentinel, err)
}

func TestTemplateList(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `[
		{"templateName":"sample_invoice.tx","modified":"2016-06-03T12:12:57+00:00","size":4096},
		{"templateName":"letter.docx","modified":"2016-06-03T12:12:58","size":10}
	]`)

	list, err := tc.TemplateList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TemplateListEntry{
		{TemplateName: "sample_invoice.tx", Modified: 1464955977, Size: 4096},
		{TemplateName: "letter.docx", Modified: 1464955978, Size: 10},
	}, list)

	req := tc.stub.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/v1/templates/list", req.Path)
}

func TestTemplateListNoResult(t *testing.T) {
	tc := newTestClient(t, http.StatusInternalServerError, "")

	list, err := tc.TemplateList(context.Background())
	require.NoError(t, err)
	assert.Nil(t, list)
	require.Len(t, tc.failures, 1)
	assert.Equal(t, "Internal Server Error", tc.failures[0].Message)

	tc = newTestClient(t, http.StatusOK, "[]")
	list, err = tc.TemplateList(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTemplateCounts(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, "5")

	count, ok, err := tc.TemplateCount(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, count)

	count, ok, err = tc.TemplatePageCount(context.Background(), "sample_invoice.tx")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, count)
	assert.Equal(t, "/v1/templates/pagecount", tc.stub.last(t).Path)

	tc = newTestClient(t, http.StatusUnauthorized, "")
	count, ok, err = tc.TemplateCount(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, count)
}

func TestTemplateExists(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, "true")
	exists, err := tc.TemplateExists(context.Background(), "sample_invoice.tx")
	require.NoError(t, err)
	assert.True(t, exists)

	tc = newTestClient(t, http.StatusOK, "false")
	exists, err = tc.TemplateExists(context.Background(), "sample_invoice.tx")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTemplateInfo(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `{
		"templateName": "sample_invoice.tx",
		"mergeBlocks": [
			{"name": "items", "mergeFields": [{"name": "qty", "numericFormat": "0.00", "preserveFormatting": true}], "mergeBlocks": []}
		],
		"mergeFields": [
			{"name": "customer", "text": "«customer»", "textBefore": "", "textAfter": "", "dateTimeFormat": ""}
		],
		"userDocumentProperties": [{"name": "Company", "type": "string", "value": "Text Control"}]
	}`)

	info, err := tc.TemplateInfo(context.Background(), "sample_invoice.tx")
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, "sample_invoice.tx", info.TemplateName)
	require.Len(t, info.MergeBlocks, 1)
	assert.Equal(t, "items", info.MergeBlocks[0].Name)
	assert.Equal(t, []MergeField{{Name: "qty", NumericFormat: "0.00", PreserveFormatting: true}}, info.MergeBlocks[0].MergeFields)
	require.Len(t, info.MergeFields, 1)
	assert.Equal(t, "«customer»", info.MergeFields[0].Text)
	assert.Equal(t, []UserDocumentProperty{{Name: "Company", Type: "string", Value: "Text Control"}}, info.UserDocumentProperties)
}

func TestTemplateThumbnails(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `["QQ==","Qg==","Qw=="]`)

	images, err := tc.TemplateThumbnails(context.Background(), "sample_invoice.tx", 100, 1, 3, "png")
	require.NoError(t, err)
	assert.Len(t, images, 3)
	assert.Equal(t, map[string]string{
		"templateName": "sample_invoice.tx",
		"zoomFactor":   "100",
		"fromPage":     "1",
		"toPage":       "3",
		"imageFormat":  "PNG",
	}, tc.stub.last(t).Query)

	_, err = tc.TemplateThumbnails(context.Background(), "sample_invoice.tx", 500, 1, 1, "PNG")
	assert.True(t, rcassert.IsInvalidArgument(err))
	_, err = tc.TemplateThumbnails(context.Background(), "sample_invoice.tx", 100, 0, 1, "PNG")
	assert.True(t, rcassert.IsInvalidArgument(err))
	_, err = tc.TemplateThumbnails(context.Background(), "sample_invoice.tx", 100, 1, 1, "TIFF")
	assert.True(t, rcassert.IsInvalidArgument(err))
}

func TestThumbnailsRejectReversedPageRange(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `["QQ=="]`)
	tc.writeFile(t, "/docs/a.pdf", "A")

	_, err := tc.TemplateThumbnails(context.Background(), "sample_invoice.tx", 100, 3, 1, "PNG")
	require.Error(t, err)
	assert.True(t, rcassert.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "must not be less than fromPage")

	_, err = tc.DocumentThumbnails(context.Background(), "/docs/a.pdf", 100, 2, 1, "PNG")
	require.Error(t, err)
	assert.True(t, rcassert.IsInvalidArgument(err))

	assert.Empty(t, tc.stub.requests)
}

func TestDownloadTemplate(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `"AAEA/w=="`)

	data, err := tc.DownloadTemplate(context.Background(), "sample_invoice.tx")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0xff}, data)

	tc = newTestClient(t, http.StatusNotFound, "")
	data, err = tc.DownloadTemplate(context.Background(), "sample_invoice.tx")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestUploadTemplate(t *testing.T) {
	tc := newTestClient(t, http.StatusCreated, "")
	tc.writeFile(t, "/local/dir/sample_invoice.tx", "template")

	ok, err := tc.UploadTemplate(context.Background(), "/local/dir/sample_invoice.tx")
	require.NoError(t, err)
	assert.True(t, ok)

	req := tc.stub.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/templates/upload", req.Path)
	assert.Equal(t, map[string]string{"templateName": "sample_invoice.tx"}, req.Query)
	assert.JSONEq(t, `"dGVtcGxhdGU="`, string(req.Body))

	_, err = tc.UploadTemplate(context.Background(), "/local/dir/missing.tx")
	assert.True(t, rcassert.IsInvalidArgument(err))
	_, err = tc.UploadTemplate(context.Background(), "/local/dir/sample.pdf")
	assert.True(t, rcassert.IsInvalidArgument(err))
}

func TestUploadTemplateFromBase64(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, "")

	ok, err := tc.UploadTemplateFromBase64(context.Background(), "dGVtcGxhdGU=", "sample_invoice.tx")
	require.NoError(t, err)
	assert.False(t, ok, "200 is not the created status")

	_, err = tc.UploadTemplateFromBase64(context.Background(), "***", "sample_invoice.tx")
	assert.True(t, rcassert.IsInvalidArgument(err))
}

func TestConvertDocument(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `"JVBERg=="`)
	tc.Client.config.Test = true
	tc.writeFile(t, "/docs/letter.docx", "docx")

	data, err := tc.ConvertDocument(context.Background(), "/docs/letter.docx", "pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)

	req := tc.stub.last(t)
	assert.Equal(t, "/v1/document/convert", req.Path)
	assert.Equal(t, map[string]string{"returnFormat": "PDF", "test": "true"}, req.Query)
	assert.JSONEq(t, `"ZG9jeA=="`, string(req.Body))

	tc.stub.response = &Response{StatusCode: http.StatusBadRequest}
	_, err = tc.ConvertDocument(context.Background(), "/docs/letter.docx", "pdf")
	assert.True(t, IsOperationError(err))
}

func TestFindAndReplace(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `"QQ=="`)

	data, err := tc.FindAndReplace(context.Background(), FindAndReplaceRequest{
		Data:         builder.NewFindAndReplaceData("%%A%%", "1", "%%B%%", "2"),
		ReturnFormat: "TX",
		Template:     builder.TemplateReference{Name: "sample_invoice.tx"},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("A"), data)

	req := tc.stub.last(t)
	assert.Equal(t, "/v1/document/findandreplace", req.Path)
	assert.JSONEq(t, `{"findAndReplaceData":[["%%A%%","1"],["%%B%%","2"]]}`, string(req.Body))

	_, err = tc.FindAndReplace(context.Background(), FindAndReplaceRequest{ReturnFormat: "TX"})
	assert.True(t, rcassert.IsInvalidArgument(err))
}

func TestAppendDocuments(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `"QQ=="`)
	tc.writeFile(t, "/docs/a.docx", "A")
	tc.writeFile(t, "/docs/b.docx", "B")

	data, err := tc.AppendDocuments(context.Background(), AppendRequest{
		Documents: []builder.DocumentEntry{
			{Filename: "/docs/a.docx"},
			{Filename: "/docs/b.docx", Divider: document.DividerNewParagraph},
		},
		ReturnFormat:     "PDF",
		DocumentSettings: map[string]any{"document_title": "Combined"},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("A"), data)

	req := tc.stub.last(t)
	assert.Equal(t, "/v1/document/append", req.Path)
	assert.JSONEq(t, `{
		"documents": [{"document":"QQ=="},{"document":"Qg==","documentDivider":2}],
		"documentSettings": {"documentTitle":"Combined"}
	}`, string(req.Body))
}

func TestDocumentThumbnails(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `["QQ=="]`)
	tc.writeFile(t, "/docs/a.pdf", "A")

	images, err := tc.DocumentThumbnails(context.Background(), "/docs/a.pdf", 50, 1, 1, "JPG")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("A")}, images)
	assert.Equal(t, "/v1/document/thumbnails", tc.stub.last(t).Path)
	assert.JSONEq(t, `"QQ=="`, string(tc.stub.last(t).Body))
}

func TestAccountSettings(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `{
		"serialNumber": "TXRPT-ABCDE",
		"createdDocuments": 12,
		"uploadedTemplates": 3,
		"maxDocuments": 1000,
		"maxTemplates": 50,
		"validUntil": "2016-06-03T12:12:57+00:00",
		"proofingTransactions": 1,
		"maxProofingTransactions": 100
	}`)

	settings, err := tc.AccountSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &AccountSettings{
		SerialNumber:            "TXRPT-ABCDE",
		CreatedDocuments:        12,
		UploadedTemplates:       3,
		MaxDocuments:            1000,
		MaxTemplates:            50,
		ValidUntil:              1464955977,
		ProofingTransactions:    1,
		MaxProofingTransactions: 100,
	}, settings)

	tc = newTestClient(t, http.StatusForbidden, "")
	settings, err = tc.AccountSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestAPIKeys(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `[{"key":"abcdefghij0123456789","active":true}]`)

	keys, err := tc.APIKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []APIKey{{Key: "abcdefghij0123456789", Active: true}}, keys)

	tc = newTestClient(t, http.StatusCreated, `"abcdefghij0123456789"`)
	key, err := tc.CreateAPIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij0123456789", key)

	tc = newTestClient(t, http.StatusOK, "")
	ok, err := tc.DeleteAPIKey(context.Background(), "abcdefghij0123456789")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"key": "abcdefghij0123456789"}, tc.stub.last(t).Query)

	_, err = tc.DeleteAPIKey(context.Background(), "short")
	assert.True(t, rcassert.IsInvalidArgument(err))
}

func TestTrackedChanges(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `[
		{"id": 7, "changeKind": 1, "changeTime": "2016-06-03T12:12:57+00:00", "userName": "jane", "text": "new", "start": 10, "length": 3}
	]`)
	tc.writeFile(t, "/docs/review.docx", "doc")

	changes, err := tc.TrackedChanges(context.Background(), "/docs/review.docx")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, 7, changes[0].ID)
	assert.Equal(t, "1", changes[0].ChangeKind)
	assert.Equal(t, int64(1464955977), changes[0].ChangeTime)
	assert.Equal(t, "jane", changes[0].Username)
	assert.Equal(t, "/v1/processing/review/trackedchanges", tc.stub.last(t).Path)

	tc.stub.response = &Response{StatusCode: http.StatusOK, Body: []byte(`{"document":"QQ==","removed":true}`)}
	doc, removed, err := tc.RemoveTrackedChange(context.Background(), "/docs/review.docx", 7, true)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []byte("A"), doc)
	assert.Equal(t, map[string]string{"id": "7", "accept": "true"}, tc.stub.last(t).Query)

	tc.stub.response = &Response{StatusCode: http.StatusBadRequest}
	doc, removed, err = tc.RemoveTrackedChange(context.Background(), "/docs/review.docx", 7, false)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Nil(t, doc)
}

func TestProofing(t *testing.T) {
	tc := newTestClient(t, http.StatusOK, `["en_US.dic","de_DE_frami.dic"]`)

	dicts, err := tc.AvailableDictionaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"en_US.dic", "de_DE_frami.dic"}, dicts)

	tc.stub.response = &Response{StatusCode: http.StatusOK, Body: []byte(`["house","horse"]`)}
	suggestions, err := tc.ProofingSuggestions(context.Background(), "hous", "en_US.dic", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"house", "horse"}, suggestions)
	assert.Equal(t, map[string]string{"word": "hous", "language": "en_US.dic", "max": "10"}, tc.stub.last(t).Query)

	_, err = tc.ProofingSuggestions(context.Background(), "hous", "klingon.dic", 10)
	assert.True(t, rcassert.IsInvalidArgument(err))

	tc.stub.response = &Response{StatusCode: http.StatusOK, Body: []byte(`[{"length":4,"start":0,"text":"Thsi","isDuplicate":false,"language":"en_US.dic"}]`)}
	words, err := tc.CheckText(context.Background(), "Thsi is a test", "en_US.dic")
	require.NoError(t, err)
	assert.Equal(t, []IncorrectWord{{Length: 4, Start: 0, Text: "Thsi", Language: "en_US.dic"}}, words)

	tc.stub.response = &Response{StatusCode: http.StatusOK, Body: []byte(`["Arial","Verdana"]`)}
	fonts, err := tc.FontList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Arial", "Verdana"}, fonts)
	assert.Equal(t, "/v1/fonts/list", tc.stub.last(t).Path)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "abcdefghij0123456789"
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Username = "user"
	cfg.Password = "secret"
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.BaseURI = "https://api.example.com"
	cfg.Version = "1"
	cfg.MaxRetries = -1
	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.True(t, rcassert.IsInvalidArgument(err))
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(&Config{APIKey: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reportingcloud config")

	client, err := NewClient(&Config{APIKey: "abcdefghij0123456789"})
	require.NoError(t, err)
	assert.IsType(t, &HTTPTransport{}, client.transport)
	assert.Equal(t, 1, client.Registry().Version)
}

func TestNewClientLeavesConfigUntouched(t *testing.T) {
	cfg := &Config{APIKey: "abcdefghij0123456789"}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	assert.Equal(t, &Config{APIKey: "abcdefghij0123456789"}, cfg)

	assert.Equal(t, DefaultBaseURI, client.config.BaseURI)
	assert.Equal(t, DefaultVersion, client.config.Version)
	assert.Equal(t, DefaultTimeout, client.config.Timeout)
	assert.NotNil(t, client.config.Logger)
	assert.NotNil(t, client.config.Fs)
}
