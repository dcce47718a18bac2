package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "lower case", filename: "invoice.tx", want: "TX"},
		{name: "upper case", filename: "INVOICE.DOCX", want: "DOCX"},
		{name: "nested path", filename: "/tmp/templates/sample.rtf", want: "RTF"},
		{name: "dot in directory", filename: "/tmp/v1.2/sample", want: ""},
		{name: "trailing dot", filename: "sample.", want: ""},
		{name: "windows path", filename: `C:\docs\letter.doc`, want: "DOC"},
		{name: "no extension", filename: "README", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.filename))
		})
	}
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".pdf", FileExtension("PDFA"))
	assert.Equal(t, ".pdf", FileExtension("pdf"))
	assert.Equal(t, ".docx", FileExtension("DOCX"))
	assert.Equal(t, ".png", FileExtension("PNG"))
}

func TestDividers(t *testing.T) {
	assert.Equal(t, []Divider{1, 2, 3}, Dividers)

	for _, d := range Dividers {
		parsed, ok := ParseDivider(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}

	_, ok := ParseDivider("page-break")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Divider(0).String())
}
