// Package storage defines where generated documents are written.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/hashicorp-forge/reportingcloud/pkg/document"
)

// Sink persists generated documents.
type Sink interface {
	// Put stores data under name and returns its location (a file path or
	// an object URL).
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// OutputNames returns one object name per generated document. A single
// document is named base plus the extension of format; several are numbered
// from 1, e.g. "invoice-1.pdf", "invoice-2.pdf".
func OutputNames(base, format string, count int) []string {
	ext := document.FileExtension(format)
	base = strings.TrimSuffix(path.Base(base), path.Ext(base))

	if count == 1 {
		return []string{base + ext}
	}
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		names = append(names, fmt.Sprintf("%s-%d%s", base, i, ext))
	}
	return names
}

// CleanName rejects names that would leave the sink's root.
func CleanName(name string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(name, `\`, "/"))[1:]
	if cleaned == "" || cleaned != strings.ReplaceAll(name, `\`, "/") {
		return "", fmt.Errorf("invalid object name: %q", name)
	}
	return cleaned, nil
}

var contentTypes = map[string]string{
	document.FormatBMP:  "image/bmp",
	document.FormatDOC:  "application/msword",
	document.FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	document.FormatGIF:  "image/gif",
	document.FormatHTML: "text/html",
	document.FormatJPG:  "image/jpeg",
	document.FormatPDF:  "application/pdf",
	document.FormatPNG:  "image/png",
	document.FormatRTF:  "application/rtf",
	document.FormatTXT:  "text/plain",
}

// ContentType returns the MIME type for a file name by its extension.
func ContentType(name string) string {
	if ct, ok := contentTypes[document.Extension(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}
