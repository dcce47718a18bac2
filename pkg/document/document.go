// Package document declares the closed value sets understood by the
// ReportingCloud service: file formats and document dividers.
package document

import "strings"

// Divider controls how the service concatenates appended documents.
type Divider int

// Document dividers. The zero value means "no divider given".
const (
	DividerNone         Divider = 1
	DividerNewParagraph Divider = 2
	DividerNewSection   Divider = 3
)

// Dividers is the complete set of document dividers, in declaration order.
var Dividers = []Divider{
	DividerNone,
	DividerNewParagraph,
	DividerNewSection,
}

func (d Divider) String() string {
	switch d {
	case DividerNone:
		return "none"
	case DividerNewParagraph:
		return "new-paragraph"
	case DividerNewSection:
		return "new-section"
	default:
		return "unknown"
	}
}

// ParseDivider resolves a divider by its String name.
func ParseDivider(name string) (Divider, bool) {
	for _, d := range Dividers {
		if d.String() == strings.ToLower(name) {
			return d, true
		}
	}
	return 0, false
}

// Format names as the service spells them.
const (
	FormatBMP  = "BMP"
	FormatDOC  = "DOC"
	FormatDOCX = "DOCX"
	FormatGIF  = "GIF"
	FormatHTML = "HTML"
	FormatJPG  = "JPG"
	FormatPDF  = "PDF"
	FormatPDFA = "PDFA"
	FormatPNG  = "PNG"
	FormatRTF  = "RTF"
	FormatTX   = "TX"
	FormatTXT  = "TXT"
)

var (
	// TemplateFormats are the formats accepted for templates.
	TemplateFormats = []string{FormatDOC, FormatDOCX, FormatRTF, FormatTX}

	// DocumentFormats are the formats accepted as documents to convert or append.
	DocumentFormats = []string{FormatDOC, FormatDOCX, FormatHTML, FormatPDF, FormatRTF, FormatTX}

	// ThumbnailDocumentFormats are the formats accepted for document thumbnails.
	ThumbnailDocumentFormats = []string{FormatDOC, FormatDOCX, FormatHTML, FormatPDF, FormatRTF, FormatTX}

	// ReturnFormats are the formats the service can render to.
	ReturnFormats = []string{FormatDOC, FormatDOCX, FormatHTML, FormatPDF, FormatPDFA, FormatRTF, FormatTX, FormatTXT}

	// ImageFormats are the formats thumbnails can be rendered as.
	ImageFormats = []string{FormatBMP, FormatGIF, FormatJPG, FormatPNG}
)

// Extension returns the upper-cased extension of filename without its dot,
// or "" if the name has none.
func Extension(filename string) string {
	base := filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToUpper(base[i+1:])
}

// FileExtension returns the conventional lower-case file extension (with
// dot) for a return format, e.g. ".pdf" for PDFA.
func FileExtension(format string) string {
	switch strings.ToUpper(format) {
	case FormatPDFA:
		return ".pdf"
	case FormatJPG:
		return ".jpg"
	default:
		return "." + strings.ToLower(format)
	}
}
