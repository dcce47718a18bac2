package assert

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/pkg/document"
)

// FilenameExists asserts that filename names a readable regular file on fsys.
func FilenameExists(fsys afero.Fs, filename string, message ...string) error {
	info, err := fsys.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(filename, err, "%s does not exist", message, filename)
		}
		return fail(filename, err, "%s cannot be accessed", message, filename)
	}
	if !info.Mode().IsRegular() {
		return fail(filename, nil, "%s is not a regular file", message, filename)
	}

	f, err := fsys.Open(filename)
	if err != nil {
		return fail(filename, err, "%s is not readable", message, filename)
	}
	_ = f.Close()

	return nil
}

// DocumentExtension asserts that filename has an extension accepted for
// documents to convert or append.
func DocumentExtension(filename string, message ...string) error {
	return extension(filename, document.DocumentFormats, message)
}

// TemplateExtension asserts that filename has a template extension.
func TemplateExtension(filename string, message ...string) error {
	return extension(filename, document.TemplateFormats, message)
}

// DocumentThumbnailExtension asserts that filename has an extension the
// service can render thumbnails for.
func DocumentThumbnailExtension(filename string, message ...string) error {
	return extension(filename, document.ThumbnailDocumentFormats, message)
}

func extension(filename string, allowed []string, message []string) error {
	if !slices.Contains(allowed, document.Extension(filename)) {
		return fail(filename, nil, "%s contains an unsupported file extension", message, filename)
	}
	return nil
}
