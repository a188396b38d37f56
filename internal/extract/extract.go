// Package extract converts uploaded source documents (PDF, DOCX, plain text)
// into best-effort plain text for the comparison pipeline. Page and paragraph
// boundaries are not guaranteed to survive and downstream code must not rely
// on them.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when no extractor exists for a file's
// extension.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Text extracts plain text from a document, dispatching on the filename
// extension. Legacy binary .doc files are routed through the DOCX extractor:
// real .docx files mislabeled .doc (common in the wild) extract fine, true
// OLE binaries fail with a descriptive error.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx", ".doc":
		return docxText(data)
	case ".txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}
