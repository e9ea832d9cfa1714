package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither PDF nor DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoText is returned when a document parses but contains no extractable text.
	ErrNoText = errors.New("no text content found")
)

// ResumeText extracts the plain text of a resume file. The format is picked
// by extension: .pdf and .docx are supported.
func ResumeText(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return pdfText(path)
	case ".docx":
		return docxText(path)
	default:
		return "", fmt.Errorf("%w: %q (only .pdf and .docx are handled)", ErrUnsupportedFormat, ext)
	}
}

// Supported reports whether the file extension is one the extractor handles.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// CleanText trims the text and collapses blank lines, keeping one line per
// original non-empty line.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
