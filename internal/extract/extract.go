// Package extract pulls plain text out of résumé files ahead of indexing.
// Plain text and Markdown pass through untouched; PDFs go through layout
// extraction. Downstream normalization handles whatever whitespace artifacts
// the extraction leaves behind.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextFromFile returns the plain text of a résumé file, dispatching on the
// file extension. Unrecognized extensions are read as plain text.
func TextFromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return textFromPDF(path)
	default:
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}
}

func textFromPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from PDF %s: %w", path, err)
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, content); err != nil {
		return "", fmt.Errorf("failed to read PDF text from %s: %w", path, err)
	}
	return buf.String(), nil
}
