// Package textextract pulls plain text out of uploaded curriculum documents.
package textextract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"

	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

var pdfMagic = []byte("%PDF-")

// Extract returns the text of a PDF or UTF-8 text file. PDFs are detected
// by content, not by extension.
func Extract(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("empty file: %s", name))
	}

	if bytes.HasPrefix(data, pdfMagic) {
		return extractPDF(data)
	}

	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "", fmt.Errorf("%w: %s is not a valid PDF", apperrors.ErrUnsupportedFormat, name)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not UTF-8 text", apperrors.ErrUnsupportedFormat, name)
	}
	return collapseWhitespace(string(data)), nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return collapseWhitespace(string(b)), nil
}

var (
	spaces     = regexp.MustCompile(`[ \t\f\v]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaces.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
