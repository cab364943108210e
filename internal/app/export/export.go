package export

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// Format is an export artifact type
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts pdf, json, yaml and yml, case-insensitively; empty means pdf
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: export format %q", apperrors.ErrUnsupportedFormat, s)
}

// ContentType is the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/pdf"
	}
}

// Exporter writes curricula in any supported format
type Exporter struct {
	ProductName string
	Now         func() time.Time
}

// NewExporter creates an exporter stamping documents with the current time
func NewExporter(productName string) *Exporter {
	return &Exporter{ProductName: productName, Now: time.Now}
}

// Export writes c to w in format f
func (e *Exporter) Export(w io.Writer, f Format, c *models.Curriculum, params models.GenerationParams) error {
	if c == nil {
		return apperrors.ErrNoCurriculum
	}

	switch f {
	case FormatPDF:
		return PDFRenderer{}.Render(w, e.Document(c, params))
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: export format %q", apperrors.ErrUnsupportedFormat, f)
}

// Document builds the report document for c
func (e *Exporter) Document(c *models.Curriculum, params models.GenerationParams) Document {
	return BuildDocument(e.ProductName, c, params, e.Now())
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._+-]+`)

// Filename returns <product>_<branch>_<specialization>.<ext> with characters
// unsafe in file names replaced by '-'
func (e *Exporter) Filename(c *models.Curriculum, f Format) string {
	parts := []string{e.ProductName, c.Branch, c.Specialization}
	for i, p := range parts {
		p = strings.Trim(unsafeName.ReplaceAllString(strings.TrimSpace(p), "-"), "-")
		if p == "" {
			p = "curriculum"
		}
		parts[i] = p
	}
	return strings.Join(parts, "_") + "." + string(f)
}
