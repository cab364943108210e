package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/yigit/curricuforge/internal/app/export"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/filestorage"
)

// loadCurriculum reads a curriculum saved as JSON or YAML. YAML is chosen by
// the .yaml/.yml extension.
func loadCurriculum(path string) (*models.Curriculum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc models.CurriculumDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		mode := doc.Mode
		if !mode.Valid() {
			mode = models.ModeExternal
			if doc.HasAccreditation() {
				mode = models.ModeInstitutional
			}
		}
		return doc.Curriculum(mode), nil
	default:
		var c models.Curriculum
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return &c, nil
	}
}

// parseFormats splits a comma separated format list, dropping duplicates
func parseFormats(list string) ([]export.Format, error) {
	var out []export.Format
	seen := map[export.Format]bool{}
	for _, s := range strings.Split(list, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		f, err := export.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = append(out, export.FormatPDF)
	}
	return out, nil
}

// writeArtifacts renders c in every format concurrently into dir and
// returns the written paths in format order
func writeArtifacts(ctx context.Context, e *export.Exporter, store *filestorage.LocalStorage, formats []export.Format, c *models.Curriculum, params models.GenerationParams) ([]string, error) {
	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := store.Save(e.Filename(c, f), func(w io.Writer) error {
				return e.Export(w, f, c, params)
			})
			if err != nil {
				return fmt.Errorf("export %s: %w", f, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
