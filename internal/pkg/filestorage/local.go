package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// WriteFunc streams the content of a stored file
type WriteFunc func(w io.Writer) error

// LocalStorage saves generated files under a base directory.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	logger   zerolog.Logger
}

// NewLocalStorage creates a new LocalStorage instance, creating basePath if needed.
func NewLocalStorage(basePath string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		logger:   logger,
	}, nil
}

// Save writes a file named filename through write and returns its full path.
// Content goes to a temporary file first, so a failed write never leaves a
// partial file under the final name.
func (ls *LocalStorage) Save(filename string, write WriteFunc) (string, error) {
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name: %q", filename)
	}
	dstPath := filepath.Join(ls.basePath, name)

	tmp, err := os.CreateTemp(ls.basePath, "."+name+".*")
	if err != nil {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create temporary file")
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err := os.Rename(tmp.Name(), dstPath); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to move file into place: %w", err)
	}

	ls.logger.Info().Str("path", dstPath).Msg("File saved successfully")
	return dstPath, nil
}

// GetFullPath returns the full filesystem path a file name would be saved under
func (ls *LocalStorage) GetFullPath(filename string) string {
	return filepath.Join(ls.basePath, filepath.Base(filename))
}
