package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studyhub/backend/internal/pkg/logger"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// LocalStorage is an on-disk cache for downloaded resource files.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating
// the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Resource cache directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// PathFor returns the cache path for a filename. The filename is
// sanitized to its base so callers cannot escape the cache root.
func (ls *LocalStorage) PathFor(filename string) string {
	return filepath.Join(ls.basePath, filepath.Base(filename))
}

// Exists reports whether a cached file is present.
func (ls *LocalStorage) Exists(filename string) bool {
	info, err := os.Stat(ls.PathFor(filename))
	return err == nil && !info.IsDir()
}

// Allowed reports whether the file extension is on the allow-list.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Remove deletes a cached file, ignoring files that are already gone.
func (ls *LocalStorage) Remove(filename string) error {
	err := os.Remove(ls.PathFor(filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cached file: %w", err)
	}
	return nil
}
