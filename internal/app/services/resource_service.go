package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/filestorage"
)

// Downloader fetches a remote file by opaque id into a local path.
// Implemented by the drive client.
type Downloader interface {
	DownloadTo(ctx context.Context, fileID, destPath string) error
}

// ResourceService lazily mirrors third-party hosted files into the
// local cache: first request downloads, later requests hit the disk.
type ResourceService struct {
	storage *filestorage.LocalStorage
	files   Downloader
	catalog map[string]string // resource type -> opaque file id
	logger  zerolog.Logger
}

// NewResourceService creates a new ResourceService. catalog maps the
// portal's named resource types to the host's file identifiers.
func NewResourceService(storage *filestorage.LocalStorage, files Downloader, catalog map[string]string, logger zerolog.Logger) *ResourceService {
	return &ResourceService{storage: storage, files: files, catalog: catalog, logger: logger}
}

// FetchByType resolves a named resource type to its file and returns
// the cached path and download filename.
func (s *ResourceService) FetchByType(ctx context.Context, resourceType string) (path, filename string, err error) {
	fileID, ok := s.catalog[resourceType]
	if !ok {
		return "", "", apperrors.NewValidationError("invalid resource type")
	}
	return s.fetch(ctx, fileID, fmt.Sprintf("%s_guide.pdf", resourceType))
}

// FetchByID fetches an arbitrary opaque file id into the cache. The
// cache filename is derived from the id's second hyphen segment, the
// convention the drive catalog uses for its identifiers.
func (s *ResourceService) FetchByID(ctx context.Context, fileID string) (path, filename string, err error) {
	if strings.TrimSpace(fileID) == "" {
		return "", "", apperrors.NewValidationError("file id is required")
	}
	parts := strings.Split(fileID, "-")
	if len(parts) < 2 || parts[1] == "" {
		return "", "", apperrors.NewValidationError("invalid file id")
	}
	return s.fetch(ctx, fileID, fmt.Sprintf("%s_guide.pdf", parts[1]))
}

func (s *ResourceService) fetch(ctx context.Context, fileID, filename string) (string, string, error) {
	if !filestorage.Allowed(filename) {
		return "", "", apperrors.NewValidationError("file type not allowed")
	}

	path := s.storage.PathFor(filename)
	if s.storage.Exists(filename) {
		s.logger.Debug().Str("filename", filename).Msg("resource served from cache")
		return path, filename, nil
	}

	if err := s.files.DownloadTo(ctx, fileID, path); err != nil {
		s.logger.Error().Err(err).Str("fileId", fileID).Msg("resource download failed")
		// A partial file must not be served as a cache hit later
		if rmErr := s.storage.Remove(filename); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("filename", filename).Msg("failed to clear partial download")
		}
		return "", "", fmt.Errorf("failed to download resource: %w", err)
	}

	return path, filename, nil
}
