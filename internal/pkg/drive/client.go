// Package drive is a thin client for the third-party file host the
// portal proxies resource downloads from. The host is a black box:
// files are addressed by an opaque identifier and fetched over plain
// HTTP, with no retries.
package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/studyhub/backend/internal/pkg/logger"
)

// Client downloads files by opaque identifier.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given host base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// DownloadTo fetches the file identified by fileID into destPath.
// A partially written file is removed on failure so the cache never
// holds truncated downloads.
func (c *Client) DownloadTo(ctx context.Context, fileID, destPath string) error {
	downloadURL := fmt.Sprintf("%s/uc?id=%s", c.baseURL, url.QueryEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("file host returned status %d for file %s", resp.StatusCode, fileID)
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		dst.Close()
		if rmErr := os.Remove(destPath); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", destPath).Msg("Failed to remove partial download")
		}
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	logger.Info().Str("fileId", fileID).Str("path", destPath).Msg("Resource downloaded to cache")
	return nil
}
