package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/filestorage"
)

type fakeDownloader struct {
	calls   int
	content string
	err     error
	// failOnce makes only the first call write a partial file and fail
	failOnce bool
}

func (d *fakeDownloader) DownloadTo(ctx context.Context, fileID, destPath string) error {
	d.calls++
	if d.failOnce && d.calls == 1 {
		if err := os.WriteFile(destPath, []byte("trunc"), 0o644); err != nil {
			return err
		}
		return errors.New("connection reset")
	}
	if d.err != nil {
		return d.err
	}
	return os.WriteFile(destPath, []byte(d.content), 0o644)
}

func newTestResourceService(t *testing.T, downloader *fakeDownloader) *ResourceService {
	t.Helper()
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	catalog := map[string]string{"python": "17-abc123"}
	return NewResourceService(storage, downloader, catalog, zerolog.Nop())
}

func TestFetchByTypeDownloadsOnce(t *testing.T) {
	downloader := &fakeDownloader{content: "pdf bytes"}
	svc := newTestResourceService(t, downloader)
	ctx := context.Background()

	path, filename, err := svc.FetchByType(ctx, "python")
	require.NoError(t, err)
	assert.Equal(t, "python_guide.pdf", filename)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))

	// Second fetch is served from cache
	_, _, err = svc.FetchByType(ctx, "python")
	require.NoError(t, err)
	assert.Equal(t, 1, downloader.calls)
}

func TestFetchByTypeUnknown(t *testing.T) {
	svc := newTestResourceService(t, &fakeDownloader{})

	_, _, err := svc.FetchByType(context.Background(), "cooking")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestFetchByTypeDownloadFailure(t *testing.T) {
	downloader := &fakeDownloader{err: errors.New("host unreachable")}
	svc := newTestResourceService(t, downloader)

	_, _, err := svc.FetchByType(context.Background(), "python")
	assert.Error(t, err)
}

func TestFetchRetriesAfterPartialDownload(t *testing.T) {
	downloader := &fakeDownloader{content: "pdf bytes", failOnce: true}
	svc := newTestResourceService(t, downloader)
	ctx := context.Background()

	// First attempt leaves a partial file behind and fails
	_, _, err := svc.FetchByType(ctx, "python")
	require.Error(t, err)

	// The partial file must not satisfy the next fetch as a cache hit
	path, _, err := svc.FetchByType(ctx, "python")
	require.NoError(t, err)
	assert.Equal(t, 2, downloader.calls)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))
}

func TestFetchByID(t *testing.T) {
	downloader := &fakeDownloader{content: "guide"}
	svc := newTestResourceService(t, downloader)
	ctx := context.Background()

	_, filename, err := svc.FetchByID(ctx, "17-python")
	require.NoError(t, err)
	assert.Equal(t, "python_guide.pdf", filename)

	tests := []struct {
		name   string
		fileID string
	}{
		{name: "empty id", fileID: ""},
		{name: "blank id", fileID: "   "},
		{name: "no hyphen segment", fileID: "plainid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.FetchByID(ctx, tt.fileID)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}
