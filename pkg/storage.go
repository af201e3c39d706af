package pkg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tiktok-downloader-api/config"
)

// MediaSaver downloads resolved media into the local storage directory.
// Every save gets its own uuid-based filename, so concurrent requests never
// overwrite each other.
type MediaSaver struct {
	client *http.Client
	dir    string
	log    *zap.SugaredLogger
}

func NewMediaSaver(cfg config.Config, client *http.Client, log *zap.SugaredLogger) *MediaSaver {
	return &MediaSaver{
		client: client,
		dir:    cfg.StoragePath,
		log:    log,
	}
}

// Save fetches the media at mediaURL and writes it to a request-scoped file,
// returning the path of the written file.
func (m *MediaSaver) Save(ctx context.Context, mediaURL string) (string, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory %s: %w", m.dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	path := filepath.Join(m.dir, uuid.New().String()+".mp4")

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create media file %s: %w", path, err)
	}
	defer file.Close()

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	m.log.Infow("media saved", "path", path, "bytes", written)
	return path, nil
}
