package pkg

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"tiktok-downloader-api/config"
	"tiktok-downloader-api/models"
)

// Pages can be large but a video page should never exceed this
const maxPageBytes = 20 << 20

// Extractor runs the extraction pipeline for one URL: validation, redirect
// resolution, page fetch, metadata parse and the watermark-free strategy
// chain. It holds no per-request state, so a single instance serves
// concurrent requests.
type Extractor struct {
	client     *http.Client
	strategies []WatermarkFreeStrategy
	log        *zap.SugaredLogger
}

func NewExtractor(cfg config.Config, client *http.Client, log *zap.SugaredLogger) *Extractor {
	strategies := []WatermarkFreeStrategy{
		NewSsstikStrategy(client, cfg),
		NewTikmateStrategy(client, cfg),
	}
	if cfg.AllowUnverifiedFallback {
		strategies = append(strategies, CDNFallbackStrategy{})
	}

	return &Extractor{
		client:     client,
		strategies: strategies,
		log:        log,
	}
}

// Extract resolves a TikTok URL into a watermark-free download link plus
// page metadata. It returns models.ErrInvalidURL, models.ErrVideoNotFound or
// models.ErrNoWatermarkURL for the expected failure modes; any other error
// is an unexpected transport failure.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*models.ExtractionResult, error) {
	if !IsTikTokUrl(rawURL) {
		return nil, models.ErrInvalidURL
	}

	pageURL := rawURL
	if IsShortenedUrl(rawURL) {
		pageURL = e.ResolveShortenedUrl(ctx, rawURL)
		e.log.Infow("resolved shortened url", "from", rawURL, "to", pageURL)
	}

	html, err := e.fetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching video page: %w", err)
	}

	videoID := GetTikTokVideoID(pageURL)
	if videoID == "" {
		return nil, models.ErrVideoNotFound
	}

	meta := ParseVideoMetadata(html)

	videoURL, err := e.resolveWatermarkFree(ctx, pageURL, videoID)
	if err != nil {
		return nil, err
	}

	return &models.ExtractionResult{
		VideoURL:    videoURL,
		Author:      meta.Author,
		Title:       meta.Title,
		Cover:       meta.Cover,
		Duration:    meta.Duration,
		DownloadURL: videoURL,
	}, nil
}

// ResolveShortenedUrl follows the redirects of a vm.tiktok.com share link to
// its canonical video page. On any failure the original URL is returned
// unchanged, letting downstream stages fail with a clearer "not found"
// instead of a transport error.
func (e *Extractor) ResolveShortenedUrl(ctx context.Context, shortURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		return shortURL
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Warnw("could not resolve shortened url", "url", shortURL, "error", err)
		return shortURL
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.Request.URL.String()
}

func (e *Extractor) fetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Referer", "https://www.tiktok.com/")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}

	return string(body), nil
}

// resolveWatermarkFree walks the strategy chain in order and returns the
// first successful result. A strategy error only means the next one gets a
// try; the chain as a whole fails with ErrNoWatermarkURL once exhausted.
func (e *Extractor) resolveWatermarkFree(ctx context.Context, pageURL, videoID string) (string, error) {
	for _, strategy := range e.strategies {
		link, err := strategy.Resolve(ctx, pageURL, videoID)
		if err != nil {
			e.log.Warnw("watermark-free strategy failed", "strategy", strategy.Name(), "error", err)
			continue
		}
		e.log.Infow("watermark-free url resolved", "strategy", strategy.Name())
		return link, nil
	}
	return "", models.ErrNoWatermarkURL
}
