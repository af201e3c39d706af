package pkg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	simplejson "github.com/bitly/go-simplejson"

	"tiktok-downloader-api/config"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Responses from third-party services are capped to avoid unbounded reads
const maxResponseBytes = 10 << 20

// WatermarkFreeStrategy resolves a direct watermark-free media URL for a
// video. Strategies are tried in registration order; an error means "try the
// next one", never a user-facing failure on its own.
type WatermarkFreeStrategy interface {
	Name() string
	Resolve(ctx context.Context, pageURL, videoID string) (string, error)
}

// SsstikStrategy submits the page URL to ssstik.io as a form POST and
// scrapes the returned HTML for the "without watermark" download anchor.
type SsstikStrategy struct {
	client   *http.Client
	endpoint string
	token    string
}

func NewSsstikStrategy(client *http.Client, cfg config.Config) *SsstikStrategy {
	return &SsstikStrategy{
		client:   client,
		endpoint: cfg.SsstikUrl,
		token:    cfg.SsstikToken,
	}
}

func (s *SsstikStrategy) Name() string { return "ssstik" }

func (s *SsstikStrategy) Resolve(ctx context.Context, pageURL, _ string) (string, error) {
	form := url.Values{
		"id":     {pageURL},
		"locale": {"en"},
		"tt":     {s.token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Referer", "https://ssstik.io/")
	req.Header.Set("Origin", "https://ssstik.io")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ssstik request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse ssstik response: %w", err)
	}

	var link string
	doc.Find("a.download").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), "without watermark") {
			link, _ = sel.Attr("href")
			return false
		}
		return true
	})
	if link == "" {
		return "", fmt.Errorf("no watermark-free download link in response")
	}

	return link, nil
}

// TikmateStrategy calls the tikmate lookup API and returns the videoUrl
// field of its JSON response, when present.
type TikmateStrategy struct {
	client   *http.Client
	endpoint string
}

func NewTikmateStrategy(client *http.Client, cfg config.Config) *TikmateStrategy {
	return &TikmateStrategy{
		client:   client,
		endpoint: cfg.TikmateApiUrl,
	}
}

func (t *TikmateStrategy) Name() string { return "tikmate" }

func (t *TikmateStrategy) Resolve(ctx context.Context, pageURL, _ string) (string, error) {
	apiURL := t.endpoint + "?url=" + url.QueryEscape(pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tikmate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	js, err := simplejson.NewJson(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse lookup response: %w", err)
	}

	videoURL, err := js.Get("videoUrl").String()
	if err != nil || videoURL == "" {
		return "", fmt.Errorf("lookup response has no videoUrl")
	}

	return videoURL, nil
}

const cdnPlayTemplate = "https://api16-normal-c-useast1a.tiktokv.com/aweme/v1/play/?video_id=%s&line=0&is_play_url=1&source=PackSourceEnum_FEED"

// CDNFallbackStrategy synthesizes a direct media URL from the video ID using
// a known TikTok CDN endpoint pattern. The URL carries no validity
// guarantee; the strategy itself never fails, so it must be registered last
// and only when unverified fallbacks are allowed.
type CDNFallbackStrategy struct{}

func (CDNFallbackStrategy) Name() string { return "cdn-fallback" }

func (CDNFallbackStrategy) Resolve(_ context.Context, _, videoID string) (string, error) {
	return fmt.Sprintf(cdnPlayTemplate, videoID), nil
}
