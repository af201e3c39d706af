package models

// Defaults used when the TikTok page carries no usable JSON-LD block.
const (
	DefaultTitle    = "TikTok Video"
	DefaultAuthor   = "TikTok User"
	DefaultDuration = 30
)

type DownloadRequest struct {
	URL string `json:"url"`
}

// VideoMetadata holds the best-effort metadata scraped from the video page.
// Any field may stay at its default if parsing fails.
type VideoMetadata struct {
	Title    string
	Author   string
	Cover    string
	Duration int
}

func DefaultMetadata() VideoMetadata {
	return VideoMetadata{
		Title:    DefaultTitle,
		Author:   DefaultAuthor,
		Cover:    "",
		Duration: DefaultDuration,
	}
}

type ExtractionResult struct {
	VideoURL    string  `json:"video_url"`
	AudioURL    *string `json:"audio_url"`
	Author      string  `json:"author"`
	Title       string  `json:"title"`
	Cover       string  `json:"cover"`
	Duration    int     `json:"duration"`
	DownloadURL string  `json:"download_url"`
}

type SaveResult struct {
	ExtractionResult
	SavedPath string `json:"saved_path"`
}
