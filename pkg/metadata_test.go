package pkg

import (
	"testing"

	"tiktok-downloader-api/models"
)

const videoObjectPage = `<!DOCTYPE html>
<html><head>
<script type="application/ld+json">{
  "@context": "https://schema.org",
  "@type": "VideoObject",
  "name": "Dancing cat",
  "author": {"@type": "Person", "name": "catlover99"},
  "thumbnailUrl": ["https://p16-sign.tiktokcdn.com/cover-a.jpeg", "https://p16-sign.tiktokcdn.com/cover-b.jpeg"],
  "duration": "PT1M30S"
}</script>
</head><body></body></html>`

func TestParseVideoMetadataVideoObject(t *testing.T) {
	meta := ParseVideoMetadata(videoObjectPage)

	if meta.Title != "Dancing cat" {
		t.Errorf("Title = %q, want %q", meta.Title, "Dancing cat")
	}
	if meta.Author != "catlover99" {
		t.Errorf("Author = %q, want %q", meta.Author, "catlover99")
	}
	if meta.Cover != "https://p16-sign.tiktokcdn.com/cover-a.jpeg" {
		t.Errorf("Cover = %q, want first thumbnail of the list", meta.Cover)
	}
	if meta.Duration != 90 {
		t.Errorf("Duration = %d, want 90", meta.Duration)
	}
}

func TestParseVideoMetadataStringThumbnail(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{
	  "@type": "VideoObject",
	  "name": "Clip",
	  "author": {"name": "someone"},
	  "thumbnailUrl": "https://p16-sign.tiktokcdn.com/single.jpeg",
	  "duration": "PT45S"
	}</script></head></html>`

	meta := ParseVideoMetadata(page)

	if meta.Cover != "https://p16-sign.tiktokcdn.com/single.jpeg" {
		t.Errorf("Cover = %q, want the plain string value", meta.Cover)
	}
	if meta.Duration != 45 {
		t.Errorf("Duration = %d, want 45", meta.Duration)
	}
}

func TestParseVideoMetadataNoStructuredData(t *testing.T) {
	meta := ParseVideoMetadata("<html><head><title>nothing here</title></head></html>")

	if meta.Title != models.DefaultTitle {
		t.Errorf("Title = %q, want default %q", meta.Title, models.DefaultTitle)
	}
	if meta.Author != models.DefaultAuthor {
		t.Errorf("Author = %q, want default %q", meta.Author, models.DefaultAuthor)
	}
	if meta.Cover != "" {
		t.Errorf("Cover = %q, want empty", meta.Cover)
	}
	if meta.Duration != models.DefaultDuration {
		t.Errorf("Duration = %d, want default %d", meta.Duration, models.DefaultDuration)
	}
}

func TestParseVideoMetadataSkipsBrokenBlocks(t *testing.T) {
	page := `<html><head>
	<script type="application/ld+json">{this is not json</script>
	<script type="application/ld+json">{"@type": "Organization", "name": "TikTok"}</script>
	<script type="application/ld+json">{"@type": "VideoObject", "name": "Survivor", "author": {"name": "real_author"}}</script>
	</head></html>`

	meta := ParseVideoMetadata(page)

	if meta.Title != "Survivor" {
		t.Errorf("Title = %q, want the VideoObject block to win", meta.Title)
	}
	if meta.Author != "real_author" {
		t.Errorf("Author = %q, want %q", meta.Author, "real_author")
	}
	// No duration field in the block: default stays
	if meta.Duration != models.DefaultDuration {
		t.Errorf("Duration = %d, want default %d", meta.Duration, models.DefaultDuration)
	}
}

func TestParseVideoMetadataMissingFieldsUseDefaults(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{"@type": "VideoObject"}</script></head></html>`

	meta := ParseVideoMetadata(page)

	if meta.Title != models.DefaultTitle || meta.Author != models.DefaultAuthor {
		t.Errorf("got (%q, %q), want defaults", meta.Title, meta.Author)
	}
	if meta.Cover != "" {
		t.Errorf("Cover = %q, want empty", meta.Cover)
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "Minutes and seconds",
			input: "PT1M30S",
			want:  90,
		},
		{
			name:  "Seconds only",
			input: "PT45S",
			want:  45,
		},
		{
			name:  "Minutes only",
			input: "PT2M",
			want:  120,
		},
		{
			name:  "Zero seconds",
			input: "PT0S",
			want:  0,
		},
		{
			name:  "Bare PT marker",
			input: "PT",
			want:  0,
		},
		{
			name:  "Empty string falls back",
			input: "",
			want:  30,
		},
		{
			name:  "No PT marker falls back",
			input: "90",
			want:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseISODuration(tt.input, 30); got != tt.want {
				t.Errorf("ParseISODuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
