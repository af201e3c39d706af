package pkg

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	simplejson "github.com/bitly/go-simplejson"

	"tiktok-downloader-api/models"
)

// ParseVideoMetadata scrapes the video page for an embedded JSON-LD
// VideoObject block. The first block that parses and has the right @type
// wins; blocks with broken JSON are skipped. Every field falls back to its
// default when absent, so this never fails.
func ParseVideoMetadata(html string) models.VideoMetadata {
	meta := models.DefaultMetadata()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return meta
	}

	var videoObject *simplejson.Json
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		js, err := simplejson.NewJson([]byte(s.Text()))
		if err != nil {
			return true
		}
		if js.Get("@type").MustString() == "VideoObject" {
			videoObject = js
			return false
		}
		return true
	})
	if videoObject == nil {
		return meta
	}

	meta.Title = videoObject.Get("name").MustString(models.DefaultTitle)
	meta.Author = videoObject.Get("author").Get("name").MustString(models.DefaultAuthor)

	// thumbnailUrl may be a single string or a list of URLs
	thumb := videoObject.Get("thumbnailUrl")
	if list, err := thumb.Array(); err == nil {
		if len(list) > 0 {
			meta.Cover = thumb.GetIndex(0).MustString("")
		}
	} else {
		meta.Cover = thumb.MustString("")
	}

	if iso, err := videoObject.Get("duration").String(); err == nil {
		meta.Duration = ParseISODuration(iso, models.DefaultDuration)
	}

	return meta
}

// ParseISODuration converts an ISO-8601 "PT<m>M<s>S" duration to total
// seconds. A missing minutes or seconds component counts as zero. Strings
// without a "PT" marker return the fallback untouched.
func ParseISODuration(iso string, fallback int) int {
	if !strings.Contains(iso, "PT") {
		return fallback
	}

	rest := strings.Replace(iso, "PT", "", 1)
	minutes, seconds := 0, 0

	if strings.Contains(rest, "M") {
		parts := strings.SplitN(rest, "M", 2)
		minutes, _ = strconv.Atoi(parts[0])
		rest = parts[1]
	}
	if strings.Contains(rest, "S") {
		seconds, _ = strconv.Atoi(strings.SplitN(rest, "S", 2)[0])
	}

	return minutes*60 + seconds
}
