package pkg

import (
	"net/url"
	"regexp"
	"strings"
)

// Accepted URL shapes: shortened share links and canonical video pages.
var (
	tiktokUrlRegex = regexp.MustCompile(`^https?://(vm\.tiktok\.com/[A-Za-z0-9]+/?|(www\.)?tiktok\.com/@[\w.-]+/video/\d+)`)
	videoIDRegex   = regexp.MustCompile(`/video/(\d+)`)
)

// IsUrl checks that the string parses as an absolute URL
func IsUrl(str string) bool {
	u, err := url.Parse(str)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsTikTokUrl checks whether the URL matches one of the accepted TikTok shapes
func IsTikTokUrl(rawURL string) bool {
	return tiktokUrlRegex.MatchString(rawURL)
}

// IsShortenedUrl reports whether the URL is a vm.tiktok.com share link that
// still needs redirect resolution
func IsShortenedUrl(rawURL string) bool {
	return strings.Contains(rawURL, "vm.tiktok.com")
}

// GetTikTokVideoID extracts the numeric video ID from the /video/<digits>
// path segment, or returns "" if the URL carries none
func GetTikTokVideoID(rawURL string) string {
	matches := videoIDRegex.FindStringSubmatch(rawURL)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}
