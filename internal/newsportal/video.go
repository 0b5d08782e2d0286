package newsportal

import (
	"net/url"
	"regexp"
)

// videoPattern pairs a URL shape with the submatch holding the video id.
type videoPattern struct {
	re    *regexp.Regexp
	group int
}

// videoPatterns are tried in order, first match wins.
var videoPatterns = []videoPattern{
	{re: regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^?&/#]+)`), group: 1},
	{re: regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?youtube\.com/watch\?(?:[^#]*&)?v=([^?&/#]+)`), group: 1},
	{re: regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^?&/#]+)`), group: 1},
}

// VideoID extracts the video id from a recognized video link.
func VideoID(link string) (string, bool) {
	if link == "" {
		return "", false
	}

	for _, p := range videoPatterns {
		if m := p.re.FindStringSubmatch(link); m != nil && m[p.group] != "" {
			return m[p.group], true
		}
	}

	return "", false
}

// EmbedURL returns the player URL for link, or "" when link is not a recognized video.
func EmbedURL(link string) string {
	id, ok := VideoID(link)
	if !ok {
		return ""
	}

	return "https://www.youtube.com/embed/" + url.PathEscape(id)
}
