// Package embedurl derives display URLs for hosted-platform video embeds.
package embedurl

import (
	"regexp"
	"strings"
)

// youTubeEmbedID captures the video id from an embed URL path: everything
// after "embed/" up to the query string.
var youTubeEmbedID = regexp.MustCompile(`embed/([^?]+)`)

// YouTubeThumbnail returns the still-frame thumbnail URL for a YouTube embed
// URL, or "" when no video id can be extracted. Non-YouTube URLs and plain
// watch URLs yield "".
func YouTubeThumbnail(embedURL string) string {
	if !strings.Contains(embedURL, "youtube.com") && !strings.Contains(embedURL, "youtube-nocookie.com") {
		return ""
	}
	m := youTubeEmbedID.FindStringSubmatch(embedURL)
	if m == nil || m[1] == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + m[1] + "/hqdefault.jpg"
}
