package util

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var rssLayouts = []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822, time.RFC3339}

// FormatUnixDate renders a provider timestamp as a UTC calendar date.
func FormatUnixDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(DateLayout)
}

// ParseFeedTime parses the date formats seen in RSS feeds.
func ParseFeedTime(raw string) (time.Time, bool) {
	clean := strings.TrimSpace(raw)
	for _, layout := range rssLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// WindowStart returns the first calendar date inside [now-days, now].
func WindowStart(now time.Time, days int) string {
	return now.UTC().AddDate(0, 0, -days).Format(DateLayout)
}
