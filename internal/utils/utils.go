package utils

import (
	"fmt"
	"time"
)

// timestampLayouts covers the formats the Bitbucket APIs emit: RFC 3339
// on v2, and a bare "2006-01-02 15:04:05" (UTC implied) on v1 fields
// like utc_sent_on.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
}

// FormatRelativeTime turns an API timestamp into a short relative form
// for table output. Unparseable input is returned as-is.
func FormatRelativeTime(ts string) string {
	if ts == "" {
		return "-"
	}

	var t time.Time
	var err error
	for _, layout := range timestampLayouts {
		if t, err = time.Parse(layout, ts); err == nil {
			break
		}
	}
	if err != nil {
		return ts
	}

	duration := time.Since(t)
	days := int(duration.Hours() / 24)
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60

	if days > 7 {
		return t.Local().Format("Jan 02, 2006")
	} else if days > 0 {
		return fmt.Sprintf("%dd ago", days)
	} else if hours > 0 {
		return fmt.Sprintf("%dh ago", hours)
	} else if minutes > 1 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	return "Just now"
}
