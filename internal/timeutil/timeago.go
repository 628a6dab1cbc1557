package timeutil

import (
	"fmt"
	"time"
)

// Ago renders a millisecond timestamp as a short relative age ("just now",
// "12m ago", "3h ago", "2d ago") against the given reference time.
func Ago(timestampMillis int64, now time.Time) string {
	seconds := now.UnixMilli()/1000 - timestampMillis/1000
	if seconds < 60 {
		return "just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	return fmt.Sprintf("%dd ago", days)
}
