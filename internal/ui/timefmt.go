package ui

import (
	"fmt"
	"time"
)

// timeAgo renders a compact relative age: 42s, 5m, 3h, 2d.
func timeAgo(ts, now time.Time) string {
	s := int(now.Sub(ts).Seconds())
	if s < 0 {
		s = 0
	}
	switch {
	case s < 60:
		return fmt.Sprintf("%ds", s)
	case s < 3600:
		return fmt.Sprintf("%dm", s/60)
	case s < 86400:
		return fmt.Sprintf("%dh", s/3600)
	default:
		return fmt.Sprintf("%dd", s/86400)
	}
}
