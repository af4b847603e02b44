package ui

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "10s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m"},
		{45 * time.Minute, "45m"},
		{2 * time.Hour, "2h"},
		{26 * time.Hour, "1d"},
		{72 * time.Hour, "3d"},
		{-5 * time.Second, "0s"},
	}

	for _, c := range cases {
		if got := timeAgo(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("timeAgo(-%v): expected %q, got %q", c.ago, c.want, got)
		}
	}
}
