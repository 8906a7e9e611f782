package scheduler

import (
	"testing"
	"time"

	"easypark/internal/config"
)

func TestPastClosingTime(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 15, 22, 30, 0, 0, loc)

	cases := []struct {
		name    string
		date    string
		closing string
		want    bool
	}{
		{"past closing same day", "2025-06-15", "22:00", true},
		{"before closing same day", "2025-06-15", "23:00", false},
		{"exactly at closing", "2025-06-15", "22:30", false},
		{"left open across midnight", "2025-06-14", "22:00", true},
		{"yesterday with late closing still past", "2025-06-14", "23:59", true},
		{"malformed closing time", "2025-06-15", "late", false},
		{"malformed date", "someday", "22:00", false},
	}

	for _, tc := range cases {
		if got := pastClosingTime(tc.date, tc.closing, now); got != tc.want {
			t.Errorf("%s: pastClosingTime(%q, %q) = %v, expected %v",
				tc.name, tc.date, tc.closing, got, tc.want)
		}
	}
}

func TestNew_RejectsBadCronSpec(t *testing.T) {
	cfg := config.SchedulerConfig{AutoCloseSpec: "not a cron spec"}

	if _, err := New(cfg, nil, nil); err == nil {
		t.Error("expected an error for an invalid cron expression")
	}
}

func TestNew_AcceptsSecondsField(t *testing.T) {
	cfg := config.SchedulerConfig{AutoCloseSpec: "0 */15 * * * *"}

	s, err := New(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil {
		t.Fatal("expected a scheduler")
	}
}
