package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category string
		want     lipgloss.AdaptiveColor
	}{
		{"AI/ML", lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}},
		{"Security", lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}},
		{"CleanTech", lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}},
		{"General", lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}},
		// Unknown labels fall back to the default.
		{"Gardening", defaultCategoryColor},
		{"", defaultCategoryColor},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := categoryColor(tt.category)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("categoryColor(%q) mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Time{}, "unknown time"},
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		got := relativeTime(tt.t)
		if got != tt.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestRelativeTimeOld(t *testing.T) {
	old := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	got := relativeTime(old)
	if got != "Jun 15, 2026" {
		t.Errorf("relativeTime(old) = %q, want %q", got, "Jun 15, 2026")
	}
}
