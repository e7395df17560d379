package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", HumanDateFrom(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDateFrom(now.Add(-24*time.Hour), now))
	assert.Equal(t, "Sep 30, 2022", HumanDateFrom(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-2 * time.Hour), "2h ago"},
		{"older falls back to date", now.Add(-72 * time.Hour), "Feb 4, 2026"},
		{"future", now.Add(48 * time.Hour), "Feb 9, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.in, now))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestTruncID(t *testing.T) {
	got := stripANSI(TruncID("a1b2c3d4-e5f6-7890-abcd-ef1234567890"))
	assert.Equal(t, "a1b2c3d4", got)
	assert.Equal(t, "short", stripANSI(TruncID("short")))
}

func TestTierStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", stripANSI(TierStars(3)))
	assert.Equal(t, "★☆☆☆☆", stripANSI(TierStars(0)), "clamped to tier 1")
	assert.Equal(t, "★★★★★", stripANSI(TierStars(9)))
}

func TestBadges(t *testing.T) {
	assert.Contains(t, BeltBadge(domain.BeltBlue), "블루")
	assert.Contains(t, IntentBadge(domain.IntentLearn), "learn")
	assert.Contains(t, stripANSI(JoinOrDash(nil)), "--")
	assert.Equal(t, "a, b", JoinOrDash([]string{"a", "b"}))
}

func TestBullets(t *testing.T) {
	got := stripANSI(Bullets([]string{"x", "y"}, 2))
	assert.Equal(t, "  • x\n  • y\n", got)
}
