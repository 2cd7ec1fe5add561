package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignDurationDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"half year", day(2026, 1, 1), day(2026, 6, 30), 180},
		{"same day", day(2026, 3, 1), day(2026, 3, 1), 0},
		{"partial day floors", day(2026, 3, 1), day(2026, 3, 2).Add(-time.Hour), 0},
		{"reversed", day(2026, 3, 10), day(2026, 3, 1), -9},
		{"reversed partial floors down", day(2026, 3, 1).Add(time.Hour), day(2026, 3, 1), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Campaign{StartDate: tc.start, EndDate: tc.end}
			assert.Equal(t, tc.want, c.DurationDays())
		})
	}
}

func TestClampDurationDays(t *testing.T) {
	assert.Equal(t, 1, ClampDurationDays(-5))
	assert.Equal(t, 1, ClampDurationDays(0))
	assert.Equal(t, 1, ClampDurationDays(1))
	assert.Equal(t, 30, ClampDurationDays(30))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 1000.0, RoundMoney(1000))
	assert.Equal(t, 0.13, RoundMoney(0.125))
	assert.Equal(t, 333.33, RoundMoney(1000.0/3))
	assert.Equal(t, -2.35, RoundMoney(-2.345))
}
