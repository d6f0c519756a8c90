package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreak(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{name: "empty set", dates: nil, want: 0},
		{name: "three consecutive days ending today", dates: []time.Time{day(0), day(-1), day(-2)}, want: 3},
		{name: "only yesterday", dates: []time.Time{day(-1)}, want: 1},
		{name: "gap at today and yesterday", dates: []time.Time{day(-2)}, want: 0},
		{name: "streak broken by a missing day", dates: []time.Time{day(0), day(-1), day(-3), day(-4)}, want: 2},
		{name: "anchored at yesterday walking back", dates: []time.Time{day(-1), day(-2), day(-3)}, want: 3},
		{name: "only today", dates: []time.Time{day(0)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.dates, today))
		})
	}
}

func TestStreakOrderIndependent(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	forward := []time.Time{
		today.AddDate(0, 0, -2),
		today.AddDate(0, 0, -1),
		today,
	}
	reversed := []time.Time{forward[2], forward[1], forward[0]}

	assert.Equal(t, Streak(forward, today), Streak(reversed, today))
}

func TestStreakIgnoresTimeComponent(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC),
		time.Date(2026, time.March, 9, 8, 15, 0, 0, time.UTC),
	}
	assert.Equal(t, 2, Streak(dates, today))
}

func TestStreakDuplicateDates(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{today, today, today.AddDate(0, 0, -1)}
	assert.Equal(t, 2, Streak(dates, today))
}
