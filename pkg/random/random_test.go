package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/cyclecal/pkg/dateutil"
)

func TestSelectWorkingDays(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		wantCount int
	}{
		{"Select 2 days", 2, 2},
		{"Select 3 days", 3, 3},
		{"Select 5 days", 5, 5},
		{"Select 0 days", 0, 0},
		{"Select more than 5 days", 6, 5},
		{"Negative count", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SelectWorkingDays(tt.n)

			assert.Len(t, result, tt.wantCount)

			// Check all values are Monday-Friday
			for _, day := range result {
				assert.True(t, day.IsWeekday(), "SelectWorkingDays(%v) returned %v", tt.n, day)
			}

			// Check uniqueness
			seen := make(map[dateutil.Weekday]bool)
			for _, day := range result {
				assert.False(t, seen[day], "SelectWorkingDays(%v) returned duplicate day %v", tt.n, day)
				seen[day] = true
			}
		})
	}
}

func TestSelectWeekdaysFromSubset(t *testing.T) {
	weekend := []dateutil.Weekday{dateutil.Saturday, dateutil.Sunday}

	for i := 0; i < 20; i++ {
		got := SelectWeekdays(1, weekend)
		assert.Len(t, got, 1)
		assert.True(t, got[0].IsWeekend())
	}

	assert.ElementsMatch(t, weekend, SelectWeekdays(7, weekend))
	assert.Empty(t, SelectWeekdays(3, nil))
}

func TestSelectWeekdaysIgnoresRepeats(t *testing.T) {
	from := []dateutil.Weekday{dateutil.Monday, dateutil.Monday, dateutil.Friday, dateutil.Monday}

	for i := 0; i < 20; i++ {
		got := SelectWeekdays(2, from)
		assert.ElementsMatch(t, []dateutil.Weekday{dateutil.Monday, dateutil.Friday}, got)
	}

	assert.Equal(t, []dateutil.Weekday{dateutil.Monday}, SelectWeekdays(3, []dateutil.Weekday{dateutil.Monday, dateutil.Monday}))
}

func TestSetSeedIsReproducible(t *testing.T) {
	all := dateutil.AllWeekdays(dateutil.Monday)

	SetSeed(42)
	first := SelectWeekdays(4, all)
	SetSeed(42)
	second := SelectWeekdays(4, all)

	assert.Equal(t, first, second)
}

func TestSelectWorkingDaysDistribution(t *testing.T) {
	// Test that random selection is actually random (statistical test)
	n := 2
	iterations := 1000
	counts := make(map[dateutil.Weekday]int)

	for i := 0; i < iterations; i++ {
		for _, day := range SelectWorkingDays(n) {
			counts[day]++
		}
	}

	// Each day should be selected approximately 40% of the time (2 out of 5 days)
	expectedCount := float64(iterations) * float64(n) / 5.0
	tolerance := expectedCount * 0.3 // 30% tolerance

	for _, day := range dateutil.AllWeekdays(dateutil.Monday) {
		if day.IsWeekend() {
			assert.Zero(t, counts[day])
			continue
		}
		count := counts[day]
		diff := math.Abs(float64(count) - expectedCount)

		if diff > tolerance {
			t.Logf("%s selected %d times (expected ~%.0f, tolerance ±%.0f)",
				day, count, expectedCount, tolerance)
		}
	}
}
