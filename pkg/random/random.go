package random

import (
	"math/rand"
	"sync"
	"time"

	"github.com/username/cyclecal/pkg/dateutil"
)

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// SetSeed makes subsequent selections reproducible
func SetSeed(seed int64) {
	mu.Lock()
	rng = rand.New(rand.NewSource(seed))
	mu.Unlock()
}

// SelectWeekdays selects n distinct days from the given set in random order.
// Repeated days in from count once. Returns every day (shuffled) when n
// is at least the number of distinct days.
func SelectWeekdays(n int, from []dateutil.Weekday) []dateutil.Weekday {
	from = distinct(from)
	indices := SelectRandomItems(len(from), n)

	days := make([]dateutil.Weekday, len(indices))
	for i, idx := range indices {
		days[i] = from[idx]
	}
	return days
}

func distinct(days []dateutil.Weekday) []dateutil.Weekday {
	seen := make(map[dateutil.Weekday]bool, len(days))
	unique := make([]dateutil.Weekday, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}
	return unique
}

// SelectWorkingDays selects n random days from Monday to Friday
func SelectWorkingDays(n int) []dateutil.Weekday {
	var workdays []dateutil.Weekday
	for _, d := range dateutil.AllWeekdays(dateutil.Monday) {
		if d.IsWeekday() {
			workdays = append(workdays, d)
		}
	}
	return SelectWeekdays(n, workdays)
}

// SelectRandomItems selects n random items from slice
// Returns indices of selected items
func SelectRandomItems(totalCount, n int) []int {
	if n <= 0 || totalCount <= 0 {
		return []int{}
	}

	if n > totalCount {
		n = totalCount
	}

	// Create slice of all indices
	allIndices := make([]int, totalCount)
	for i := range allIndices {
		allIndices[i] = i
	}

	// Shuffle using Fisher-Yates algorithm
	mu.Lock()
	for i := len(allIndices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		allIndices[i], allIndices[j] = allIndices[j], allIndices[i]
	}
	mu.Unlock()

	// Return first n indices
	return allIndices[:n]
}
