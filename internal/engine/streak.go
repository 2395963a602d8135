// Package engine holds the pure rules behind check-in streaks, daily task
// planning, adaptive difficulty and task completion.
package engine

import "github.com/limbo/studyquest/pkg/datekey"

// KeySet indexes day keys for streak lookups.
func KeySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Streak counts consecutive checked-in days ending at today.
func Streak(checkIns map[string]struct{}, today string) int {
	count := 0
	current := today
	for {
		if _, ok := checkIns[current]; !ok {
			return count
		}
		count++
		prev := datekey.Previous(current)
		// malformed key, Previous can't move
		if prev == current {
			return count
		}
		current = prev
	}
}
