package schedule

import (
	"sort"
	"strings"
)

var weekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// WeekIdentity returns the sorted set of canonical weekday names present
// in the schedule, or nil when fewer than 5 of the 7 names match. Partial
// weeks are never considered for duplicate detection. Two schedules with
// the same weekday names count as the same week even across calendar
// weeks; the heuristic cannot tell them apart.
func WeekIdentity(d Data) []string {
	seen := map[string]bool{}
	for _, e := range d.Schedule {
		day := strings.ToLower(strings.TrimSpace(e.Day))
		if weekdays[day] {
			seen[day] = true
		}
	}
	if len(seen) < 5 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for day := range seen {
		out = append(out, day)
	}
	sort.Strings(out)
	return out
}

// SameWeek compares two week identities for exact set equality.
func SameWeek(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
