package rules

import "time"

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{y, m, d}
}

// Streak counts the consecutive calendar days, ending today or
// yesterday, on which the owner recorded at least one sale.
//
// The input dates may arrive in any order and may repeat; only the
// calendar day matters, time components are ignored. An empty input
// yields 0, as does any set whose most recent day is before yesterday.
func Streak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	set := make(map[dateKey]struct{}, len(dates))
	for _, d := range dates {
		set[keyOf(d)] = struct{}{}
	}

	check := today
	if _, ok := set[keyOf(check)]; !ok {
		check = today.AddDate(0, 0, -1)
		if _, ok := set[keyOf(check)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := set[keyOf(check)]; !ok {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}
