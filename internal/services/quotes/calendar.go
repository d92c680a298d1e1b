package quotes

import "time"

// BusinessDays returns every Monday to Friday between start and end, both
// inclusive, stepping one calendar day from start's time of day.
func BusinessDays(start, end time.Time) []time.Time {
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		out = append(out, d)
	}
	return out
}
