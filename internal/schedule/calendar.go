package schedule

// weekSpan is the number of days after a week's start that still belong to it.
const weekSpan = 6

// IsCurrentWeek reports whether today falls in the seven days starting at start.
// Today is read from the wall clock on every call.
func IsCurrentWeek(start Day) bool {
	return IsCurrentWeekAt(start, Today())
}

// IsCurrentWeekAt reports whether today lies in [start, start+6], both ends inclusive.
func IsCurrentWeekAt(start, today Day) bool {
	end := start.AddDays(weekSpan)
	return !today.Before(start) && !today.After(end)
}

// Current returns the first week flagged as the current one.
func Current(weeks []Week) (Week, bool) {
	for _, w := range weeks {
		if w.CurrentWeek {
			return w, true
		}
	}
	return Week{}, false
}
