package schedule

import "time"

// Opening hours are a fixed day-of-week policy: Monday is the reduced day,
// every other day runs the full schedule.
const (
	mondayOpen  = 12 * 60
	mondayClose = 18 * 60

	regularOpen  = 10 * 60
	regularClose = 21 * 60
)

// OpeningHours returns the (open, close) pair for a date, in minutes since
// midnight.
func OpeningHours(date time.Time) (open, close int) {
	if date.Weekday() == time.Monday {
		return mondayOpen, mondayClose
	}
	return regularOpen, regularClose
}

// SlotGrid enumerates unit-slot start times from open to close, ascending.
// Generation stops as soon as a slot would run past close, so the last start
// always leaves room for a full unit.
func SlotGrid(open, close int) []int {
	var starts []int
	for cur := open; cur+SlotMinutes <= close; cur += SlotMinutes {
		starts = append(starts, cur)
	}
	return starts
}
