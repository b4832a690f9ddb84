package schedule

import "log"

// Interval is a half-open [Start, End) time-of-day range in minutes since
// midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps uses the half-open test: touching endpoints do not conflict.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Blackout is the scheduling view of an admin BlockedSlot row.
type Blackout struct {
	ID        uint
	BarberID  *uint
	StartTime *string
	EndTime   *string
}

// AppliesTo reports whether the blackout targets the given barber. A nil
// barber reference means the blackout is global.
func (b Blackout) AppliesTo(barberID uint) bool {
	return b.BarberID == nil || *b.BarberID == barberID
}

// WholeDay reports whether the blackout covers the entire date.
func (b Blackout) WholeDay() bool {
	return b.StartTime == nil || NormalizeClock(*b.StartTime) == ""
}

// Interval resolves the blackout's effective time range. A missing end time
// defaults to one unit slot from the start. Malformed time strings return
// ok=false; callers treat such rows as non-blocking (fail open on corrupted
// admin data rather than failing the whole availability query).
func (b Blackout) Interval() (Interval, bool) {
	if b.WholeDay() {
		return Interval{}, false
	}

	start, err := ParseClock(*b.StartTime)
	if err != nil {
		log.Printf("schedule: unparsable blackout start (id=%d): %v", b.ID, err)
		return Interval{}, false
	}

	end := start + SlotMinutes
	if b.EndTime != nil && NormalizeClock(*b.EndTime) != "" {
		parsed, err := ParseClock(*b.EndTime)
		if err != nil {
			log.Printf("schedule: unparsable blackout end (id=%d): %v", b.ID, err)
			return Interval{}, false
		}
		end = parsed
	}

	return Interval{Start: start, End: end}, true
}

// BlackoutConflict describes why a candidate interval is unavailable.
type BlackoutConflict int

const (
	BlackoutNone BlackoutConflict = iota
	BlackoutWholeDay
	BlackoutOverlap
)

// CheckBlackouts evaluates a candidate interval for one barber against the
// day's blackout rows.
func CheckBlackouts(blackouts []Blackout, barberID uint, candidate Interval) BlackoutConflict {
	for _, b := range blackouts {
		if !b.AppliesTo(barberID) {
			continue
		}
		if b.WholeDay() {
			return BlackoutWholeDay
		}
		if iv, ok := b.Interval(); ok && iv.Overlaps(candidate) {
			return BlackoutOverlap
		}
	}
	return BlackoutNone
}
