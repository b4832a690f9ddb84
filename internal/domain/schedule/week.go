package schedule

import (
	"fmt"
	"strings"
	"time"
)

// WeekBounds returns the Monday and Sunday of the week containing ref.
func WeekBounds(ref time.Time) (monday, sunday time.Time) {
	offset := int(ref.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday = ref.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// WeekRangeLabel renders a human-readable "09 mar - 15 mar" style range.
func WeekRangeLabel(monday, sunday time.Time) string {
	return fmt.Sprintf("%02d %s - %02d %s",
		monday.Day(), strings.ToLower(monday.Month().String()[:3]),
		sunday.Day(), strings.ToLower(sunday.Month().String()[:3]),
	)
}
