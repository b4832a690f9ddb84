package timezone

import (
	"log"
	"sync"
	"time"
)

const DefaultTimezone = "Africa/Tunis"

var (
	mu  sync.RWMutex
	loc = mustLoad(DefaultTimezone)
)

func mustLoad(tz string) *time.Location {
	l, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return l
}

// Init sets the shop timezone for the process. Invalid names keep the
// default.
func Init(tz string) {
	if tz == "" {
		return
	}
	l, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("timezone: unknown zone %q, keeping %s", tz, DefaultTimezone)
		return
	}
	mu.Lock()
	loc = l
	mu.Unlock()
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return loc
}

// Now is the shop-local wall clock.
func Now() time.Time {
	return time.Now().In(Location())
}

// Today is the shop-local calendar date, formatted as stored dates are.
func Today() string {
	return Now().Format("2006-01-02")
}
