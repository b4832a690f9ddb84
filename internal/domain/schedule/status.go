package schedule

import "github.com/aladinbarber/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusBlocked   Status = "BLOCKED"
	StatusModified  Status = "MODIFIED"
	StatusCancelled Status = "CANCELLED"
	StatusDone      Status = "DONE"
)

// ActiveStatuses occupy a slot for conflict purposes.
var ActiveStatuses = []Status{StatusBooked, StatusBlocked, StatusModified}

// IsActive reports whether s occupies its slot.
func (s Status) IsActive() bool {
	return s == StatusBooked || s == StatusBlocked || s == StatusModified
}

// IsTerminal reports whether s never conflicts with new bookings.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusDone
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusBooked, StatusBlocked, StatusModified, StatusCancelled, StatusDone:
		return Status(raw), nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

func ActiveStatusStrings() []string {
	out := make([]string, 0, len(ActiveStatuses))
	for _, s := range ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}
