package appointment

import (
	"context"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute returns the bookable start times ("HH:MM:SS", ascending) for a
// barber and date: the opening-hours unit-slot grid minus everything the
// conflict rules exclude.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]string, error) {

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	blackouts, err := uc.repo.ListBlackoutsByDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	// A whole-day blackout empties the calendar before any grid work.
	for _, b := range blackouts {
		if b.AppliesTo(barberID) && b.WholeDay() {
			return []string{}, nil
		}
	}

	active, err := uc.repo.ListActiveAppointments(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}
	taken := activeIntervals(active)

	open, close := domain.OpeningHours(date)

	slots := []string{}
	for _, start := range domain.SlotGrid(open, close) {
		candidate := domain.Interval{Start: start, End: start + domain.SlotMinutes}

		free := true
		for _, iv := range taken {
			if iv.Overlaps(candidate) {
				free = false
				break
			}
		}
		if free && domain.CheckBlackouts(blackouts, barberID, candidate) != domain.BlackoutNone {
			free = false
		}

		if free {
			slots = append(slots, domain.FormatClock(start))
		}
	}

	return slots, nil
}
