package appointment

import (
	"context"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

type UnlockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnlockSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UnlockSlot {
	return &UnlockSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the BLOCKED entry at (barber, date, startTime). Only pure
// blocks can be unlocked; walk-in bookings go through cancel instead.
func (uc *UnlockSlot) Execute(
	ctx context.Context,
	barberID uint,
	date string,
	startTime string,
) (*models.Appointment, error) {

	start, err := domain.ParseClock(startTime)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_time")
	}

	var ap *models.Appointment
	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.FindBlockedAppointment(ctx, barberID, date, domain.FormatClock(start))
		if err != nil {
			return httperr.ErrNotFound("blocked_slot_not_found")
		}
		return tx.DeleteAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_unlocked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
