package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

// LockSlot is the admin walk-in / manual block operation. With a guest
// name+phone it books the slot for that (found-or-created) guest; without,
// it writes a userless BLOCKED entry.
type LockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLockSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *LockSlot {
	return &LockSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *LockSlot) Execute(
	ctx context.Context,
	barberID uint,
	date string,
	startTime string,
	guestName string,
	guestPhone string,
) (*models.Appointment, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}
	start, err := domain.ParseClock(startTime)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_time")
	}
	end := start + domain.SlotMinutes

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	ap := &models.Appointment{
		Date:       date,
		StartTime:  domain.FormatClock(start),
		EndTime:    domain.FormatClock(end),
		BarberID:   barber.ID,
		TotalPrice: 0,
	}

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		if err := assertSlotFree(ctx, tx, barber.ID, date, domain.Interval{Start: start, End: end}); err != nil {
			return err
		}

		if guestName != "" && guestPhone != "" {
			user, err := tx.FindUserByPhone(ctx, guestPhone)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				user = &models.User{
					Name:     guestName,
					Phone:    guestPhone,
					Username: guestPhone,
					Role:     models.RoleClient,
				}
				if err := tx.CreateUser(ctx, user); err != nil {
					return err
				}
			}
			ap.UserID = &user.ID
			ap.Status = string(domain.StatusBooked)
			// Surfaces on the dashboard as a new booking.
			ap.AdminViewed = false
		} else {
			ap.UserID = nil
			ap.Status = string(domain.StatusBlocked)
			ap.AdminViewed = true
		}

		return translateInsertErr(tx.CreateAppointment(ctx, ap))
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_locked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"barber_id": barberID, "date": date, "start": ap.StartTime},
	})

	return ap, nil
}
