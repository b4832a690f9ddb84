package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
	"github.com/aladinbarber/booking-api/internal/notify"
)

// ModifyAppointment reschedules: the original is cancelled and a replacement
// is created with status MODIFIED against the new date/time. Both steps run
// in one transaction, so a conflicting target slot leaves the original
// untouched.
type ModifyAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier notify.Notifier
}

func NewModifyAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier notify.Notifier,
) *ModifyAppointment {
	return &ModifyAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *ModifyAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newDate string,
	newStartTime string,
) (*models.Appointment, error) {

	if _, err := domain.ParseDate(newDate); err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}
	start, err := domain.ParseClock(newStartTime)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_time")
	}
	end := start + domain.SlotMinutes

	var (
		oldAp *models.Appointment
		newAp *models.Appointment
	)

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		var err error
		oldAp, err = tx.GetAppointmentByID(ctx, appointmentID)
		if err != nil {
			return httperr.ErrNotFound("appointment_not_found")
		}

		// Cancel the original first so its own slot does not count as a
		// conflict when the reschedule lands nearby. No reward reversal:
		// the reward carries forward to the replacement.
		oldAp.Status = string(domain.StatusCancelled)
		if err := tx.SaveAppointment(ctx, oldAp); err != nil {
			return err
		}

		if err := assertSlotFree(ctx, tx, oldAp.BarberID, newDate, domain.Interval{Start: start, End: end}); err != nil {
			return err
		}

		newAp = &models.Appointment{
			Date:          newDate,
			StartTime:     domain.FormatClock(start),
			EndTime:       domain.FormatClock(end),
			Status:        string(domain.StatusModified),
			UserID:        oldAp.UserID,
			BarberID:      oldAp.BarberID,
			Services:      oldAp.Services,
			TotalPrice:    oldAp.TotalPrice,
			AdminViewed:   false,
			RewardApplied: oldAp.RewardApplied,
		}
		return translateInsertErr(tx.CreateAppointment(ctx, newAp))
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   newAp.UserID,
		Action:   "appointment_modified",
		Entity:   "appointment",
		EntityID: &newAp.ID,
		Metadata: map[string]any{"previous_id": oldAp.ID},
	})

	names := make([]string, 0, len(newAp.Services))
	for _, s := range newAp.Services {
		names = append(names, s.Name)
	}
	clientName := "Guest"
	if oldAp.User != nil {
		clientName = oldAp.User.Name
	}

	go uc.notifier.Notify(context.Background(), notify.NewRequest(
		notify.AudienceAdmins, 0,
		"Rendez-vous Modifié",
		fmt.Sprintf("%s a modifié son rendez-vous pour %s. Nouvelle date: %s à %s",
			clientName, strings.Join(names, ", "), newDate, newAp.StartTime),
	))

	newAp.User = oldAp.User
	newAp.Barber = oldAp.Barber
	return newAp, nil
}
