package appointment

import (
	"context"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentByID(ctx, appointmentID)
		if err != nil {
			return httperr.ErrNotFound("appointment_not_found")
		}

		// Re-cancelling must not double-credit the reward.
		if domain.Status(ap.Status) == domain.StatusCancelled {
			return nil
		}

		if ap.RewardApplied && ap.UserID != nil {
			user, err := tx.GetUserByID(ctx, *ap.UserID)
			if err != nil {
				return err
			}
			_, user.AvailableRewards, user.UsedRewards = domain.ReversalDelta().
				Apply(user.TotalAppointments, user.AvailableRewards, user.UsedRewards)
			if err := tx.SaveUser(ctx, user); err != nil {
				return err
			}
		}

		ap.Status = string(domain.StatusCancelled)
		return tx.SaveAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
