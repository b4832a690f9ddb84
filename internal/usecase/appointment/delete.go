package appointment

import (
	"context"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

// DeleteAppointment is the admin hard delete. A reward consumed by a still
// active appointment is credited back in the same transaction; cancelled
// appointments already had their reversal, so deleting them again must not
// double-credit.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) error {

	var ap *models.Appointment

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentByID(ctx, appointmentID)
		if err != nil {
			return httperr.ErrNotFound("appointment_not_found")
		}

		if ap.RewardApplied && domain.Status(ap.Status).IsActive() && ap.UserID != nil {
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

		return tx.DeleteAppointment(ctx, ap)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
