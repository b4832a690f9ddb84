package appointment

import (
	"context"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

// UpdateStatus is the admin-driven transition to any target status. Loyalty
// side effects are gated on the edge, not the absolute state, and commit
// with the status change.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	rawStatus string,
) (*models.Appointment, error) {

	target, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	var ap *models.Appointment

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentByID(ctx, appointmentID)
		if err != nil {
			return httperr.ErrNotFound("appointment_not_found")
		}

		from := domain.Status(ap.Status)
		ap.Status = string(target)
		if err := tx.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		if ap.UserID == nil {
			return nil
		}

		user, err := tx.GetUserByID(ctx, *ap.UserID)
		if err != nil {
			return err
		}

		delta := domain.TransitionDelta(from, target, ap.RewardApplied, user.TotalAppointments)
		if delta.IsZero() {
			return nil
		}

		user.TotalAppointments, user.AvailableRewards, user.UsedRewards = delta.
			Apply(user.TotalAppointments, user.AvailableRewards, user.UsedRewards)
		return tx.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.UserID,
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": string(target)},
	})

	return ap, nil
}
