package appointment

import (
	"context"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

type MarkAdminViewed struct {
	repo domain.Repository
}

func NewMarkAdminViewed(repo domain.Repository) *MarkAdminViewed {
	return &MarkAdminViewed{repo: repo}
}

func (uc *MarkAdminViewed) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	ap.AdminViewed = true
	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
