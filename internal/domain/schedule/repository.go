package schedule

import (
	"context"

	"github.com/aladinbarber/booking-api/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SaveUser(ctx context.Context, user *models.User) error

	// -------- Catalog --------
	GetBarberByID(ctx context.Context, id uint) (*models.Barber, error)
	ListServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error)

	// -------- Appointments --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)

	// ListActiveAppointments returns the slot-occupying appointments for a
	// barber and date, ordered by start time. Inside a transaction the rows
	// are locked so two concurrent bookings cannot both pass the conflict
	// check.
	ListActiveAppointments(ctx context.Context, barberID uint, date string) ([]models.Appointment, error)

	FindBlockedAppointment(ctx context.Context, barberID uint, date, startTime string) (*models.Appointment, error)
	ListDoneAppointmentsBetween(ctx context.Context, barberID uint, fromDate, toDate string) ([]models.Appointment, error)

	// -------- Blackouts --------
	ListBlackoutsByDate(ctx context.Context, date string) ([]Blackout, error)

	// -------- Unit of work --------
	// InTransaction runs fn against a transaction-scoped repository; any
	// error rolls the whole unit back.
	InTransaction(ctx context.Context, fn func(Repository) error) error
}
