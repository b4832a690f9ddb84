package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
	"github.com/aladinbarber/booking-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	BarberID   uint
	ServiceIDs []uint

	Date      string
	StartTime string

	// UserID is set for authenticated clients. Guests are matched by phone
	// then email, and created on the fly when unknown.
	UserID    *uint
	UserName  string
	UserPhone string
	UserEmail string

	UseReward bool
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier notify.Notifier
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier notify.Notifier,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrValidation("no_services_selected")
	}
	if _, err := domain.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}
	start, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_time")
	}
	end := start + domain.SlotMinutes

	user, err := uc.resolveUser(ctx, in)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	services, err := uc.repo.ListServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, httperr.ErrNotFound("services_not_found")
	}

	total := 0.0
	names := make([]string, 0, len(services))
	for _, s := range services {
		total += s.Price
		names = append(names, s.Name)
	}

	// Reward redemption: one available reward pays for the first qualifying
	// combo service of the selection.
	rewardApplied := false
	if in.UseReward && user.AvailableRewards > 0 {
		if idx := domain.FirstComboService(names); idx >= 0 {
			total -= services[idx].Price
			if total < 0 {
				total = 0
			}
			rewardApplied = true
		}
	}

	ap := &models.Appointment{
		Date:          in.Date,
		StartTime:     domain.FormatClock(start),
		EndTime:       domain.FormatClock(end),
		Status:        string(domain.StatusBooked),
		UserID:        &user.ID,
		BarberID:      barber.ID,
		Services:      services,
		TotalPrice:    total,
		AdminViewed:   false,
		RewardApplied: rewardApplied,
	}

	// The conflict check, the reward debit and the insert commit together
	// or not at all.
	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		if err := assertSlotFree(ctx, tx, barber.ID, in.Date, domain.Interval{Start: start, End: end}); err != nil {
			return err
		}

		if rewardApplied {
			locked, err := tx.GetUserByID(ctx, user.ID)
			if err != nil {
				return err
			}
			if locked.AvailableRewards <= 0 {
				return httperr.ErrConflict("reward_unavailable")
			}
			_, locked.AvailableRewards, locked.UsedRewards = domain.ConsumptionDelta().
				Apply(locked.TotalAppointments, locked.AvailableRewards, locked.UsedRewards)
			if err := tx.SaveUser(ctx, locked); err != nil {
				return err
			}
		}

		return translateInsertErr(tx.CreateAppointment(ctx, ap))
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	go uc.notifier.Notify(context.Background(), notify.NewRequest(
		notify.AudienceAdmins, 0,
		"Nouveau Rendez-vous !",
		fmt.Sprintf("%s a réservé pour %s (Total: %.2f DT) avec %s le %s à %s",
			user.Name, strings.Join(names, ", "), total, barber.Name, in.Date, ap.StartTime),
	))

	ap.User = user
	ap.Barber = *barber
	return ap, nil
}

// resolveUser finds the booking user: authenticated id first, then guest
// lookup by phone, then email, then a fresh guest account.
func (uc *BookAppointment) resolveUser(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.User, error) {

	if in.UserID != nil {
		user, err := uc.repo.GetUserByID(ctx, *in.UserID)
		if err != nil {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return user, nil
	}

	// Only a genuine miss falls through to guest creation; a failing lookup
	// must not spawn a duplicate account.
	if in.UserPhone != "" {
		user, err := uc.repo.FindUserByPhone(ctx, in.UserPhone)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if in.UserEmail != "" {
		user, err := uc.repo.FindUserByEmail(ctx, in.UserEmail)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if in.UserPhone == "" && in.UserEmail == "" {
		return nil, httperr.ErrValidation("missing_contact")
	}

	username := in.UserEmail
	if username == "" {
		username = in.UserPhone
	}

	guest := &models.User{
		Name:     in.UserName,
		Phone:    in.UserPhone,
		Email:    in.UserEmail,
		Username: username,
		Role:     models.RoleClient,
	}
	if err := uc.repo.CreateUser(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}
