package appointment

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

func TestLockSlotWithoutGuestBlocks(t *testing.T) {
	var created *models.Appointment
	repo := &fakeRepo{
		getBarberByID: func(id uint) (*models.Barber, error) { return testBarber(), nil },
		createAppointment: func(ap *models.Appointment) error {
			ap.ID = 10
			created = ap
			return nil
		},
	}

	ap, err := NewLockSlot(repo, testDispatcher()).
		Execute(context.Background(), 1, "2025-03-11", "14:00", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if created == nil {
		t.Fatal("block was not created")
	}
	if ap.Status != string(domain.StatusBlocked) {
		t.Errorf("status = %s, want BLOCKED", ap.Status)
	}
	if ap.UserID != nil {
		t.Error("pure block must not reference a user")
	}
	if !ap.AdminViewed {
		t.Error("admin's own block must not raise the unseen badge")
	}
}

func TestLockSlotWithGuestBooks(t *testing.T) {
	repo := &fakeRepo{
		getBarberByID: func(id uint) (*models.Barber, error) { return testBarber(), nil },
		createUser: func(u *models.User) error {
			u.ID = 8
			return nil
		},
	}

	ap, err := NewLockSlot(repo, testDispatcher()).
		Execute(context.Background(), 1, "2025-03-11", "14:00", "Walid", "21655000111")
	if err != nil {
		t.Fatal(err)
	}

	if ap.Status != string(domain.StatusBooked) {
		t.Errorf("status = %s, want BOOKED", ap.Status)
	}
	if ap.UserID == nil || *ap.UserID != 8 {
		t.Error("walk-in guest was not linked")
	}
}

func TestLockSlotConflict(t *testing.T) {
	repo := &fakeRepo{
		getBarberByID: func(id uint) (*models.Barber, error) { return testBarber(), nil },
		listActive: func(barberID uint, date string) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: 1, StartTime: "14:00:00", EndTime: "14:30:00", Status: string(domain.StatusBooked)},
			}, nil
		},
	}

	_, err := NewLockSlot(repo, testDispatcher()).
		Execute(context.Background(), 1, "2025-03-11", "14:00", "", "")
	if !httperr.IsConflict(err) {
		t.Errorf("got %v, want conflict", err)
	}
}

func TestLockSlotRaceLoserGetsConflict(t *testing.T) {
	repo := &fakeRepo{
		getBarberByID: func(id uint) (*models.Barber, error) { return testBarber(), nil },
		createAppointment: func(ap *models.Appointment) error {
			return gorm.ErrDuplicatedKey
		},
	}

	_, err := NewLockSlot(repo, testDispatcher()).
		Execute(context.Background(), 1, "2025-03-11", "14:00", "", "")
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Errorf("race loser got %v, want time_conflict", err)
	}
}

func TestLockSlotGuestLookupFailurePropagates(t *testing.T) {
	dbErr := errors.New("connection refused")

	repo := &fakeRepo{
		getBarberByID:   func(id uint) (*models.Barber, error) { return testBarber(), nil },
		findUserByPhone: func(phone string) (*models.User, error) { return nil, dbErr },
		createUser: func(u *models.User) error {
			t.Error("a failing lookup must not spawn a guest account")
			return nil
		},
	}

	_, err := NewLockSlot(repo, testDispatcher()).
		Execute(context.Background(), 1, "2025-03-11", "14:00", "Walid", "21655000111")
	if !errors.Is(err, dbErr) {
		t.Errorf("got %v, want the lookup failure", err)
	}
}

func TestUnlockSlot(t *testing.T) {
	blocked := &models.Appointment{ID: 3, Status: string(domain.StatusBlocked)}
	deleted := false

	repo := &fakeRepo{
		findBlocked: func(barberID uint, date, startTime string) (*models.Appointment, error) {
			if barberID != 1 || date != "2025-03-11" || startTime != "14:00:00" {
				t.Errorf("lookup = (%d, %s, %s)", barberID, date, startTime)
			}
			return blocked, nil
		},
		deleteAppointment: func(ap *models.Appointment) error {
			deleted = true
			return nil
		},
	}

	ap, err := NewUnlockSlot(repo, testDispatcher()).
		Execute(context.Background(), 1, "2025-03-11", "14:00")
	if err != nil {
		t.Fatal(err)
	}
	if !deleted || ap.ID != 3 {
		t.Error("block was not removed")
	}
}

func TestUnlockSlotNotFound(t *testing.T) {
	_, err := NewUnlockSlot(&fakeRepo{}, testDispatcher()).
		Execute(context.Background(), 1, "2025-03-11", "14:00")
	if !httperr.IsBusiness(err, "blocked_slot_not_found") {
		t.Errorf("got %v, want blocked_slot_not_found", err)
	}
}
