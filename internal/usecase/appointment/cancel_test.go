package appointment

import (
	"context"
	"testing"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

func TestCancelRefundsRewardOnce(t *testing.T) {
	ap := &models.Appointment{
		ID:            1,
		Status:        string(domain.StatusBooked),
		UserID:        uintPtr(5),
		RewardApplied: true,
	}
	user := &models.User{ID: 5, TotalAppointments: 10, UsedRewards: 1}
	saveUserCalls := 0

	repo := &fakeRepo{
		getAppointmentByID: func(id uint) (*models.Appointment, error) { return ap, nil },
		getUserByID:        func(id uint) (*models.User, error) { return user, nil },
		saveUser: func(u *models.User) error {
			saveUserCalls++
			*user = *u
			return nil
		},
	}
	uc := NewCancelAppointment(repo, testDispatcher())

	got, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s, want CANCELLED", got.Status)
	}
	if user.AvailableRewards != 1 || user.UsedRewards != 0 {
		t.Errorf("refund missing: avail=%d used=%d", user.AvailableRewards, user.UsedRewards)
	}

	// Cancelling again must change nothing.
	if _, err := uc.Execute(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if saveUserCalls != 1 {
		t.Errorf("reward refunded %d times, want exactly once", saveUserCalls)
	}
	if user.AvailableRewards != 1 {
		t.Errorf("double refund: avail=%d", user.AvailableRewards)
	}
}

func TestCancelWithoutRewardLeavesCounters(t *testing.T) {
	ap := &models.Appointment{ID: 1, Status: string(domain.StatusBooked), UserID: uintPtr(5)}

	repo := &fakeRepo{
		getAppointmentByID: func(id uint) (*models.Appointment, error) { return ap, nil },
		saveUser: func(u *models.User) error {
			t.Error("saveUser called for a reward-free cancellation")
			return nil
		},
	}

	got, err := NewCancelAppointment(repo, testDispatcher()).Execute(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s, want CANCELLED", got.Status)
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	_, err := NewCancelAppointment(&fakeRepo{}, testDispatcher()).Execute(context.Background(), 42)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("got %v, want appointment_not_found", err)
	}
}
