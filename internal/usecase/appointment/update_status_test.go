package appointment

import (
	"context"
	"testing"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

func statusRepo(ap *models.Appointment, user *models.User, savedUser **models.User) *fakeRepo {
	return &fakeRepo{
		getAppointmentByID: func(id uint) (*models.Appointment, error) { return ap, nil },
		getUserByID:        func(id uint) (*models.User, error) { return user, nil },
		saveUser: func(u *models.User) error {
			*savedUser = u
			return nil
		},
	}
}

func TestUpdateStatusCompletionIncrementsTotal(t *testing.T) {
	ap := &models.Appointment{ID: 1, Status: string(domain.StatusBooked), UserID: uintPtr(5)}
	user := &models.User{ID: 5, TotalAppointments: 3}
	var saved *models.User

	got, err := NewUpdateStatus(statusRepo(ap, user, &saved), testDispatcher()).
		Execute(context.Background(), 1, "DONE")
	if err != nil {
		t.Fatal(err)
	}

	if got.Status != string(domain.StatusDone) {
		t.Errorf("status = %s, want DONE", got.Status)
	}
	if saved == nil || saved.TotalAppointments != 4 {
		t.Errorf("total not incremented: %+v", saved)
	}
	if saved.AvailableRewards != 0 {
		t.Errorf("premature reward grant: %+v", saved)
	}
}

func TestUpdateStatusTenthCompletionGrantsReward(t *testing.T) {
	ap := &models.Appointment{ID: 1, Status: string(domain.StatusBooked), UserID: uintPtr(5)}
	user := &models.User{ID: 5, TotalAppointments: 9}
	var saved *models.User

	_, err := NewUpdateStatus(statusRepo(ap, user, &saved), testDispatcher()).
		Execute(context.Background(), 1, "DONE")
	if err != nil {
		t.Fatal(err)
	}

	if saved == nil || saved.TotalAppointments != 10 || saved.AvailableRewards != 1 {
		t.Errorf("tenth completion did not grant: %+v", saved)
	}
}

func TestUpdateStatusRevertingDoneUndoesGrant(t *testing.T) {
	ap := &models.Appointment{ID: 1, Status: string(domain.StatusDone), UserID: uintPtr(5)}
	user := &models.User{ID: 5, TotalAppointments: 10, AvailableRewards: 1}
	var saved *models.User

	_, err := NewUpdateStatus(statusRepo(ap, user, &saved), testDispatcher()).
		Execute(context.Background(), 1, "BOOKED")
	if err != nil {
		t.Fatal(err)
	}

	if saved == nil || saved.TotalAppointments != 9 || saved.AvailableRewards != 0 {
		t.Errorf("revert did not undo the grant: %+v", saved)
	}
}

func TestUpdateStatusCancellationRefundsReward(t *testing.T) {
	ap := &models.Appointment{
		ID:            1,
		Status:        string(domain.StatusBooked),
		UserID:        uintPtr(5),
		RewardApplied: true,
	}
	user := &models.User{ID: 5, TotalAppointments: 10, UsedRewards: 1}
	var saved *models.User

	_, err := NewUpdateStatus(statusRepo(ap, user, &saved), testDispatcher()).
		Execute(context.Background(), 1, "CANCELLED")
	if err != nil {
		t.Fatal(err)
	}

	if saved == nil || saved.AvailableRewards != 1 || saved.UsedRewards != 0 {
		t.Errorf("cancellation did not refund: %+v", saved)
	}
}

func TestUpdateStatusNoUserSkipsLoyalty(t *testing.T) {
	ap := &models.Appointment{ID: 1, Status: string(domain.StatusBlocked)}
	repo := &fakeRepo{
		getAppointmentByID: func(id uint) (*models.Appointment, error) { return ap, nil },
		// getUserByID left unset: a lookup would fail the test via errNotFound.
	}

	_, err := NewUpdateStatus(repo, testDispatcher()).Execute(context.Background(), 1, "CANCELLED")
	if err != nil {
		t.Fatalf("userless status change failed: %v", err)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	_, err := NewUpdateStatus(&fakeRepo{}, testDispatcher()).
		Execute(context.Background(), 1, "FINISHED")
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("got %v, want invalid_status", err)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	_, err := NewUpdateStatus(&fakeRepo{}, testDispatcher()).
		Execute(context.Background(), 42, "DONE")
	if !httperr.IsNotFound(err) {
		t.Errorf("got %v, want not found", err)
	}
}
