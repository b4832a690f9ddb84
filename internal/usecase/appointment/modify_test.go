package appointment

import (
	"context"
	"testing"

	"gorm.io/gorm"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
	"github.com/aladinbarber/booking-api/internal/notify"
)

func originalAppointment() *models.Appointment {
	return &models.Appointment{
		ID:            1,
		Date:          "2025-03-11",
		StartTime:     "14:00:00",
		EndTime:       "14:30:00",
		Status:        string(domain.StatusBooked),
		UserID:        uintPtr(5),
		BarberID:      1,
		Services:      []models.Service{comboService()},
		TotalPrice:    0,
		RewardApplied: true,
	}
}

func TestModifyCreatesReplacement(t *testing.T) {
	old := originalAppointment()
	var created *models.Appointment

	repo := &fakeRepo{
		getAppointmentByID: func(id uint) (*models.Appointment, error) { return old, nil },
		createAppointment: func(ap *models.Appointment) error {
			ap.ID = 2
			created = ap
			return nil
		},
	}

	got, err := NewModifyAppointment(repo, testDispatcher(), notify.Nop{}).
		Execute(context.Background(), 1, "2025-03-12", "16:00")
	if err != nil {
		t.Fatal(err)
	}

	if old.Status != string(domain.StatusCancelled) {
		t.Errorf("original status = %s, want CANCELLED", old.Status)
	}
	if created == nil {
		t.Fatal("replacement was not created")
	}
	if got.Status != string(domain.StatusModified) {
		t.Errorf("replacement status = %s, want MODIFIED", got.Status)
	}
	if got.Date != "2025-03-12" || got.StartTime != "16:00:00" || got.EndTime != "16:30:00" {
		t.Errorf("replacement slot = %s %s-%s", got.Date, got.StartTime, got.EndTime)
	}
	if !got.RewardApplied {
		t.Error("reward did not carry over to the replacement")
	}
	if got.AdminViewed {
		t.Error("replacement must surface as unseen")
	}
	if got.UserID == nil || *got.UserID != 5 || got.BarberID != 1 {
		t.Error("replacement lost its user or barber")
	}
}

func TestModifyConflictingTargetRejected(t *testing.T) {
	old := originalAppointment()
	createCalled := false

	repo := &fakeRepo{
		getAppointmentByID: func(id uint) (*models.Appointment, error) { return old, nil },
		listActive: func(barberID uint, date string) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: 9, StartTime: "16:00:00", EndTime: "16:30:00", Status: string(domain.StatusBooked)},
			}, nil
		},
		createAppointment: func(ap *models.Appointment) error {
			createCalled = true
			return nil
		},
	}

	_, err := NewModifyAppointment(repo, testDispatcher(), notify.Nop{}).
		Execute(context.Background(), 1, "2025-03-12", "16:00")
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("got %v, want time_conflict", err)
	}
	if createCalled {
		t.Error("replacement created despite the conflict")
	}
}

func TestModifyRaceLoserGetsConflict(t *testing.T) {
	old := originalAppointment()
	repo := &fakeRepo{
		getAppointmentByID: func(id uint) (*models.Appointment, error) { return old, nil },
		createAppointment: func(ap *models.Appointment) error {
			return gorm.ErrDuplicatedKey
		},
	}

	_, err := NewModifyAppointment(repo, testDispatcher(), notify.Nop{}).
		Execute(context.Background(), 1, "2025-03-12", "16:00")
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Errorf("race loser got %v, want time_conflict", err)
	}
}

func TestModifyValidation(t *testing.T) {
	uc := NewModifyAppointment(&fakeRepo{}, testDispatcher(), notify.Nop{})

	if _, err := uc.Execute(context.Background(), 1, "12/03/2025", "16:00"); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("got %v, want invalid_date", err)
	}
	if _, err := uc.Execute(context.Background(), 1, "2025-03-12", "4pm"); !httperr.IsBusiness(err, "invalid_time") {
		t.Errorf("got %v, want invalid_time", err)
	}
}

func TestModifyUnknownAppointment(t *testing.T) {
	_, err := NewModifyAppointment(&fakeRepo{}, testDispatcher(), notify.Nop{}).
		Execute(context.Background(), 42, "2025-03-12", "16:00")
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("got %v, want appointment_not_found", err)
	}
}
