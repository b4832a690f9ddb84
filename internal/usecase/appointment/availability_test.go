package appointment

import (
	"context"
	"testing"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestAvailableSlotsMondayGrid(t *testing.T) {
	uc := NewGetAvailableSlots(&fakeRepo{})

	// 2025-03-10 is a Monday: 12:00 to 18:00.
	slots, err := uc.Execute(context.Background(), 1, "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}

	if len(slots) != 12 {
		t.Fatalf("got %d slots, want 12: %v", len(slots), slots)
	}
	if slots[0] != "12:00:00" {
		t.Errorf("first slot = %s, want 12:00:00", slots[0])
	}
	if slots[len(slots)-1] != "17:30:00" {
		t.Errorf("last slot = %s, want 17:30:00", slots[len(slots)-1])
	}
}

func TestAvailableSlotsExcludesActiveAppointments(t *testing.T) {
	repo := &fakeRepo{
		listActive: func(barberID uint, date string) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: 1, StartTime: "12:00:00", EndTime: "12:30:00", Status: string(domain.StatusBooked)},
				{ID: 2, StartTime: "15:00:00", EndTime: "15:30:00", Status: string(domain.StatusBlocked)},
			}, nil
		},
	}

	slots, err := NewGetAvailableSlots(repo).Execute(context.Background(), 1, "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}

	if len(slots) != 10 {
		t.Fatalf("got %d slots, want 10: %v", len(slots), slots)
	}
	for _, s := range slots {
		if s == "12:00:00" || s == "15:00:00" {
			t.Errorf("occupied slot %s still listed", s)
		}
	}
}

func TestAvailableSlotsWholeDayBlackout(t *testing.T) {
	repo := &fakeRepo{
		listBlackouts: func(date string) ([]domain.Blackout, error) {
			return []domain.Blackout{{ID: 1}}, nil
		},
	}

	slots, err := NewGetAvailableSlots(repo).Execute(context.Background(), 1, "2025-03-11")
	if err != nil {
		t.Fatal(err)
	}
	if slots == nil {
		t.Fatal("blocked day must return an empty list, not nil")
	}
	if len(slots) != 0 {
		t.Errorf("blocked day listed %d slots", len(slots))
	}
}

func TestAvailableSlotsRangeBlackout(t *testing.T) {
	repo := &fakeRepo{
		listBlackouts: func(date string) ([]domain.Blackout, error) {
			return []domain.Blackout{
				{ID: 1, StartTime: strPtr("14:00:00"), EndTime: strPtr("15:00:00")},
			}, nil
		},
	}

	// Tuesday: 10:00 to 21:00, 22 slots minus the two blacked out.
	slots, err := NewGetAvailableSlots(repo).Execute(context.Background(), 1, "2025-03-11")
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 20 {
		t.Fatalf("got %d slots, want 20", len(slots))
	}
	for _, s := range slots {
		if s == "14:00:00" || s == "14:30:00" {
			t.Errorf("blacked-out slot %s still listed", s)
		}
	}
}

func TestAvailableSlotsOtherBarberBlackoutIgnored(t *testing.T) {
	repo := &fakeRepo{
		listBlackouts: func(date string) ([]domain.Blackout, error) {
			return []domain.Blackout{{ID: 1, BarberID: uintPtr(2)}}, nil
		},
	}

	slots, err := NewGetAvailableSlots(repo).Execute(context.Background(), 1, "2025-03-11")
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 22 {
		t.Errorf("got %d slots, want the full grid of 22", len(slots))
	}
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	_, err := NewGetAvailableSlots(&fakeRepo{}).Execute(context.Background(), 1, "next tuesday")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("got %v, want invalid_date", err)
	}
}
