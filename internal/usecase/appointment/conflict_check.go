package appointment

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
)

// assertSlotFree is the single conflict gate shared by every committing
// operation (book, modify, lock). Inside a transaction the repository locks
// the competing rows, so two concurrent claims on the same slot cannot both
// pass.
func assertSlotFree(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	date string,
	candidate domain.Interval,
) error {

	active, err := repo.ListActiveAppointments(ctx, barberID, date)
	if err != nil {
		return err
	}

	for _, iv := range activeIntervals(active) {
		if iv.Overlaps(candidate) {
			return httperr.ErrConflict("time_conflict")
		}
	}

	blackouts, err := repo.ListBlackoutsByDate(ctx, date)
	if err != nil {
		return err
	}

	switch domain.CheckBlackouts(blackouts, barberID, candidate) {
	case domain.BlackoutWholeDay:
		return httperr.ErrConflict("date_blocked")
	case domain.BlackoutOverlap:
		return httperr.ErrConflict("slot_blocked")
	}

	return nil
}

// translateInsertErr maps the storage backstop's duplicate-key violation to
// the same conflict the row-lock check reports. When two transactions both
// pass assertSlotFree on an empty slot, the partial unique index rejects the
// second insert and that loser gets a conflict, not an internal error.
func translateInsertErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrConflict("time_conflict")
	}
	return err
}

// activeIntervals parses the stored time strings of slot-occupying
// appointments. Unparsable rows are logged and skipped, matching the
// fail-open handling of corrupted blackout data.
func activeIntervals(apps []models.Appointment) []domain.Interval {
	out := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		start, err := domain.ParseClock(ap.StartTime)
		if err != nil {
			log.Printf("appointment: unparsable start time (id=%d): %v", ap.ID, err)
			continue
		}
		end, err := domain.ParseClock(ap.EndTime)
		if err != nil {
			log.Printf("appointment: unparsable end time (id=%d): %v", ap.ID, err)
			continue
		}
		out = append(out, domain.Interval{Start: start, End: end})
	}
	return out
}
