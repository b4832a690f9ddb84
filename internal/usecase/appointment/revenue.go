package appointment

import (
	"context"
	"strings"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/models"
	"github.com/aladinbarber/booking-api/internal/timezone"
)

// ======================================================
// REPORT SHAPE
// ======================================================

type RevenueDetail struct {
	AppointmentID uint    `json:"appointment_id"`
	ClientName    string  `json:"client_name"`
	Services      string  `json:"services"`
	Price         float64 `json:"price"`
	Date          string  `json:"date"`
}

type DailyRevenue struct {
	Date         string          `json:"date"`
	Details      []RevenueDetail `json:"details"`
	TotalRevenue float64         `json:"total_revenue"`
}

type WeeklyRevenue struct {
	Year         int             `json:"year"`
	WeekNumber   int             `json:"week_number"`
	WeekRange    string          `json:"week_range"`
	Details      []RevenueDetail `json:"details"`
	TotalRevenue float64         `json:"total_revenue"`
}

type RevenueReport struct {
	BarberID       uint            `json:"barber_id"`
	BarberName     string          `json:"barber_name"`
	DailyRevenues  []DailyRevenue  `json:"daily_revenues"`
	WeeklyRevenues []WeeklyRevenue `json:"weekly_revenues"`
}

// ======================================================
// USE CASE
// ======================================================

// GetRevenueReport rolls completed appointments up into the Monday-to-Sunday
// week containing the reference date. Read-only.
type GetRevenueReport struct {
	repo domain.Repository
}

func NewGetRevenueReport(repo domain.Repository) *GetRevenueReport {
	return &GetRevenueReport{repo: repo}
}

func (uc *GetRevenueReport) Execute(
	ctx context.Context,
	barberID uint,
	referenceDate string,
) (*RevenueReport, error) {

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	ref := timezone.Now()
	if referenceDate != "" {
		parsed, err := domain.ParseDate(referenceDate)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_date")
		}
		ref = parsed
	}

	monday, sunday := domain.WeekBounds(ref)

	done, err := uc.repo.ListDoneAppointmentsBetween(
		ctx,
		barberID,
		monday.Format(domain.DateLayout),
		sunday.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{
		BarberID:       barber.ID,
		BarberName:     barber.Name,
		DailyRevenues:  []DailyRevenue{},
		WeeklyRevenues: []WeeklyRevenue{},
	}

	// Rows arrive ordered by date then start time, so grouping by date is a
	// single pass.
	var weekTotal float64
	weekDetails := []RevenueDetail{}

	for _, ap := range done {
		detail := toDetail(ap)
		weekTotal += detail.Price
		weekDetails = append(weekDetails, detail)

		if n := len(report.DailyRevenues); n > 0 && report.DailyRevenues[n-1].Date == ap.Date {
			day := &report.DailyRevenues[n-1]
			day.Details = append(day.Details, detail)
			day.TotalRevenue += detail.Price
			continue
		}
		report.DailyRevenues = append(report.DailyRevenues, DailyRevenue{
			Date:         ap.Date,
			Details:      []RevenueDetail{detail},
			TotalRevenue: detail.Price,
		})
	}

	if len(done) > 0 {
		// ISO week number, but the Monday's calendar year: the week of
		// Dec 29 - Jan 3 reports under the old year even though ISO already
		// counts it as week 1 of the new one.
		_, week := monday.ISOWeek()
		report.WeeklyRevenues = append(report.WeeklyRevenues, WeeklyRevenue{
			Year:         monday.Year(),
			WeekNumber:   week,
			WeekRange:    domain.WeekRangeLabel(monday, sunday),
			Details:      weekDetails,
			TotalRevenue: weekTotal,
		})
	}

	return report, nil
}

func toDetail(ap models.Appointment) RevenueDetail {
	clientName := "Guest"
	if ap.User != nil && ap.User.Name != "" {
		clientName = ap.User.Name
	}

	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Name)
	}

	return RevenueDetail{
		AppointmentID: ap.ID,
		ClientName:    clientName,
		Services:      strings.Join(names, ", "),
		Price:         ap.TotalPrice,
		Date:          ap.Date,
	}
}
