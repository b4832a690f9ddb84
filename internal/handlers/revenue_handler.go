package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/httpresp"
	"github.com/aladinbarber/booking-api/internal/usecase/appointment"
)

type RevenueHandler struct {
	report *appointment.GetRevenueReport
}

func NewRevenueHandler(report *appointment.GetRevenueReport) *RevenueHandler {
	return &RevenueHandler{report: report}
}

// Weekly returns the revenue report for the Monday-to-Sunday week containing
// the reference date (query "date", default today).
func (h *RevenueHandler) Weekly(c *gin.Context) {
	barberID, err := parseUintParam(c, "barberId")
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}

	report, err := h.report.Execute(c.Request.Context(), barberID, c.Query("date"))
	if err != nil {
		httperr.WriteError(c, err, "failed_to_build_report")
		return
	}

	httpresp.OK(c, report)
}
