package handlers

import (
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/httpresp"
	"github.com/aladinbarber/booking-api/internal/live"
	"github.com/aladinbarber/booking-api/internal/middleware"
	"github.com/aladinbarber/booking-api/internal/models"
	"github.com/aladinbarber/booking-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	db *gorm.DB

	book        *appointment.BookAppointment
	cancel      *appointment.CancelAppointment
	modify      *appointment.ModifyAppointment
	status      *appointment.UpdateStatus
	lock        *appointment.LockSlot
	unlock      *appointment.UnlockSlot
	delete      *appointment.DeleteAppointment
	markViewed  *appointment.MarkAdminViewed
	available   *appointment.GetAvailableSlots
	broadcaster *live.Broadcaster
}

func NewAppointmentHandler(
	db *gorm.DB,
	book *appointment.BookAppointment,
	cancel *appointment.CancelAppointment,
	modify *appointment.ModifyAppointment,
	status *appointment.UpdateStatus,
	lock *appointment.LockSlot,
	unlock *appointment.UnlockSlot,
	del *appointment.DeleteAppointment,
	markViewed *appointment.MarkAdminViewed,
	available *appointment.GetAvailableSlots,
	broadcaster *live.Broadcaster,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:          db,
		book:        book,
		cancel:      cancel,
		modify:      modify,
		status:      status,
		lock:        lock,
		unlock:      unlock,
		delete:      del,
		markViewed:  markViewed,
		available:   available,
		broadcaster: broadcaster,
	}
}

// --------- Requests ---------

type BookAppointmentRequest struct {
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`

	UserName  string `json:"user_name"`
	UserPhone string `json:"user_phone"`
	UserEmail string `json:"user_email"`

	UseReward bool `json:"use_reward"`
}

type ModifyAppointmentRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LockSlotRequest struct {
	BarberID   uint   `json:"barber_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
}

type UnlockSlotRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

// --------- Booking flow ---------

// Available lists the free start times for a barber on a date.
func (h *AppointmentHandler) Available(c *gin.Context) {
	barberID, err := parseUintParam(c, "barberId")
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	slots, err := h.available.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_list_slots")
		return
	}

	httpresp.OK(c, gin.H{
		"barber_id": barberID,
		"date":      date,
		"slots":     slots,
	})
}

// Book creates an appointment. Works for guests and signed-in clients; when
// a valid token is attached the booking is tied to that account.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	input := appointment.BookAppointmentInput{
		BarberID:   req.BarberID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		StartTime:  req.StartTime,
		UserName:   strings.TrimSpace(req.UserName),
		UserPhone:  strings.TrimSpace(req.UserPhone),
		UserEmail:  strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UseReward:  req.UseReward,
	}
	if id, ok := c.Get(middleware.ContextUserID); ok {
		userID := id.(uint)
		input.UserID = &userID
	}

	ap, err := h.book.Execute(c.Request.Context(), input)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_book")
		return
	}

	h.broadcaster.Publish(c.Request.Context(), ap)
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_cancel")
		return
	}

	h.broadcaster.Publish(c.Request.Context(), ap)
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Modify(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	var req ModifyAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.modify.Execute(c.Request.Context(), id, req.Date, req.StartTime)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_modify")
		return
	}

	h.broadcaster.Publish(c.Request.Context(), ap)
	httpresp.OK(c, ap)
}

// --------- Admin lifecycle ---------

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_update_status")
		return
	}

	h.broadcaster.Publish(c.Request.Context(), ap)
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Lock(c *gin.Context) {
	var req LockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.lock.Execute(
		c.Request.Context(),
		req.BarberID, req.Date, req.StartTime,
		strings.TrimSpace(req.GuestName), strings.TrimSpace(req.GuestPhone),
	)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_lock_slot")
		return
	}

	h.broadcaster.Publish(c.Request.Context(), ap)
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Unlock(c *gin.Context) {
	var req UnlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.unlock.Execute(c.Request.Context(), req.BarberID, req.Date, req.StartTime)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_unlock_slot")
		return
	}

	h.broadcaster.Publish(c.Request.Context(), ap)
	httpresp.OK(c, gin.H{"message": "slot unlocked", "id": ap.ID})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err, "failed_to_delete")
		return
	}

	httpresp.OK(c, gin.H{"message": "appointment deleted", "id": id})
}

func (h *AppointmentHandler) MarkViewed(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.markViewed.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_mark_viewed")
		return
	}

	httpresp.OK(c, ap)
}

// --------- Listing surfaces ---------

// List returns every appointment, newest first. Admin dashboard main feed.
func (h *AppointmentHandler) List(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.db.
		Preload("User").
		Preload("Barber").
		Preload("Services").
		Order("date DESC, start_time DESC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load appointments.")
		return
	}
	httpresp.List(c, appointments)
}

// Filter narrows the feed by barber, date, status and free-text client
// search. Sort accepts "asc" (default is newest first).
func (h *AppointmentHandler) Filter(c *gin.Context) {
	q := h.db.Model(&models.Appointment{}).
		Preload("User").
		Preload("Barber").
		Preload("Services")

	if barberID := c.Query("barber_id"); barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
			return
		}
		q = q.Where("status = ?", string(parsed))
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Joins("LEFT JOIN users ON users.id = appointments.user_id").
			Where("users.name ILIKE ? OR users.phone ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	order := "date DESC, start_time DESC"
	if c.Query("sort") == "asc" {
		order = "date ASC, start_time ASC"
	}

	var appointments []models.Appointment
	if err := q.Order(order).Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load appointments.")
		return
	}
	httpresp.List(c, appointments)
}

// MyAppointments lists the authenticated client's own history.
func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	id, ok := c.Get(middleware.ContextUserID)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Barber").
		Preload("Services").
		Where("user_id = ?", id.(uint)).
		Order("date DESC, start_time DESC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load appointments.")
		return
	}
	httpresp.List(c, appointments)
}

// ByContact lets guests look up their bookings by the phone or email they
// booked with.
func (h *AppointmentHandler) ByContact(c *gin.Context) {
	phone := strings.TrimSpace(c.Query("phone"))
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if phone == "" && email == "" {
		httperr.BadRequest(c, "missing_contact", "Provide 'phone' or 'email'.")
		return
	}

	q := h.db.
		Preload("Barber").
		Preload("Services").
		Joins("JOIN users ON users.id = appointments.user_id")
	if phone != "" {
		q = q.Where("users.phone = ?", phone)
	} else {
		q = q.Where("users.email = ?", email)
	}

	var appointments []models.Appointment
	if err := q.Order("date DESC, start_time DESC").Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load appointments.")
		return
	}
	httpresp.List(c, appointments)
}

// NewCount returns how many bookings the admin has not seen yet. Drives the
// dashboard badge.
func (h *AppointmentHandler) NewCount(c *gin.Context) {
	var count int64
	if err := h.db.Model(&models.Appointment{}).
		Where("admin_viewed = ? AND status IN ?", false, domain.ActiveStatusStrings()).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_count", "Could not count appointments.")
		return
	}
	httpresp.OK(c, gin.H{"count": count})
}

// --------- Live updates ---------

// Stream pushes committed appointment mutations to the admin dashboard over
// SSE until the client disconnects.
func (h *AppointmentHandler) Stream(c *gin.Context) {
	events, cancel := h.broadcaster.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("appointment", ev)
			return true
		}
	})
}

// --------- Helpers ---------

func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
