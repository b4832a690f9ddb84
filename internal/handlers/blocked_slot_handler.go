package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/httpresp"
	"github.com/aladinbarber/booking-api/internal/middleware"
	"github.com/aladinbarber/booking-api/internal/models"
)

// BlockedSlotHandler manages admin blackouts: whole days, single slots or
// ranges, per barber or shop-wide.
type BlockedSlotHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBlockedSlotHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *BlockedSlotHandler {
	return &BlockedSlotHandler{db: db, audit: dispatcher}
}

type CreateBlockedSlotRequest struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	BarberID  *uint   `json:"barber_id"`
	Reason    string  `json:"reason"`
}

func (h *BlockedSlotHandler) List(c *gin.Context) {
	q := h.db.Preload("Barber").Order("date ASC, start_time ASC")
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var slots []models.BlockedSlot
	if err := q.Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load blocked slots.")
		return
	}
	httpresp.List(c, slots)
}

func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := domain.ParseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if req.StartTime != nil {
		start, err := domain.ParseClock(*req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Start time must be HH:MM or HH:MM:SS.")
			return
		}
		normalized := domain.FormatClock(start)
		req.StartTime = &normalized
	}
	if req.EndTime != nil {
		end, err := domain.ParseClock(*req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "End time must be HH:MM or HH:MM:SS.")
			return
		}
		normalized := domain.FormatClock(end)
		req.EndTime = &normalized
	}
	if req.BarberID != nil {
		var count int64
		h.db.Model(&models.Barber{}).Where("id = ?", *req.BarberID).Count(&count)
		if count == 0 {
			httperr.NotFound(c, "barber_not_found", "Barber does not exist.")
			return
		}
	}

	slot := models.BlockedSlot{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BarberID:  req.BarberID,
		Reason:    req.Reason,
	}
	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_create", "Could not save blocked slot.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   adminID(c),
		Action:   "blocked_slot_created",
		Entity:   "blocked_slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{"date": slot.Date, "reason": slot.Reason},
	})

	httpresp.Created(c, slot)
}

func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Blocked slot id must be numeric.")
		return
	}

	res := h.db.Delete(&models.BlockedSlot{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete", "Could not delete blocked slot.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_slot_not_found", "Blocked slot does not exist.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   adminID(c),
		Action:   "blocked_slot_deleted",
		Entity:   "blocked_slot",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"message": "blocked slot deleted", "id": id})
}

func adminID(c *gin.Context) *uint {
	if id, ok := c.Get(middleware.ContextUserID); ok {
		v := id.(uint)
		return &v
	}
	return nil
}
