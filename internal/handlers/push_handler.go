package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/httpresp"
	"github.com/aladinbarber/booking-api/internal/middleware"
	"github.com/aladinbarber/booking-api/internal/models"
)

// PushHandler records browser web-push subscriptions. Delivery is handled by
// the external push worker consuming the notification queue.
type PushHandler struct {
	db *gorm.DB
}

func NewPushHandler(db *gorm.DB) *PushHandler {
	return &PushHandler{db: db}
}

type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

func (h *PushHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	id, _ := c.Get(middleware.ContextUserID)

	sub := models.PushSubscription{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
		UserID:   id.(uint),
	}

	// Re-subscribing from the same browser refreshes the keys in place.
	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "user_id"}),
	}).Create(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_subscribe", "Could not save subscription.")
		return
	}

	httpresp.Created(c, gin.H{"message": "subscribed"})
}

func (h *PushHandler) Unsubscribe(c *gin.Context) {
	var req struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	id, _ := c.Get(middleware.ContextUserID)
	if err := h.db.
		Where("endpoint = ? AND user_id = ?", req.Endpoint, id.(uint)).
		Delete(&models.PushSubscription{}).Error; err != nil {
		httperr.Internal(c, "failed_to_unsubscribe", "Could not remove subscription.")
		return
	}

	httpresp.OK(c, gin.H{"message": "unsubscribed"})
}
