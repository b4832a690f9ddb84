package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/httpresp"
	"github.com/aladinbarber/booking-api/internal/middleware"
	"github.com/aladinbarber/booking-api/internal/models"
)

// AdminMessageHandler is the flat staff chat board.
type AdminMessageHandler struct {
	db *gorm.DB
}

func NewAdminMessageHandler(db *gorm.DB) *AdminMessageHandler {
	return &AdminMessageHandler{db: db}
}

type PostMessageRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

func (h *AdminMessageHandler) List(c *gin.Context) {
	var messages []models.AdminMessage
	if err := h.db.
		Order("created_at DESC").
		Limit(100).
		Find(&messages).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load messages.")
		return
	}
	httpresp.List(c, messages)
}

func (h *AdminMessageHandler) Post(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		httperr.BadRequest(c, "empty_message", "Message content is empty.")
		return
	}

	id, _ := c.Get(middleware.ContextUserID)
	senderID := id.(uint)

	var sender models.User
	if err := h.db.First(&sender, senderID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Sender does not exist.")
		return
	}

	msg := models.AdminMessage{
		Content:    content,
		SenderID:   sender.ID,
		SenderName: sender.Name,
	}
	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_create", "Could not save message.")
		return
	}

	httpresp.Created(c, msg)
}
