package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/httpresp"
	"github.com/aladinbarber/booking-api/internal/middleware"
	"github.com/aladinbarber/booking-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// Me returns the authenticated user's profile and loyalty counters.
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := c.Get(middleware.ContextUserID)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id.(uint)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User does not exist.")
		return
	}

	httpresp.OK(c, user)
}

// Loyalty exposes the reward progress for the authenticated client: how many
// completed visits remain until the next reward.
func (h *UserHandler) Loyalty(c *gin.Context) {
	id, ok := c.Get(middleware.ContextUserID)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id.(uint)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User does not exist.")
		return
	}

	untilNext := domain.RewardEvery - user.TotalAppointments%domain.RewardEvery

	httpresp.OK(c, gin.H{
		"total_appointments": user.TotalAppointments,
		"available_rewards":  user.AvailableRewards,
		"used_rewards":       user.UsedRewards,
		"until_next_reward":  untilNext,
	})
}

// LoyaltyByContact is the guest variant, keyed on phone.
func (h *UserHandler) LoyaltyByContact(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_contact", "Query parameter 'phone' is required.")
		return
	}

	var user models.User
	if err := h.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "No account for this phone number.")
		return
	}

	untilNext := domain.RewardEvery - user.TotalAppointments%domain.RewardEvery

	httpresp.OK(c, gin.H{
		"name":               user.Name,
		"total_appointments": user.TotalAppointments,
		"available_rewards":  user.AvailableRewards,
		"used_rewards":       user.UsedRewards,
		"until_next_reward":  untilNext,
	})
}

// ListClients is the admin client directory, with loyalty counters inline.
func (h *UserHandler) ListClients(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Where("role = ?", models.RoleClient).
		Order("name ASC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load clients.")
		return
	}
	httpresp.List(c, users)
}
