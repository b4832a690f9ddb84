package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/httperr"
	"github.com/aladinbarber/booking-api/internal/httpresp"
	"github.com/aladinbarber/booking-api/internal/models"
)

// CatalogHandler serves the public barber and service catalogs that feed the
// booking form.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load barbers.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *CatalogHandler) GetBarber(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Barber id must be numeric.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barber does not exist.")
			return
		}
		httperr.Internal(c, "failed_to_load", "Could not load barber.")
		return
	}
	httpresp.OK(c, barber)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("price ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Could not load services.")
		return
	}
	httpresp.List(c, services)
}
