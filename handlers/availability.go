package handlers

import (
	"net/http"

	"devmitra/middleware"
	"devmitra/services/booking"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the vendor availability endpoints.
type AvailabilityHandler struct {
	Service booking.AvailabilityService
}

func NewAvailabilityHandler(svc booking.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// Declare handles POST /api/availability.
func (h *AvailabilityHandler) Declare(c *gin.Context) {
	var input booking.DeclareSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	slot, err := h.Service.DeclareSlot(c.Request.Context(), input, middleware.IdentityID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// List handles GET /api/availability/:vendorId.
func (h *AvailabilityHandler) List(c *gin.Context) {
	slots, err := h.Service.ListSlots(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
