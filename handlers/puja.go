package handlers

import (
	"net/http"

	"devmitra/services/puja"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// PujaHandler exposes the puja catalog and vendor qualification endpoints.
type PujaHandler struct {
	Service puja.PujaService
}

func NewPujaHandler(svc puja.PujaService) *PujaHandler {
	return &PujaHandler{Service: svc}
}

// Create handles POST /api/pujas.
func (h *PujaHandler) Create(c *gin.Context) {
	var input puja.CreatePujaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.CreatePuja(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListActive handles GET /api/pujas.
func (h *PujaHandler) ListActive(c *gin.Context) {
	pujas, err := h.Service.ListActivePujas(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pujas)
}

// Update handles PUT /api/pujas/:id.
func (h *PujaHandler) Update(c *gin.Context) {
	var input puja.UpdatePujaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.UpdatePuja(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Deactivate handles DELETE /api/pujas/:id.
func (h *PujaHandler) Deactivate(c *gin.Context) {
	if err := h.Service.DeactivatePuja(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Puja deactivated"})
}

// AssignToVendor handles POST /api/vendor-pujas.
func (h *PujaHandler) AssignToVendor(c *gin.Context) {
	var input struct {
		VendorID string `json:"vendorId"`
		PujaID   string `json:"pujaId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	mapping, err := h.Service.AssignPujaToVendor(c.Request.Context(), input.VendorID, input.PujaID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapping)
}

// ListForVendor handles GET /api/vendor-pujas/:vendorId.
func (h *PujaHandler) ListForVendor(c *gin.Context) {
	views, err := h.Service.GetVendorPujas(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
