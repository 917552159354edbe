package handlers

import (
	"net/http"

	"devmitra/services/home"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// HomeHandler exposes the home screen card endpoints.
type HomeHandler struct {
	Service home.HomeService
}

func NewHomeHandler(svc home.HomeService) *HomeHandler {
	return &HomeHandler{Service: svc}
}

// ListActive handles GET /api/home/cards.
func (h *HomeHandler) ListActive(c *gin.Context) {
	cards, err := h.Service.ListActiveCards(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Create handles POST /api/home/cards.
func (h *HomeHandler) Create(c *gin.Context) {
	var input home.CreateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.CreateCard(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/home/cards/:id.
func (h *HomeHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.UpdateCard(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Deactivate handles DELETE /api/home/cards/:id.
func (h *HomeHandler) Deactivate(c *gin.Context) {
	if err := h.Service.DeactivateCard(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card deactivated"})
}
