package handlers

import (
	"net/http"

	"devmitra/services/user"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes vendor and customer management endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// CreateVendor handles POST /api/vendors.
func (h *UserHandler) CreateVendor(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.CreateVendor(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CreateCustomer handles POST /api/customers.
func (h *UserHandler) CreateCustomer(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.CreateCustomer(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListVendors handles GET /api/vendors.
func (h *UserHandler) ListVendors(c *gin.Context) {
	vendors, err := h.Service.ListVendors(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// ListCustomers handles GET /api/customers.
func (h *UserHandler) ListCustomers(c *gin.Context) {
	customers, err := h.Service.ListCustomers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// ApproveVendor handles PATCH /api/vendors/:id/approve.
func (h *UserHandler) ApproveVendor(c *gin.Context) {
	updated, err := h.Service.ApproveVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// BlockVendor handles PATCH /api/vendors/:id/block.
func (h *UserHandler) BlockVendor(c *gin.Context) {
	updated, err := h.Service.BlockVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
