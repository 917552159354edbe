package handlers

import (
	"net/http"

	"devmitra/middleware"
	"devmitra/models"
	"devmitra/services/booking"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	// Bookings are always created for the caller, whatever the body says.
	input.Customer = middleware.IdentityID(c)

	created, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AssignVendor handles PATCH /api/bookings/:id/assign.
func (h *BookingHandler) AssignVendor(c *gin.Context) {
	var input struct {
		VendorID string `json:"vendorId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.AssignVendor(c.Request.Context(), c.Param("id"), input.VendorID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Accept handles PATCH /api/bookings/:id/accept.
func (h *BookingHandler) Accept(c *gin.Context) {
	updated, err := h.Service.AcceptBooking(c.Request.Context(), c.Param("id"), middleware.IdentityID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Reject handles PATCH /api/bookings/:id/reject.
func (h *BookingHandler) Reject(c *gin.Context) {
	updated, err := h.Service.RejectBooking(c.Request.Context(), c.Param("id"), middleware.IdentityID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Cancel handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	updated, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), middleware.IdentityID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListByCustomer handles GET /api/bookings/customer/:customerId. Customers
// may only read their own bookings; admins may read anyone's.
func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("customerId")
	if middleware.IdentityRole(c) != models.RoleAdmin && customerID != middleware.IdentityID(c) {
		utils.JSONError(c, http.StatusForbidden, "Access denied", "you may only view your own bookings")
		return
	}

	bookings, err := h.Service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListByVendor handles GET /api/bookings/vendor/:vendorId with an optional
// status filter.
func (h *BookingHandler) ListByVendor(c *gin.Context) {
	vendorID := c.Param("vendorId")
	if middleware.IdentityRole(c) != models.RoleAdmin && vendorID != middleware.IdentityID(c) {
		utils.JSONError(c, http.StatusForbidden, "Access denied", "you may only view your own bookings")
		return
	}

	bookings, err := h.Service.ListByVendor(c.Request.Context(), vendorID, models.BookingStatus(c.Query("status")))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
