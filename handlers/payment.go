package handlers

import (
	"net/http"

	"devmitra/middleware"
	"devmitra/models"
	"devmitra/services/booking"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the simulated payment endpoint.
type PaymentHandler struct {
	Service booking.PaymentService
}

func NewPaymentHandler(svc booking.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// Simulate handles POST /api/payments/simulate.
func (h *PaymentHandler) Simulate(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId"`
		Status    string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	payment, updated, err := h.Service.SimulatePayment(c.Request.Context(), input.BookingID, middleware.IdentityID(c), models.PaymentResult(input.Status))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment processed",
		"payment":        payment,
		"updatedBooking": updated,
	})
}

// History handles GET /api/payments/booking/:bookingId.
func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.Service.ListByBooking(c.Request.Context(), c.Param("bookingId"), middleware.IdentityID(c), middleware.IdentityRole(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
