package handlers

import (
	"net/http"

	"devmitra/services/auth"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the OTP login endpoints.
type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SendOTP handles POST /api/auth/send-otp.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.Service.SendOTP(c.Request.Context(), input.Phone); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	token, user, err := h.Service.VerifyOTP(c.Request.Context(), input.Phone, input.OTP)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
