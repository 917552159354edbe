package middleware

import (
	"net/http"

	"devmitra/models"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// Capability names a protected operation. Routes declare the capability
// they need and the table below maps capabilities to the roles allowed to
// exercise them, so authorization decisions live in one place instead of
// inside handlers.
type Capability string

const (
	CapManageCatalog      Capability = "catalog:manage"
	CapManageUsers        Capability = "users:manage"
	CapManageHomeCards    Capability = "home:manage"
	CapAssignVendor       Capability = "booking:assign"
	CapCreateBooking      Capability = "booking:create"
	CapActOnBooking       Capability = "booking:act"
	CapCancelBooking      Capability = "booking:cancel"
	CapViewOwnBookings    Capability = "booking:view-own"
	CapViewVendorBookings Capability = "booking:view-vendor"
	CapDeclareSlots       Capability = "availability:declare"
	CapSimulatePayment    Capability = "payment:simulate"
	CapViewPayments       Capability = "payment:view"
	CapUploadMedia        Capability = "media:upload"
)

var capabilityRoles = map[Capability][]models.UserRole{
	CapManageCatalog:      {models.RoleAdmin},
	CapManageUsers:        {models.RoleAdmin},
	CapManageHomeCards:    {models.RoleAdmin},
	CapAssignVendor:       {models.RoleAdmin},
	CapCreateBooking:      {models.RoleCustomer},
	CapActOnBooking:       {models.RoleVendor},
	CapCancelBooking:      {models.RoleCustomer},
	CapViewOwnBookings:    {models.RoleCustomer, models.RoleAdmin},
	CapViewVendorBookings: {models.RoleVendor, models.RoleAdmin},
	CapDeclareSlots:       {models.RoleVendor},
	CapSimulatePayment:    {models.RoleCustomer},
	CapViewPayments:       {models.RoleCustomer, models.RoleVendor, models.RoleAdmin},
	CapUploadMedia:        {models.RoleAdmin, models.RoleVendor, models.RoleCustomer},
}

// RequireCapability rejects callers whose role is not allowed the given
// capability. It must run after JWTAuthMiddleware.
func RequireCapability(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := IdentityRole(c)
		for _, allowed := range capabilityRoles[capability] {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
			Message: "Access denied",
			Details: "your role does not permit this operation",
		})
	}
}

// IdentityRole returns the authenticated caller's role from the context.
func IdentityRole(c *gin.Context) models.UserRole {
	if v, ok := c.Get(IdentityRoleKey); ok {
		if role, ok := v.(models.UserRole); ok {
			return role
		}
	}
	return ""
}
