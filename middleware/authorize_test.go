package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devmitra/middleware"
	"devmitra/models"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

func newRouter(capability middleware.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		middleware.JWTAuthMiddleware(),
		middleware.RequireCapability(capability),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": middleware.IdentityID(c)})
		})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenRejected(t *testing.T) {
	r := newRouter(middleware.CapCreateBooking)

	w := doRequest(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	r := newRouter(middleware.CapCreateBooking)

	w := doRequest(t, r, "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAllowedRolePasses(t *testing.T) {
	r := newRouter(middleware.CapCreateBooking)

	token, err := utils.GenerateToken("cust-1", models.RoleCustomer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(t, r, token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestDisallowedRoleForbidden(t *testing.T) {
	r := newRouter(middleware.CapManageCatalog)

	token, err := utils.GenerateToken("cust-1", models.RoleCustomer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(t, r, token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	r := newRouter(middleware.CapCreateBooking)

	token, err := utils.GenerateToken("cust-1", models.RoleCustomer, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(t, r, token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
