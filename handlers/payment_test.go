package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devmitra/handlers"
	"devmitra/middleware"
	"devmitra/models"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// fakePaymentService owns booking bk-1 for cust-1 with vendor-1 assigned,
// mirroring the service-side ownership rule.
type fakePaymentService struct{}

func (f *fakePaymentService) SimulatePayment(ctx context.Context, bookingID, actorID string, outcome models.PaymentResult) (*models.Payment, *models.Booking, error) {
	return &models.Payment{ID: "pay-1", Booking: bookingID, Status: outcome},
		&models.Booking{ID: bookingID, Customer: actorID}, nil
}

func (f *fakePaymentService) ListByBooking(ctx context.Context, bookingID, actorID string, role models.UserRole) ([]models.Payment, error) {
	if bookingID != "bk-1" {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if role != models.RoleAdmin && actorID != "cust-1" && actorID != "vendor-1" {
		return nil, &utils.ForbiddenError{Message: "only the booking's customer or assigned vendor may view its payments"}
	}
	return []models.Payment{{ID: "pay-1", Booking: bookingID, Status: models.PaymentSuccess}}, nil
}

func setupPaymentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPaymentHandler(&fakePaymentService{})
	r := gin.New()
	api := r.Group("/api/payments")
	api.Use(middleware.JWTAuthMiddleware())
	api.GET("/booking/:bookingId", middleware.RequireCapability(middleware.CapViewPayments), h.History)
	return r
}

func historyRequest(t *testing.T, id string, role models.UserRole) *httptest.ResponseRecorder {
	t.Helper()
	token, err := utils.GenerateToken(id, role, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/payments/booking/bk-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	setupPaymentRouter().ServeHTTP(w, req)
	return w
}

func TestPaymentHistoryOwner(t *testing.T) {
	w := historyRequest(t, "cust-1", models.RoleCustomer)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var payments []models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &payments); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("got %d payments, want 1", len(payments))
	}
}

func TestPaymentHistoryOtherCustomerDenied(t *testing.T) {
	// Another customer's token must not expose the booking's payment records.
	w := historyRequest(t, "cust-2", models.RoleCustomer)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body %s)", w.Code, w.Body.String())
	}
	var resp utils.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "Access denied" {
		t.Errorf("message = %q, want %q", resp.Message, "Access denied")
	}
}

func TestPaymentHistoryAssignedVendor(t *testing.T) {
	w := historyRequest(t, "vendor-1", models.RoleVendor)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}
