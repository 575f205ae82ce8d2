package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homepro/models"
	"homepro/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubCheckout struct {
	result     *models.CheckoutResult
	err        error
	gotUserID  uuid.UUID
	gotRequest models.CheckoutRequest
	calls      int
}

func (s *stubCheckout) Checkout(ctx context.Context, userID uuid.UUID, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	s.calls++
	s.gotUserID = userID
	s.gotRequest = req
	return s.result, s.err
}

func checkoutRequest(t *testing.T, stub *stubCheckout, userID string, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	ctrl := &CheckoutController{service: stub}
	router.POST("/checkout", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		ctrl.Checkout(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{"address":"123 Main St","city":"Springfield","state":"CA","zipCode":"90210"}`

func TestCheckoutHandlerSuccess(t *testing.T) {
	userID := uuid.New()
	booking := models.Booking{ID: uuid.New(), UserID: userID, Status: "pending"}
	stub := &stubCheckout{result: &models.CheckoutResult{
		Success:  true,
		Bookings: []models.Booking{booking},
		Errors:   []string{},
	}}

	w := checkoutRequest(t, stub, userID.String(), validBody)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if stub.gotUserID != userID {
		t.Errorf("handler passed user %s, want %s", stub.gotUserID, userID)
	}
	if stub.gotRequest.Address != "123 Main St" || stub.gotRequest.ZipCode != "90210" {
		t.Errorf("request not bound: %+v", stub.gotRequest)
	}

	var result models.CheckoutResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !result.Success || len(result.Bookings) != 1 || result.Bookings[0].ID != booking.ID {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Errors == nil {
		t.Error("errors must serialize as an empty array, not null")
	}
}

func TestCheckoutHandlerUnauthorized(t *testing.T) {
	stub := &stubCheckout{}

	w := checkoutRequest(t, stub, "", validBody)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if stub.calls != 0 {
		t.Error("service must not run without an authenticated user")
	}
}

func TestCheckoutHandlerInvalidBody(t *testing.T) {
	stub := &stubCheckout{}

	w := checkoutRequest(t, stub, uuid.New().String(), `{"address":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if stub.calls != 0 {
		t.Error("service must not run on a malformed body")
	}
}

func TestCheckoutHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"address required", services.ErrAddressRequired, http.StatusBadRequest, "Address information is required"},
		{"cart not found", services.ErrCartNotFound, http.StatusNotFound, "Cart not found"},
		{"empty cart", services.ErrEmptyCart, http.StatusBadRequest, "Your cart is empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubCheckout{err: tc.err}

			w := checkoutRequest(t, stub, uuid.New().String(), validBody)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body["error"] != tc.wantError {
				t.Errorf("error = %q, want %q", body["error"], tc.wantError)
			}
		})
	}
}

func TestCheckoutHandlerPartialFailureIsStill200(t *testing.T) {
	stub := &stubCheckout{result: &models.CheckoutResult{
		Success:  true,
		Bookings: []models.Booking{{ID: uuid.New()}},
		Errors:   []string{"Service not found for cart item " + uuid.New().String()},
	}}

	w := checkoutRequest(t, stub, uuid.New().String(), validBody)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var result models.CheckoutResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(result.Errors) != 1 {
		t.Errorf("item errors must ride along in the 200 body: %+v", result)
	}
}

func TestCurrentUserIDRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user_id", "not-a-uuid")

	if _, ok := currentUserID(c); ok {
		t.Error("malformed user_id must not authenticate")
	}
}
