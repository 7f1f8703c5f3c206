package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/services"
)

type stubMembershipService struct {
	getResult       *models.Membership
	getErr          error
	orderResult     *services.OrderDetails
	orderErr        error
	verifyResult    *models.Membership
	verifyErr       error
	downgradeResult *models.Membership
	downgradeErr    error
	renewResult     *models.Membership
	renewErr        error
	lastUserID      int64
	lastPlan        string
	lastOrderID     string
	lastPaymentID   string
	lastSignature   string
}

func (s *stubMembershipService) Get(_ context.Context, userID int64) (*models.Membership, error) {
	s.lastUserID = userID
	return s.getResult, s.getErr
}

func (s *stubMembershipService) CreateOrder(_ context.Context, userID int64, planName string) (*services.OrderDetails, error) {
	s.lastUserID = userID
	s.lastPlan = planName
	return s.orderResult, s.orderErr
}

func (s *stubMembershipService) VerifyPayment(_ context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*models.Membership, error) {
	s.lastUserID = userID
	s.lastOrderID = gatewayOrderID
	s.lastPaymentID = paymentID
	s.lastSignature = signature
	return s.verifyResult, s.verifyErr
}

func (s *stubMembershipService) Downgrade(_ context.Context, userID int64) (*models.Membership, error) {
	s.lastUserID = userID
	return s.downgradeResult, s.downgradeErr
}

func (s *stubMembershipService) Renew(_ context.Context, userID int64) (*models.Membership, error) {
	s.lastUserID = userID
	return s.renewResult, s.renewErr
}

func newMembershipTestApp(handler *MembershipHandler, userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Get("/api/v1/membership", handler.GetMembership)
	app.Post("/api/v1/membership/order", handler.CreateOrder)
	app.Post("/api/v1/membership/verify", handler.VerifyPayment)
	app.Post("/api/v1/membership/downgrade", handler.Downgrade)
	app.Post("/api/v1/admin/memberships/:id/renew", handler.Renew)
	return app
}

func TestCreateOrderReturnsOrderDetails(t *testing.T) {
	service := &stubMembershipService{
		orderResult: &services.OrderDetails{
			OrderID:     "order_abc",
			AmountPaise: 99900,
			Currency:    "INR",
			Plan:        "elite",
			KeyID:       "rzp_test_key",
		},
	}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/membership/order", strings.NewReader(`{"plan":"elite"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastUserID != 42 {
		t.Fatalf("expected user id 42, got %d", service.lastUserID)
	}
	if service.lastPlan != "elite" {
		t.Fatalf("expected elite plan, got %q", service.lastPlan)
	}

	var body struct {
		Order services.OrderDetails `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Order.AmountPaise != 99900 {
		t.Fatalf("expected 99900 paise, got %d", body.Order.AmountPaise)
	}
	if body.Order.KeyID != "rzp_test_key" {
		t.Fatalf("expected gateway key id in response, got %q", body.Order.KeyID)
	}
}

func TestCreateOrderRejectsFreePlan(t *testing.T) {
	service := &stubMembershipService{orderErr: services.ErrPlanNotPurchasable}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/membership/order", strings.NewReader(`{"plan":"free"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestVerifyPaymentRequiresAllFields(t *testing.T) {
	service := &stubMembershipService{}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/membership/verify", strings.NewReader(`{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_xyz"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.lastOrderID != "" {
		t.Fatalf("service should not be called on incomplete payload")
	}
}

func TestVerifyPaymentMapsSignatureMismatch(t *testing.T) {
	service := &stubMembershipService{verifyErr: services.ErrSignatureMismatch}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/membership/verify", strings.NewReader(`{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature": "bad"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.lastSignature != "bad" {
		t.Fatalf("expected forwarded signature, got %q", service.lastSignature)
	}
}

func TestVerifyPaymentMapsReplayToConflict(t *testing.T) {
	service := &stubMembershipService{verifyErr: services.ErrOrderAlreadyHandled}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/membership/verify", strings.NewReader(`{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature": "sig"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestVerifyPaymentReturnsUpgradedMembership(t *testing.T) {
	service := &stubMembershipService{
		verifyResult: &models.Membership{UserID: 42, Plan: "pro"},
	}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/membership/verify", strings.NewReader(`{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature": "sig"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Membership models.Membership `json:"membership"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Membership.Plan != "pro" {
		t.Fatalf("expected pro plan, got %q", body.Membership.Plan)
	}
}

func TestRenewMapsNoPaidPlan(t *testing.T) {
	service := &stubMembershipService{renewErr: services.ErrNoPaidPlan}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "3")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/memberships/42/renew", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.lastUserID != 42 {
		t.Fatalf("expected target user 42, got %d", service.lastUserID)
	}
}

func TestRenewRejectsBadUserID(t *testing.T) {
	service := &stubMembershipService{}
	handler := &MembershipHandler{service: service}
	app := newMembershipTestApp(handler, "3")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/memberships/abc/renew", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
