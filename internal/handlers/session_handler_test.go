package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/services"
)

type stubBookingService struct {
	requestResult      *models.Session
	requestErr         error
	listResult         []models.Session
	listErr            error
	getResult          *models.Session
	getErr             error
	updateStatusResult *models.Session
	updateStatusErr    error
	joinResult         *services.JoinInfo
	joinErr            error
	deleteErr          error
	lastRequestInput   services.RequestSessionInput
	lastActorID        int64
	lastRole           string
	lastSessionID      int64
	lastStatus         string
	lastStatusFilter   string
}

func (s *stubBookingService) RequestSession(_ context.Context, userID int64, input services.RequestSessionInput) (*models.Session, error) {
	s.lastActorID = userID
	s.lastRequestInput = input
	return s.requestResult, s.requestErr
}

func (s *stubBookingService) ListSessions(_ context.Context, actorID int64, role string, status string) ([]models.Session, error) {
	s.lastActorID = actorID
	s.lastRole = role
	s.lastStatusFilter = status
	return s.listResult, s.listErr
}

func (s *stubBookingService) GetSession(_ context.Context, actorID int64, role string, sessionID int64) (*models.Session, error) {
	s.lastActorID = actorID
	s.lastRole = role
	s.lastSessionID = sessionID
	return s.getResult, s.getErr
}

func (s *stubBookingService) UpdateStatus(_ context.Context, actorID int64, role string, sessionID int64, requestedStatus string) (*models.Session, error) {
	s.lastActorID = actorID
	s.lastRole = role
	s.lastSessionID = sessionID
	s.lastStatus = requestedStatus
	return s.updateStatusResult, s.updateStatusErr
}

func (s *stubBookingService) JoinSession(_ context.Context, actorID int64, role string, sessionID int64) (*services.JoinInfo, error) {
	s.lastActorID = actorID
	s.lastRole = role
	s.lastSessionID = sessionID
	return s.joinResult, s.joinErr
}

func (s *stubBookingService) DeleteSession(_ context.Context, role string, sessionID int64) error {
	s.lastRole = role
	s.lastSessionID = sessionID
	return s.deleteErr
}

func newSessionTestApp(handler *SessionHandler, role, userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("role", role)
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Post("/api/v1/sessions", handler.RequestSession)
	app.Get("/api/v1/sessions", handler.ListSessions)
	app.Get("/api/v1/sessions/:id", handler.GetSession)
	app.Put("/api/v1/sessions/:id/status", handler.UpdateStatus)
	app.Post("/api/v1/sessions/:id/join", handler.JoinSession)
	app.Delete("/api/v1/sessions/:id", handler.DeleteSession)
	return app
}

func TestRequestSessionReturnsCreatedSession(t *testing.T) {
	service := &stubBookingService{
		requestResult: &models.Session{
			ID:            91,
			UserID:        42,
			TrainerID:     7,
			ScheduledDate: "2026-09-15",
			ScheduledTime: "09:00",
			Status:        "pending",
		},
	}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "user", "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{
		"trainer_id": 7,
		"scheduled_date": "2026-09-15",
		"scheduled_time": "09:00",
		"message": "focus on mobility"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastActorID != 42 {
		t.Fatalf("expected actor id 42, got %d", service.lastActorID)
	}
	if service.lastRequestInput.TrainerID != 7 {
		t.Fatalf("expected trainer id 7, got %d", service.lastRequestInput.TrainerID)
	}
	if service.lastRequestInput.UserMessage == nil || *service.lastRequestInput.UserMessage != "focus on mobility" {
		t.Fatalf("expected forwarded message, got %v", service.lastRequestInput.UserMessage)
	}
}

func TestRequestSessionForbiddenForTrainers(t *testing.T) {
	service := &stubBookingService{}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "trainer", "7")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"trainer_id": 7}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestRequestSessionMapsMembershipRequired(t *testing.T) {
	service := &stubBookingService{requestErr: services.ErrMembershipRequired}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "user", "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{
		"trainer_id": 7,
		"scheduled_date": "2026-09-15",
		"scheduled_time": "09:00"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestListSessionsPassesStatusFilter(t *testing.T) {
	service := &stubBookingService{
		listResult: []models.Session{{ID: 5, Status: "approved"}},
	}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "trainer", "9")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions?status=approved", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastRole != "trainer" {
		t.Fatalf("expected trainer role, got %q", service.lastRole)
	}
	if service.lastStatusFilter != "approved" {
		t.Fatalf("expected approved filter, got %q", service.lastStatusFilter)
	}
}

func TestGetSessionReturnsNotFound(t *testing.T) {
	service := &stubBookingService{getErr: pgx.ErrNoRows}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "user", "42")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/999", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateStatusReturnsConflictForActionedSession(t *testing.T) {
	service := &stubBookingService{updateStatusErr: services.ErrInvalidStateTransition}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "admin", "3")

	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/55/status", strings.NewReader(`{"status":"approve"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	if service.lastStatus != "approve" {
		t.Fatalf("expected forwarded status, got %q", service.lastStatus)
	}
}

func TestJoinSessionReturnsRoomCredentials(t *testing.T) {
	service := &stubBookingService{
		joinResult: &services.JoinInfo{RoomID: "room-abc", Token: "jwt-token"},
	}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "trainer", "7")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/88/join", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Join services.JoinInfo `json:"join"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Join.RoomID != "room-abc" {
		t.Fatalf("expected room id, got %q", body.Join.RoomID)
	}
	if body.Join.Token == "" {
		t.Fatalf("expected join token in response")
	}
}

func TestJoinSessionForbiddenForAdmins(t *testing.T) {
	service := &stubBookingService{}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "admin", "3")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/88/join", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestDeleteSessionReturnsOK(t *testing.T) {
	service := &stubBookingService{}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler, "admin", "3")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/61", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastSessionID != 61 {
		t.Fatalf("expected session id 61, got %d", service.lastSessionID)
	}
}

func TestMapSessionErrorDefaultsToInternalServerError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return mapSessionError(c, errors.New("boom"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

func TestMapSessionErrorReturnsTrainerNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return mapSessionError(c, services.ErrTrainerNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
