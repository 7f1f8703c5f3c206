package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/services"
)

type SessionHandler struct {
	service bookingApplicationService
}

type bookingApplicationService interface {
	RequestSession(ctx context.Context, userID int64, input services.RequestSessionInput) (*models.Session, error)
	ListSessions(ctx context.Context, actorID int64, role string, status string) ([]models.Session, error)
	GetSession(ctx context.Context, actorID int64, role string, sessionID int64) (*models.Session, error)
	UpdateStatus(ctx context.Context, actorID int64, role string, sessionID int64, requestedStatus string) (*models.Session, error)
	JoinSession(ctx context.Context, actorID int64, role string, sessionID int64) (*services.JoinInfo, error)
	DeleteSession(ctx context.Context, role string, sessionID int64) error
}

func NewSessionHandler(service *services.BookingService) *SessionHandler {
	return &SessionHandler{service: service}
}

type requestSessionRequest struct {
	TrainerID     int64   `json:"trainer_id"`
	ScheduledDate string  `json:"scheduled_date"`
	ScheduledTime string  `json:"scheduled_time"`
	Message       *string `json:"message"`
}

type updateSessionStatusRequest struct {
	Status string `json:"status"`
}

func (h *SessionHandler) RequestSession(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req requestSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.service.RequestSession(c.Context(), userID, services.RequestSessionInput{
		TrainerID:     req.TrainerID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		UserMessage:   req.Message,
	})
	if err != nil {
		return mapSessionError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessions, err := h.service.ListSessions(c.Context(), userID, role, c.Query("status"))
	if err != nil {
		return mapSessionError(c, err)
	}

	return c.JSON(fiber.Map{"sessions": sessions})
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := h.service.GetSession(c.Context(), userID, role, sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}

	return c.JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) UpdateStatus(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req updateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.service.UpdateStatus(c.Context(), userID, role, sessionID, req.Status)
	if err != nil {
		return mapSessionError(c, err)
	}

	return c.JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) JoinSession(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || (role != "user" && role != "trainer") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	join, err := h.service.JoinSession(c.Context(), userID, role, sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}

	return c.JSON(fiber.Map{"join": join})
}

func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	if err := h.service.DeleteSession(c.Context(), role, sessionID); err != nil {
		return mapSessionError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": true})
}

func parseSessionID(c *fiber.Ctx) (int64, error) {
	sessionID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || sessionID <= 0 {
		return 0, errors.New("invalid session id")
	}
	return sessionID, nil
}

func mapSessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrMembershipRequired):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Video coaching requires an elite membership"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, services.ErrInvalidStateTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Session already actioned"})
	case errors.Is(err, services.ErrTrainerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process session request"})
	}
}
