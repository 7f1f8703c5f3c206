package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/services"
)

type MembershipHandler struct {
	service membershipApplicationService
}

type membershipApplicationService interface {
	Get(ctx context.Context, userID int64) (*models.Membership, error)
	CreateOrder(ctx context.Context, userID int64, planName string) (*services.OrderDetails, error)
	VerifyPayment(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*models.Membership, error)
	Downgrade(ctx context.Context, userID int64) (*models.Membership, error)
	Renew(ctx context.Context, userID int64) (*models.Membership, error)
}

func NewMembershipHandler(service *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{service: service}
}

type createOrderRequest struct {
	Plan string `json:"plan"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

func (h *MembershipHandler) GetMembership(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	membership, err := h.service.Get(c.Context(), userID)
	if err != nil {
		return mapMembershipError(c, err)
	}

	return c.JSON(fiber.Map{"membership": membership})
}

func (h *MembershipHandler) CreateOrder(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	order, err := h.service.CreateOrder(c.Context(), userID, req.Plan)
	if err != nil {
		return mapMembershipError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order": order})
}

func (h *MembershipHandler) VerifyPayment(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.OrderID) == "" || strings.TrimSpace(req.PaymentID) == "" ||
		strings.TrimSpace(req.Signature) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "order id, payment id and signature are required"})
	}

	membership, err := h.service.VerifyPayment(c.Context(), userID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		return mapMembershipError(c, err)
	}

	return c.JSON(fiber.Map{"membership": membership})
}

func (h *MembershipHandler) Downgrade(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	membership, err := h.service.Downgrade(c.Context(), userID)
	if err != nil {
		return mapMembershipError(c, err)
	}

	return c.JSON(fiber.Map{"membership": membership})
}

// Renew is the admin-only out-of-band extension; it does not re-run payment
// verification.
func (h *MembershipHandler) Renew(c *fiber.Ctx) error {
	targetID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || targetID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	membership, err := h.service.Renew(c.Context(), targetID)
	if err != nil {
		return mapMembershipError(c, err)
	}

	return c.JSON(fiber.Map{"membership": membership})
}

func mapMembershipError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPlanNotPurchasable):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Plan is not purchasable"})
	case errors.Is(err, services.ErrSignatureMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment verification failed"})
	case errors.Is(err, services.ErrOrderAlreadyHandled):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Order already handled"})
	case errors.Is(err, services.ErrNoPaidPlan):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No paid plan to renew"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process membership request"})
	}
}
