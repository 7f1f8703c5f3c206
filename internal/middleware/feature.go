package middleware

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/policy"
)

type membershipReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Membership, error)
}

// RequireFeature gates a route on the caller's membership plan. The binding
// is read fresh on every request; a missing binding counts as the free plan.
// All gating decisions go through the policy table.
func RequireFeature(memberships membershipReader, feature policy.Feature) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		plan := policy.PlanFree
		membership, err := memberships.GetByUserID(c.Context(), userID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load membership"})
		}
		if membership != nil {
			plan = policy.ParsePlan(membership.Plan)
		}

		if !policy.IsFeatureEnabled(plan, feature) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Membership upgrade required"})
		}

		c.Locals("plan", plan)
		return c.Next()
	}
}
