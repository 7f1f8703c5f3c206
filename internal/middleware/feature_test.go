package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/policy"
)

type stubMembershipReader struct {
	memberships map[int64]*models.Membership
}

func (s *stubMembershipReader) GetByUserID(_ context.Context, userID int64) (*models.Membership, error) {
	membership, ok := s.memberships[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return membership, nil
}

func newFeatureApp(reader *stubMembershipReader, userID string, feature policy.Feature) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", "user")
		return c.Next()
	})
	app.Get("/gated", RequireFeature(reader, feature), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"plan": c.Locals("plan")})
	})
	return app
}

func TestRequireFeatureAllowsSufficientPlan(t *testing.T) {
	reader := &stubMembershipReader{memberships: map[int64]*models.Membership{
		1: {UserID: 1, Plan: "elite"},
	}}
	app := newFeatureApp(reader, "1", policy.FeatureVideoCoaching)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireFeatureBlocksInsufficientPlan(t *testing.T) {
	reader := &stubMembershipReader{memberships: map[int64]*models.Membership{
		1: {UserID: 1, Plan: "pro"},
	}}
	app := newFeatureApp(reader, "1", policy.FeatureVideoCoaching)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestRequireFeatureTreatsMissingBindingAsFree(t *testing.T) {
	reader := &stubMembershipReader{memberships: map[int64]*models.Membership{}}

	app := newFeatureApp(reader, "9", policy.FeatureChatbot)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for missing binding on a pro feature, got %d", resp.StatusCode)
	}

	app = newFeatureApp(reader, "9", policy.FeatureBMICalculator)
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for missing binding on a free feature, got %d", resp.StatusCode)
	}
}
