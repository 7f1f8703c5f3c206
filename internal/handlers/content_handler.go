package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/himanshu123g/fitlife-plus/internal/content"
)

// ContentHandler serves the curated plan and remedy tables. The routes in
// front of it carry the membership gates; the handler itself only reads.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) ExercisePlans(c *fiber.Ctx) error {
	if goal := c.Query("goal"); goal != "" {
		plan, ok := content.ExercisePlanForGoal(goal)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown goal"})
		}
		return c.JSON(fiber.Map{"plan": plan})
	}
	return c.JSON(fiber.Map{"plans": content.ExercisePlans()})
}

func (h *ContentHandler) DietPlans(c *fiber.Ctx) error {
	if goal := c.Query("goal"); goal != "" {
		plan, ok := content.DietPlanForGoal(goal)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown goal"})
		}
		return c.JSON(fiber.Map{"plan": plan})
	}
	return c.JSON(fiber.Map{"plans": content.DietPlans()})
}

func (h *ContentHandler) Remedies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"remedies": content.Remedies()})
}

func (h *ContentHandler) SupplementGuidance(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"guidance": content.SupplementGuidance()})
}
