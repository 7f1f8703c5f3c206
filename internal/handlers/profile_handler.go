package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/himanshu123g/fitlife-plus/internal/repository"
)

type ProfileHandler struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileHandler(profileRepo *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type recordBMIRequest struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
}

type hydrationRequest struct {
	AmountML int `json:"amount_ml"`
}

func (h *ProfileHandler) RecordBMI(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req recordBMIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.HeightCM < 50 || req.HeightCM > 280 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "height_cm must be between 50 and 280"})
	}
	if req.WeightKG < 10 || req.WeightKG > 500 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight_kg must be between 10 and 500"})
	}

	bmi := computeBMI(req.HeightCM, req.WeightKG)
	record, err := h.profileRepo.CreateBMIRecord(c.Context(), repository.CreateBMIRecordInput{
		UserID:   userID,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		BMI:      bmi,
		Category: bmiCategory(bmi),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save BMI record"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"record": record})
}

func (h *ProfileHandler) BMIHistory(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	records, err := h.profileRepo.ListBMIRecords(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load BMI history"})
	}

	return c.JSON(fiber.Map{"records": records})
}

func (h *ProfileHandler) LogHydration(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req hydrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AmountML <= 0 || req.AmountML > 5000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount_ml must be between 1 and 5000"})
	}

	entry, err := h.profileRepo.CreateHydrationLog(c.Context(), userID, req.AmountML)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log hydration"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *ProfileHandler) HydrationToday(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	entries, err := h.profileRepo.ListHydrationToday(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load hydration log"})
	}

	total := 0
	for _, entry := range entries {
		total += entry.AmountML
	}

	return c.JSON(fiber.Map{
		"total_ml": total,
		"entries":  entries,
	})
}

func computeBMI(heightCM, weightKG float64) float64 {
	heightM := heightCM / 100
	return math.Round(weightKG/(heightM*heightM)*10) / 10
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
