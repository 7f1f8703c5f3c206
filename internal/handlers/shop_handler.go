package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/policy"
	"github.com/himanshu123g/fitlife-plus/internal/repository"
)

type ShopHandler struct {
	productRepo *repository.ProductRepository
}

func NewShopHandler(productRepo *repository.ProductRepository) *ShopHandler {
	return &ShopHandler{productRepo: productRepo}
}

// ListProducts returns the supplement catalogue with the caller's membership
// discount already applied to every item. The plan is read by the feature
// gate on the route, so an expired or downgraded membership is reflected on
// the very next request.
func (h *ShopHandler) ListProducts(c *fiber.Ctx) error {
	plan, ok := c.Locals("plan").(policy.Plan)
	if !ok {
		plan = policy.PlanFree
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := (page - 1) * limit

	products, err := h.productRepo.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load products"})
	}
	total, err := h.productRepo.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load products"})
	}

	discount := policy.DiscountFor(plan)
	priced := make([]models.PricedProduct, 0, len(products))
	for _, product := range products {
		priced = append(priced, models.PricedProduct{
			Product:         product,
			DiscountPercent: discount,
			DiscountedPrice: applyDiscount(product.Price, discount),
		})
	}

	return c.JSON(fiber.Map{
		"products":   priced,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func applyDiscount(price float64, percent int) float64 {
	discounted := price * float64(100-percent) / 100
	return math.Round(discounted*100) / 100
}
