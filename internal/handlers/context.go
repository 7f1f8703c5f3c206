package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func authUserID(c *fiber.Ctx) (int64, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, errors.New("missing user id")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.New("invalid user id")
	}
	return userID, nil
}
