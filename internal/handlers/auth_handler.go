package handlers

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/repository"
	"github.com/himanshu123g/fitlife-plus/pkg/utils"
)

type AuthHandler struct {
	db             *pgxpool.Pool
	userRepo       *repository.UserRepository
	membershipRepo *repository.MembershipRepository
	jwtSecret      string
}

func NewAuthHandler(
	db *pgxpool.Pool,
	userRepo *repository.UserRepository,
	membershipRepo *repository.MembershipRepository,
	jwtSecret string,
) *AuthHandler {
	return &AuthHandler{
		db:             db,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		jwtSecret:      jwtSecret,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}
	req.Email = strings.ToLower(parsedEmail.Address)
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}
	if req.Role == "" {
		req.Role = "user"
	}
	if req.Role != "user" && req.Role != "trainer" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	existing, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to check email"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         req.Role,
	}
	tx, err := h.db.Begin(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to start registration transaction"})
	}
	defer func() {
		_ = tx.Rollback(c.Context())
	}()

	txUserRepo := repository.NewUserRepository(tx)
	txMembershipRepo := repository.NewMembershipRepository(tx)

	if err := txUserRepo.CreateUser(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create user"})
	}

	// every account starts on the free plan
	membership, err := txMembershipRepo.CreateFree(c.Context(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create membership"})
	}

	if err := tx.Commit(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to complete registration"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Role, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":      token,
		"user":       user,
		"membership": membership,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := h.userRepo.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log in"})
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Role, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load user"})
	}

	membership, err := h.membershipRepo.GetByUserID(c.Context(), userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load membership"})
	}

	return c.JSON(fiber.Map{
		"user":       user,
		"membership": membership,
	})
}

// ListTrainers backs the booking form's trainer picker.
func (h *AuthHandler) ListTrainers(c *fiber.Ctx) error {
	trainers, err := h.userRepo.ListByRole(c.Context(), "trainer")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list trainers"})
	}
	return c.JSON(fiber.Map{"trainers": trainers})
}
