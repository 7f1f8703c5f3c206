package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/himanshu123g/fitlife-plus/internal/config"
	"github.com/himanshu123g/fitlife-plus/internal/database"
	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/repository"
	"github.com/himanshu123g/fitlife-plus/internal/routes"
	sessionws "github.com/himanshu123g/fitlife-plus/internal/websocket"
	"github.com/himanshu123g/fitlife-plus/pkg/utils"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := buildLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		zapLogger.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB()

	if err := seedDefaultAdmin(context.Background(), database.DB, cfg, zapLogger); err != nil {
		zapLogger.Fatal("Failed to seed default admin", zap.Error(err))
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	hub := sessionws.NewHub(zapLogger)
	go hub.Run()

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, cfg, database.DB, hub, zapLogger)

	// 4. Start Server
	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Server failed to start", zap.Error(err))
	}
}

func buildLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// seedDefaultAdmin creates the bootstrap admin account on first start so the
// booking approval flow is usable on a fresh database. No-op when the
// credentials are unset or the account already exists.
func seedDefaultAdmin(ctx context.Context, db *pgxpool.Pool, cfg *config.Config, logger *zap.Logger) error {
	if cfg.DefaultAdminEmail == "" || cfg.DefaultAdminPassword == "" {
		return nil
	}

	userRepo := repository.NewUserRepository(db)
	if _, err := userRepo.GetByEmail(ctx, cfg.DefaultAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashed, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txUserRepo := repository.NewUserRepository(tx)
	txMembershipRepo := repository.NewMembershipRepository(tx)

	admin := &models.User{
		Email:        cfg.DefaultAdminEmail,
		PasswordHash: hashed,
		Role:         "admin",
	}
	if err := txUserRepo.CreateUser(ctx, admin); err != nil {
		return err
	}
	if _, err := txMembershipRepo.CreateFree(ctx, admin.ID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	logger.Info("Seeded default admin account", zap.String("email", cfg.DefaultAdminEmail))
	return nil
}
