package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/himanshu123g/fitlife-plus/internal/config"
	"github.com/himanshu123g/fitlife-plus/internal/handlers"
	"github.com/himanshu123g/fitlife-plus/internal/middleware"
	"github.com/himanshu123g/fitlife-plus/internal/payments"
	"github.com/himanshu123g/fitlife-plus/internal/policy"
	"github.com/himanshu123g/fitlife-plus/internal/repository"
	"github.com/himanshu123g/fitlife-plus/internal/services"
	"github.com/himanshu123g/fitlife-plus/internal/video"
	sessionws "github.com/himanshu123g/fitlife-plus/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, hub *sessionws.Hub, logger *zap.Logger) {
	userRepo := repository.NewUserRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	gateway := payments.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	rooms := video.NewTokenService(cfg.VideoAppID, cfg.VideoAppSecret)

	bookingService := services.NewBookingService(sessionRepo, membershipRepo, userRepo, rooms, hub)
	membershipService := services.NewMembershipService(orderRepo, membershipRepo, gateway, logger)

	authHandler := handlers.NewAuthHandler(db, userRepo, membershipRepo, cfg.JWTSecret)
	sessionHandler := handlers.NewSessionHandler(bookingService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	shopHandler := handlers.NewShopHandler(productRepo)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	contentHandler := handlers.NewContentHandler()
	chatbotHandler := handlers.NewChatbotHandler()
	notificationHandler := handlers.NewNotificationHandler(hub, cfg.JWTSecret)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	authProtected.Get("/trainers", authHandler.ListTrainers)

	sessions := authProtected.Group("/sessions")
	sessions.Post("", sessionHandler.RequestSession)
	sessions.Get("", sessionHandler.ListSessions)
	sessions.Get("/:id", sessionHandler.GetSession)
	sessions.Put("/:id/status", sessionHandler.UpdateStatus)
	sessions.Post("/:id/join", sessionHandler.JoinSession)
	sessions.Delete("/:id", middleware.RequireRole("admin"), sessionHandler.DeleteSession)

	membership := authProtected.Group("/membership")
	membership.Get("", membershipHandler.GetMembership)
	membership.Post("/order", membershipHandler.CreateOrder)
	membership.Post("/verify", membershipHandler.VerifyPayment)
	membership.Post("/downgrade", membershipHandler.Downgrade)

	admin := authProtected.Group("/admin", middleware.RequireRole("admin"))
	admin.Post("/memberships/:id/renew", membershipHandler.Renew)

	products := authProtected.Group("/products", middleware.RequireFeature(membershipRepo, policy.FeatureShopBrowsing))
	products.Get("", shopHandler.ListProducts)

	profile := authProtected.Group("/profile")
	profile.Post("/bmi", middleware.RequireFeature(membershipRepo, policy.FeatureBMICalculator), profileHandler.RecordBMI)
	profile.Get("/bmi", middleware.RequireFeature(membershipRepo, policy.FeatureBMICalculator), profileHandler.BMIHistory)
	profile.Post("/hydration", middleware.RequireFeature(membershipRepo, policy.FeatureHydrationTracking), profileHandler.LogHydration)
	profile.Get("/hydration", middleware.RequireFeature(membershipRepo, policy.FeatureHydrationTracking), profileHandler.HydrationToday)

	plans := authProtected.Group("/plans")
	plans.Get("/exercise", middleware.RequireFeature(membershipRepo, policy.FeatureExercisePlans), contentHandler.ExercisePlans)
	plans.Get("/diet", middleware.RequireFeature(membershipRepo, policy.FeatureDietPlans), contentHandler.DietPlans)

	authProtected.Get("/remedies", middleware.RequireFeature(membershipRepo, policy.FeatureRemedies), contentHandler.Remedies)
	authProtected.Get("/guidance", middleware.RequireFeature(membershipRepo, policy.FeatureSupplementGuidance), contentHandler.SupplementGuidance)

	chatbot := authProtected.Group("/chatbot", middleware.RequireFeature(membershipRepo, policy.FeatureChatbot))
	chatbot.Get("/start", chatbotHandler.Start)
	chatbot.Post("/reply", chatbotHandler.Reply)

	api.Use("/v1/ws", notificationHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(notificationHandler.HandleWebSocket))
}
