package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/config"
	"github.com/dafibh/fortuna/fortuna-planner/internal/handler"
	"github.com/dafibh/fortuna/fortuna-planner/internal/messaging"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/repository/postgres"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Fortuna Planner API
// @version 1.0
// @description Income, expense, budget, recurring payment, investment and goal tracking with projections and recommendations.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	workspaceRepo := postgres.NewWorkspaceRepository(pool)
	incomeRepo := postgres.NewIncomeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	recurringRepo := postgres.NewRecurringRepository(pool)
	investmentRepo := postgres.NewInvestmentRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)

	// Event fan-out: live clients always, broker when configured
	hub := websocket.NewHub()
	var amqpPublisher *messaging.Publisher
	if cfg.AMQP.URL != "" {
		amqpPublisher, err = messaging.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to message broker")
		}
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("Publishing events to message broker")
	}
	var publisher websocket.EventPublisher = hub
	if amqpPublisher != nil {
		publisher = websocket.NewMultiPublisher(hub, amqpPublisher)
	}

	// Initialize services
	workspaceService := service.NewWorkspaceService(workspaceRepo)
	incomeService := service.NewIncomeService(incomeRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo)
	recurringService := service.NewRecurringService(recurringRepo)
	investmentService := service.NewInvestmentService(investmentRepo)
	goalService := service.NewGoalService(goalRepo)
	projectionService := service.NewProjectionService(incomeRepo, investmentRepo)
	dashboardService := service.NewDashboardService(incomeRepo, expenseRepo, recurringRepo, investmentRepo, goalRepo)

	incomeService.SetEventPublisher(publisher)
	expenseService.SetEventPublisher(publisher)
	budgetService.SetEventPublisher(publisher)
	recurringService.SetEventPublisher(publisher)
	investmentService.SetEventPublisher(publisher)
	goalService.SetEventPublisher(publisher)

	// Initialize auth middleware
	authMiddleware, err := middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience, workspaceService)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth middleware")
	}

	wsValidator, err := websocket.NewAuth0JWTValidator(cfg.Auth0Domain, cfg.Auth0Audience, workspaceService)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create WebSocket token validator")
	}

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	// Background reminders
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	reminderWorker := service.NewReminderWorker(recurringService, workspaceRepo, publisher, log.Logger, service.ReminderWorkerConfig{
		Schedule:      cfg.Reminders.Schedule,
		LookaheadDays: cfg.Reminders.LookaheadDays,
	})
	if err := reminderWorker.Start(workerCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start reminder worker")
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(),
		Income:     handler.NewIncomeHandler(incomeService),
		Expense:    handler.NewExpenseHandler(expenseService),
		Budget:     handler.NewBudgetHandler(budgetService),
		Recurring:  handler.NewRecurringHandler(recurringService),
		Investment: handler.NewInvestmentHandler(investmentService),
		Goal:       handler.NewGoalHandler(goalService),
		Projection: handler.NewProjectionHandler(projectionService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		WebSocket:  handler.NewWebSocketHandler(hub, wsValidator, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	reminderWorker.Stop()
	cancelWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	hub.Shutdown()
	rateLimiter.Stop()
	if amqpPublisher != nil {
		if err := amqpPublisher.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close message broker connection")
		}
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
