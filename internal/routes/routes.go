package routes

import (
	"time"

	"github.com/condomanager/condomanager-api/internal/config"
	"github.com/condomanager/condomanager-api/internal/handlers"
	"github.com/condomanager/condomanager-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	condominiumHandler *handlers.CondominiumHandler,
	providerHandler *handlers.ProviderHandler,
	inspectionHandler *handlers.InspectionHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	alertHandler *handlers.AlertHandler,
	financialHandler *handlers.FinancialHandler,
	documentHandler *handlers.DocumentHandler,
	fileHandler *handlers.FileHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	loginLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Post("/token", loginLimiter, authHandler.Token)
	app.Post("/auth/google", loginLimiter, authHandler.GoogleSignIn)

	// Registration is open; new accounts start in the pending role until
	// an administrator approves them.
	app.Post("/users", userHandler.Register)

	// Daily reminder sweep, hit by the external cron. Idempotent, so no
	// auth gate on purpose.
	app.Get("/alerts/run-scheduler", alertHandler.RunScheduler)

	// Everything below requires a valid token and a matching user row.
	protected := app.Group("", middleware.JWTProtected(cfg), middleware.LoadUser(db))

	protected.Get("/users/me", userHandler.Me)
	protected.Patch("/users/:id", userHandler.Update)

	protected.Get("/condominiums", condominiumHandler.List)
	protected.Post("/condominiums", middleware.RoleRequired(), condominiumHandler.Create)
	protected.Get("/condominiums/:id", condominiumHandler.Get)

	protected.Get("/providers", providerHandler.List)
	protected.Post("/providers", providerHandler.Create)
	protected.Get("/providers/:id", providerHandler.Get)

	protected.Post("/inspections/upload", inspectionHandler.Upload)
	protected.Get("/inspections", inspectionHandler.List)

	protected.Get("/work-orders", workOrderHandler.List)
	protected.Post("/work-orders", workOrderHandler.Create)
	protected.Post("/work-orders/:id/status", workOrderHandler.UpdateStatus)
	protected.Post("/work-orders/:id/close", workOrderHandler.Close)
	protected.Get("/work-orders/:id/messages", workOrderHandler.ListMessages)
	protected.Post("/work-orders/:id/messages", workOrderHandler.PostMessage)

	protected.Get("/alerts", alertHandler.List)
	protected.Post("/alerts", alertHandler.Create)
	protected.Get("/alerts/list/:condominium_id", alertHandler.ListByCondominium)

	protected.Post("/documents/upload", documentHandler.Upload)
	protected.Get("/documents/ask", documentHandler.Ask)

	protected.Post("/files/upload", fileHandler.Upload)

	protected.Get("/financial", financialHandler.List)
	protected.Post("/financial", financialHandler.Create)
	protected.Get("/financial/dashboard", middleware.RoleRequired(), financialHandler.Dashboard)

	// Admin panel (owner/admin only)
	admin := protected.Group("/admin", middleware.RoleRequired())
	admin.Get("/users", userHandler.List)
	admin.Post("/users/:id/approve", userHandler.Approve)
}
