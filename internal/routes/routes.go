package routes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/loandesk/loandesk/internal/config"
	"github.com/loandesk/loandesk/internal/contact"
	"github.com/loandesk/loandesk/internal/identity"
	"github.com/loandesk/loandesk/internal/loans"
	"github.com/loandesk/loandesk/internal/middleware"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB presence outside of dev, even though main also checks.
	if !isDev(d.Cfg.AppEnv) && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.CORSOrigin,
		AllowCredentials: true,
	}))
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories: Postgres when a pool is supplied, in-memory otherwise.
	var userRepo identity.Repository
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
	}
	var loanRepo loans.Repository
	if d.DB != nil {
		loanRepo = loans.NewPostgresRepository(d.DB)
	} else {
		loanRepo = loans.NewMemoryRepository()
	}
	var contactRepo contact.Repository
	if d.DB != nil {
		contactRepo = contact.NewPostgresRepository(d.DB)
	} else {
		contactRepo = contact.NewMemoryRepository()
	}

	identityHandler := identity.NewHandler(identity.NewService(userRepo), d.Logger)
	loanHandler := loans.NewHandler(loans.NewService(loanRepo), d.Logger)
	contactHandler := contact.NewHandler(contact.NewService(contactRepo), d.Logger)

	RegisterIdentityRoutes(app, identityHandler)
	RegisterLoanRoutes(app, loanHandler)
	RegisterContactRoutes(app, contactHandler)

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}
