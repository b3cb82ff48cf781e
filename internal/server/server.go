package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"parlor/internal/app"
	"parlor/internal/chat"
	"parlor/internal/config"
	"parlor/internal/handlers"
	"parlor/internal/logging"
	"parlor/internal/pubsub"
	"parlor/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	Cfg          *config.Config
	bus          *pubsub.Bus
	service      *chat.Service
	sessions     *app.Manager
	authHandler  *handlers.AuthHandler
	chatHandler  *handlers.ChatHandler
	traceCleanup func()
}

// New creates a new Server instance.
func New() *Server {
	logging.New() // Initialize the structured logger
	cfg := config.New()

	store := chat.NewStore()
	store.ApplySeed(loadSeed(cfg))

	service := chat.NewService(store)

	tracer, traceCleanup, err := pubsub.SetupTracing(context.Background(), pubsub.LoadTracingConfigFromEnv())
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}
	bus := pubsub.NewBus(pubsub.WithTracer(tracer))

	if err := app.RegisterAuditLogger(context.Background(), bus); err != nil {
		slog.Error("Failed to register audit logger", "error", err)
		os.Exit(1)
	}

	mgr := app.NewManager(func() *app.Controller {
		return app.NewController(service, bus)
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Configure and use session middleware
	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	e.Use(session.Middleware(cookieStore))

	e.Renderer = rendering.NewComponentRenderer()

	return &Server{
		E:            e,
		Cfg:          cfg,
		bus:          bus,
		service:      service,
		sessions:     mgr,
		authHandler:  handlers.NewAuthHandler(mgr),
		chatHandler:  handlers.NewChatHandler(mgr),
		traceCleanup: traceCleanup,
	}
}

// loadSeed reads the seed file named by the configuration, falling back to
// the built-in dataset when none is configured or the file cannot be read.
func loadSeed(cfg *config.Config) chat.Seed {
	if cfg.SeedFile == "" {
		return chat.DefaultSeed()
	}

	seed, err := chat.LoadSeed(afero.NewOsFs(), cfg.SeedFile)
	if err != nil {
		slog.Warn("Falling back to built-in seed data", "seed_file", cfg.SeedFile, "error", err)
		return chat.DefaultSeed()
	}
	slog.Info("Loaded seed data", "seed_file", cfg.SeedFile, "rooms", len(seed.Rooms), "messages", len(seed.Messages))
	return seed
}
