package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/quellskin/quell/internal/ai"
	"github.com/quellskin/quell/internal/api"
	"github.com/quellskin/quell/internal/config"
	"github.com/quellskin/quell/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	location := mustLoadLocation(cfg.Server.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DB.Path)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	options := []api.Option{
		api.WithCookieSecure(cfg.Server.CookieSecure),
		api.WithSessionTTL(cfg.Auth.SessionTTL),
	}
	if cfg.AI.BaseURL != "" {
		options = append(options, api.WithAIClients(ai.NewClients(ai.GatewayConfig{
			BaseURL:     cfg.AI.BaseURL,
			APIKey:      cfg.AI.APIKey,
			CoachModel:  cfg.AI.CoachModel,
			VisionModel: cfg.AI.VisionModel,
			Timeout:     cfg.AI.Timeout,
		})))
	}

	handler, err := api.NewHandler(database, cfg.Auth.SecretKey, location, options...)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Quell",
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.Server.CookieSecure)))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Quell listening on http://%s (db: %s, tz: %s)", cfg.ListenAddr(), cfg.DB.Path, location.String())
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:X-CSRF-Token",
		CookieName:     "quell_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
