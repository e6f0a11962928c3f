package main

import (
	"log"
	"os"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/session"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/web"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		log.Fatal("API_BASE_URL environment variable is required")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET environment variable is required")
	}

	tokenHash := os.Getenv("ADMIN_TOKEN_HASH")
	if tokenHash == "" {
		log.Fatal("ADMIN_TOKEN_HASH environment variable is required")
	}

	client := api.New(baseURL, os.Getenv("ADMIN_TOKEN"))
	store := session.NewStore(client)
	codec := session.NewCodec([]byte(secret), "parts_session", os.Getenv("COOKIE_SECURE") == "1")

	// Carts are memory-resident only; idle sessions just get swept.
	go func() {
		for range time.Tick(10 * time.Minute) {
			if n := store.PurgeIdle(24 * time.Hour); n > 0 {
				logger.Info("purged idle sessions", "count", n)
			}
		}
	}()

	addr := ":" + envOr("WEB_PORT", "8080")
	r := web.NewRouter(logger, store, codec, web.RouterConfig{AdminTokenHash: tokenHash})

	logger.Info("storefront listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
