package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	apphttp "github.com/pr-poehali-dev/hundai-parts-catalog/internal/http"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/catalog"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/orders"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	tokenHash := os.Getenv("ADMIN_TOKEN_HASH")
	if tokenHash == "" {
		log.Fatal("ADMIN_TOKEN_HASH environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&catalog.Product{}, &orders.Order{}, &orders.OrderItem{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	addr := ":" + envOr("API_PORT", "8081")
	r := apphttp.NewRouter(logger, db, apphttp.RouterConfig{AdminTokenHash: tokenHash})

	logger.Info("api listening", "addr", addr)
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
