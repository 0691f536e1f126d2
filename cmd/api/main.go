package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"careerfair/internal/api"
	"careerfair/internal/config"
	"careerfair/internal/database"
)

func main() {
	// A missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	log.Printf("api bootstrapped with db host=%s port=%d db=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	log.Printf("database connection ready")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	log.Printf("database migrated")

	router := api.NewRouter(cfg, logger)
	api.RegisterRoutes(router, db)

	address := cfg.Server.Address()
	log.Printf("api listening on %s", address)
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
