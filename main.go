package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/soyedarif/ralph-s-crafts-server/auth"
	"github.com/soyedarif/ralph-s-crafts-server/config"
	"github.com/soyedarif/ralph-s-crafts-server/db"
	"github.com/soyedarif/ralph-s-crafts-server/handlers"
	"github.com/soyedarif/ralph-s-crafts-server/services"
	"github.com/soyedarif/ralph-s-crafts-server/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger := config.NewLogger(cfg.Environment)
	defer logger.Sync()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.ApplySchema(conn, "schema.sql"); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}
	logger.Info("database schema verified")

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.LegacyOpenRoutes {
		logger.Warn("legacy open routes enabled: mutation endpoints are ungated")
	}

	h := handlers.New(
		store.NewPostgres(conn),
		auth.NewTokenService(cfg.JWTSecret),
		services.NewNotifier(logger),
		logger,
		cfg.LegacyOpenRoutes,
	)
	r := handlers.NewRouter(h)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
