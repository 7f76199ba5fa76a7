package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cvinsight/config"
	"cvinsight/handlers"
	"cvinsight/middleware"
	"cvinsight/nlp"
	"cvinsight/parsers"
	"cvinsight/services"
	"cvinsight/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.GetAppConfig()
	log := utils.NewLogger(cfg.LogLevel, cfg.Environment)

	var storage *services.StorageService
	if cfg.Storage.Enabled() {
		var err error
		storage, err = services.NewStorageService(cfg.Storage)
		if err != nil {
			log.Warn().Err(err).Msg("S3 archival disabled")
		}
	}

	parser := parsers.NewCVParser(nlp.NewHeuristicProvider()).WithLogger(log)
	cvHandler := handlers.NewCVHandler(parser, storage, cfg, log)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin, time.Minute)
	api := r.Group("/api")
	api.GET("/health", handlers.Health)
	api.POST("/cv/upload", limiter.Limit(), cvHandler.Upload)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
