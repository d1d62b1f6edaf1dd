package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sts-agendamento/pkg/api"
	"sts-agendamento/pkg/clients/formspree"
	"sts-agendamento/pkg/config"
	"sts-agendamento/pkg/services"
	"sts-agendamento/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	if !cfg.EndpointConfigured() {
		logger.Warn("FORMSPREE_ENDPOINT is not set, every submission will be refused")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	client := formspree.NewClient(nil, logger)
	handlers := api.NewHandlers(client, services.SettingsFromConfig(cfg))
	router := api.NewRouter(cfg, handlers, logger)

	logger.Info("Server starting", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
