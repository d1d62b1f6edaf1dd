package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sts-agendamento/pkg/config"
	"sts-agendamento/pkg/middleware"
)

// NewRouter wires middleware and routes
func NewRouter(cfg *config.Config, handlers *Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS(cfg.Origins()))
	router.SetHTMLTemplate(LoadTemplates())

	router.GET("/", handlers.ShowForm)
	router.GET("/health", handlers.HealthCheck)
	router.POST("/agendamento", middleware.RateLimit(cfg.MaxRequestsPerMin, logger), handlers.HandleSubmission)

	return router
}
