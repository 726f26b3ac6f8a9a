package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/config"
	"github.com/heygogu/car-rental/internal/handler"
	"github.com/heygogu/car-rental/internal/middleware"
)

// newRouter assembles middleware, ambient endpoints and API routes.
func newRouter(cfg *config.Config, log *zap.Logger, h *handler.Handler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.GinZapLogger(log.Named("HTTP")))
	router.Use(middleware.Recovery(log))

	p := ginprometheus.NewPrometheus("gin")

	corsConfig := cors.DefaultConfig()
	if origins := cfg.GetAllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	h.RegisterRoutes(router)

	// Метрики подключаем после регистрации роутов
	p.Use(router)

	return router
}
