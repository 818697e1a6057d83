package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naufalrizky/healthscan/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	api := router.Group("/api/v1")
	{
		api.GET("/symptoms", handler.Symptoms)
		api.POST("/diagnoses", handler.Diagnose)
		api.POST("/diagnoses/export", handler.ExportDiagnosis)
		api.POST("/diagnoses/share", handler.ShareDiagnosis)
		api.GET("/facilities", handler.Facilities)
		api.GET("/history", handler.HistoryList)
		api.DELETE("/history/:index", handler.HistoryDelete)
		api.GET("/preferences/dark-mode", handler.GetDarkMode)
		api.PUT("/preferences/dark-mode", handler.SetDarkMode)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":    "not_found",
				"message": "Halaman tidak ditemukan",
			},
		})
	})

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
