package server

import (
	"net/http"
	"time"

	"clinic-backend/internal/config"
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with middleware and every API route.
func NewRouter(cfg *config.Config, log *zap.Logger, st *store.Store) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			log.Error("panic recovered",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Any("panic", recovered))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}),
		cors.New(corsConfig(cfg.AllowedOrigins)),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(router.Group("/api"), handlers.Stores{
		Patients:      st.Patients,
		Doctors:       st.Doctors,
		Appointments:  st.Appointments,
		History:       st.History,
		Consultations: st.Consultations,
	}, time.Now, cfg.PingMessage, log)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
