package routes

import (
	"net/http"
	"time"

	"vaktplan/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, h)
	RegisterHealthRoute(r)
}

// RegisterScheduleRoutes sets up the schedule grid endpoints.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		api.GET("/sample", h.SampleConfigHandler)
		api.POST("/generate", h.GenerateHandler)
		api.POST("/:sessionID/edit", h.EditHandler)
		api.GET("/:sessionID/report", h.ReportHandler)
		api.GET("/:sessionID/history", h.HistoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Vaktplan"})
	})
}
