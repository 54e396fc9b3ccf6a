package handlers

import (
	"net/http"

	"moodgarden/internal/logger"
	"moodgarden/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket flower-state stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIDMiddleware)
	{
		h.registerEntryRoutes(api)
		h.registerFlowerRoutes(api)
		h.registerReportRoutes(api)
		h.registerTimeConfigRoutes(api)
	}
}

func (h *Handler) registerEntryRoutes(api *gin.RouterGroup) {
	entries := api.Group("/entries")
	{
		// Body example: {"emotions":[{"type":"joy","strength":"strong"}],"memo":"good day"}
		entries.POST("/", h.postEntry)
		entries.GET("/", h.getEntries)
	}
}

func (h *Handler) registerFlowerRoutes(api *gin.RouterGroup) {
	flower := api.Group("/flower")
	{
		flower.GET("/state", h.getFlowerState)
	}
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	reports := api.Group("/reports")
	{
		reports.GET("/weekly", h.getWeeklyReport)
		reports.GET("/monthly", h.getMonthlyReport)
	}
	periods := api.Group("/periods")
	{
		periods.GET("/weekly", h.getWeeklyPeriods)
		periods.GET("/monthly", h.getMonthlyPeriods)
	}
}

func (h *Handler) registerTimeConfigRoutes(api *gin.RouterGroup) {
	tc := api.Group("/time-config")
	{
		tc.GET("/", h.getTimeConfig)
		tc.PUT("/", h.putTimeConfig)
	}
}
