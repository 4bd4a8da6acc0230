package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dashboard-config-api/internal/api/dto"
	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/internal/middleware"
)

const maxRequestBodyBytes = 1 << 20 // 1MB

type Server struct {
	preference *PreferenceHandler
	dashboard  *DashboardHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	config     *config.Config
}

func NewServer(
	preferenceService PreferenceService,
	dashboardService DashboardService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	cfg *config.Config,
) *Server {
	return &Server{
		preference: NewPreferenceHandler(preferenceService),
		dashboard:  NewDashboardHandler(dashboardService),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		config:     cfg,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(maxRequestBodyBytes))
	api.Use(s.validation.ValidateContentType("application/json"))

	api.GET("/health", Health)

	protected := api.Group("")
	if s.config.RateLimitEnabled {
		protected.Use(s.rateLimit.GlobalRateLimit(s.config.GlobalRateLimit))
	}
	if s.config.AuthEnabled() {
		protected.Use(s.auth.JWTAuth())
	}
	if s.config.RateLimitEnabled {
		protected.Use(s.rateLimit.SubjectRateLimit())
	}

	{
		preferences := protected.Group("/preferences")
		{
			preferences.POST("", s.preference.CreatePreference)
			preferences.GET("/:user_id", s.preference.GetPreference)
			preferences.PUT("/:user_id", s.preference.UpdatePreference)
			preferences.PUT("/:user_id/theme", s.preference.UpsertTheme)
		}

		dashboards := protected.Group("/dashboards")
		{
			dashboards.POST("", s.dashboard.CreateDashboard)
			dashboards.GET("", s.dashboard.ListDashboards)
			dashboards.GET("/:id", s.dashboard.GetDashboard)
			dashboards.PATCH("/:id", s.dashboard.UpdateDashboard)
			dashboards.DELETE("/:id", s.dashboard.DeleteDashboard)
			dashboards.GET("/:id/components", s.dashboard.ListComponents)
			dashboards.POST("/:id/components", s.dashboard.CreateComponent)
		}

		components := protected.Group("/components")
		{
			components.GET("/:id", s.dashboard.GetComponent)
			components.PATCH("/:id", s.dashboard.UpdateComponent)
			components.DELETE("/:id", s.dashboard.DeleteComponent)
		}
	}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
