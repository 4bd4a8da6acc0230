package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dashboard-config-api/internal/api/dto"
	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

//go:generate mockery --name PreferenceService --output ../mocks
type PreferenceService interface {
	Create(ctx context.Context, userID string, theme *domain.Theme) (*domain.UserPreference, error)
	Get(ctx context.Context, userID string) (*domain.UserPreference, error)
	Update(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error)
	UpsertTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.ThemeResponse, error)
}

type PreferenceHandler struct {
	*BaseHandler
	service PreferenceService
}

func NewPreferenceHandler(service PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

// CreatePreference godoc
// @Summary Create a user preference
// @Description Create the preference record for a user. Fails when one already exists.
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body dto.CreatePreferenceRequest true "Preference object"
// @Success 201 {object} dto.PreferenceResponse
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /preferences [post]
func (h *PreferenceHandler) CreatePreference(c *gin.Context) {
	var req dto.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	var theme *domain.Theme
	if req.Theme != nil {
		t := domain.Theme(*req.Theme)
		theme = &t
	}

	pref, err := h.service.Create(h.RequestCtx(c), req.UserID, theme)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPreference(pref))
}

// GetPreference godoc
// @Summary Get a user preference
// @Description Returns null when the user has no stored preference yet
// @Tags preferences
// @Produce json
// @Param user_id path string true "External user id"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 503 {object} dto.Error
// @Router /preferences/{user_id} [get]
func (h *PreferenceHandler) GetPreference(c *gin.Context) {
	pref, err := h.service.Get(h.RequestCtx(c), c.Param("user_id"))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	if pref == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.FromPreference(pref))
}

// UpdatePreference godoc
// @Summary Update a user preference
// @Description Change the theme of an existing preference. Never creates one.
// @Tags preferences
// @Accept json
// @Produce json
// @Param user_id path string true "External user id"
// @Param body body dto.UpdatePreferenceRequest true "Theme"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /preferences/{user_id} [put]
func (h *PreferenceHandler) UpdatePreference(c *gin.Context) {
	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	pref, err := h.service.Update(h.RequestCtx(c), c.Param("user_id"), domain.Theme(req.Theme))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPreference(pref))
}

// UpsertTheme godoc
// @Summary Set a user's theme
// @Description Create or update the preference in one step and return the stored theme
// @Tags preferences
// @Accept json
// @Produce json
// @Param user_id path string true "External user id"
// @Param body body dto.UpsertThemeRequest true "Theme"
// @Success 200 {object} dto.ThemeResponse
// @Failure 400 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /preferences/{user_id}/theme [put]
func (h *PreferenceHandler) UpsertTheme(c *gin.Context) {
	var req dto.UpsertThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.service.UpsertTheme(h.RequestCtx(c), c.Param("user_id"), domain.Theme(req.Theme))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromThemeResponse(resp))
}
