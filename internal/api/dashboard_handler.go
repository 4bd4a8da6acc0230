package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dashboard-config-api/internal/api/dto"
	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/service"
)

//go:generate mockery --name DashboardService --output ../mocks
type DashboardService interface {
	CreateDashboard(ctx context.Context, input domain.CreateDashboardInput) (*domain.Dashboard, error)
	GetDashboard(ctx context.Context, id uint) (*domain.Dashboard, error)
	ListDashboards(ctx context.Context) ([]domain.Dashboard, error)
	UpdateDashboard(ctx context.Context, id uint, update domain.DashboardUpdate) (*domain.Dashboard, error)
	DeleteDashboard(ctx context.Context, id uint) (bool, error)
	CreateComponent(ctx context.Context, input domain.CreateComponentInput) (*domain.DashboardComponent, error)
	GetComponent(ctx context.Context, id uint) (*domain.DashboardComponent, error)
	ListComponents(ctx context.Context, dashboardID uint) ([]domain.DashboardComponent, error)
	UpdateComponent(ctx context.Context, id uint, update domain.ComponentUpdate) (*domain.DashboardComponent, error)
	DeleteComponent(ctx context.Context, id uint) (bool, error)
}

type DashboardHandler struct {
	*BaseHandler
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// CreateDashboard godoc
// @Summary Create a dashboard
// @Description An omitted description is stored as null, an empty one as ""
// @Tags dashboards
// @Accept json
// @Produce json
// @Param body body dto.CreateDashboardRequest true "Dashboard object"
// @Success 201 {object} dto.DashboardResponse
// @Failure 400 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /dashboards [post]
func (h *DashboardHandler) CreateDashboard(c *gin.Context) {
	var req dto.CreateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	dashboard, err := h.service.CreateDashboard(h.RequestCtx(c), req.ToInput())
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromDashboard(dashboard))
}

// ListDashboards godoc
// @Summary List dashboards
// @Description All dashboards, oldest first
// @Tags dashboards
// @Produce json
// @Success 200 {array} dto.DashboardResponse
// @Failure 503 {object} dto.Error
// @Router /dashboards [get]
func (h *DashboardHandler) ListDashboards(c *gin.Context) {
	dashboards, err := h.service.ListDashboards(h.RequestCtx(c))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromDashboards(dashboards))
}

// GetDashboard godoc
// @Summary Get a dashboard
// @Tags dashboards
// @Produce json
// @Param id path int true "Dashboard ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /dashboards/{id} [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.service.GetDashboard(h.RequestCtx(c), id)
	if err != nil {
		h.WriteError(c, err)
		return
	}
	if dashboard == nil {
		h.WriteError(c, service.ErrParentNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.FromDashboard(dashboard))
}

// UpdateDashboard godoc
// @Summary Update a dashboard
// @Description Only the fields present in the body change. A null description clears it.
// @Tags dashboards
// @Accept json
// @Produce json
// @Param id path int true "Dashboard ID"
// @Param body body dto.UpdateDashboardRequest true "Fields to change"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /dashboards/{id} [patch]
func (h *DashboardHandler) UpdateDashboard(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	dashboard, err := h.service.UpdateDashboard(h.RequestCtx(c), id, req.ToUpdate())
	if err != nil {
		h.WriteError(c, err)
		return
	}
	if dashboard == nil {
		h.WriteError(c, service.ErrParentNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.FromDashboard(dashboard))
}

// DeleteDashboard godoc
// @Summary Delete a dashboard
// @Description Removes the dashboard and all of its components
// @Tags dashboards
// @Produce json
// @Param id path int true "Dashboard ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /dashboards/{id} [delete]
func (h *DashboardHandler) DeleteDashboard(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.service.DeleteDashboard(h.RequestCtx(c), id)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}

// ListComponents godoc
// @Summary List the components of a dashboard
// @Description Top to bottom, then left to right. Unknown dashboards return an empty list.
// @Tags components
// @Produce json
// @Param id path int true "Dashboard ID"
// @Success 200 {array} dto.ComponentResponse
// @Failure 400 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /dashboards/{id}/components [get]
func (h *DashboardHandler) ListComponents(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	components, err := h.service.ListComponents(h.RequestCtx(c), id)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromComponents(components))
}

// CreateComponent godoc
// @Summary Add a component to a dashboard
// @Description Position defaults to 0,0 and size to 4x3
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Dashboard ID"
// @Param body body dto.CreateComponentRequest true "Component object"
// @Success 201 {object} dto.ComponentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /dashboards/{id}/components [post]
func (h *DashboardHandler) CreateComponent(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	component, err := h.service.CreateComponent(h.RequestCtx(c), req.ToInput(id))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromComponent(component))
}

// GetComponent godoc
// @Summary Get a component
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} dto.ComponentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /components/{id} [get]
func (h *DashboardHandler) GetComponent(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	component, err := h.service.GetComponent(h.RequestCtx(c), id)
	if err != nil {
		h.WriteError(c, err)
		return
	}
	if component == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "component not found"})
		return
	}

	c.JSON(http.StatusOK, dto.FromComponent(component))
}

// UpdateComponent godoc
// @Summary Update a component
// @Description Only the fields present in the body change. Geometry is re-validated.
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param body body dto.UpdateComponentRequest true "Fields to change"
// @Success 200 {object} dto.ComponentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /components/{id} [patch]
func (h *DashboardHandler) UpdateComponent(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	component, err := h.service.UpdateComponent(h.RequestCtx(c), id, req.ToUpdate())
	if err != nil {
		h.WriteError(c, err)
		return
	}
	if component == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "component not found"})
		return
	}

	c.JSON(http.StatusOK, dto.FromComponent(component))
}

// DeleteComponent godoc
// @Summary Delete a component
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /components/{id} [delete]
func (h *DashboardHandler) DeleteComponent(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.service.DeleteComponent(h.RequestCtx(c), id)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
