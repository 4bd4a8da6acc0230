package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/ordering"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

type DashboardService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewDashboardService(repo repository.Repository, logger *logger.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

// CreateDashboard stores a new dashboard. A nil Description is stored as NULL and
// a nil IsActive as true.
func (s *DashboardService) CreateDashboard(ctx context.Context, input domain.CreateDashboardInput) (*domain.Dashboard, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	dashboard, err := s.repo.Dashboard().Insert(ctx, &domain.Dashboard{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    isActive,
	})
	if err != nil {
		s.logger.Error("Failed to create dashboard", err)
		return nil, fmt.Errorf("failed to create dashboard: %w", err)
	}

	return dashboard, nil
}

func (s *DashboardService) GetDashboard(ctx context.Context, id uint) (*domain.Dashboard, error) {
	dashboard, err := s.repo.Dashboard().FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get dashboard", err, zap.Uint("dashboard_id", id))
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}
	return dashboard, nil
}

// ListDashboards returns every dashboard in creation order.
func (s *DashboardService) ListDashboards(ctx context.Context) ([]domain.Dashboard, error) {
	dashboards, err := s.repo.Dashboard().List(ctx)
	if err != nil {
		s.logger.Error("Failed to list dashboards", err)
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	return ordering.Dashboards(dashboards), nil
}

func (s *DashboardService) UpdateDashboard(ctx context.Context, id uint, update domain.DashboardUpdate) (*domain.Dashboard, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	dashboard, err := s.repo.Dashboard().Update(ctx, id, update)
	if err != nil {
		s.logger.Error("Failed to update dashboard", err, zap.Uint("dashboard_id", id))
		return nil, fmt.Errorf("failed to update dashboard: %w", err)
	}
	return dashboard, nil
}

// DeleteDashboard removes the dashboard together with its components and reports
// whether the dashboard existed.
func (s *DashboardService) DeleteDashboard(ctx context.Context, id uint) (bool, error) {
	removed, err := s.repo.Dashboard().DeleteCascade(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete dashboard", err, zap.Uint("dashboard_id", id))
		return false, fmt.Errorf("failed to delete dashboard: %w", err)
	}

	if removed > 0 {
		s.logger.Info("Dashboard deleted",
			zap.Uint("dashboard_id", id),
			zap.Int64("components_removed", removed-1),
		)
	}
	return removed > 0, nil
}

// CreateComponent validates geometry before touching the store, then checks the
// parent. The insert repeats the parent check under a lock, which covers a
// dashboard deleted in between.
func (s *DashboardService) CreateComponent(ctx context.Context, input domain.CreateComponentInput) (*domain.DashboardComponent, error) {
	if err := validateGeometry(&input.PositionX, &input.PositionY, &input.Width, &input.Height); err != nil {
		return nil, err
	}
	if !domain.IsValidComponentType(string(input.ComponentType)) {
		return nil, fmt.Errorf("%w: unsupported component_type %q", ErrInvalidInput, input.ComponentType)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !domain.IsConfigObject(input.Config) {
		return nil, fmt.Errorf("%w: config must be a JSON object", ErrInvalidInput)
	}

	parent, err := s.repo.Dashboard().FindByID(ctx, input.DashboardID)
	if err != nil {
		s.logger.Error("Failed to look up dashboard", err, zap.Uint("dashboard_id", input.DashboardID))
		return nil, fmt.Errorf("failed to create component: %w", err)
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}

	component, err := s.repo.Component().Insert(ctx, &domain.DashboardComponent{
		DashboardID:   input.DashboardID,
		ComponentType: input.ComponentType,
		Title:         input.Title,
		Config:        input.Config,
		PositionX:     input.PositionX,
		PositionY:     input.PositionY,
		Width:         input.Width,
		Height:        input.Height,
	})
	if err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			s.logger.Info("Dashboard removed before component insert", zap.Uint("dashboard_id", input.DashboardID))
			return nil, ErrParentNotFound
		}
		s.logger.Error("Failed to create component", err, zap.Uint("dashboard_id", input.DashboardID))
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return component, nil
}

func (s *DashboardService) GetComponent(ctx context.Context, id uint) (*domain.DashboardComponent, error) {
	component, err := s.repo.Component().FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get component", err, zap.Uint("component_id", id))
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	return component, nil
}

// ListComponents returns the components in reading order. An unknown dashboard
// yields an empty slice, same as a dashboard without components.
func (s *DashboardService) ListComponents(ctx context.Context, dashboardID uint) ([]domain.DashboardComponent, error) {
	components, err := s.repo.Component().ListByDashboard(ctx, dashboardID)
	if err != nil {
		s.logger.Error("Failed to list components", err, zap.Uint("dashboard_id", dashboardID))
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	if components == nil {
		return []domain.DashboardComponent{}, nil
	}
	return ordering.Components(components), nil
}

func (s *DashboardService) UpdateComponent(ctx context.Context, id uint, update domain.ComponentUpdate) (*domain.DashboardComponent, error) {
	if update.TouchesGeometry() {
		if err := validateGeometry(update.PositionX, update.PositionY, update.Width, update.Height); err != nil {
			return nil, err
		}
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if update.Config.Set && !domain.IsConfigObject(update.Config.Value) {
		return nil, fmt.Errorf("%w: config must be a JSON object", ErrInvalidInput)
	}

	component, err := s.repo.Component().Update(ctx, id, update)
	if err != nil {
		s.logger.Error("Failed to update component", err, zap.Uint("component_id", id))
		return nil, fmt.Errorf("failed to update component: %w", err)
	}
	return component, nil
}

// DeleteComponent reports whether the component existed.
func (s *DashboardService) DeleteComponent(ctx context.Context, id uint) (bool, error) {
	removed, err := s.repo.Component().Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete component", err, zap.Uint("component_id", id))
		return false, fmt.Errorf("failed to delete component: %w", err)
	}
	return removed > 0, nil
}

// ListLayouts reads every dashboard with its ordered components. A dashboard
// deleted between the two reads is reported with no components.
func (s *DashboardService) ListLayouts(ctx context.Context) ([]domain.DashboardLayout, error) {
	dashboards, err := s.ListDashboards(ctx)
	if err != nil {
		return nil, err
	}

	layouts := make([]domain.DashboardLayout, 0, len(dashboards))
	for _, dashboard := range dashboards {
		components, err := s.ListComponents(ctx, dashboard.ID)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, domain.DashboardLayout{
			Dashboard:  dashboard,
			Components: components,
		})
	}
	return layouts, nil
}

// validateGeometry checks only the supplied fields.
func validateGeometry(positionX, positionY, width, height *int) error {
	if positionX != nil && *positionX < 0 {
		return fmt.Errorf("%w: position_x must be >= 0, got %d", ErrInvalidGeometry, *positionX)
	}
	if positionY != nil && *positionY < 0 {
		return fmt.Errorf("%w: position_y must be >= 0, got %d", ErrInvalidGeometry, *positionY)
	}
	if width != nil && *width < 1 {
		return fmt.Errorf("%w: width must be >= 1, got %d", ErrInvalidGeometry, *width)
	}
	if height != nil && *height < 1 {
		return fmt.Errorf("%w: height must be >= 1, got %d", ErrInvalidGeometry, *height)
	}
	return nil
}
