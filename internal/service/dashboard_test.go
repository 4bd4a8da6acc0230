package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/mocks"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo      *mocks.Repository
	mockDashboard *mocks.DashboardRepository
	mockComponent *mocks.ComponentRepository
	service       *DashboardService
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockDashboard = new(mocks.DashboardRepository)
	s.mockComponent = new(mocks.ComponentRepository)

	s.mockRepo.On("Dashboard").Return(s.mockDashboard)
	s.mockRepo.On("Component").Return(s.mockComponent)

	s.service = NewDashboardService(s.mockRepo, logger.NewNop())
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func validComponentInput() domain.CreateComponentInput {
	return domain.CreateComponentInput{
		DashboardID:   1,
		ComponentType: domain.ComponentChart,
		Title:         "CPU",
		Config:        datatypes.JSON(`{"metric":"cpu"}`),
		Width:         4,
		Height:        3,
	}
}

func (s *DashboardServiceTestSuite) TestCreateDashboard_DefaultsActive() {
	// Arrange
	ctx := context.Background()
	s.mockDashboard.On("Insert", ctx, mock.MatchedBy(func(d *domain.Dashboard) bool {
		return d.Name == "Ops" && d.IsActive && d.Description == nil
	})).Return(&domain.Dashboard{ID: 1, Name: "Ops", IsActive: true}, nil)

	// Act
	dashboard, err := s.service.CreateDashboard(ctx, domain.CreateDashboardInput{Name: "Ops"})

	// Assert
	s.NoError(err)
	s.EqualValues(1, dashboard.ID)
	s.mockDashboard.AssertExpectations(s.T())
}

func (s *DashboardServiceTestSuite) TestCreateDashboard_KeepsEmptyDescription() {
	// Arrange
	ctx := context.Background()
	empty := ""
	inactive := false
	s.mockDashboard.On("Insert", ctx, mock.MatchedBy(func(d *domain.Dashboard) bool {
		return d.Description != nil && *d.Description == "" && !d.IsActive
	})).Return(&domain.Dashboard{ID: 2, Name: "Ops", Description: &empty}, nil)

	// Act
	dashboard, err := s.service.CreateDashboard(ctx, domain.CreateDashboardInput{Name: "Ops", Description: &empty, IsActive: &inactive})

	// Assert
	s.NoError(err)
	s.Require().NotNil(dashboard.Description)
	s.Equal("", *dashboard.Description)
}

func (s *DashboardServiceTestSuite) TestCreateDashboard_RejectsBlankName() {
	dashboard, err := s.service.CreateDashboard(context.Background(), domain.CreateDashboardInput{Name: "  "})

	s.Nil(dashboard)
	s.ErrorIs(err, ErrInvalidInput)
	s.mockDashboard.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *DashboardServiceTestSuite) TestListDashboards_OrdersByCreationThenID() {
	// Arrange
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mockDashboard.On("List", ctx).Return([]domain.Dashboard{
		{ID: 3, Name: "c", CreatedAt: t0.Add(time.Second)},
		{ID: 2, Name: "b", CreatedAt: t0},
		{ID: 1, Name: "a", CreatedAt: t0},
	}, nil)

	// Act
	dashboards, err := s.service.ListDashboards(ctx)

	// Assert
	s.NoError(err)
	s.Equal([]uint{1, 2, 3}, []uint{dashboards[0].ID, dashboards[1].ID, dashboards[2].ID})
}

func (s *DashboardServiceTestSuite) TestDeleteDashboard() {
	// Arrange
	ctx := context.Background()
	s.mockDashboard.On("DeleteCascade", ctx, uint(1)).Return(int64(4), nil)
	s.mockDashboard.On("DeleteCascade", ctx, uint(99)).Return(int64(0), nil)

	// Act
	deleted, err := s.service.DeleteDashboard(ctx, 1)
	s.NoError(err)
	missing, err := s.service.DeleteDashboard(ctx, 99)

	// Assert
	s.NoError(err)
	s.True(deleted)
	s.False(missing)
}

func (s *DashboardServiceTestSuite) TestCreateComponent_InvalidGeometryBeforeStore() {
	cases := map[string]func(*domain.CreateComponentInput){
		"negative x":    func(in *domain.CreateComponentInput) { in.PositionX = -1 },
		"negative y":    func(in *domain.CreateComponentInput) { in.PositionY = -1 },
		"zero width":    func(in *domain.CreateComponentInput) { in.Width = 0 },
		"zero height":   func(in *domain.CreateComponentInput) { in.Height = 0 },
		"before parent": func(in *domain.CreateComponentInput) { in.DashboardID = 404; in.Width = 0 },
	}

	for name, mutate := range cases {
		s.Run(name, func() {
			input := validComponentInput()
			mutate(&input)

			component, err := s.service.CreateComponent(context.Background(), input)

			s.Nil(component)
			s.ErrorIs(err, ErrInvalidGeometry)
		})
	}

	s.mockDashboard.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
	s.mockComponent.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *DashboardServiceTestSuite) TestCreateComponent_ParentNotFound() {
	// Arrange
	ctx := context.Background()
	s.mockDashboard.On("FindByID", ctx, uint(1)).Return(nil, nil)

	// Act
	component, err := s.service.CreateComponent(ctx, validComponentInput())

	// Assert
	s.Nil(component)
	s.ErrorIs(err, ErrParentNotFound)
	s.mockComponent.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *DashboardServiceTestSuite) TestCreateComponent_ParentDeletedDuringInsert() {
	// Arrange
	ctx := context.Background()
	s.mockDashboard.On("FindByID", ctx, uint(1)).Return(&domain.Dashboard{ID: 1}, nil)
	s.mockComponent.On("Insert", ctx, mock.AnythingOfType("*domain.DashboardComponent")).
		Return(nil, &repository.StoreError{Sentinel: repository.ErrParentNotFound})

	// Act
	component, err := s.service.CreateComponent(ctx, validComponentInput())

	// Assert
	s.Nil(component)
	s.ErrorIs(err, ErrParentNotFound)
}

func (s *DashboardServiceTestSuite) TestCreateComponent_RejectsNonObjectConfig() {
	input := validComponentInput()
	input.Config = datatypes.JSON(`[1,2,3]`)

	component, err := s.service.CreateComponent(context.Background(), input)

	s.Nil(component)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *DashboardServiceTestSuite) TestCreateComponent_Success() {
	// Arrange
	ctx := context.Background()
	input := validComponentInput()
	s.mockDashboard.On("FindByID", ctx, uint(1)).Return(&domain.Dashboard{ID: 1}, nil)
	s.mockComponent.On("Insert", ctx, mock.MatchedBy(func(c *domain.DashboardComponent) bool {
		return c.DashboardID == 1 && c.Title == "CPU" && c.Width == 4 && c.Height == 3
	})).Return(&domain.DashboardComponent{ID: 10, DashboardID: 1, Title: "CPU"}, nil)

	// Act
	component, err := s.service.CreateComponent(ctx, input)

	// Assert
	s.NoError(err)
	s.EqualValues(10, component.ID)
	s.mockComponent.AssertExpectations(s.T())
}

func (s *DashboardServiceTestSuite) TestListComponents_ReadingOrder() {
	// Arrange
	ctx := context.Background()
	s.mockComponent.On("ListByDashboard", ctx, uint(1)).Return([]domain.DashboardComponent{
		{ID: 1, PositionX: 6, PositionY: 4},
		{ID: 2, PositionX: 0, PositionY: 0},
		{ID: 3, PositionX: 0, PositionY: 4},
	}, nil)

	// Act
	components, err := s.service.ListComponents(ctx, 1)

	// Assert
	s.NoError(err)
	s.Equal([]uint{2, 3, 1}, []uint{components[0].ID, components[1].ID, components[2].ID})
}

func (s *DashboardServiceTestSuite) TestListComponents_UnknownDashboardIsEmpty() {
	// Arrange
	ctx := context.Background()
	s.mockComponent.On("ListByDashboard", ctx, uint(404)).Return(nil, nil)

	// Act
	components, err := s.service.ListComponents(ctx, 404)

	// Assert
	s.NoError(err)
	s.NotNil(components)
	s.Empty(components)
}

func (s *DashboardServiceTestSuite) TestUpdateComponent_RevalidatesGeometry() {
	// Arrange
	width := 0

	// Act
	component, err := s.service.UpdateComponent(context.Background(), 1, domain.ComponentUpdate{Width: &width})

	// Assert
	s.Nil(component)
	s.ErrorIs(err, ErrInvalidGeometry)
	s.mockComponent.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DashboardServiceTestSuite) TestUpdateComponent_AbsentReturnsNil() {
	// Arrange
	ctx := context.Background()
	title := "Memory"
	update := domain.ComponentUpdate{Title: &title}
	s.mockComponent.On("Update", ctx, uint(5), update).Return(nil, nil)

	// Act
	component, err := s.service.UpdateComponent(ctx, 5, update)

	// Assert
	s.NoError(err)
	s.Nil(component)
}

func (s *DashboardServiceTestSuite) TestListLayouts() {
	// Arrange
	ctx := context.Background()
	s.mockDashboard.On("List", ctx).Return([]domain.Dashboard{{ID: 1, Name: "Ops"}}, nil)
	s.mockComponent.On("ListByDashboard", ctx, uint(1)).Return([]domain.DashboardComponent{
		{ID: 2, DashboardID: 1, PositionY: 3},
		{ID: 1, DashboardID: 1},
	}, nil)

	// Act
	layouts, err := s.service.ListLayouts(ctx)

	// Assert
	s.NoError(err)
	s.Require().Len(layouts, 1)
	s.Equal("Ops", layouts[0].Dashboard.Name)
	s.Equal([]uint{1, 2}, []uint{layouts[0].Components[0].ID, layouts[0].Components[1].ID})
}
