package handler

import (
	"context"

	"rockguard/internal/charts"
	"rockguard/internal/dashboard"
	"rockguard/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockDashboardService is a mock implementation of the DashboardService interface
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Mines(ctx context.Context) []models.Mine {
	args := m.Called(ctx)
	return args.Get(0).([]models.Mine)
}

func (m *MockDashboardService) HeatLayer(ctx context.Context, name string) (*models.HeatLayer, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*models.HeatLayer), args.Error(1)
}

func (m *MockDashboardService) CreateSession(ctx context.Context, mine string) (*dashboard.Snapshot, error) {
	args := m.Called(ctx, mine)
	return args.Get(0).(*dashboard.Snapshot), args.Error(1)
}

func (m *MockDashboardService) Snapshot(ctx context.Context, id string) (*dashboard.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*dashboard.Snapshot), args.Error(1)
}

func (m *MockDashboardService) Select(ctx context.Context, id, mine string) (*dashboard.MapUpdate, error) {
	args := m.Called(ctx, id, mine)
	return args.Get(0).(*dashboard.MapUpdate), args.Error(1)
}

func (m *MockDashboardService) Unmount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDashboardService) Panel(ctx context.Context, id string) (*charts.Panel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*charts.Panel), args.Error(1)
}

// MockContactService is a mock implementation of the ContactService interface
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}
