package service

import (
	"context"
	"errors"
	"fmt"

	"rockguard/internal/charts"
	"rockguard/internal/dashboard"
	"rockguard/internal/fixtures"
	"rockguard/internal/mapview"
	"rockguard/internal/models"
	"rockguard/internal/selector"
)

// DashboardService contains the dashboard operations exposed over HTTP
type DashboardService struct {
	store      SessionStore
	heatRadius int
}

// SessionStore interface for dependency injection
type SessionStore interface {
	Create(mine string) (*dashboard.Session, error)
	Get(id string) (*dashboard.Session, error)
	Remove(id string) error
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store SessionStore, heatRadius int) *DashboardService {
	return &DashboardService{store: store, heatRadius: heatRadius}
}

// Mines returns the selectable mines
func (s *DashboardService) Mines(ctx context.Context) []models.Mine {
	return fixtures.Mines()
}

// HeatLayer returns the overlay computed for the named mine
func (s *DashboardService) HeatLayer(ctx context.Context, name string) (*models.HeatLayer, error) {
	mine, ok := fixtures.MineByName(name)
	if !ok {
		return nil, fmt.Errorf("service: mine %q: %w", name, ErrNotFound)
	}
	layer := mapview.NewHeatLayer(mine, s.heatRadius)
	return &layer, nil
}

// CreateSession starts a dashboard, optionally with mine preselected
func (s *DashboardService) CreateSession(ctx context.Context, mine string) (*dashboard.Snapshot, error) {
	session, err := s.store.Create(mine)
	if err != nil {
		return nil, translate(err)
	}
	snap := session.Snapshot()
	return &snap, nil
}

// Snapshot returns the current state of a dashboard
func (s *DashboardService) Snapshot(ctx context.Context, id string) (*dashboard.Snapshot, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, translate(err)
	}
	snap := session.Snapshot()
	return &snap, nil
}

// Select switches a dashboard to another mine
func (s *DashboardService) Select(ctx context.Context, id, mine string) (*dashboard.MapUpdate, error) {
	if mine == "" {
		return nil, &ValidationError{Fields: map[string]string{"mine": "required"}}
	}
	session, err := s.store.Get(id)
	if err != nil {
		return nil, translate(err)
	}
	update, err := session.Select(mine)
	if err != nil {
		return nil, translate(err)
	}
	return &update, nil
}

// Unmount releases a dashboard's map and ends the session
func (s *DashboardService) Unmount(ctx context.Context, id string) error {
	if err := s.store.Remove(id); err != nil {
		return translate(err)
	}
	return nil
}

// Panel returns a chart panel built from the fixed series
func (s *DashboardService) Panel(ctx context.Context, id string) (*charts.Panel, error) {
	panel, err := charts.Fixed(id)
	if err != nil {
		return nil, translate(err)
	}
	return &panel, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrSessionNotFound), errors.Is(err, charts.ErrUnknownPanel):
		return fmt.Errorf("service: %w: %w", ErrNotFound, err)
	case errors.Is(err, selector.ErrUnknownMine):
		return fmt.Errorf("service: %w: %w", ErrInvalid, err)
	case errors.Is(err, dashboard.ErrTooManySessions):
		return fmt.Errorf("service: %w: %w", ErrUnavailable, err)
	}
	return fmt.Errorf("service: %w", err)
}
