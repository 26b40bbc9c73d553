package dashboard

import (
	"rockguard/internal/charts"
	"rockguard/internal/fixtures"
	"rockguard/internal/mapview"
	"rockguard/internal/models"
)

// MineOption is a button of the location selector.
type MineOption struct {
	models.Mine
	Active bool `json:"active"`
}

// Snapshot is everything one dashboard render shows.
type Snapshot struct {
	SessionID string                 `json:"session_id"`
	Mines     []MineOption           `json:"mines"`
	Selected  models.Mine            `json:"selected"`
	Map       mapview.State          `json:"map"`
	Readings  []models.Reading       `json:"readings"`
	Alerts    []models.Alert         `json:"alerts"`
	Drone     models.DroneInspection `json:"drone"`
	Charts    []charts.Panel         `json:"charts"`
}

// Snapshot composes the session's selection and map with the fixed panels.
func (s *Session) Snapshot() Snapshot {
	s.ops.Lock()
	defer s.ops.Unlock()

	selected := s.Selected()
	mines := s.selector.Mines()
	options := make([]MineOption, len(mines))
	for i, m := range mines {
		options[i] = MineOption{Mine: m, Active: s.selector.IsSelected(m.Name)}
	}

	return Snapshot{
		SessionID: s.ID,
		Mines:     options,
		Selected:  selected,
		Map:       s.mapLocked(),
		Readings:  fixtures.Readings(),
		Alerts:    fixtures.Alerts(),
		Drone:     fixtures.LatestDroneInspection(),
		Charts:    charts.All(),
	}
}
