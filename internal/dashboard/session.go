// Package dashboard keeps one dashboard view per visitor: the mine selector,
// the map bound to it, and the fixed panels around them.
package dashboard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"rockguard/internal/mapview"
	"rockguard/internal/models"
	"rockguard/internal/selector"
)

// MapContainer is the element id the dashboard page reserves for the map.
const MapContainer = "mine-map"

// ErrInvalidCoordinates is returned when a mine cannot be placed on the map.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// MapUpdate is the result of a selection: the mutations the browser has to
// replay and the resulting view.
type MapUpdate struct {
	Ops  []mapview.Op  `json:"ops"`
	View mapview.State `json:"view"`
}

// Session is one visitor's dashboard.
type Session struct {
	ID string

	selector *selector.Selector
	view     *mapview.View

	// ops serializes selections and snapshots so each caller drains only
	// the map mutations it caused.
	ops sync.Mutex

	mu       sync.Mutex
	scene    *mapview.Scene
	lastSeen time.Time
}

func newSession(id string, mines []models.Mine, opts mapview.Options, now time.Time) (*Session, error) {
	for _, m := range mines {
		if !mapview.ValidCoordinates(m.Coordinates) {
			return nil, fmt.Errorf("dashboard: mine %q at (%g, %g): %w",
				m.Name, m.Coordinates.Latitude, m.Coordinates.Longitude, ErrInvalidCoordinates)
		}
	}
	sel, err := selector.New(mines)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	s := &Session{ID: id, selector: sel, lastSeen: now}
	s.view = mapview.NewView(s.newScene, sel.Current(), opts)
	sel.OnChange(s.view.Select)
	s.view.Render(MapContainer)
	return s, nil
}

func (s *Session) newScene(container string, tiles models.TileLayer) mapview.Map {
	scene := mapview.NewScene(container, tiles)
	s.mu.Lock()
	s.scene = scene
	s.mu.Unlock()
	return scene
}

// Selected returns the mine currently shown.
func (s *Session) Selected() models.Mine {
	return s.selector.Current()
}

// Select switches the dashboard to the mine called name.
func (s *Session) Select(name string) (MapUpdate, error) {
	s.ops.Lock()
	defer s.ops.Unlock()

	if _, err := s.selector.Select(name); err != nil {
		return MapUpdate{}, fmt.Errorf("dashboard: %w", err)
	}
	return MapUpdate{Ops: s.drain(), View: s.view.State()}, nil
}

// Map returns the view and discards mutations recorded so far, since the
// browser rebuilds its map from the full state.
func (s *Session) Map() mapview.State {
	s.ops.Lock()
	defer s.ops.Unlock()
	return s.mapLocked()
}

func (s *Session) mapLocked() mapview.State {
	s.drain()
	return s.view.State()
}

// Remount renders the view again after an Unmount.
func (s *Session) Remount() bool {
	return s.view.Render(MapContainer)
}

// Unmount releases the session's map and its overlay.
func (s *Session) Unmount() {
	s.view.Unmount()
}

// Scene returns the map kept for the browser, or nil before the first mount.
func (s *Session) Scene() *mapview.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

func (s *Session) drain() []mapview.Op {
	scene := s.Scene()
	if scene == nil {
		return nil
	}
	return scene.Drain()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
