// Package mapview owns the dashboard map: one map handle per mounted view and
// at most one heat overlay attached to it.
package mapview

import (
	"sync"

	"rockguard/internal/models"
)

// DefaultZoom is the zoom level used for every recenter.
const DefaultZoom = 13

// Map is the capability set the view needs from a map widget.
type Map interface {
	SetCenter(center models.Coordinates, zoom int)
	AddLayer(layer Layer)
	RemoveLayer(layer Layer)
	Destroy()
}

// Layer is an overlay that can be attached to a Map.
type Layer interface {
	ID() string
}

// Factory constructs a map bound to container with the base tile layer already attached.
type Factory func(container string, tiles models.TileLayer) Map

// HeatOverlay is the Layer carrying a heat layer's data.
type HeatOverlay struct {
	data models.HeatLayer
}

// ID implements Layer.
func (h *HeatOverlay) ID() string { return h.data.ID }

// Data returns the overlay's points, radius and bounds.
func (h *HeatOverlay) Data() models.HeatLayer { return h.data }

// Options tunes a View.
type Options struct {
	Tiles      models.TileLayer
	Zoom       int
	HeatRadius int
}

// State is what the view currently shows.
type State struct {
	Mounted   bool               `json:"mounted"`
	Container string             `json:"container,omitempty"`
	Mine      models.Mine        `json:"mine"`
	Center    models.Coordinates `json:"center"`
	Zoom      int                `json:"zoom"`
	Tiles     models.TileLayer   `json:"tiles"`
	Heat      *models.HeatLayer  `json:"heat,omitempty"`
}

// View binds the selected mine to a map instance. All mutations of the map
// and its overlay happen under mu.
type View struct {
	mu        sync.Mutex
	factory   Factory
	opts      Options
	mine      models.Mine
	container string
	m         Map
	heat      *HeatOverlay
}

// NewView creates an unmounted view showing initial once mounted.
func NewView(factory Factory, initial models.Mine, opts Options) *View {
	if opts.Zoom <= 0 {
		opts.Zoom = DefaultZoom
	}
	if opts.HeatRadius <= 0 {
		opts.HeatRadius = DefaultHeatRadius
	}
	return &View{factory: factory, opts: opts, mine: initial}
}

// Render is a render pass. The first pass with a non-empty container creates
// the map and attaches the heat overlay; an empty container leaves the view
// unmounted so a later pass can retry. It reports whether the view is mounted.
func (v *View) Render(container string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.m != nil {
		return true
	}
	if container == "" {
		return false
	}

	v.m = v.factory(container, v.opts.Tiles)
	v.container = container
	v.syncLocked()
	return true
}

// Select makes mine the one shown. A mounted map is recentered and its heat
// overlay replaced; an unmounted view applies the choice when it mounts.
func (v *View) Select(mine models.Mine) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.mine = mine
	if v.m == nil {
		return
	}
	v.syncLocked()
}

// syncLocked recenters the map and swaps the heat overlay. The old overlay is
// always removed before the new one is added.
func (v *View) syncLocked() {
	v.m.SetCenter(v.mine.Coordinates, v.opts.Zoom)

	if v.heat != nil {
		v.m.RemoveLayer(v.heat)
		v.heat = nil
	}

	overlay := &HeatOverlay{data: NewHeatLayer(v.mine, v.opts.HeatRadius)}
	v.m.AddLayer(overlay)
	v.heat = overlay
}

// Unmount detaches the overlay and destroys the map. The view may be rendered again.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.m == nil {
		return
	}
	if v.heat != nil {
		v.m.RemoveLayer(v.heat)
		v.heat = nil
	}
	v.m.Destroy()
	v.m = nil
	v.container = ""
}

// Mounted reports whether a map instance is currently held.
func (v *View) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.m != nil
}

// State returns a copy of what the view shows.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := State{
		Mounted:   v.m != nil,
		Container: v.container,
		Mine:      v.mine,
		Center:    v.mine.Coordinates,
		Zoom:      v.opts.Zoom,
		Tiles:     v.opts.Tiles,
	}
	if v.heat != nil {
		data := v.heat.Data()
		st.Heat = &data
	}
	return st
}
