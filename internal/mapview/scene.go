package mapview

import (
	"sync"

	"rockguard/internal/models"
)

// OpKind names a map mutation replayed by the browser.
type OpKind string

const (
	OpSetCenter   OpKind = "set_center"
	OpAddLayer    OpKind = "add_layer"
	OpRemoveLayer OpKind = "remove_layer"
	OpDestroy     OpKind = "destroy"
)

// Op is one recorded mutation.
type Op struct {
	Kind    OpKind              `json:"kind"`
	Center  *models.Coordinates `json:"center,omitempty"`
	Zoom    int                 `json:"zoom,omitempty"`
	LayerID string              `json:"layer_id,omitempty"`
	Heat    *models.HeatLayer   `json:"heat,omitempty"`
}

// SceneState is the full picture of a Scene.
type SceneState struct {
	Container string             `json:"container"`
	Center    models.Coordinates `json:"center"`
	Zoom      int                `json:"zoom"`
	Tiles     models.TileLayer   `json:"tiles"`
	Layers    []models.HeatLayer `json:"layers"`
	Destroyed bool               `json:"destroyed"`
}

// Scene is a Map kept on the server. It holds the attached layers and a log of
// mutations that the browser's map widget replays.
type Scene struct {
	mu        sync.Mutex
	container string
	tiles     models.TileLayer
	center    models.Coordinates
	zoom      int
	layers    []Layer
	pending   []Op
	destroyed bool
}

// NewScene returns a Scene bound to container with tiles as its base layer.
func NewScene(container string, tiles models.TileLayer) *Scene {
	return &Scene{container: container, tiles: tiles}
}

// SetCenter implements Map.
func (s *Scene) SetCenter(center models.Coordinates, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.center, s.zoom = center, zoom
	c := center
	s.pending = append(s.pending, Op{Kind: OpSetCenter, Center: &c, Zoom: zoom})
}

// AddLayer implements Map. Adding a layer that is already attached is a no-op.
func (s *Scene) AddLayer(layer Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed || s.indexLocked(layer) >= 0 {
		return
	}
	s.layers = append(s.layers, layer)
	op := Op{Kind: OpAddLayer, LayerID: layer.ID()}
	if h, ok := layer.(*HeatOverlay); ok {
		data := h.Data()
		op.Heat = &data
	}
	s.pending = append(s.pending, op)
}

// RemoveLayer implements Map.
func (s *Scene) RemoveLayer(layer Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(layer)
	if s.destroyed || i < 0 {
		return
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.pending = append(s.pending, Op{Kind: OpRemoveLayer, LayerID: layer.ID()})
}

// Destroy implements Map. Every layer is released with the scene.
func (s *Scene) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.layers = nil
	s.destroyed = true
	s.pending = append(s.pending, Op{Kind: OpDestroy})
}

func (s *Scene) indexLocked(layer Layer) int {
	for i, l := range s.layers {
		if l == layer {
			return i
		}
	}
	return -1
}

// Drain returns the mutations recorded since the previous call.
func (s *Scene) Drain() []Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := s.pending
	s.pending = nil
	return ops
}

// State returns a copy of the scene.
func (s *Scene) State() SceneState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SceneState{
		Container: s.container,
		Center:    s.center,
		Zoom:      s.zoom,
		Tiles:     s.tiles,
		Layers:    make([]models.HeatLayer, 0, len(s.layers)),
		Destroyed: s.destroyed,
	}
	for _, l := range s.layers {
		if h, ok := l.(*HeatOverlay); ok {
			st.Layers = append(st.Layers, h.Data())
		}
	}
	return st
}
