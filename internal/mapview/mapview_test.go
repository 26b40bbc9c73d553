package mapview

import (
	"testing"

	"rockguard/internal/fixtures"
	"rockguard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMap records every call made by the view.
type fakeMap struct {
	container string
	tiles     models.TileLayer
	center    models.Coordinates
	zoom      int
	layers    []Layer
	calls     []string
	destroyed bool
}

func (f *fakeMap) SetCenter(c models.Coordinates, zoom int) {
	f.center, f.zoom = c, zoom
	f.calls = append(f.calls, "setCenter")
}

func (f *fakeMap) AddLayer(l Layer) {
	f.layers = append(f.layers, l)
	f.calls = append(f.calls, "addLayer")
}

func (f *fakeMap) RemoveLayer(l Layer) {
	for i, x := range f.layers {
		if x == l {
			f.layers = append(f.layers[:i], f.layers[i+1:]...)
			break
		}
	}
	f.calls = append(f.calls, "removeLayer")
}

func (f *fakeMap) Destroy() {
	f.destroyed = true
	f.calls = append(f.calls, "destroy")
}

type fakeFactory struct {
	maps []*fakeMap
}

func (ff *fakeFactory) New(container string, tiles models.TileLayer) Map {
	m := &fakeMap{container: container, tiles: tiles}
	ff.maps = append(ff.maps, m)
	return m
}

var testTiles = models.TileLayer{
	URLTemplate: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	Attribution: "© OpenStreetMap contributors",
	MaxZoom:     19,
}

func newTestView() (*View, *fakeFactory) {
	ff := &fakeFactory{}
	v := NewView(ff.New, fixtures.Mines()[0], Options{Tiles: testTiles})
	return v, ff
}

func heatData(t *testing.T, l Layer) models.HeatLayer {
	t.Helper()
	h, ok := l.(*HeatOverlay)
	require.True(t, ok, "layer is not a heat overlay")
	return h.Data()
}

func assertPoints(t *testing.T, expected [][3]float64, got []models.HeatPoint) {
	t.Helper()
	require.Len(t, got, len(expected))
	for i, e := range expected {
		assert.InDelta(t, e[0], got[i].Latitude, 1e-9)
		assert.InDelta(t, e[1], got[i].Longitude, 1e-9)
		assert.InDelta(t, e[2], got[i].Intensity, 1e-9)
	}
}

func TestView_DefaultLoad(t *testing.T) {
	v, ff := newTestView()

	mounted := v.Render("mine-map")
	require.True(t, mounted)
	require.Len(t, ff.maps, 1)

	m := ff.maps[0]
	assert.Equal(t, "mine-map", m.container)
	assert.Equal(t, testTiles, m.tiles)
	assert.Equal(t, models.Coordinates{Latitude: 23.6739, Longitude: 85.3096}, m.center)
	assert.Equal(t, 13, m.zoom)
	require.Len(t, m.layers, 1)

	heat := heatData(t, m.layers[0])
	assert.Equal(t, DefaultHeatRadius, heat.Radius)
	assertPoints(t, [][3]float64{
		{23.6839, 85.3196, 0.8},
		{23.6639, 85.2896, 0.6},
		{23.6889, 85.3296, 0.9},
	}, heat.Points)
}

func TestView_SkipsWithoutContainer(t *testing.T) {
	v, ff := newTestView()

	assert.False(t, v.Render(""))
	assert.False(t, v.Mounted())
	assert.Empty(t, ff.maps)

	// selection before mount is applied on the retry
	bailadila := fixtures.Mines()[1]
	v.Select(bailadila)
	assert.Empty(t, ff.maps)

	assert.True(t, v.Render("mine-map"))
	require.Len(t, ff.maps, 1)
	assert.Equal(t, bailadila.Coordinates, ff.maps[0].center)
	assert.Len(t, ff.maps[0].layers, 1)
}

func TestView_RenderTwiceKeepsOneMap(t *testing.T) {
	v, ff := newTestView()

	v.Render("mine-map")
	v.Render("mine-map")
	v.Render("other")

	assert.Len(t, ff.maps, 1)
	assert.Equal(t, "mine-map", v.State().Container)
}

func TestView_SelectEachMine(t *testing.T) {
	for _, mine := range fixtures.Mines() {
		t.Run(mine.Name, func(t *testing.T) {
			v, ff := newTestView()
			v.Render("mine-map")
			v.Select(mine)

			m := ff.maps[0]
			assert.Equal(t, mine.Coordinates, m.center)
			assert.Equal(t, DefaultZoom, m.zoom)
			require.Len(t, m.layers, 1)
			assert.Equal(t, HeatPoints(mine), heatData(t, m.layers[0]).Points)
		})
	}
}

func TestView_SelectBailadila(t *testing.T) {
	v, ff := newTestView()
	v.Render("mine-map")
	m := ff.maps[0]
	old := m.layers[0]
	m.calls = nil

	v.Select(fixtures.Mines()[1])

	assert.Equal(t, []string{"setCenter", "removeLayer", "addLayer"}, m.calls)
	assert.Equal(t, models.Coordinates{Latitude: 18.7167, Longitude: 81.0833}, m.center)
	require.Len(t, m.layers, 1)
	assert.NotSame(t, old, m.layers[0])
	assertPoints(t, [][3]float64{
		{18.7267, 81.0933, 0.8},
		{18.7067, 81.0633, 0.6},
		{18.7317, 81.1033, 0.9},
	}, heatData(t, m.layers[0]).Points)
}

func TestView_RoundTripMatchesDirectSelection(t *testing.T) {
	mines := fixtures.Mines()

	direct, directFactory := newTestView()
	direct.Render("mine-map")
	direct.Select(mines[0])

	roundTrip, rtFactory := newTestView()
	roundTrip.Render("mine-map")
	roundTrip.Select(mines[0])
	roundTrip.Select(mines[1])
	roundTrip.Select(mines[0])

	want := directFactory.maps[0]
	got := rtFactory.maps[0]
	require.Len(t, got.layers, 1)
	assert.Equal(t, want.center, got.center)
	assert.Equal(t, heatData(t, want.layers[0]), heatData(t, got.layers[0]))
	assert.Equal(t, direct.State(), roundTrip.State())
}

func TestView_ReselectIsCheap(t *testing.T) {
	v, ff := newTestView()
	v.Render("mine-map")
	v.Select(fixtures.Mines()[0])
	v.Select(fixtures.Mines()[0])

	assert.Len(t, ff.maps[0].layers, 1)
}

func TestView_Unmount(t *testing.T) {
	v, ff := newTestView()
	v.Render("mine-map")
	for _, mine := range fixtures.Mines() {
		v.Select(mine)
	}

	v.Unmount()

	m := ff.maps[0]
	assert.True(t, m.destroyed)
	assert.Empty(t, m.layers)
	assert.False(t, v.Mounted())
	assert.Nil(t, v.State().Heat)

	// a second unmount touches nothing
	calls := len(m.calls)
	v.Unmount()
	assert.Len(t, m.calls, calls)
}

func TestView_RemountAfterUnmount(t *testing.T) {
	v, ff := newTestView()
	v.Render("mine-map")
	v.Select(fixtures.Mines()[2])
	v.Unmount()

	require.True(t, v.Render("mine-map"))
	require.Len(t, ff.maps, 2)
	assert.Equal(t, fixtures.Mines()[2].Coordinates, ff.maps[1].center)
	assert.Len(t, ff.maps[1].layers, 1)
}
