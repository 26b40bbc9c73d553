package mapview

import (
	"strings"

	"rockguard/internal/models"

	"github.com/golang/geo/s2"
)

// DefaultHeatRadius is the blur radius, in pixels, of the heat overlay.
const DefaultHeatRadius = 40

// heatOffsets places the synthetic hot spots around a mine's coordinates.
var heatOffsets = []struct {
	dLat, dLng, intensity float64
}{
	{0.01, 0.01, 0.8},
	{-0.01, -0.02, 0.6},
	{0.015, 0.02, 0.9},
}

// HeatPoints derives the overlay points for a mine. The result depends only on
// the mine's coordinates.
func HeatPoints(mine models.Mine) []models.HeatPoint {
	points := make([]models.HeatPoint, 0, len(heatOffsets))
	for _, o := range heatOffsets {
		points = append(points, models.HeatPoint{
			Latitude:  mine.Coordinates.Latitude + o.dLat,
			Longitude: mine.Coordinates.Longitude + o.dLng,
			Intensity: o.intensity,
		})
	}
	return points
}

// NewHeatLayer builds the overlay for a mine, including the rectangle that
// covers its points.
func NewHeatLayer(mine models.Mine, radius int) models.HeatLayer {
	if radius <= 0 {
		radius = DefaultHeatRadius
	}
	points := HeatPoints(mine)
	return models.HeatLayer{
		ID:     HeatLayerID(mine),
		Points: points,
		Radius: radius,
		Bounds: boundsOf(points),
	}
}

// HeatLayerID names the overlay of a mine. Two layers for the same mine share an ID.
func HeatLayerID(mine models.Mine) string {
	slug := strings.ToLower(strings.Join(strings.Fields(mine.Name), "-"))
	return "heat/" + slug
}

func boundsOf(points []models.HeatPoint) models.Bounds {
	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Latitude, p.Longitude))
	}
	if rect.IsEmpty() {
		return models.Bounds{}
	}
	lo, hi := rect.Lo(), rect.Hi()
	return models.Bounds{
		SouthWest: models.Coordinates{Latitude: lo.Lat.Degrees(), Longitude: lo.Lng.Degrees()},
		NorthEast: models.Coordinates{Latitude: hi.Lat.Degrees(), Longitude: hi.Lng.Degrees()},
	}
}

// ValidCoordinates reports whether c is a normalized latitude/longitude pair.
func ValidCoordinates(c models.Coordinates) bool {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude).IsValid()
}
