package models

// HeatPoint is a weighted point of the risk heat overlay. Intensity is in [0,1].
type HeatPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Intensity float64 `json:"intensity"`
}

// Bounds is the south-west / north-east rectangle covering a set of points.
type Bounds struct {
	SouthWest Coordinates `json:"south_west"`
	NorthEast Coordinates `json:"north_east"`
}

// HeatLayer is the overlay attached to the dashboard map for the selected mine.
type HeatLayer struct {
	ID     string      `json:"id"`
	Points []HeatPoint `json:"points"`
	Radius int         `json:"radius"`
	Bounds Bounds      `json:"bounds"`
}

// TileLayer describes the base map imagery served by a third-party tile service.
type TileLayer struct {
	URLTemplate string `json:"url_template"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"max_zoom"`
}
