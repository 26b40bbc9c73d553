package models

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Mine represents one monitored mining site with its region and map position.
type Mine struct {
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	Coordinates Coordinates `json:"coordinates"`
}
