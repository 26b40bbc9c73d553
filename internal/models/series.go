package models

// StructuralPoint is one sample of the 24-hour displacement and strain series.
type StructuralPoint struct {
	Time         string  `json:"time"`
	Displacement float64 `json:"displacement"`
	Strain       float64 `json:"strain"`
}

// EnvironmentalPoint is one day of weather and vibration conditions.
type EnvironmentalPoint struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Vibration   float64 `json:"vibration"`
}

// RiskPoint is one day of the weekly risk overview.
type RiskPoint struct {
	Day  string  `json:"day"`
	Risk float64 `json:"risk"`
}
