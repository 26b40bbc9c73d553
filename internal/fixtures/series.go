package fixtures

import "rockguard/internal/models"

var structural = []models.StructuralPoint{
	{Time: "00:00", Displacement: 1.2, Strain: 0.4},
	{Time: "06:00", Displacement: 2.5, Strain: 0.7},
	{Time: "12:00", Displacement: 3.0, Strain: 1.0},
	{Time: "18:00", Displacement: 2.2, Strain: 0.6},
	{Time: "24:00", Displacement: 1.8, Strain: 0.5},
}

var environmental = []models.EnvironmentalPoint{
	{Time: "Mon", Temperature: 25, Rainfall: 2, Vibration: 0.8},
	{Time: "Tue", Temperature: 27, Rainfall: 5, Vibration: 1.2},
	{Time: "Wed", Temperature: 29, Rainfall: 0, Vibration: 0.5},
	{Time: "Thu", Temperature: 28, Rainfall: 4, Vibration: 1.0},
	{Time: "Fri", Temperature: 26, Rainfall: 3, Vibration: 1.5},
	{Time: "Sat", Temperature: 27, Rainfall: 0, Vibration: 0.7},
	{Time: "Sun", Temperature: 30, Rainfall: 6, Vibration: 2.0},
}

var weeklyRisk = []models.RiskPoint{
	{Day: "Mon", Risk: 2},
	{Day: "Tue", Risk: 3},
	{Day: "Wed", Risk: 4},
	{Day: "Thu", Risk: 3},
	{Day: "Fri", Risk: 5},
	{Day: "Sat", Risk: 4},
	{Day: "Sun", Risk: 2},
}

// StructuralSeries returns the 24-hour displacement and strain samples.
func StructuralSeries() []models.StructuralPoint {
	return append([]models.StructuralPoint(nil), structural...)
}

// EnvironmentalSeries returns the weekly temperature, rainfall and vibration samples.
func EnvironmentalSeries() []models.EnvironmentalPoint {
	return append([]models.EnvironmentalPoint(nil), environmental...)
}

// WeeklyRiskSeries returns the per-day risk score for the current week.
func WeeklyRiskSeries() []models.RiskPoint {
	return append([]models.RiskPoint(nil), weeklyRisk...)
}
