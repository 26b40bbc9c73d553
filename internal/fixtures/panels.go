package fixtures

import "rockguard/internal/models"

var alerts = []models.Alert{
	{
		Severity: models.SeverityCritical,
		Zone:     "Zone A",
		Message:  "High vibration detected in eastern slope",
		Action:   "Evacuate personnel, deploy stabilization barriers",
		Age:      "2 mins ago",
	},
	{
		Severity: models.SeverityHigh,
		Zone:     "Zone B",
		Message:  "Unusual weather patterns affecting stability",
		Action:   "Increase monitoring frequency, prepare equipment",
		Age:      "15 mins ago",
	},
	{
		Severity: models.SeverityMedium,
		Zone:     "Zone C",
		Message:  "Soil moisture levels rising after rainfall",
		Action:   "Monitor drainage systems, check sensor calibration",
		Age:      "1 hour ago",
	},
}

var readings = []models.Reading{
	{Label: "Displacement", Value: "3.07", Unit: "mm", Tone: "primary"},
	{Label: "Rainfall", Value: "0.0", Unit: "mm/h", Tone: "blue"},
	{Label: "Stress", Value: "0.962", Unit: "MPa", Tone: "purple"},
	{Label: "Vibration", Value: "1.67", Unit: "m/s²", Tone: "yellow"},
}

// Alerts returns the active alerts, most severe first.
func Alerts() []models.Alert {
	return append([]models.Alert(nil), alerts...)
}

// Readings returns the live instrument readings.
func Readings() []models.Reading {
	return append([]models.Reading(nil), readings...)
}

// LatestDroneInspection returns the most recent drone survey card.
func LatestDroneInspection() models.DroneInspection {
	return models.DroneInspection{
		Area:       "North Slope A",
		CapturedAt: "29/9/2025, 3:11:18 pm",
		Finding:    "Visible crack formation detected",
		ImageURL:   "/static/drone-inspection.svg",
	}
}
