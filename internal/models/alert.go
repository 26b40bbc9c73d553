package models

// Severity grades an alert.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Alert is an entry of the active alert list.
type Alert struct {
	Severity Severity `json:"severity"`
	Zone     string   `json:"zone"`
	Message  string   `json:"message"`
	Action   string   `json:"action"`
	Age      string   `json:"age"`
}

// Reading is a live instrument value shown on the dashboard.
type Reading struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
	Tone  string `json:"tone"`
}

// DroneInspection is the latest aerial survey shown next to the risk overview.
type DroneInspection struct {
	Area       string `json:"area"`
	CapturedAt string `json:"captured_at"`
	Finding    string `json:"finding"`
	ImageURL   string `json:"image_url"`
}
