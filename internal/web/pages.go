package web

import (
	"rockguard/internal/dashboard"
	"rockguard/internal/fixtures"
	"rockguard/internal/models"
)

// Page names understood by Templates.
const (
	PageLanding = "index.html"
	PageSystem  = "system.html"
)

// LandingData feeds the marketing page.
type LandingData struct {
	Title     string
	BodyClass string
	WithMap   bool
	Landing   fixtures.Landing
	Form      models.ContactMessage
	Errors    map[string]string
	Sent      bool
}

// NewLandingData returns the landing page with an empty contact form.
func NewLandingData() LandingData {
	landing := fixtures.LandingPage()
	return LandingData{
		Title:     landing.Brand + " - " + landing.Tagline,
		BodyClass: "landing",
		Landing:   landing,
	}
}

// SystemData feeds the dashboard page.
type SystemData struct {
	Title     string
	BodyClass string
	WithMap   bool
	Snapshot  dashboard.Snapshot
}

// NewSystemData wraps a dashboard snapshot for rendering.
func NewSystemData(snap dashboard.Snapshot) SystemData {
	return SystemData{
		Title:     "RockGuard Dashboard - " + snap.Selected.Name,
		BodyClass: "system",
		WithMap:   true,
		Snapshot:  snap,
	}
}
