package fixtures

// NavItem is an entry of the landing page navigation bar.
type NavItem struct {
	Label  string
	Anchor string
}

// Feature is a card of the about section.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Point is a titled bullet with an explanation.
type Point struct {
	Title string
	Text  string
}

// Stat is a headline number of the about section.
type Stat struct {
	Value string
	Label string
	Tone  string
}

// ContactDetail is a line of the contact information card.
type ContactDetail struct {
	Icon  string
	Label string
	Lines []string
}

// Landing is the copy of the marketing page.
type Landing struct {
	Brand       string
	Tagline     string
	Nav         []NavItem
	HeroBadge   string
	Headline    []string
	HeroLead    string
	Highlights  []string
	AboutTitle  string
	AboutLead   string
	Features    []Feature
	WhyChoose   []Point
	Stats       []Stat
	ContactLead string
	Contacts    []ContactDetail
	Partner     []string
	Footer      string
}

// LandingPage returns the marketing copy for the landing page.
func LandingPage() Landing {
	return Landing{
		Brand:   "RockGuard",
		Tagline: "Rockfall Prediction & Alert System",
		Nav: []NavItem{
			{Label: "Home", Anchor: "home"},
			{Label: "About", Anchor: "about"},
			{Label: "Contact", Anchor: "contact"},
		},
		HeroBadge: "AI-Powered Mining Safety",
		Headline:  []string{"Advanced Rockfall", "Prediction & Alert", "System"},
		HeroLead: "Protect your mining operations with cutting-edge AI technology. Real-time risk assessment, " +
			"predictive analytics, and intelligent alerts for open pit mines.",
		Highlights: []string{"Real-time Monitoring", "AI Predictions", "Safety First"},
		AboutTitle: "About Rockguard",
		AboutLead: "Our revolutionary AI-based rockfall prediction system combines multiple data sources " +
			"and advanced analytics to provide unparalleled safety monitoring for open pit mining operations.",
		Features: []Feature{
			{Icon: "brain", Title: "AI-Powered Analytics", Description: "Advanced machine learning algorithms analyze multiple data sources to predict rockfall events with high accuracy."},
			{Icon: "satellite", Title: "DEM & Drone Integration", Description: "Digital Elevation Models and drone imagery provide comprehensive 3D mapping and real-time visual data."},
			{Icon: "thermometer", Title: "IoT Sensor Network", Description: "Distributed sensors monitor ground stability, vibrations, and environmental conditions 24/7."},
			{Icon: "camera", Title: "Weather Data Integration", Description: "Real-time weather monitoring helps predict conditions that increase rockfall risk."},
			{Icon: "alert", Title: "Intelligent Alerts", Description: "Automated risk assessment with actionable recommendations for immediate response."},
			{Icon: "trend", Title: "Predictive Modeling", Description: "Synthetic data analysis and trend prediction to prevent incidents before they occur."},
		},
		WhyChoose: []Point{
			{Title: "Multi-Source Data Integration", Text: "Combines DEM, drone imagery, IoT sensors, and weather data for comprehensive analysis."},
			{Title: "Real-Time Risk Assessment", Text: "Continuous monitoring with instant alerts for high-risk zones and recommended actions."},
			{Title: "Predictive Capabilities", Text: "Advanced AI models predict potential rockfall events before they occur."},
		},
		Stats: []Stat{
			{Value: "99.2%", Label: "Prediction Accuracy", Tone: "primary"},
			{Value: "24/7", Label: "Monitoring", Tone: "accent"},
			{Value: "< 2min", Label: "Alert Response", Tone: "safe"},
			{Value: "15+", Label: "Data Sources", Tone: "info"},
		},
		ContactLead: "Ready to enhance your mining safety? Contact our team to learn more about " +
			"implementing Rockguard in your operations.",
		Contacts: []ContactDetail{
			{Icon: "mail", Label: "Email", Lines: []string{"contact@rockguard.com"}},
			{Icon: "phone", Label: "Phone", Lines: []string{"+91 99999 99999"}},
			{Icon: "pin", Label: "Office", Lines: []string{"Mining Technology Center", "Raipur, India"}},
		},
		Partner: []string{
			"Industry-leading AI technology",
			"24/7 technical support",
			"Custom implementation solutions",
			"Proven ROI and safety improvements",
		},
		Footer: "© 2024 MineGuard AI. All rights reserved. Protecting mining operations with advanced AI technology.",
	}
}
