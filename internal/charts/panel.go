// Package charts turns the fixed time series into chart panels and renders
// them as SVG. Panels depend only on their input series.
package charts

import (
	"errors"
	"fmt"
	"math"

	"rockguard/internal/fixtures"
	"rockguard/internal/models"
)

// ErrUnknownPanel is returned for a panel id that does not exist.
var ErrUnknownPanel = errors.New("unknown chart panel")

// Kind selects how a panel draws its series.
type Kind string

const (
	KindLine Kind = "line"
	KindArea Kind = "area"
	KindBar  Kind = "bar"
)

// Panel ids served by Fixed.
const (
	PanelStructural    = "structural"
	PanelEnvironmental = "environmental"
	PanelWeeklyRisk    = "weekly-risk"
)

// Series is one named metric of a panel.
type Series struct {
	Key         string    `json:"key"`
	Color       string    `json:"color"`
	FillOpacity float64   `json:"fill_opacity,omitempty"`
	Values      []float64 `json:"values"`
}

// Panel is everything needed to draw one chart card.
type Panel struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Kind     Kind     `json:"kind"`
	Labels   []string `json:"labels"`
	Series   []Series `json:"series"`
	YMax     float64  `json:"y_max"`
	Legend   bool     `json:"legend"`
	Height   int      `json:"height"`
}

// Structural builds the 24-hour displacement and strain line chart.
func Structural(points []models.StructuralPoint) Panel {
	labels := make([]string, len(points))
	displacement := make([]float64, len(points))
	strain := make([]float64, len(points))
	for i, p := range points {
		labels[i], displacement[i], strain[i] = p.Time, p.Displacement, p.Strain
	}
	return finish(Panel{
		ID:       PanelStructural,
		Title:    "Structural Monitoring",
		Subtitle: "24-hour displacement and strain",
		Kind:     KindLine,
		Labels:   labels,
		Series: []Series{
			{Key: "displacement", Color: "#ef4444", Values: displacement},
			{Key: "strain", Color: "#3b82f6", Values: strain},
		},
		Legend: true,
		Height: 300,
	})
}

// Environmental builds the weekly conditions area chart.
func Environmental(points []models.EnvironmentalPoint) Panel {
	labels := make([]string, len(points))
	temperature := make([]float64, len(points))
	rainfall := make([]float64, len(points))
	vibration := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Time
		temperature[i], rainfall[i], vibration[i] = p.Temperature, p.Rainfall, p.Vibration
	}
	return finish(Panel{
		ID:     PanelEnvironmental,
		Title:  "Environmental Conditions",
		Kind:   KindArea,
		Labels: labels,
		Series: []Series{
			{Key: "temperature", Color: "#f59e0b", FillOpacity: 0.4, Values: temperature},
			{Key: "rainfall", Color: "#3b82f6", FillOpacity: 0.2, Values: rainfall},
			{Key: "vibration", Color: "#ef4444", FillOpacity: 0.2, Values: vibration},
		},
		Height: 300,
	})
}

// WeeklyRisk builds the per-day risk bar chart.
func WeeklyRisk(points []models.RiskPoint) Panel {
	labels := make([]string, len(points))
	risk := make([]float64, len(points))
	for i, p := range points {
		labels[i], risk[i] = p.Day, p.Risk
	}
	return finish(Panel{
		ID:     PanelWeeklyRisk,
		Title:  "Weekly Risk Overview",
		Kind:   KindBar,
		Labels: labels,
		Series: []Series{
			{Key: "risk", Color: "#f97316", Values: risk},
		},
		Height: 350,
	})
}

// Fixed returns a panel built from the synthetic data tables.
func Fixed(id string) (Panel, error) {
	switch id {
	case PanelStructural:
		return Structural(fixtures.StructuralSeries()), nil
	case PanelEnvironmental:
		return Environmental(fixtures.EnvironmentalSeries()), nil
	case PanelWeeklyRisk:
		return WeeklyRisk(fixtures.WeeklyRiskSeries()), nil
	}
	return Panel{}, fmt.Errorf("charts: %q: %w", id, ErrUnknownPanel)
}

// All returns the three dashboard panels in display order.
func All() []Panel {
	return []Panel{
		Structural(fixtures.StructuralSeries()),
		Environmental(fixtures.EnvironmentalSeries()),
		WeeklyRisk(fixtures.WeeklyRiskSeries()),
	}
}

// Plottable reports whether the panel has data that can be drawn: at least one
// label, every series as long as the labels, and only finite non-negative
// values. The axis always starts at zero.
func (p Panel) Plottable() bool {
	if len(p.Labels) == 0 || len(p.Series) == 0 {
		return false
	}
	for _, s := range p.Series {
		if len(s.Values) != len(p.Labels) {
			return false
		}
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return false
			}
		}
	}
	return true
}

func finish(p Panel) Panel {
	p.YMax = niceMax(p)
	return p
}

// niceMax rounds the largest value up to a 1, 2, 2.5 or 5 step so the axis has
// readable ticks.
func niceMax(p Panel) float64 {
	if !p.Plottable() {
		return 1
	}
	top := 0.0
	for _, s := range p.Series {
		for _, v := range s.Values {
			top = math.Max(top, v)
		}
	}
	if top <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(top)))
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if top <= step*exp {
			return step * exp
		}
	}
	return 10 * exp
}
