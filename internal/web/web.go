// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"rockguard/internal/charts"
	"rockguard/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// chartWidth is the SVG viewBox width; the browser scales it to the card.
const chartWidth = 600

var funcMap = template.FuncMap{
	"chart": func(p charts.Panel) template.HTML {
		// RenderSVG escapes every label it writes.
		return template.HTML(charts.RenderSVG(p, chartWidth, p.Height))
	},
	"json": func(v any) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
	"severityTone": func(s models.Severity) string {
		switch s {
		case models.SeverityCritical:
			return "red"
		case models.SeverityHigh:
			return "yellow"
		default:
			return "blue"
		}
	},
	"title": func(s models.Severity) string {
		if s == "" {
			return ""
		}
		return strings.ToUpper(string(s[:1])) + string(s[1:])
	},
	"coord": func(v float64) string { return fmt.Sprintf("%.4f", v) },
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: failed to parse templates: %w", err)
	}
	return t, nil
}

// Static serves the embedded assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.FS(sub)
}
