package charts

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"rockguard/internal/fixtures"
	"rockguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderSVG_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		panel    Panel
		contains []string
		count    map[string]int
	}{
		{
			name:     "line",
			panel:    Structural(fixtures.StructuralSeries()),
			contains: []string{`class="chart chart-line"`, `data-key="displacement"`, `data-key="strain"`, `class="legend"`},
			count:    map[string]int{"<polyline": 2, "<circle": 10},
		},
		{
			name:     "area",
			panel:    Environmental(fixtures.EnvironmentalSeries()),
			contains: []string{`class="chart chart-area"`, `data-key="temperature"`},
			count:    map[string]int{"<polygon": 3, "<polyline": 3},
		},
		{
			name:     "bar",
			panel:    WeeklyRisk(fixtures.WeeklyRiskSeries()),
			contains: []string{`class="chart chart-bar"`, `<title>Fri: 5</title>`},
			count:    map[string]int{`class="bar"`: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := RenderSVG(tt.panel, 600, tt.panel.Height)

			assert.True(t, strings.HasPrefix(svg, "<svg"))
			assert.True(t, strings.HasSuffix(svg, "</svg>"))
			for _, s := range tt.contains {
				assert.Contains(t, svg, s)
			}
			for s, n := range tt.count {
				assert.Equal(t, n, strings.Count(svg, s), s)
			}
		})
	}
}

func TestRenderSVG_EmptyPlotArea(t *testing.T) {
	panels := []Panel{
		Structural(nil),
		Environmental([]models.EnvironmentalPoint{{Time: "Mon", Temperature: math.Inf(1)}}),
		{Kind: KindBar, Labels: []string{"Mon", "Tue"}, Series: []Series{{Key: "risk", Values: []float64{1}}}},
	}

	for _, p := range panels {
		svg := RenderSVG(p, 400, 300)
		assert.Equal(t, gridLines+1, strings.Count(svg, `class="grid"`))
		assert.NotContains(t, svg, "<polyline")
		assert.NotContains(t, svg, `class="bar"`)
		assert.True(t, strings.HasSuffix(svg, "</svg>"))
	}
}

func TestRenderSVG_NegativeValues(t *testing.T) {
	p := WeeklyRisk([]models.RiskPoint{{Day: "Mon", Risk: -5}, {Day: "Tue", Risk: 10}})
	assert.Equal(t, 1.0, p.YMax)

	svg := RenderSVG(p, 400, 300)
	assert.NotContains(t, svg, `height="-`)
	assert.NotContains(t, svg, `class="bar"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestRenderSVG_ValuesAboveYMaxStayInPlot(t *testing.T) {
	p := Panel{
		Kind:   KindBar,
		Labels: []string{"Mon"},
		Series: []Series{{Key: "risk", Color: "#f97316", Values: []float64{8}}},
		YMax:   4,
	}

	svg := RenderSVG(p, 400, 300)
	assert.Contains(t, svg, fmt.Sprintf(`y="%.1f"`, marginTop))
	assert.NotContains(t, svg, `height="-`)
}

func TestRenderSVG_EscapesLabels(t *testing.T) {
	p := WeeklyRisk([]models.RiskPoint{{Day: "<script>", Risk: 1}})
	svg := RenderSVG(p, 400, 300)

	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, "&lt;script&gt;")
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0", formatTick(0))
	assert.Equal(t, "2.5", formatTick(2.5))
	assert.Equal(t, "10", formatTick(10))
	assert.Equal(t, "1.25", formatTick(1.25))
}
