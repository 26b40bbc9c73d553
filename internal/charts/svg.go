package charts

import (
	"fmt"
	"html"
	"math"
	"strings"
)

const (
	marginLeft   = 40.0
	marginRight  = 16.0
	marginTop    = 12.0
	marginBottom = 28.0
	legendHeight = 20.0
	gridLines    = 4
)

// RenderSVG draws p into a width x height SVG document. A panel that is not
// Plottable is drawn as an empty plot area.
func RenderSVG(p Panel, width, height int) string {
	w, h := float64(width), float64(height)
	bottom := marginBottom
	if p.Legend {
		bottom += legendHeight
	}
	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - bottom

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" class="chart chart-%s" viewBox="0 0 %d %d" width="100%%" height="%d" role="img" aria-label="%s">`,
		p.Kind, width, height, height, html.EscapeString(p.Title))

	yMax := p.YMax
	if yMax <= 0 {
		yMax = 1
	}
	for i := 0; i <= gridLines; i++ {
		y := marginTop + plotH*float64(i)/gridLines
		fmt.Fprintf(&b, `<line class="grid" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#374151" stroke-dasharray="3 3"/>`,
			marginLeft, y, marginLeft+plotW, y)
		tick := yMax * float64(gridLines-i) / gridLines
		fmt.Fprintf(&b, `<text class="tick" x="%.1f" y="%.1f" text-anchor="end" font-size="10" fill="#9ca3af">%s</text>`,
			marginLeft-6, y+3, formatTick(tick))
	}

	if !p.Plottable() {
		b.WriteString(`</svg>`)
		return b.String()
	}

	n := len(p.Labels)
	xAt := func(i int) float64 {
		if p.Kind == KindBar {
			band := plotW / float64(n)
			return marginLeft + band*(float64(i)+0.5)
		}
		if n == 1 {
			return marginLeft + plotW/2
		}
		return marginLeft + plotW*float64(i)/float64(n-1)
	}
	yAt := func(v float64) float64 {
		// keeps hand-built panels with a low YMax inside the plot area
		v = math.Min(math.Max(v, 0), yMax)
		return marginTop + plotH*(1-v/yMax)
	}

	for i, label := range p.Labels {
		fmt.Fprintf(&b, `<text class="label" x="%.1f" y="%.1f" text-anchor="middle" font-size="10" fill="#9ca3af">%s</text>`,
			xAt(i), marginTop+plotH+14, html.EscapeString(label))
	}

	switch p.Kind {
	case KindBar:
		band := plotW / float64(n)
		barW := band * 0.6 / float64(len(p.Series))
		for si, s := range p.Series {
			for i, v := range s.Values {
				x := xAt(i) - band*0.3 + barW*float64(si)
				y := yAt(v)
				fmt.Fprintf(&b, `<rect class="bar" data-key="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s: %s</title></rect>`,
					s.Key, x, y, barW, marginTop+plotH-y, s.Color, html.EscapeString(p.Labels[i]), formatTick(v))
			}
		}
	default:
		for _, s := range p.Series {
			pts := make([]string, len(s.Values))
			for i, v := range s.Values {
				pts[i] = fmt.Sprintf("%.1f,%.1f", xAt(i), yAt(v))
			}
			if p.Kind == KindArea {
				base := marginTop + plotH
				area := fmt.Sprintf("%.1f,%.1f %s %.1f,%.1f", xAt(0), base, strings.Join(pts, " "), xAt(n-1), base)
				fmt.Fprintf(&b, `<polygon class="area" data-key="%s" points="%s" fill="%s" fill-opacity="%.2f"/>`,
					s.Key, area, s.Color, s.FillOpacity)
			}
			fmt.Fprintf(&b, `<polyline class="series" data-key="%s" points="%s" fill="none" stroke="%s" stroke-width="2"/>`,
				s.Key, strings.Join(pts, " "), s.Color)
			for i, v := range s.Values {
				fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"><title>%s %s: %s</title></circle>`,
					xAt(i), yAt(v), s.Color, html.EscapeString(p.Labels[i]), s.Key, formatTick(v))
			}
		}
	}

	if p.Legend {
		x := marginLeft
		y := h - legendHeight/2
		for _, s := range p.Series {
			fmt.Fprintf(&b, `<rect class="legend" x="%.1f" y="%.1f" width="10" height="10" fill="%s"/>`, x, y-8, s.Color)
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11" fill="#d1d5db">%s</text>`, x+14, y+1, s.Key)
			x += 24 + float64(len(s.Key))*6.5
		}
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func formatTick(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
