package charts

import (
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer turns a chart-ready series into a visual chart.
type Renderer interface {
	Render(w io.Writer, kind Kind, s *Series) error
}

// PNGRenderer renders series to PNG images.
type PNGRenderer struct {
	Width  int
	Height int
}

// NewPNGRenderer returns a renderer with the default canvas size.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Width: 640, Height: 420}
}

// Render implements Renderer.
func (r *PNGRenderer) Render(w io.Writer, kind Kind, s *Series) error {
	if s == nil {
		return fmt.Errorf("nil series")
	}
	switch kind {
	case KindPie:
		return r.renderPie(w, s)
	case KindBar:
		return r.renderBar(w, s)
	case KindLine:
		return r.renderLine(w, s)
	default:
		return fmt.Errorf("unknown chart kind %q", kind)
	}
}

func (r *PNGRenderer) renderPie(w io.Writer, s *Series) error {
	data := s.Data
	if len(data) == 0 && len(s.Datasets) > 0 {
		data = s.Datasets[0].Data
	}

	var values []chart.Value
	for i, v := range data {
		if v <= 0 {
			// zero slices break pie layout
			continue
		}
		val := chart.Value{Value: v, Label: labelAt(s.Labels, i)}
		if i < len(s.Colors) {
			val.Style.FillColor = parseColor(s.Colors[i], chart.GetDefaultColor(i))
		}
		values = append(values, val)
	}
	if len(values) == 0 {
		return fmt.Errorf("pie chart has no positive values")
	}

	pie := chart.PieChart{Width: r.Height, Height: r.Height, Values: values}
	return pie.Render(chart.PNG, w)
}

func (r *PNGRenderer) renderBar(w io.Writer, s *Series) error {
	var bars []chart.Value

	switch {
	case len(s.Datasets) == 0:
		for i, v := range s.Data {
			bars = append(bars, chart.Value{
				Value: v,
				Label: labelAt(s.Labels, i),
				Style: chart.Style{FillColor: colorFor(s.BackgroundColor, i)},
			})
		}
	case len(s.Datasets) == 1:
		ds := s.Datasets[0]
		for i, v := range ds.Data {
			bars = append(bars, chart.Value{
				Value: v,
				Label: labelAt(s.Labels, i),
				Style: chart.Style{FillColor: colorFor(ds.BackgroundColor, i)},
			})
		}
	default:
		// grouped datasets flattened into adjacent bars
		for i := range s.Labels {
			for di, ds := range s.Datasets {
				if i >= len(ds.Data) {
					continue
				}
				bars = append(bars, chart.Value{
					Value: ds.Data[i],
					Label: fmt.Sprintf("%s · %s", labelAt(s.Labels, i), ds.Label),
					Style: chart.Style{FillColor: colorFor(ds.BackgroundColor, di)},
				})
			}
		}
	}
	if len(bars) == 0 {
		return fmt.Errorf("bar chart has no values")
	}

	bc := chart.BarChart{
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: barWidth(r.Width, len(bars)),
		Bars:     bars,
	}
	return bc.Render(chart.PNG, w)
}

func (r *PNGRenderer) renderLine(w io.Writer, s *Series) error {
	if len(s.Datasets) == 0 {
		return fmt.Errorf("line chart has no datasets")
	}

	xs := make([]float64, len(s.Labels))
	for i := range xs {
		xs[i] = float64(i)
	}

	var series []chart.Series
	for di, ds := range s.Datasets {
		stroke := parseColor(ds.BorderColor, chart.GetDefaultColor(di))
		style := chart.Style{StrokeColor: stroke, StrokeWidth: 2}
		if ds.Fill {
			style.FillColor = stroke.WithAlpha(48)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ds.Data,
			Style:   style,
		})
	}

	graph := chart.Chart{Width: r.Width, Height: r.Height, Series: series}
	return graph.Render(chart.PNG, w)
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

func barWidth(total, bars int) int {
	if bars == 0 {
		return 40
	}
	w := total / (bars * 2)
	if w < 10 {
		return 10
	}
	if w > 60 {
		return 60
	}
	return w
}

// colorFor resolves a backgroundColor that is either one color string for
// the whole series or one string per value.
func colorFor(bg interface{}, i int) drawing.Color {
	switch c := bg.(type) {
	case string:
		return parseColor(c, chart.GetDefaultColor(i))
	case []string:
		if i < len(c) {
			return parseColor(c[i], chart.GetDefaultColor(i))
		}
	}
	return chart.GetDefaultColor(i)
}

// parseColor understands "#rrggbb" and "rgba(r, g, b, a)" strings.
func parseColor(s string, fallback drawing.Color) drawing.Color {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
	case strings.HasPrefix(s, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(s, "rgba(%d, %d, %d, %f)", &r, &g, &b, &a); err == nil {
			return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a * 255)}
		}
	}
	return fallback
}
