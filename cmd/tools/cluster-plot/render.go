package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/quantity/internal/units"
)

// renderPNG draws every group as a coloured scatter with its centre marked
// by a cross.
func renderPNG(path, title string, groups []plotGroup, u units.Unit[units.DistanceDim]) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("X (%s)", u)
	p.Y.Label.Text = fmt.Sprintf("Y (%s)", u)

	colors := generateColors(len(groups))
	for i, g := range groups {
		if len(g.Members) == 0 {
			continue
		}
		pts := make(plotter.XYs, 0, len(g.Members))
		for _, m := range g.Members {
			v := m.Vec(u)
			pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = colors[i]
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(g.Name, scatter)

		c := g.Center.Vec(u)
		center, err := plotter.NewScatter(plotter.XYs{{X: c.X, Y: c.Y}})
		if err != nil {
			return err
		}
		center.GlyphStyle.Color = colors[i]
		center.GlyphStyle.Radius = vg.Points(5)
		center.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(center)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// renderHTML renders the groups as an interactive go-echarts scatter chart.
func renderHTML(title string, groups []plotGroup, u units.Unit[units.DistanceDim]) ([]byte, error) {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Clusters", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Clusters", Subtitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: fmt.Sprintf("X (%s)", u), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: fmt.Sprintf("Y (%s)", u), NameLocation: "middle", NameGap: 30}),
	)

	for _, g := range groups {
		data := make([]opts.ScatterData, 0, len(g.Members))
		for _, m := range g.Members {
			v := m.Vec(u)
			data = append(data, opts.ScatterData{Value: []interface{}{v.X, v.Y}})
		}
		scatter.AddSeries(g.Name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHTML(path, title string, groups []plotGroup, u units.Unit[units.DistanceDim]) error {
	page, err := renderHTML(title, groups, u)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, page, 0644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// generateColors returns n evenly spaced hues.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := uint8(l * 255)
		return v, v, v
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return uint8(hueToRGB(p, q, h+1.0/3.0) * 255),
		uint8(hueToRGB(p, q, h) * 255),
		uint8(hueToRGB(p, q, h-1.0/3.0) * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
