// Package render draws a routed chain graph as an SVG picture: chains
// as colored edge runs, free pins as small dots, drivers highlighted.
package render

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
)

// Style controls the generated picture. All fields have working
// defaults; a YAML file can override any subset of them.
type Style struct {
	Width        int      `yaml:"width"`         // total SVG width in pixels
	Height       int      `yaml:"height"`        // total SVG height in pixels
	Margin       int      `yaml:"margin"`        // blank border in pixels
	Background   string   `yaml:"background"`    // background fill color
	PinRadius    float64  `yaml:"pin_radius"`    // free pin dot radius
	DriverRadius float64  `yaml:"driver_radius"` // driver pin dot radius
	PinColor     string   `yaml:"pin_color"`
	DriverColor  string   `yaml:"driver_color"`
	StrokeWidth  float64  `yaml:"stroke_width"`
	ChainColors  []string `yaml:"chain_colors"` // cycled per chain index
	ShowLabels   bool     `yaml:"show_labels"`
	LabelSize    int      `yaml:"label_size"`
}

// DefaultStyle returns the stock look: dark pins on white, one
// distinct color per chain.
func DefaultStyle() *Style {
	return &Style{
		Width:        1000,
		Height:       800,
		Margin:       40,
		Background:   "#ffffff",
		PinRadius:    3,
		DriverRadius: 5,
		PinColor:     "#1f4e79",
		DriverColor:  "#c0392b",
		StrokeWidth:  1.5,
		ChainColors: []string{
			"#2980b9", "#27ae60", "#8e44ad", "#d35400",
			"#16a085", "#c0392b", "#7f8c8d", "#f39c12",
		},
		ShowLabels: false,
		LabelSize:  10,
	}
}

// LoadStyle reads a YAML style file over the defaults.
func LoadStyle(path string) (*Style, error) {
	style := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}
	if err := yaml.Unmarshal(data, style); err != nil {
		return nil, fmt.Errorf("failed to parse style file: %w", err)
	}
	return style, nil
}

// SVG renders the graph's current edge set. The viewport is fitted to
// the bounding box of every pin referenced by an edge or a driver.
func SVG(g *chip.Graph, style *Style) string {
	pins := collectPins(g)
	toX, toY := fitTransform(pins, style)

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, style.Width, style.Height, style.Width, style.Height))
	svg.WriteString(fmt.Sprintf(`  <rect width="%d" height="%d" fill="%s"/>
`, style.Width, style.Height, style.Background))

	for _, e := range g.Edges() {
		color := style.ChainColors[e.Chain%len(style.ChainColors)]
		svg.WriteString(fmt.Sprintf(
			`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>
`,
			toX(e.From.At.X), toY(e.From.At.Y), toX(e.To.At.X), toY(e.To.At.Y),
			color, style.StrokeWidth))
	}

	drivers := make(map[string]bool)
	for i := 0; i < g.ChainCount(); i++ {
		drivers[g.InputDriver(i).Name] = true
		drivers[g.OutputDriver(i).Name] = true
	}
	for _, p := range pins {
		radius, color := style.PinRadius, style.PinColor
		if drivers[p.Name] {
			radius, color = style.DriverRadius, style.DriverColor
		}
		svg.WriteString(fmt.Sprintf(`  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, toX(p.At.X), toY(p.At.Y), radius, color))
		if style.ShowLabels {
			svg.WriteString(fmt.Sprintf(`  <text x="%.1f" y="%.1f" font-size="%d">%s</text>
`, toX(p.At.X)+radius+2, toY(p.At.Y)-2, style.LabelSize, p.Name))
		}
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// WriteFile renders the graph and writes the SVG to path.
func WriteFile(path string, g *chip.Graph, style *Style) error {
	if err := os.WriteFile(path, []byte(SVG(g, style)), 0o644); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}

// collectPins gathers every distinct pin the picture shows: drivers
// first, then each pin referenced by an edge, in first-seen order.
func collectPins(g *chip.Graph) []*chip.Pin {
	seen := make(map[string]bool)
	var pins []*chip.Pin
	add := func(p *chip.Pin) {
		if !seen[p.Name] {
			seen[p.Name] = true
			pins = append(pins, p)
		}
	}
	for i := 0; i < g.ChainCount(); i++ {
		add(g.InputDriver(i))
		add(g.OutputDriver(i))
	}
	for _, e := range g.Edges() {
		add(e.From)
		add(e.To)
	}
	return pins
}

// fitTransform maps grid coordinates into the drawable area, flipping
// y so the grid's origin sits at the bottom left of the picture.
func fitTransform(pins []*chip.Pin, style *Style) (toX, toY func(int) float64) {
	minX, minY := 0, 0
	maxX, maxY := 1, 1
	if len(pins) > 0 {
		minX, minY = pins[0].At.X, pins[0].At.Y
		maxX, maxY = minX, minY
		for _, p := range pins[1:] {
			if p.At.X < minX {
				minX = p.At.X
			}
			if p.At.X > maxX {
				maxX = p.At.X
			}
			if p.At.Y < minY {
				minY = p.At.Y
			}
			if p.At.Y > maxY {
				maxY = p.At.Y
			}
		}
	}

	spanX := maxX - minX
	if spanX == 0 {
		spanX = 1
	}
	spanY := maxY - minY
	if spanY == 0 {
		spanY = 1
	}

	innerW := float64(style.Width - 2*style.Margin)
	innerH := float64(style.Height - 2*style.Margin)
	scale := innerW / float64(spanX)
	if s := innerH / float64(spanY); s < scale {
		scale = s
	}

	toX = func(x int) float64 {
		return float64(style.Margin) + float64(x-minX)*scale
	}
	toY = func(y int) float64 {
		return float64(style.Height-style.Margin) - float64(y-minY)*scale
	}
	return toX, toY
}
