// Package palette maps lines to colors along a continuous color ramp.
//
// A [Ramp] is a function from [0, 1] to a color. [NextColor] picks the ramp
// position for the i-th line of a figure so that lines spread evenly along
// the ramp across every panel, not just within one.
package palette

import (
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	plotpalette "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/spred/plotplotplot/pkg/errors"
)

// Ramp is a continuous color function on [0, 1].
type Ramp interface {
	At(t float64) color.Color
}

// RampFunc adapts a plain function to the Ramp interface.
type RampFunc func(t float64) color.Color

// At implements Ramp.
func (f RampFunc) At(t float64) color.Color { return f(t) }

// NextColor returns the color of the line with global index i out of total.
//
// The ramp position is floor(i/period)*period/total, so consecutive lines
// share a color within a block of period lines (one per dash style) and
// blocks step evenly along the ramp. A period below 1 is treated as 1.
//
// NextColor fails with EXHAUSTED_RAMP when total is zero.
func NextColor(i, total, period int, ramp Ramp) (color.Color, error) {
	if total <= 0 {
		return nil, errors.New(errors.ErrCodeExhaustedRamp, "color requested for a figure with %d lines", total)
	}
	if period < 1 {
		period = 1
	}
	t := float64((i/period)*period) / float64(total)
	return ramp.At(t), nil
}

// Gradient is a ramp interpolated in CIE-Lab between evenly spaced stops.
type Gradient []colorful.Color

// NewGradient parses hex color stops into a Gradient.
func NewGradient(hexes ...string) (Gradient, error) {
	g := make(Gradient, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "color stop %q", h)
		}
		g[i] = c
	}
	return g, nil
}

// At implements Ramp.
func (g Gradient) At(t float64) color.Color {
	switch len(g) {
	case 0:
		return color.Black
	case 1:
		return g[0].Clamped()
	}
	t = clamp01(t)
	pos := t * float64(len(g)-1)
	lo := int(math.Floor(pos))
	if lo >= len(g)-1 {
		return g[len(g)-1].Clamped()
	}
	return g[lo].BlendLab(g[lo+1], pos-float64(lo)).Clamped()
}

// colorMap adapts a gonum palette.ColorMap with range [0, 1] to a Ramp.
type colorMap struct {
	cm plotpalette.ColorMap
}

func newColorMap(cm plotpalette.ColorMap) colorMap {
	cm.SetMin(0)
	cm.SetMax(1)
	return colorMap{cm: cm}
}

// At implements Ramp.
func (m colorMap) At(t float64) color.Color {
	c, err := m.cm.At(clamp01(t))
	if err != nil {
		return color.Black
	}
	return c
}

// Ramp names.
const (
	Magma     = "magma"
	Viridis   = "viridis"
	Rainbow   = "rainbow"
	BlackBody = "blackbody"
	Kindlmann = "kindlmann"
	Gray      = "gray"
)

// DefaultRamp is the ramp used when none is configured.
const DefaultRamp = Magma

// magmaStops samples matplotlib's magma map at nine even positions.
var magmaStops = []string{
	"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
	"#e55064", "#fb8761", "#fec287", "#fcfdbf",
}

// viridisStops samples matplotlib's viridis map at nine even positions.
var viridisStops = []string{
	"#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c",
	"#28ae80", "#5ec962", "#addc30", "#fde725",
}

var ramps = map[string]func() Ramp{
	Magma:   func() Ramp { return mustGradient(magmaStops...) },
	Viridis: func() Ramp { return mustGradient(viridisStops...) },
	Rainbow: func() Ramp {
		// gist_rainbow runs red to magenta through the hue circle.
		return RampFunc(func(t float64) color.Color {
			return colorful.Hsv(clamp01(t)*300, 1, 1).Clamped()
		})
	},
	BlackBody: func() Ramp { return newColorMap(moreland.BlackBody()) },
	Kindlmann: func() Ramp { return newColorMap(moreland.Kindlmann()) },
	Gray: func() Ramp {
		return RampFunc(func(t float64) color.Color {
			v := uint8(math.Round(clamp01(t) * 0xb0))
			return color.Gray{Y: v}
		})
	},
}

// Lookup returns the ramp registered under name.
func Lookup(name string) (Ramp, error) {
	if name == "" {
		name = DefaultRamp
	}
	mk, ok := ramps[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeConfiguration, "unknown color map %q (known: %v)", name, Names())
	}
	return mk(), nil
}

// Names returns the registered ramp names in sorted order.
func Names() []string {
	names := make([]string, 0, len(ramps))
	for n := range ramps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func mustGradient(hexes ...string) Gradient {
	g, err := NewGradient(hexes...)
	if err != nil {
		panic(err)
	}
	return g
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
