// Package styles defines the visual theme and figure geometry shared by the
// subplot renderer and the figure composer.
//
// The theme follows the "538" look: light grey panels without axis spines or
// tick marks, a light grid, a bold zero line, muted tick labels, and a grey
// banner strip. [Layout] carries everything that is configurable for one
// render; the package-level colors and widths are fixed.
package styles

import (
	"image/color"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/spred/plotplotplot/pkg/render/palette"
)

// Theme colors.
var (
	FigureBackground = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	PanelBackground  = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	GridColor        = color.RGBA{R: 0xCB, G: 0xCB, B: 0xCB, A: 0xFF}
	TickLabelColor   = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	TextColor        = color.Black
	ZeroLineColor    = color.Black
	BannerColor      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	BannerTextColor  = color.White
)

// Fixed widths and sizes, in points.
const (
	LineWidth     = vg.Length(3.0)
	ZeroLineWidth = vg.Length(1.3)
	GridLineWidth = vg.Length(1.0)
	MarkerSize    = vg.Length(7.0) // diameter
	BannerPad     = vg.Length(2.0)
)

// HSpace is the vertical gap between stacked panels as a fraction of the
// average panel height.
const HSpace = 0.2

// Fonts selects the faces used for each kind of text.
type Fonts struct {
	Tick  font.Font // tick labels and banner
	Title font.Font // figure title
	Text  font.Font // axis labels, legend, subtitle
}

// Layout is the figure-level geometry and typography for one render.
// It is immutable for the duration of the render.
type Layout struct {
	Width, Height vg.Length

	// Margins are positions of the panel-stack edges as fractions of the
	// figure size, measured from the bottom-left corner.
	Top, Bottom, Left, Right float64

	// XColumn plots against a column instead of the row number.
	XColumn string
	// YColumn restricts plotting to a single column.
	YColumn string

	Title, Subtitle, Banner, XLabel string

	// TitlePadX shifts the title block left of the panel edge.
	TitlePadX    vg.Length
	TitlePosY    float64
	SubtitlePosY float64

	TitleSize, SubtitleSize vg.Length
	TickLabelSize           vg.Length
	LegendSize              vg.Length
	XLabelSize, YLabelSize  vg.Length
	BannerSize              vg.Length

	TextOpacity     float64
	ZeroLineOpacity float64

	// Ramp colors the lines. Nil means the default ramp.
	Ramp palette.Ramp

	LineWidth  vg.Length
	Dashes     []Dash
	Markers    []Marker
	UseMarkers bool

	Fonts   Fonts
	Handler text.Handler
}

// Period returns the number of dash styles in rotation, at least 1.
func (l Layout) Period() int {
	if len(l.Dashes) == 0 {
		return 1
	}
	return len(l.Dashes)
}

// TextStyle builds a text style for the layout's handler.
func (l Layout) TextStyle(f font.Font, size vg.Length, c color.Color) text.Style {
	return text.Style{
		Color:   c,
		Font:    font.From(f, size),
		Handler: l.Handler,
	}
}

// WithAlpha returns c with its alpha scaled to opacity.
func WithAlpha(c color.Color, opacity float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*clamp01(opacity) + 0.5)
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
