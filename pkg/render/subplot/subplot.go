// Package subplot draws one panel of a stacked figure.
//
// A panel is a [plot.Plot] holding one line per column of a column group.
// Lines take their colors from a ramp through [palette.NextColor]; the
// running line index lives in a [Context] that the caller threads from panel
// to panel so colors keep advancing across the whole figure.
package subplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/render/palette"
	"github.com/spred/plotplotplot/pkg/render/styles"
	"github.com/spred/plotplotplot/pkg/table"
)

// Context is the color state carried across panels.
type Context struct {
	// Index is the global index of the next line to draw.
	Index int
	// Total is the number of lines in the whole figure.
	Total int
	// Period is the number of consecutive lines that share a color.
	Period int
	Ramp   palette.Ramp
}

// NewContext returns a context positioned before the first line.
func NewContext(total, period int, ramp palette.Ramp) Context {
	return Context{Total: total, Period: period, Ramp: ramp}
}

// Panel is the data drawn in one subplot.
type Panel struct {
	// Table holds one column per line, in drawing order.
	Table *table.Table
	// Label is the y-axis label, usually the group label.
	Label string
	// X supplies x values. When nil, lines are drawn against the row number.
	X *table.Column
	// Last marks the bottom panel, the only one with an x-axis label.
	Last bool
}

// New returns an empty plot with the panel theme applied.
func New(layout styles.Layout) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = nil
	if layout.Handler != nil {
		p.TextHandler = layout.Handler
	}

	tick := layout.TextStyle(layout.Fonts.Tick, layout.TickLabelSize, styles.TickLabelColor)
	label := styles.WithAlpha(styles.TextColor, layout.TextOpacity)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Width = 0
		ax.LineStyle.Color = color.Transparent
		ax.Tick.LineStyle.Width = 0
		ax.Tick.LineStyle.Color = color.Transparent
		ax.Tick.Length = 0
		restyle(&ax.Tick.Label, tick.Font, tick.Color, layout.Handler)
	}
	restyle(&p.X.Label.TextStyle, font.From(layout.Fonts.Text, layout.XLabelSize), label, layout.Handler)
	restyle(&p.Y.Label.TextStyle, font.From(layout.Fonts.Text, layout.YLabelSize), label, layout.Handler)
	restyle(&p.Legend.TextStyle, font.From(layout.Fonts.Text, layout.LegendSize), label, layout.Handler)
	p.Legend.Top = true

	p.Add(panelFill{Color: styles.PanelBackground})
	grid := plotter.NewGrid()
	grid.Vertical = draw.LineStyle{Color: styles.GridColor, Width: styles.GridLineWidth}
	grid.Horizontal = draw.LineStyle{Color: styles.GridColor, Width: styles.GridLineWidth}
	p.Add(grid)
	return p
}

// restyle replaces the font, color and handler of sty, keeping its
// alignment and rotation.
func restyle(sty *text.Style, f font.Font, c color.Color, h text.Handler) {
	sty.Font = f
	sty.Color = c
	if h != nil {
		sty.Handler = h
	}
}

// Render draws every column of g as a line on p and returns p with the
// context advanced by the number of lines drawn. A nil p starts from New.
//
// Non-numeric cells are skipped. A column without any plottable row still
// takes a color and a legend entry.
func Render(p *plot.Plot, g Panel, ctx Context, layout styles.Layout) (*plot.Plot, Context, error) {
	if g.Table == nil || g.Table.NumColumns() == 0 {
		return nil, ctx, errors.New(errors.ErrCodeEmptyGroup, "panel %q has no columns", g.Label)
	}
	if p == nil {
		p = New(layout)
	}

	var xs []float64
	var xok []bool
	if g.X != nil {
		xs, xok = g.X.Numbers()
	}

	width := layout.LineWidth
	if width <= 0 {
		width = styles.LineWidth
	}

	for j := 0; j < g.Table.NumColumns(); j++ {
		col := g.Table.At(j)
		clr, err := palette.NextColor(ctx.Index, ctx.Total, ctx.Period, ctx.Ramp)
		if err != nil {
			return nil, ctx, err
		}

		pts := points(col, xs, xok)
		line := &plotter.Line{
			XYs: pts,
			LineStyle: draw.LineStyle{
				Color: clr,
				Width: width,
			},
		}
		thumbs := []plot.Thumbnailer{line}
		var scatter *plotter.Scatter
		if layout.UseMarkers {
			if len(layout.Dashes) > 0 {
				line.LineStyle.Dashes = layout.Dashes[j%len(layout.Dashes)].Pattern(width)
			}
			if len(layout.Markers) > 0 {
				scatter = &plotter.Scatter{
					XYs: pts,
					GlyphStyle: draw.GlyphStyle{
						Color:  clr,
						Radius: styles.MarkerSize / 2,
						Shape:  layout.Markers[j%len(layout.Markers)].Glyph(),
					},
				}
				thumbs = append(thumbs, scatter)
			}
		}

		if len(pts) > 0 {
			p.Add(line)
			if scatter != nil {
				p.Add(scatter)
			}
		}
		p.Legend.Add(col.Name, thumbs...)
		ctx.Index++
	}

	p.Add(zeroLine{LineStyle: draw.LineStyle{
		Color: styles.WithAlpha(styles.ZeroLineColor, layout.ZeroLineOpacity),
		Width: styles.ZeroLineWidth,
	}})

	p.Y.Label.Text = g.Label
	if g.Last {
		p.X.Label.Text = layout.XLabel
	}
	return p, ctx, nil
}

// points pairs the numeric cells of col with x values, dropping rows where
// either side is missing or not finite.
func points(col table.Column, xs []float64, xok []bool) plotter.XYs {
	ys, yok := col.Numbers()
	pts := make(plotter.XYs, 0, len(ys))
	for i, y := range ys {
		if !yok[i] || !finite(y) {
			continue
		}
		x := float64(i)
		if xs != nil {
			if i >= len(xs) || !xok[i] || !finite(xs[i]) {
				continue
			}
			x = xs[i]
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// =============================================================================
// Plotters
// =============================================================================

// panelFill paints the data area.
type panelFill struct {
	Color color.Color
}

// Plot implements plot.Plotter.
func (f panelFill) Plot(c draw.Canvas, _ *plot.Plot) {
	c.FillPolygon(f.Color, []vg.Point{
		c.Min,
		{X: c.Max.X, Y: c.Min.Y},
		c.Max,
		{X: c.Min.X, Y: c.Max.Y},
	})
}

// zeroLine is a horizontal rule at y=0 spanning the data area.
type zeroLine struct {
	draw.LineStyle
}

// Plot implements plot.Plotter.
func (z zeroLine) Plot(c draw.Canvas, p *plot.Plot) {
	_, y := p.Transforms(&c)
	y0 := y(0)
	c.StrokeLine2(z.LineStyle, c.Min.X, y0, c.Max.X, y0)
}

// DataRange implements plot.DataRanger. Only the y range is extended.
func (z zeroLine) DataRange() (xmin, xmax, ymin, ymax float64) {
	return math.Inf(1), math.Inf(-1), 0, 0
}
