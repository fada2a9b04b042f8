// Package figure composes stacked panels into a single image file.
//
// [Compose] lays one panel per column group inside the margin box, threads
// the color context through the subplot renderer, overlays the banner strip
// and the title block, and writes the image atomically.
//
// Overlay elements use a blended frame: the horizontal position is a
// fraction of the figure width while the vertical position is in absolute
// points (the banner), or the reverse (the title and subtitle, placed a
// fixed number of points left of the panel edge at a figure-fraction
// height). All lengths are points; one pixel is one point.
package figure

import (
	"bytes"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Register output formats with draw.NewFormattedCanvas.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/render/group"
	"github.com/spred/plotplotplot/pkg/render/palette"
	"github.com/spred/plotplotplot/pkg/render/styles"
	"github.com/spred/plotplotplot/pkg/render/subplot"
	"github.com/spred/plotplotplot/pkg/table"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatEPS  = "eps"
	FormatJPEG = "jpg"
	FormatTIFF = "tif"
)

// DefaultFormat is the format used when none is requested.
const DefaultFormat = FormatSVG

var formatAliases = map[string]string{
	"svg":  FormatSVG,
	"png":  FormatPNG,
	"pdf":  FormatPDF,
	"eps":  FormatEPS,
	"jpg":  FormatJPEG,
	"jpeg": FormatJPEG,
	"tif":  FormatTIFF,
	"tiff": FormatTIFF,
}

// ParseFormat normalizes a format name such as "jpeg" or "SVG".
func ParseFormat(name string) (string, error) {
	f, ok := formatAliases[strings.ToLower(name)]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q (want svg, png, pdf, eps, jpg or tif)", name)
	}
	return f, nil
}

// FormatFromPath returns the output format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "output path %s has no extension", path)
	}
	return ParseFormat(ext)
}

// Result describes a written figure.
type Result struct {
	Path   string
	Format string
	Panels int
	Lines  int
	Bytes  int64
}

// BannerFraction returns the banner height as a fraction of the figure
// height for a banner font size, the height of one panel and the number of
// panels. At a fixed panel height the fraction halves when the panel count
// doubles. At a fixed figure height panelHeight*panels grows slowly with the
// gaps, so the fraction rises slightly instead.
func BannerFraction(size, panelHeight vg.Length, panels int) float64 {
	if panels <= 0 || panelHeight <= 0 {
		return 0
	}
	inches := float64(size+2*styles.BannerPad) / 72
	return inches / (float64(panelHeight/vg.Inch) * float64(panels))
}

// TitleOffset returns how far left of the panel edge the title starts. It
// grows with the tick label size so the title clears the y tick labels.
func TitleOffset(tickLabelSize, pad vg.Length) vg.Length {
	return vg.Length(math.Floor(float64(tickLabelSize)*2.6)) + pad
}

// PanelHeight returns the data-area height of each of n stacked panels.
func PanelHeight(layout styles.Layout, n int) vg.Length {
	if n <= 0 {
		return 0
	}
	stack := vg.Length(layout.Top-layout.Bottom) * layout.Height
	return stack / vg.Length(float64(n)+float64(n-1)*styles.HSpace)
}

// Compose draws one panel per group and writes the figure to outputPath.
//
// The format comes from the outputPath extension. Compose fails with
// EMPTY_INPUT when there are no groups, INVALID_INPUT when labels or sizes
// do not match the groups, INVALID_FORMAT for an unknown extension, and IO
// when the output directory is missing or the file cannot be written. Errors
// from the subplot renderer pass through. Nothing is left at outputPath when
// Compose fails.
func Compose(groups []group.ColumnGroup, labels []string, sizes []int, t *table.Table, layout styles.Layout, outputPath string) (*Result, error) {
	if err := checkGroups(groups, labels, sizes); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no table to draw")
	}
	if err := errors.ValidatePath(outputPath); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(outputPath)
	if err != nil {
		return nil, err
	}
	if err := checkDir(filepath.Dir(outputPath)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Render(&buf, groups, labels, sizes, t, layout, format); err != nil {
		return nil, err
	}
	if err := writeAtomic(outputPath, buf.Bytes()); err != nil {
		return nil, err
	}
	return &Result{
		Path:   outputPath,
		Format: format,
		Panels: len(groups),
		Lines:  group.Total(sizes),
		Bytes:  int64(buf.Len()),
	}, nil
}

// Render draws the figure in the given format and writes the encoded image
// to w.
func Render(w io.Writer, groups []group.ColumnGroup, labels []string, sizes []int, t *table.Table, layout styles.Layout, format string) error {
	if err := checkGroups(groups, labels, sizes); err != nil {
		return err
	}
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	ramp := layout.Ramp
	if ramp == nil {
		if ramp, err = palette.Lookup(palette.DefaultRamp); err != nil {
			return err
		}
	}

	var x *table.Column
	if layout.XColumn != "" {
		col, ok := t.Column(layout.XColumn)
		if !ok {
			return errors.New(errors.ErrCodeConfiguration, "x axis column %q does not exist", layout.XColumn)
		}
		x = &col
	}

	cw, err := draw.NewFormattedCanvas(layout.Width, layout.Height, format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "create %s canvas", format)
	}
	dc := draw.New(cw)
	fill(dc, dc.Rectangle, styles.FigureBackground)

	n := len(groups)
	h := PanelHeight(layout, n)
	ctx := subplot.NewContext(group.Total(sizes), layout.Period(), ramp)
	for i, g := range groups {
		sub, err := t.Select(g.Columns...)
		if err != nil {
			return err
		}
		panel := subplot.Panel{Table: sub, Label: labels[i], X: x, Last: i == n-1}
		var p *plot.Plot
		p, ctx, err = subplot.Render(nil, panel, ctx, layout)
		if err != nil {
			return err
		}
		drawPanel(p, dc, slot(layout, h, i))
	}

	drawBanner(dc, layout, n)
	drawTitles(dc, layout)

	if _, err := cw.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return nil
}

// checkGroups verifies that labels and sizes describe groups one to one.
func checkGroups(groups []group.ColumnGroup, labels []string, sizes []int) error {
	if len(groups) == 0 {
		return errors.New(errors.ErrCodeEmptyInput, "no column groups to draw")
	}
	if len(labels) != len(groups) || len(sizes) != len(groups) {
		return errors.New(errors.ErrCodeInvalidInput,
			"%d groups with %d labels and %d sizes", len(groups), len(labels), len(sizes))
	}
	for i, g := range groups {
		if sizes[i] != len(g.Columns) {
			return errors.New(errors.ErrCodeInvalidInput,
				"group %q has %d columns but size %d", labels[i], len(g.Columns), sizes[i])
		}
	}
	return nil
}

// slot returns the data area of panel i, counted from the top.
func slot(layout styles.Layout, h vg.Length, i int) vg.Rectangle {
	top := vg.Length(layout.Top)*layout.Height - vg.Length(i)*(h+vg.Length(styles.HSpace)*h)
	return vg.Rectangle{
		Min: vg.Point{X: vg.Length(layout.Left) * layout.Width, Y: top - h},
		Max: vg.Point{X: vg.Length(layout.Right) * layout.Width, Y: top},
	}
}

// drawPanel draws p so that its data area lands exactly on data. The axes,
// labels and tick labels spill outside it into the margins.
func drawPanel(p *plot.Plot, dc draw.Canvas, data vg.Rectangle) {
	c := draw.Canvas{Canvas: dc.Canvas, Rectangle: data}
	inner := p.DataCanvas(c)
	c.Min.X -= inner.Min.X - data.Min.X
	c.Min.Y -= inner.Min.Y - data.Min.Y
	c.Max.X += data.Max.X - inner.Max.X
	c.Max.Y += data.Max.Y - inner.Max.Y
	p.Draw(c)
}

// BannerRect returns the banner strip of a figure with n stacked panels.
func BannerRect(layout styles.Layout, n int) vg.Rectangle {
	frac := BannerFraction(layout.BannerSize, PanelHeight(layout, n), n)
	return vg.Rectangle{
		Max: vg.Point{X: layout.Width, Y: vg.Length(frac) * layout.Height},
	}
}

// drawBanner draws the full-width strip along the bottom edge and its text.
func drawBanner(dc draw.Canvas, layout styles.Layout, panels int) {
	fill(dc, BannerRect(layout, panels), styles.BannerColor)

	sty := layout.TextStyle(layout.Fonts.Tick, layout.BannerSize, styles.BannerTextColor)
	baseline := vg.Length(math.Ceil(float64(layout.BannerSize)*0.6) * 0.8)
	fillBaseline(dc, sty, vg.Point{X: 0.01 * layout.Width, Y: baseline}, layout.Banner)
}

// drawTitles draws the title and subtitle left of the panel edge.
func drawTitles(dc draw.Canvas, layout styles.Layout) {
	clr := styles.WithAlpha(styles.TextColor, layout.TextOpacity)
	x := vg.Length(layout.Left)*layout.Width - TitleOffset(layout.TickLabelSize, layout.TitlePadX)

	title := layout.TextStyle(layout.Fonts.Title, layout.TitleSize, clr)
	fillBaseline(dc, title, vg.Point{X: x, Y: vg.Length(layout.TitlePosY) * layout.Height}, layout.Title)

	// One point right to line up the smaller subtitle glyphs with the title.
	sub := layout.TextStyle(layout.Fonts.Text, layout.SubtitleSize, clr)
	fillBaseline(dc, sub, vg.Point{X: x + 1, Y: vg.Length(layout.SubtitlePosY) * layout.Height}, layout.Subtitle)
}

// fillBaseline draws single-line text with its baseline at pt.Y and its
// left edge at pt.X.
func fillBaseline(dc draw.Canvas, sty text.Style, pt vg.Point, txt string) {
	if txt == "" {
		return
	}
	if sty.Handler == nil {
		sty.Handler = plot.DefaultTextHandler
	}
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YBottom
	pt.Y += sty.FontExtents().Ascent - sty.Font.Size
	dc.FillText(sty, pt, txt)
}

func fill(dc draw.Canvas, r vg.Rectangle, clr color.Color) {
	dc.FillPolygon(clr, []vg.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	})
}
