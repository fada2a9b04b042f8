package styles

import (
	"math"
	"sort"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/spred/plotplotplot/pkg/errors"
)

// Marker is a named point glyph using the one-character marker notation
// ("o", "s", "^", ...).
type Marker string

// DefaultMarkers is the marker rotation used when markers are enabled.
var DefaultMarkers = []Marker{
	".", ",", "o", "v", "^", "<", ">", "1", "2", "3", "4", "8", "s",
	"p", "P", "*", "h", "H", "+", "x", "X", "D", "d", "|", "_",
}

var glyphs = map[Marker]draw.GlyphDrawer{
	".": scaledGlyph{draw.CircleGlyph{}, 0.4},
	",": scaledGlyph{draw.BoxGlyph{}, 0.2},
	"o": draw.CircleGlyph{},
	"v": polygonGlyph{sides: 3, rot: -math.Pi / 2},
	"^": polygonGlyph{sides: 3, rot: math.Pi / 2},
	"<": polygonGlyph{sides: 3, rot: math.Pi},
	">": polygonGlyph{sides: 3},
	"1": spokeGlyph{n: 3, rot: -math.Pi / 2},
	"2": spokeGlyph{n: 3, rot: math.Pi / 2},
	"3": spokeGlyph{n: 3, rot: math.Pi},
	"4": spokeGlyph{n: 3},
	"8": polygonGlyph{sides: 8, rot: math.Pi / 8},
	"s": draw.BoxGlyph{},
	"p": polygonGlyph{sides: 5, rot: math.Pi / 2},
	"P": draw.PlusGlyph{},
	"*": polygonGlyph{sides: 5, rot: math.Pi / 2, star: true},
	"h": polygonGlyph{sides: 6, rot: math.Pi / 2},
	"H": polygonGlyph{sides: 6},
	"+": draw.PlusGlyph{},
	"x": draw.CrossGlyph{},
	"X": draw.CrossGlyph{},
	"D": polygonGlyph{sides: 4},
	"d": polygonGlyph{sides: 4, squash: 0.6},
	"|": spokeGlyph{n: 2, rot: math.Pi / 2},
	"_": spokeGlyph{n: 2},
}

// ParseMarker checks that name is a known marker.
func ParseMarker(name string) (Marker, error) {
	m := Marker(name)
	if _, ok := glyphs[m]; !ok {
		return "", errors.New(errors.ErrCodeConfiguration, "unknown marker %q", name)
	}
	return m, nil
}

// ParseMarkers resolves every name in order.
func ParseMarkers(names []string) ([]Marker, error) {
	out := make([]Marker, 0, len(names))
	for _, n := range names {
		m, err := ParseMarker(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Glyph returns the glyph drawer for the marker.
func (m Marker) Glyph() draw.GlyphDrawer {
	return glyphs[m]
}

// MarkerNames returns the known marker names in sorted order.
func MarkerNames() []string {
	names := make([]string, 0, len(glyphs))
	for m := range glyphs {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

// scaledGlyph draws another glyph at a fraction of the style radius.
type scaledGlyph struct {
	draw.GlyphDrawer
	scale float64
}

func (g scaledGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	sty.Radius = vg.Length(float64(sty.Radius) * g.scale)
	g.GlyphDrawer.DrawGlyph(c, sty, pt)
}

// polygonGlyph is a filled regular polygon, or a star when star is set.
// squash narrows the x extent (diamonds).
type polygonGlyph struct {
	sides  int
	rot    float64
	star   bool
	squash float64
}

func (g polygonGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	n := g.sides
	step := 2 * math.Pi / float64(n)
	if g.star {
		n *= 2
		step /= 2
	}
	sx := 1.0
	if g.squash > 0 {
		sx = g.squash
	}
	pts := make([]vg.Point, 0, n)
	for i := 0; i < n; i++ {
		r := float64(sty.Radius)
		if g.star && i%2 == 1 {
			r *= 0.4
		}
		a := g.rot + float64(i)*step
		pts = append(pts, vg.Point{
			X: pt.X + vg.Length(r*math.Cos(a)*sx),
			Y: pt.Y + vg.Length(r*math.Sin(a)),
		})
	}
	c.FillPolygon(sty.Color, pts)
}

// spokeGlyph strokes n evenly spaced spokes from the center.
// Two spokes make a straight bar.
type spokeGlyph struct {
	n   int
	rot float64
}

func (g spokeGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	line := draw.LineStyle{Color: sty.Color, Width: vg.Points(1)}
	step := 2 * math.Pi / float64(g.n)
	for i := 0; i < g.n; i++ {
		a := g.rot + float64(i)*step
		end := vg.Point{
			X: pt.X + vg.Length(float64(sty.Radius)*math.Cos(a)),
			Y: pt.Y + vg.Length(float64(sty.Radius)*math.Sin(a)),
		}
		c.StrokeLine2(line, pt.X, pt.Y, end.X, end.Y)
	}
}
