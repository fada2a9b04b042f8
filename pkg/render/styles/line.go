package styles

import (
	"sort"

	"gonum.org/v1/plot/vg"

	"github.com/spred/plotplotplot/pkg/errors"
)

// Dash is a named line dash style.
type Dash string

// Dash styles.
const (
	DashSolid   Dash = "solid"
	DashDashed  Dash = "dashed"
	DashDashDot Dash = "dashdot"
	DashDotted  Dash = "dotted"
)

// dashUnits are on/off lengths in multiples of the line width.
var dashUnits = map[Dash][]float64{
	DashSolid:   nil,
	DashDashed:  {3.7, 1.6},
	DashDashDot: {6.4, 1.6, 1, 1.6},
	DashDotted:  {1, 1.65},
}

// dashAliases maps the short line-style notation to names.
var dashAliases = map[string]Dash{
	"-":  DashSolid,
	"--": DashDashed,
	"-.": DashDashDot,
	":":  DashDotted,
}

// ParseDash resolves a dash name or its short notation.
func ParseDash(name string) (Dash, error) {
	if d, ok := dashAliases[name]; ok {
		return d, nil
	}
	d := Dash(name)
	if _, ok := dashUnits[d]; !ok {
		return "", errors.New(errors.ErrCodeConfiguration, "unknown line style %q (known: %v)", name, DashNames())
	}
	return d, nil
}

// ParseDashes resolves every name in order.
func ParseDashes(names []string) ([]Dash, error) {
	out := make([]Dash, 0, len(names))
	for _, n := range names {
		d, err := ParseDash(n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Pattern returns the dash lengths for a line of the given width.
// Solid lines return nil.
func (d Dash) Pattern(width vg.Length) []vg.Length {
	units := dashUnits[d]
	if len(units) == 0 {
		return nil
	}
	out := make([]vg.Length, len(units))
	for i, u := range units {
		out[i] = vg.Length(u) * width
	}
	return out
}

// DashNames returns the known dash names in sorted order.
func DashNames() []string {
	names := make([]string, 0, len(dashUnits))
	for d := range dashUnits {
		names = append(names, string(d))
	}
	sort.Strings(names)
	return names
}
