// Package render groups the packages that turn a table into a figure.
//
// # Overview
//
// A figure is a vertical stack of line-chart panels sharing one color ramp.
// Rendering runs in four steps, each in its own subpackage:
//
//   - [group]: Split table columns into ordered panels, fusing merge runs
//   - [palette]: Pick line colors from a ramp by global line index
//   - [subplot]: Draw one panel, threading the color context
//   - [figure]: Stack the panels, add the banner and titles, write the file
//
// [styles] holds the shared theme: colors, line widths, dash patterns,
// marker glyphs and the resolved [styles.Layout].
//
// # Drawing a Figure
//
//	groups, labels, sizes, err := group.Group(t, group.Rule{Merges: group.DefaultLogMerges})
//	if err != nil {
//	    return err
//	}
//	res, err := figure.Compose(groups, labels, sizes, t, layout, "graphs/run.svg")
//
// Every output format goes through gonum/plot canvases: SVG, PNG, PDF, EPS,
// JPEG and TIFF.
//
// [group]: github.com/spred/plotplotplot/pkg/render/group
// [palette]: github.com/spred/plotplotplot/pkg/render/palette
// [subplot]: github.com/spred/plotplotplot/pkg/render/subplot
// [figure]: github.com/spred/plotplotplot/pkg/render/figure
// [styles]: github.com/spred/plotplotplot/pkg/render/styles
package render
