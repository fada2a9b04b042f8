// Package pkg provides the core libraries for plotplotplot.
//
// # Overview
//
// plotplotplot draws CSV files, spreadsheets and JSON training logs as a
// single figure of stacked line-chart panels in the style of 538 charts.
// The pkg directory is organized into four areas:
//
//  1. [io] and [table] - Input decoding into a typed column table
//  2. [render] - Grouping, coloring, panel drawing and figure composition
//  3. [settings] and [fonts] - Configuration and typefaces
//  4. [pipeline] - Orchestration (load → group → compose)
//
// # Architecture
//
// The typical data flow:
//
//	CSV / XLSX / JSON log
//	         ↓
//	    [io] package (decode into a table)
//	         ↓
//	    [render/group] package (columns → panels)
//	         ↓
//	    [render/subplot] + [render/palette] (one panel per group)
//	         ↓
//	    [render/figure] package (stack, banner, titles, atomic write)
//	         ↓
//	    SVG/PNG/PDF/EPS/JPEG/TIFF output
//
// # Quick Start
//
//	ds, _ := io.Import("run.log.json", io.Options{Phase: "train"})
//	s := settings.Default()
//	plan, _ := pipeline.NewPlan(ds, s)
//	layout, _ := s.Layout(nil)
//	layout.XColumn = plan.XColumn
//	res, _ := figure.Compose(plan.Groups, plan.Labels, plan.Sizes, plan.Table, layout, "run.svg")
//
// # Supporting Packages
//
// [errors] - Coded errors (CONFIGURATION, EMPTY_INPUT, IO, ...) and input
// validators.
//
// [cache] - Render cache keyed by input bytes, settings and output format.
//
// [observability] - Hooks for load, group, render and cache events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/render/...          # Specific area
//	go test -run Example ./pkg/...    # Examples only
//
// [io]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/io
// [table]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/table
// [render]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/render
// [render/group]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/render/group
// [render/subplot]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/render/subplot
// [render/palette]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/render/palette
// [render/figure]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/render/figure
// [settings]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/settings
// [fonts]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/errors
// [cache]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/cache
// [observability]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/spred/plotplotplot/pkg/buildinfo
package pkg
