// Package io loads input files into [table.Table] values for rendering.
//
// # Formats
//
// Three input formats are supported:
//
//   - csv: a header row followed by data rows. Every column becomes its own
//     panel unless grouping rules say otherwise.
//   - json: a structured training log keyed by phase. The file is an object
//     whose "<phase>Results" member is an array of flat records:
//
//     {
//     "trainResults": [
//     {"loss": 2.31, "top1": 0.12, "top5": 0.41, "lr": 0.1},
//     {"loss": 1.97, "top1": 0.18, "top5": 0.52, "lr": 0.1}
//     ],
//     "validateResults": [...]
//     }
//
//     Columns appear in first-seen key order. A synthetic "index" column
//     holding row*10 is appended and reported in [Dataset.Index].
//   - xlsx: the first worksheet (or a named one), first row as header.
//
// # Type Inference
//
// Cells are classified by [table.Infer]: integral numbers become ints,
// other numbers floats, anything else a string. Missing cells are null.
// Nothing is validated beyond that; unplottable cells are skipped later.
//
// # Usage
//
//	ds, err := io.Import("logs/run.json", io.Options{Phase: "validate"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ds.Table.Names())
package io
