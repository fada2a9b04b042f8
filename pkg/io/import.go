package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/table"
)

// Input formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// ValidFormats is the set of supported input formats.
var ValidFormats = map[string]bool{
	FormatCSV:  true,
	FormatJSON: true,
	FormatXLSX: true,
}

// DefaultPhase is the log phase read when none is given.
const DefaultPhase = "train"

// Options control how an input file is decoded.
type Options struct {
	Format string // csv, json or xlsx; inferred from the extension when empty
	Phase  string // log phase for json input (train, validate, test)
	Sheet  string // worksheet for xlsx input; first sheet when empty
}

// Dataset is a loaded table plus what the loader knows about it.
type Dataset struct {
	Table  *table.Table
	Format string
	// Index names the synthetic row index column, if the loader added one.
	// It is plotted as x, never as a line.
	Index string
}

// FormatFromPath infers the input format from a file extension.
// It returns "" for unknown extensions.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "csv":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xlsx", "xlsm":
		return FormatXLSX
	}
	return ""
}

// Import reads the file at path and decodes it according to opts.
//
// Import returns FILE_NOT_FOUND when the file cannot be opened,
// INVALID_FORMAT when the format is unknown, and the decoder's error
// otherwise. The error wraps the underlying cause with the file path.
func Import(path string, opts Options) (*Dataset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = FormatFromPath(path)
	}
	if !ValidFormats[format] {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be 'csv', 'json', or 'xlsx')", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	var ds *Dataset
	switch format {
	case FormatCSV:
		ds, err = ReadCSV(f)
	case FormatJSON:
		phase := opts.Phase
		if phase == "" {
			phase = DefaultPhase
		}
		ds, err = ReadJSONLog(f, phase)
	case FormatXLSX:
		ds, err = ReadXLSX(f, opts.Sheet)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", path)
	}
	return ds, nil
}
