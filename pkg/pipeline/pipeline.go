// Package pipeline provides the plotting pipeline behind the plot command.
//
// A run has three stages:
//
//  1. Load: decode a CSV, JSON phase log or XLSX file into a table
//  2. Group: split the table's columns into panels
//  3. Compose: draw the stacked figure and write it atomically
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    InputPath:    "logs/run42.log.json",
//	    Phase:        "validate",
//	    SettingsPath: "settings.toml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path)
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/fonts"
	dataio "github.com/spred/plotplotplot/pkg/io"
	"github.com/spred/plotplotplot/pkg/render/figure"
	"github.com/spred/plotplotplot/pkg/settings"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultOutputDir holds figures written without an explicit output path.
const DefaultOutputDir = "graphs"

// DefaultPhase is the log phase plotted when none is given.
const DefaultPhase = dataio.DefaultPhase

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Load options
	InputPath   string `json:"input_path"`
	InputFormat string `json:"input_format,omitempty"` // csv, json or xlsx; inferred when empty
	Phase       string `json:"phase,omitempty"`        // JSON logs only
	Sheet       string `json:"sheet,omitempty"`        // XLSX only

	// Settings
	SettingsPath string `json:"settings_path,omitempty"`

	// Output options
	OutputPath   string `json:"output_path,omitempty"`
	OutputFormat string `json:"output_format,omitempty"`
	Refresh      bool   `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Settings *settings.Settings `json:"-"` // overrides SettingsPath
	Fonts    *fonts.Set         `json:"-"` // overrides the settings' font paths
	Logger   *log.Logger        `json:"-"`

	// defaultOutput is set when OutputPath was derived from the input.
	defaultOutput bool
	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result describes a finished run.
type Result struct {
	// RunID identifies the run in log records.
	RunID string

	// Path and Format describe the written figure.
	Path   string
	Format string

	// Labels are the panel labels, top to bottom. Empty on a cache hit.
	Labels []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit is true when the figure was copied from the render cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Columns    int
	Rows       int
	Panels     int
	Lines      int
	Bytes      int64
	LoadTime   time.Duration
	GroupTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePath(o.InputPath); err != nil {
		return err
	}

	if o.InputFormat == "" {
		o.InputFormat = dataio.FormatFromPath(o.InputPath)
	}
	if !dataio.ValidFormats[o.InputFormat] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"cannot tell the input format of %s (want .csv, .json or .xlsx)", o.InputPath)
	}

	if o.InputFormat == dataio.FormatJSON {
		if o.Phase == "" {
			o.Phase = DefaultPhase
		}
		if err := errors.ValidatePhase(o.Phase); err != nil {
			return err
		}
	} else {
		o.Phase = ""
	}

	if o.OutputPath != "" {
		format, err := figure.FormatFromPath(o.OutputPath)
		if err != nil {
			return err
		}
		o.OutputFormat = format
	} else {
		if o.OutputFormat == "" {
			o.OutputFormat = figure.DefaultFormat
		}
		format, err := figure.ParseFormat(o.OutputFormat)
		if err != nil {
			return err
		}
		o.OutputFormat = format
		o.OutputPath = DefaultOutputPath(o.InputPath, o.Phase, format)
		o.defaultOutput = true
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LoadSettings returns the run's settings: Settings when set, the file at
// SettingsPath otherwise, and the built-in defaults when neither is given.
// An empty title falls back to the input's base name and an empty subtitle
// to the phase.
func (o *Options) LoadSettings() (settings.Settings, error) {
	var s settings.Settings
	switch {
	case o.Settings != nil:
		s = *o.Settings
		if err := s.Validate(); err != nil {
			return s, err
		}
	case o.SettingsPath != "":
		var err error
		if s, err = settings.Load(o.SettingsPath); err != nil {
			return s, err
		}
	default:
		s = settings.Default()
	}

	if s.TitleText == "" {
		s.TitleText = BaseName(o.InputPath)
	}
	if s.SubtitleText == "" {
		s.SubtitleText = o.Phase
	}
	return s, nil
}

// BaseName returns the file name of path up to its first dot, so
// "logs/run42.log.json" becomes "run42".
func BaseName(path string) string {
	name, _, _ := strings.Cut(filepath.Base(path), ".")
	return name
}

// DefaultOutputPath returns graphs/<base>[_<phase>].<format>.
func DefaultOutputPath(inputPath, phase, format string) string {
	name := BaseName(inputPath)
	if phase != "" {
		name += "_" + phase
	}
	return filepath.Join(DefaultOutputDir, name+"."+format)
}
