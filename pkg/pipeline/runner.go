package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/spred/plotplotplot/pkg/buildinfo"
	"github.com/spred/plotplotplot/pkg/cache"
	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/fonts"
	dataio "github.com/spred/plotplotplot/pkg/io"
	"github.com/spred/plotplotplot/pkg/observability"
	"github.com/spred/plotplotplot/pkg/render/figure"
	"github.com/spred/plotplotplot/pkg/settings"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → group → compose pipeline.
//
// With a render cache, a figure previously drawn from the same input bytes,
// settings and output format is copied to the output path and the load and
// render stages are skipped. Refresh forces a fresh render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:  uuid.NewString(),
		Path:   opts.OutputPath,
		Format: opts.OutputFormat,
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	s, err := opts.LoadSettings()
	if err != nil {
		return nil, err
	}
	if opts.defaultOutput {
		if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", filepath.Dir(opts.OutputPath))
		}
	}

	key, err := r.renderKey(opts, s)
	if err != nil {
		return nil, err
	}
	if key != "" && !opts.Refresh {
		hit, err := r.fromCache(ctx, key, result)
		if err != nil {
			return nil, err
		}
		if hit {
			logger.Info("reused cached figure", "path", result.Path, "bytes", result.Stats.Bytes)
			return result, nil
		}
	}

	// Stage 1: Load
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loadStart := time.Now()
	ds, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Columns = ds.Table.NumColumns()
	result.Stats.Rows = ds.Table.Len()

	logger.Info("loaded table",
		"format", ds.Format,
		"columns", result.Stats.Columns,
		"rows", result.Stats.Rows,
		"duration", result.Stats.LoadTime)

	// Stage 2: Group
	groupStart := time.Now()
	plan, err := NewPlan(ds, s)
	observability.Pipeline().OnGroupComplete(ctx, planPanels(plan), planLines(plan), err)
	if err != nil {
		return nil, err
	}
	result.Labels = plan.Labels
	result.Stats.GroupTime = time.Since(groupStart)
	result.Stats.Panels = len(plan.Groups)
	result.Stats.Lines = plan.Lines()

	logger.Info("grouped columns",
		"panels", result.Stats.Panels,
		"lines", result.Stats.Lines,
		"x", plan.XColumn,
		"duration", result.Stats.GroupTime)
	logger.Debug("panel labels", "labels", plan.Labels)

	// Stage 3: Compose
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	fig, err := r.Compose(ctx, plan, s, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Bytes = fig.Bytes

	logger.Info("rendered figure",
		"path", fig.Path,
		"format", fig.Format,
		"bytes", fig.Bytes,
		"duration", result.Stats.RenderTime)

	if key != "" {
		r.store(ctx, key, fig.Path, logger)
	}
	return result, nil
}

// Load decodes the input file.
func (r *Runner) Load(ctx context.Context, opts Options) (*dataio.Dataset, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.InputPath, opts.InputFormat)

	start := time.Now()
	ds, err := dataio.Import(opts.InputPath, dataio.Options{
		Format: opts.InputFormat,
		Phase:  opts.Phase,
		Sheet:  opts.Sheet,
	})
	var cols, rows int
	if ds != nil {
		cols, rows = ds.Table.NumColumns(), ds.Table.Len()
	}
	hooks.OnLoadComplete(ctx, opts.InputPath, cols, rows, time.Since(start), err)
	return ds, err
}

// Compose draws plan with settings s and writes it to the output path.
func (r *Runner) Compose(ctx context.Context, plan *Plan, s settings.Settings, opts Options) (*figure.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	set := opts.Fonts
	if set == nil {
		var err error
		if set, err = fonts.Load(s.Fonts); err != nil {
			return nil, err
		}
	}
	layout, err := s.Layout(set)
	if err != nil {
		return nil, err
	}
	layout.XColumn = plan.XColumn

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.OutputFormat, len(plan.Groups))
	start := time.Now()
	fig, err := figure.Compose(plan.Groups, plan.Labels, plan.Sizes, plan.Table, layout, opts.OutputPath)
	var size int64
	if fig != nil {
		size = fig.Bytes
	}
	hooks.OnRenderComplete(ctx, opts.OutputFormat, size, time.Since(start), err)
	return fig, err
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// renderKey returns the cache key of the run's figure, or "" when caching
// is disabled. Runs with a caller-supplied font set are never cached.
func (r *Runner) renderKey(opts Options, s settings.Settings) (string, error) {
	if _, ok := r.Cache.(cache.NullCache); ok || opts.Fonts != nil {
		return "", nil
	}
	input, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", opts.InputPath)
	}
	encoded, err := s.Encode(settings.FormatJSON)
	if err != nil {
		return "", err
	}
	fontHashes, err := hashFonts(s.Fonts)
	if err != nil {
		return "", err
	}
	return r.Keyer.RenderKey(cache.RenderKeyOpts{
		InputHash: cache.Hash(input),
		Settings:  encoded,
		Format:    opts.OutputFormat,
		Phase:     opts.Phase,
		Sheet:     opts.Sheet,
		Title:     s.TitleText,
		Subtitle:  s.SubtitleText,
		Fonts:     fontHashes,
		Version:   buildinfo.Renderer(),
	}), nil
}

// hashFonts hashes the contents of every configured font file by role.
func hashFonts(p fonts.Paths) (map[string]string, error) {
	var hashes map[string]string
	for role, path := range map[string]string{"tick": p.Tick, "title": p.Title, "text": p.Text} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font %s", path)
		}
		if hashes == nil {
			hashes = make(map[string]string, 3)
		}
		hashes[role] = cache.Hash(data)
	}
	return hashes, nil
}

// fromCache writes a cached figure to the output path. Cache read errors
// count as a miss.
func (r *Runner) fromCache(ctx context.Context, key string, result *Result) (bool, error) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, key)
		return false, nil
	}
	hooks.OnCacheHit(ctx, key)
	if err := figure.WriteFile(result.Path, data); err != nil {
		return false, err
	}
	result.CacheHit = true
	result.Stats.Bytes = int64(len(data))
	return true, nil
}

// store copies the written figure into the cache. Failures are logged,
// never returned.
func (r *Runner) store(ctx context.Context, key, path string, logger *log.Logger) {
	data, err := os.ReadFile(path)
	if err == nil {
		err = r.Cache.Set(ctx, key, data, cache.DefaultTTL)
	}
	if err != nil {
		logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func planPanels(p *Plan) int {
	if p == nil {
		return 0
	}
	return len(p.Groups)
}

func planLines(p *Plan) int {
	if p == nil {
		return 0
	}
	return p.Lines()
}
