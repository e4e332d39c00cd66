package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/callirhoe/pkg/cache"
	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/observability"
	"github.com/matzehuels/callirhoe/pkg/render/canvas"
	"github.com/matzehuels/callirhoe/pkg/render/classic"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
	"github.com/matzehuels/callirhoe/pkg/render/sink"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and service use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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

// prepared is a request resolved up to the point of drawing.
type prepared struct {
	theme *theme.Theme
	doc   *layout.Document
	// hash identifies the drawn content; empty when the request cannot be
	// cached.
	hash string
}

// Plan runs the resolve and layout stages without drawing anything.
func (r *Runner) Plan(ctx context.Context, opts Options) (*layout.Document, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	p, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	return p.doc, nil
}

// Draw resolves and lays out the request, then paints it onto cv. It does
// not close cv. No canvas call is made unless planning succeeded.
func (r *Runner) Draw(ctx context.Context, cv canvas.Canvas, opts Options) (*layout.Document, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	p, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := newRenderer(p.theme, opts).Draw(cv, p.doc); err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	return p.doc, nil
}

// Execute runs the complete pipeline and returns the encoded files.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	layoutStart := time.Now()
	p, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Format: opts.Format, Plan: p.doc.Plan}
	result.Stats.Months = p.doc.Plan.Months()
	result.Stats.Pages = len(p.doc.Pages)
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Debug("planned calendar",
		"months", result.Stats.Months,
		"grid", fmt.Sprintf("%dx%d", p.doc.Plan.Rows, p.doc.Plan.Cols),
		"pages", result.Stats.Pages,
		"z_order", p.doc.Plan.ZOrder)

	var cacheKey string
	if p.hash != "" {
		cacheKey = r.Keyer.ArtifactKey(p.hash, cache.ArtifactKeyOpts{Format: opts.Format, DPI: opts.DPI})
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var files [][]byte
			if err := json.Unmarshal(data, &files); err == nil {
				result.Files = files
				result.CacheHit = true
				observability.Cache().OnCacheHit(ctx, opts.Format)
				r.Logger.Debug("artifact cache hit", "format", opts.Format)
				return result, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, opts.Format)
	}

	renderStart := time.Now()
	files, err := r.render(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Files = files
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered calendar",
		"format", opts.Format,
		"files", len(files),
		"duration", result.Stats.RenderTime)

	if cacheKey != "" {
		if data, err := json.Marshal(files); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
				r.Logger.Warn("artifact cache write failed", "error", err)
			} else {
				observability.Cache().OnCacheSet(ctx, opts.Format, len(data))
			}
		}
	}
	return result, nil
}

// RenderFile renders to outputPath. The format follows the file extension;
// paged formats with more than one page are written to numbered siblings
// (see OutputPaths). It returns the paths written.
func (r *Runner) RenderFile(ctx context.Context, outputPath string, opts Options) ([]string, *Result, error) {
	format, err := FormatOf(outputPath)
	if err != nil {
		return nil, nil, err
	}
	opts.Format = format
	result, err := r.Execute(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	paths, err := WriteFiles(outputPath, result.Files)
	if err != nil {
		return nil, nil, err
	}
	return paths, result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) prepare(ctx context.Context, opts Options) (*prepared, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	th, err := opts.Theme()
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	page, err := opts.Page()
	if err != nil {
		return nil, err
	}
	hp, holidayHash, err := loadHolidays(opts)
	if err != nil {
		return nil, err
	}

	months := calendar.Range(opts.Year, opts.Month, opts.Span)
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(months))
	start := time.Now()
	doc, err := layout.Build(months, th, page, opts.LayoutOptions(), hp)
	pages := 0
	if doc != nil {
		pages = len(doc.Pages)
	}
	hooks.OnLayoutComplete(ctx, pages, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	p := &prepared{theme: th, doc: doc}
	if opts.Holidays == nil {
		p.hash, err = cache.HashJSON(struct {
			Options  Options
			Theme    *theme.Theme
			Holidays []string
		}{opts, th, holidayHash})
		if err != nil {
			r.Logger.Warn("request cannot be cached", "error", err)
		}
	}
	return p, nil
}

func (r *Runner) render(ctx context.Context, p *prepared, opts Options) (files [][]byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()
	defer func() {
		size := 0
		for _, f := range files {
			size += len(f)
		}
		hooks.OnRenderComplete(ctx, opts.Format, size, time.Since(start), err)
	}()

	doc, err := sink.New(opts.Format, sink.WithDPI(opts.DPI))
	if err != nil {
		return nil, err
	}
	if err := newRenderer(p.theme, opts).Draw(doc, p.doc); err != nil {
		return nil, err
	}
	if err := doc.Close(); err != nil {
		return nil, err
	}
	return doc.Files(), nil
}

func newRenderer(th *theme.Theme, opts Options) *classic.Renderer {
	var ropts []classic.RenderOption
	if opts.MonthWithYear {
		ropts = append(ropts, classic.WithMonthYear())
	}
	if opts.ShortMonthNames {
		ropts = append(ropts, classic.WithShortMonthNames())
	}
	if opts.LongDayNames {
		ropts = append(ropts, classic.WithLongDayNames())
	}
	if opts.NoShadow {
		ropts = append(ropts, classic.WithoutShadow())
	}
	if opts.Opaque {
		ropts = append(ropts, classic.WithOpaque())
	}
	if opts.SwapColors {
		ropts = append(ropts, classic.WithSwapColors())
	}
	return classic.New(th, ropts...)
}

// loadHolidays returns the holiday provider of a request and the content
// hashes of its holiday files.
func loadHolidays(opts Options) (holiday.Provider, []string, error) {
	if opts.Holidays != nil {
		return opts.Holidays, nil, nil
	}
	set := holiday.NewSet(holiday.WithTerse(opts.Terse))
	hashes := make([]string, 0, len(opts.HolidayFiles))
	for _, path := range opts.HolidayFiles {
		data, err := holiday.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		if err := set.Load(bytes.NewReader(data), path); err != nil {
			return nil, nil, err
		}
		hashes = append(hashes, cache.Hash(data))
	}
	return set, hashes, nil
}
