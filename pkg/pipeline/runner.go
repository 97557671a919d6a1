package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/linkviz/pkg/cache"
	"github.com/matzehuels/linkviz/pkg/detect"
	"github.com/matzehuels/linkviz/pkg/errors"
	"github.com/matzehuels/linkviz/pkg/list"
	"github.com/matzehuels/linkviz/pkg/observability"
	"github.com/matzehuels/linkviz/pkg/render"
	"github.com/matzehuels/linkviz/pkg/render/nodelink"
)

// Opener launches a viewer for a file.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Runner executes visualization attempts with caching.
//
// The Runner holds no per-attempt state. Multiple goroutines can safely use
// the same Runner with different stores and options.
type Runner struct {
	Cache cache.Cache

	// Renderer overrides Options.Renderer when set.
	Renderer render.Renderer

	// Viewer opens the first image. Defaults to the platform viewer.
	Viewer Opener

	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Viewer: render.NewViewer(render.ExecRunner{}),
		Logger: logger,
	}
}

// Visualize detects anomalies in s, writes the DOT file, renders every
// requested format and optionally opens the first image.
//
// The returned error is non-nil only for invalid options or when the DOT
// file cannot be written. Everything after the write is best effort.
func (r *Runner) Visualize(ctx context.Context, s list.Store, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])
	result := &Result{
		RunID:        runID,
		Artifacts:    make(map[string]string),
		RenderErrors: make(map[string]error),
	}

	// Stage 1: Detect
	start := time.Now()
	report := detect.Run(s, detect.WithPalette(opts.Palette))
	result.Report = report
	result.Stats.DetectTime = time.Since(start)
	result.Stats.Nodes = report.Len()
	result.Stats.Anomalies = len(report.Anomalies)
	observability.Pipeline().OnDetect(ctx, report.Len(), len(report.Anomalies), result.Stats.DetectTime)

	logger.Debug("traversed list",
		"nodes", report.Len(),
		"cycle", report.HasCycle,
		"duration", result.Stats.DetectTime)
	for _, msg := range report.Messages() {
		logger.Warn(msg)
	}

	// Stage 2: Emit
	start = time.Now()
	dotPath, dot, err := r.emit(report, opts)
	observability.Pipeline().OnEmit(ctx, dotPath, len(dot), err)
	if err != nil {
		return nil, err
	}
	result.DOT = dot
	result.DOTPath = dotPath
	result.Stats.EmitTime = time.Since(start)
	logger.Info("wrote graph description", "path", dotPath)

	// Stage 3: Render
	renderer, err := r.renderer(opts)
	if err != nil {
		return nil, err
	}
	start = time.Now()
	for _, out := range r.renderAll(ctx, renderer, dot, dotPath, opts) {
		if out.err != nil {
			result.RenderErrors[out.format] = out.err
			logger.Warn("render failed", "format", out.format, "error", out.err)
			continue
		}
		result.Artifacts[out.format] = out.path
		if out.cached {
			result.CacheHits++
		}
	}
	result.Stats.RenderTime = time.Since(start)
	if len(result.RenderErrors) > 0 && opts.Renderer == render.RendererDot {
		logger.Warn("Graphviz dot command failed. Make sure Graphviz is installed.")
	}

	// Stage 4: View
	if opts.Open {
		r.open(ctx, logger, result, opts)
	}

	return result, nil
}

// emit writes the DOT description for report to <dir>/<base>.dot.
func (r *Runner) emit(report *detect.Report, opts Options) (string, string, error) {
	dot := nodelink.ToDOT(report, nodelink.Options{Title: opts.Title, Detailed: opts.Detailed})
	path := artifactPath(opts, "dot")

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return path, dot, errors.Wrap(errors.ErrCodeWriteFailed, err, "cannot create output directory %s", opts.Dir)
	}
	if err := render.WriteFile(path, []byte(dot)); err != nil {
		return path, dot, errors.Wrap(errors.ErrCodeWriteFailed, err, "cannot open %s for writing", path)
	}
	return path, dot, nil
}

func (r *Runner) renderer(opts Options) (render.Renderer, error) {
	if r.Renderer != nil {
		return r.Renderer, nil
	}
	rd, err := render.New(opts.Renderer, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "select renderer")
	}
	return rd, nil
}

// open hands the first rendered image, in request order, to the viewer.
func (r *Runner) open(ctx context.Context, logger *log.Logger, result *Result, opts Options) {
	if r.Viewer == nil {
		return
	}
	for _, f := range opts.Formats {
		path, ok := result.Artifacts[f]
		if !ok {
			continue
		}
		if err := r.Viewer.Open(ctx, path); err != nil {
			logger.Debug("viewer failed", "path", path, "error", err)
			return
		}
		result.Opened = path
		return
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func artifactPath(opts Options, ext string) string {
	return filepath.Join(opts.Dir, opts.BaseName+"."+ext)
}
