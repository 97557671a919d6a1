// Package pipeline runs one complete visualization attempt for a list.
//
// An attempt has four stages:
//
//  1. Detect: walk the list once and record visits and anomalies
//  2. Emit: write the DOT description to <dir>/<base>.dot
//  3. Render: turn the DOT file into one image per requested format
//  4. View: open the first rendered image
//
// Only a failed DOT write aborts the attempt. Render failures are reported
// per format in [Result.RenderErrors] and viewer failures are ignored, so a
// machine without Graphviz or a desktop still gets the DOT file.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	result, err := runner.Visualize(ctx, store, pipeline.Options{
//	    BaseName: "list",
//	    Formats:  []string{"png"},
//	    Open:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.DOTPath, result.Artifacts["png"])
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkviz/pkg/detect"
	"github.com/matzehuels/linkviz/pkg/errors"
	"github.com/matzehuels/linkviz/pkg/list"
	"github.com/matzehuels/linkviz/pkg/render"
	"github.com/matzehuels/linkviz/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library
// =============================================================================

const (
	// DefaultBaseName is the file name, without extension, of every artifact.
	DefaultBaseName = "list"

	// DefaultTitle is the graph label.
	DefaultTitle = nodelink.DefaultTitle

	// DefaultRenderer renders in-process.
	DefaultRenderer = render.RendererGraphviz

	// DefaultCacheTTL bounds how long rendered images stay cached.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatPNG = nodelink.FormatPNG
	FormatSVG = nodelink.FormatSVG
	FormatJPG = nodelink.FormatJPG
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatPNG

// Formats lists the supported image formats in display order.
var Formats = []string{FormatPNG, FormatSVG, FormatJPG}

// Renderers lists the supported renderer names.
var Renderers = []string{render.RendererGraphviz, render.RendererDot}

// =============================================================================
// Options - Attempt Configuration
// =============================================================================

// Options configures one visualization attempt.
type Options struct {
	// BaseName names the artifacts: <BaseName>.dot, <BaseName>.png, ...
	BaseName string `json:"base_name,omitempty"`

	// Title is the graph label. Defaults to "Linked List".
	Title string `json:"title,omitempty"`

	// Dir is the output directory. Defaults to the working directory.
	Dir string `json:"dir,omitempty"`

	// Formats are the image formats to render. Defaults to png.
	Formats []string `json:"formats,omitempty"`

	// Open launches the viewer on the first rendered image.
	Open bool `json:"open,omitempty"`

	// Renderer selects "graphviz" (in-process) or "dot" (external command).
	Renderer string `json:"renderer,omitempty"`

	// Detailed adds node references to record labels.
	Detailed bool `json:"detailed,omitempty"`

	// Palette colors the head and the remaining nodes.
	Palette detect.Palette `json:"-"`

	// Logger receives progress and warnings. Defaults to discarding.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a visualization attempt.
type Result struct {
	// RunID identifies the attempt in log lines.
	RunID string

	// Report is the traversal result the DOT was generated from.
	Report *detect.Report

	// DOT is the emitted graph description.
	DOT string

	// DOTPath is where DOT was written.
	DOTPath string

	// Artifacts maps each successfully rendered format to its file path.
	Artifacts map[string]string

	// RenderErrors maps each format that failed to its error.
	RenderErrors map[string]error

	// Opened is the image handed to the viewer, if any.
	Opened string

	// Stats contains timing information.
	Stats Stats

	// CacheHits counts formats served from the render cache.
	CacheHits int
}

// Stats contains attempt statistics.
type Stats struct {
	Nodes      int
	Anomalies  int
	DetectTime time.Duration
	EmitTime   time.Duration
	RenderTime time.Duration
}

// Rendered reports whether at least one image was produced.
func (r *Result) Rendered() bool {
	return len(r.Artifacts) > 0
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, Formats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRenderer checks that a renderer name is valid.
func ValidateRenderer(name string) error {
	for _, r := range Renderers {
		if name == r {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown renderer: %q (must be graphviz or dot)", name)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.BaseName == "" {
		o.BaseName = DefaultBaseName
	}
	if err := errors.ValidateBaseName(o.BaseName); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Dir == "" {
		o.Dir = "."
	}
	if err := errors.ValidatePath(o.Dir); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Renderer == "" {
		o.Renderer = DefaultRenderer
	}
	if err := ValidateRenderer(o.Renderer); err != nil {
		return err
	}

	if o.Palette.Head == "" {
		o.Palette.Head = detect.DefaultPalette.Head
	}
	if o.Palette.Node == "" {
		o.Palette.Node = detect.DefaultPalette.Node
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Visualize runs an attempt with a default runner: no cache and the
// system viewer.
func Visualize(ctx context.Context, s list.Store, opts Options) (*Result, error) {
	return NewRunner(nil, opts.Logger).Visualize(ctx, s, opts)
}
