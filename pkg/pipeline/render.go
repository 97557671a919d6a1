package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/matzehuels/linkviz/pkg/cache"
	"github.com/matzehuels/linkviz/pkg/errors"
	"github.com/matzehuels/linkviz/pkg/observability"
	"github.com/matzehuels/linkviz/pkg/render"
)

// maxRenderers bounds concurrent renders.
const maxRenderers = 4

// rendered is the outcome of rendering one format.
type rendered struct {
	format string
	path   string
	cached bool
	err    error
}

// renderAll renders each format concurrently. Outcomes are returned in the
// order of opts.Formats.
func (r *Runner) renderAll(ctx context.Context, rd render.Renderer, dot, dotPath string, opts Options) []rendered {
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	out := make([]rendered, len(opts.Formats))
	p := pool.New().WithMaxGoroutines(maxRenderers)
	for i, format := range opts.Formats {
		p.Go(func() {
			start := time.Now()
			res := r.renderOne(ctx, rd, dot, dotPath, format, opts)
			observability.Pipeline().OnRenderComplete(ctx, format, time.Since(start), res.err)
			out[i] = res
		})
	}
	p.Wait()
	return out
}

// renderOne produces <dir>/<base>.<format>, using the cache when the same
// DOT text was rendered to the same format by the same renderer before.
func (r *Runner) renderOne(ctx context.Context, rd render.Renderer, dot, dotPath, format string, opts Options) rendered {
	res := rendered{format: format, path: artifactPath(opts, format)}
	key := cache.RenderKey(dot, format, opts.Renderer)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "render")
		if err := render.WriteFile(res.path, data); err != nil {
			res.err = errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", res.path)
			return res
		}
		res.cached = true
		return res
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	if err := rd.Render(ctx, dotPath, format, res.path); err != nil {
		res.err = errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		return res
	}

	if data, err := os.ReadFile(res.path); err == nil {
		if err := r.Cache.Set(ctx, key, data, DefaultCacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "render", len(data))
		}
	}
	return res
}
