package render

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/linkviz/pkg/render/nodelink"
)

// Renderer names understood by [New].
const (
	RendererGraphviz = "graphviz"
	RendererDot      = "dot"
)

// Renderer turns the DOT file at dotPath into an image of the given format
// at outPath.
type Renderer interface {
	Render(ctx context.Context, dotPath, format, outPath string) error
}

// New returns the renderer registered under name. The dot renderer runs
// commands through runner; a nil runner means [ExecRunner].
func New(name string, runner Runner) (Renderer, error) {
	switch name {
	case RendererGraphviz, "":
		return GraphvizRenderer{}, nil
	case RendererDot:
		if runner == nil {
			runner = ExecRunner{}
		}
		return CommandRenderer{Runner: runner}, nil
	default:
		return nil, fmt.Errorf("unknown renderer: %q (must be graphviz or dot)", name)
	}
}

// CommandRenderer invokes an external Graphviz binary:
//
//	dot -T<format> <dotPath> -o <outPath>
type CommandRenderer struct {
	Runner Runner

	// Binary overrides the executable name. Defaults to "dot".
	Binary string
}

// Render runs the dot binary. A non-zero exit status is returned as an
// error.
func (c CommandRenderer) Render(ctx context.Context, dotPath, format, outPath string) error {
	bin := c.Binary
	if bin == "" {
		bin = "dot"
	}
	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	return runner.Run(ctx, bin, "-T"+format, dotPath, "-o", outPath)
}

// GraphvizRenderer renders in-process with the embedded Graphviz library,
// so no external binary is needed.
type GraphvizRenderer struct{}

// Render reads dotPath, renders it, and writes the image to outPath.
func (GraphvizRenderer) Render(ctx context.Context, dotPath, format, outPath string) error {
	dot, err := os.ReadFile(dotPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", dotPath, err)
	}
	data, err := nodelink.Render(ctx, string(dot), format)
	if err != nil {
		return err
	}
	return WriteFile(outPath, data)
}

var (
	_ Renderer = CommandRenderer{}
	_ Renderer = GraphvizRenderer{}
)
