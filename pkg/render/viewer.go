package render

import (
	"context"
	"runtime"
)

// Viewer opens files with the platform's default application.
type Viewer struct {
	Runner Runner

	// GOOS selects the open command. Defaults to runtime.GOOS.
	GOOS string
}

// NewViewer returns a viewer for the current platform.
func NewViewer(r Runner) *Viewer {
	return &Viewer{Runner: r, GOOS: runtime.GOOS}
}

// Command returns the program and arguments used to open path.
func (v *Viewer) Command(path string) (string, []string) {
	goos := v.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open launches the viewer for path. Callers usually ignore the error: a
// missing viewer should never fail a visualization.
func (v *Viewer) Open(ctx context.Context, path string) error {
	runner := v.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	name, args := v.Command(path)
	return runner.Run(ctx, name, args...)
}
