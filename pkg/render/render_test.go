package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// recorder is a fake Runner that records invocations.
type recorder struct {
	calls [][]string
	err   error
}

func (r *recorder) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestCommandRenderer(t *testing.T) {
	rec := &recorder{}
	r := CommandRenderer{Runner: rec}

	if err := r.Render(context.Background(), "list.dot", "png", "list.png"); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := [][]string{{"dot", "-Tpng", "list.dot", "-o", "list.png"}}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestCommandRendererFailure(t *testing.T) {
	exit := errors.New("exit status 1")
	r := CommandRenderer{Runner: &recorder{err: exit}, Binary: "/opt/graphviz/bin/dot"}

	err := r.Render(context.Background(), "in.dot", "svg", "out.svg")
	if !errors.Is(err, exit) {
		t.Errorf("Render error = %v, want %v", err, exit)
	}
}

func TestViewerCommand(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"darwin", "open", []string{"list.png"}},
		{"linux", "xdg-open", []string{"list.png"}},
		{"freebsd", "xdg-open", []string{"list.png"}},
		{"windows", "cmd", []string{"/c", "start", "", "list.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			v := &Viewer{GOOS: tt.goos}
			name, args := v.Command("list.png")
			if name != tt.name || !reflect.DeepEqual(args, tt.args) {
				t.Errorf("Command() = %s %v, want %s %v", name, args, tt.name, tt.args)
			}
		})
	}
}

func TestViewerOpen(t *testing.T) {
	rec := &recorder{}
	v := &Viewer{Runner: rec, GOOS: "darwin"}

	if err := v.Open(context.Background(), "out.png"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0][0] != "open" {
		t.Errorf("calls = %v", rec.calls)
	}
}

func TestNew(t *testing.T) {
	if r, err := New("", nil); err != nil || reflect.TypeOf(r) != reflect.TypeOf(GraphvizRenderer{}) {
		t.Errorf("New(\"\") = %T, %v", r, err)
	}
	if r, err := New(RendererDot, nil); err != nil || reflect.TypeOf(r) != reflect.TypeOf(CommandRenderer{}) {
		t.Errorf("New(dot) = %T, %v", r, err)
	}
	if _, err := New("povray", nil); err == nil {
		t.Error("New should reject unknown renderers")
	}
}

func TestRunnerFunc(t *testing.T) {
	var got string
	fn := RunnerFunc(func(_ context.Context, name string, _ ...string) error {
		got = name
		return nil
	})
	_ = fn.Run(context.Background(), "dot")
	if got != "dot" {
		t.Errorf("RunnerFunc received %q", got)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), "linkviz-definitely-not-installed")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "linkviz-definitely-not-installed") {
		t.Errorf("error should name the binary: %v", err)
	}
}

func TestGraphvizRenderer(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "g.dot")
	out := filepath.Join(dir, "g.svg")
	if err := os.WriteFile(in, []byte("digraph G { a -> b; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := (GraphvizRenderer{}).Render(context.Background(), in, "svg", out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestGraphvizRendererMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := (GraphvizRenderer{}).Render(context.Background(), filepath.Join(dir, "nope.dot"), "svg", filepath.Join(dir, "x.svg"))
	if err == nil {
		t.Error("expected error for missing DOT file")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.dot")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "list.dot")
	if err := WriteFile(path, []byte("x")); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no artifact should exist after a failed write")
	}
}
