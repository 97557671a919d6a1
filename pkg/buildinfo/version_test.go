package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	defaults := Info{Version: "dev", Commit: "none", Date: "unknown"}
	embedded := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	tests := []struct {
		name string
		info Info
		bi   *debug.BuildInfo
		want Info
	}{
		{"no build info", defaults, nil, defaults},
		{"unstamped", defaults, embedded, Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-10-01T12:00:00Z"}},
		{
			"ldflags win",
			Info{Version: "v1.0.0", Commit: "fff", Date: "today"},
			embedded,
			Info{Version: "v1.0.0", Commit: "fff", Date: "today"},
		},
		{"devel module", defaults, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, defaults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.info, tt.bi); got != tt.want {
				t.Errorf("resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(tmpl, "\ngo: go") {
		t.Errorf("Template() should report the Go version: %q", tmpl)
	}
}

func TestString(t *testing.T) {
	if !strings.HasPrefix(String(), "version: ") {
		t.Errorf("String() = %q", String())
	}
}
