// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loomwm/loom/layout"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "loom.yaml", `
socket: /run/user/1000/loom/layout.sock
log:
  level: debug
cycle:
  - kind: master_stack
    side: right
    factor: 0.6
    count: 2
    inner_gaps: 4
  - kind: line
    direction: column
    reversed: true
    outer_gaps:
      left: 1
      right: 2
      top: 3
      bottom: 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Socket != "/run/user/1000/loom/layout.sock" {
		t.Errorf("socket = %q", cfg.Socket)
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("level = %v/%v, want debug", level, err)
	}
	if len(cfg.Cycle) != 2 {
		t.Fatalf("got %d cycle entries, want 2", len(cfg.Cycle))
	}

	first, err := cfg.Cycle[0].Build()
	if err != nil {
		t.Fatalf("Build entry 0: %v", err)
	}
	ms, ok := first.(layout.MasterStack)
	if !ok {
		t.Fatalf("entry 0 = %T, want MasterStack", first)
	}
	if ms.Side != layout.MasterRight || ms.Factor != 0.6 || ms.Count != 2 {
		t.Errorf("master_stack options = %+v", ms)
	}
	// Scalar gaps expand to all four sides.
	if ms.InnerGaps != layout.UniformGaps(4) {
		t.Errorf("inner gaps = %+v, want uniform 4", ms.InnerGaps)
	}

	second, err := cfg.Cycle[1].Build()
	if err != nil {
		t.Fatalf("Build entry 1: %v", err)
	}
	line, ok := second.(layout.Line)
	if !ok {
		t.Fatalf("entry 1 = %T, want Line", second)
	}
	if line.Dir != layout.Column || !line.Reversed {
		t.Errorf("line options = %+v", line)
	}
	want := layout.Gaps{Left: 1, Right: 2, Top: 3, Bottom: 4}
	if line.OuterGaps != want {
		t.Errorf("outer gaps = %+v, want %+v", line.OuterGaps, want)
	}
}

func TestLoadJSONC(t *testing.T) {
	path := writeConfig(t, "loom.jsonc", `{
  // layout session socket
  "socket": "/tmp/layout.sock",
  "cycle": [
    {"kind": "corner", "corner": "bottom_right", "inner_gaps": 2},
    {"kind": "fair", "axis": "vertical",
     "outer_gaps": {"left": 1, "right": 1, "top": 0, "bottom": 0}},
  ]
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Socket != "/tmp/layout.sock" {
		t.Errorf("socket = %q", cfg.Socket)
	}

	first, err := cfg.Cycle[0].Build()
	if err != nil {
		t.Fatalf("Build entry 0: %v", err)
	}
	corner, ok := first.(layout.Corner)
	if !ok {
		t.Fatalf("entry 0 = %T, want Corner", first)
	}
	if corner.Loc != layout.CornerBottomRight {
		t.Errorf("corner loc = %v, want bottom_right", corner.Loc)
	}
	if corner.InnerGaps != layout.UniformGaps(2) {
		t.Errorf("inner gaps = %+v, want uniform 2", corner.InnerGaps)
	}

	second, err := cfg.Cycle[1].Build()
	if err != nil {
		t.Fatalf("Build entry 1: %v", err)
	}
	fair, ok := second.(layout.Fair)
	if !ok {
		t.Fatalf("entry 1 = %T, want Fair", second)
	}
	if fair.Axis != layout.Vertical {
		t.Errorf("axis = %v, want vertical", fair.Axis)
	}
	if fair.OuterGaps != (layout.Gaps{Left: 1, Right: 1}) {
		t.Errorf("outer gaps = %+v", fair.OuterGaps)
	}
}

func TestLoadRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown kind",
			content: "cycle:\n  - kind: mosaic\n",
			wantErr: "unknown generator kind",
		},
		{
			name:    "unknown direction",
			content: "cycle:\n  - kind: line\n    direction: diagonal\n",
			wantErr: "unknown direction",
		},
		{
			name:    "unknown side",
			content: "cycle:\n  - kind: master_stack\n    side: center\n",
			wantErr: "unknown master side",
		},
		{
			name:    "unknown corner",
			content: "cycle:\n  - kind: corner\n    corner: middle\n",
			wantErr: "unknown corner location",
		},
		{
			name:    "unknown axis",
			content: "cycle:\n  - kind: fair\n    axis: depth\n",
			wantErr: "unknown axis",
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: verbose\n",
			wantErr: "unknown log level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "loom.yaml", tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultCycleOnEmptyConfig(t *testing.T) {
	path := writeConfig(t, "loom.yaml", "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cycle, err := cfg.BuildCycle()
	if err != nil {
		t.Fatalf("BuildCycle: %v", err)
	}
	// The default cycle starts on master_stack.
	if _, ok := cycle.Current(1).(layout.MasterStack); !ok {
		t.Errorf("default cycle starts on %T, want MasterStack", cycle.Current(1))
	}
}

func TestGeneratorDefaults(t *testing.T) {
	generator, err := GeneratorConfig{Kind: "master_stack"}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ms := generator.(layout.MasterStack)
	if ms.Factor != 0.5 || ms.Count != 1 || ms.Side != layout.MasterLeft {
		t.Errorf("master_stack defaults = %+v, want factor 0.5, count 1, left", ms)
	}

	generator, err = GeneratorConfig{Kind: "corner"}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	corner := generator.(layout.Corner)
	if corner.WidthFactor != 0.5 || corner.HeightFactor != 0.5 || corner.Loc != layout.CornerTopLeft {
		t.Errorf("corner defaults = %+v, want factors 0.5, top_left", corner)
	}
}

func TestSlogLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := LogConfig{Level: tt.level}.SlogLevel()
		if err != nil {
			t.Errorf("level %q: %v", tt.level, err)
			continue
		}
		if got != tt.want {
			t.Errorf("level %q = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
