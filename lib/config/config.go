// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/loomwm/loom/layout"
)

// Config is the engine configuration.
type Config struct {
	// Socket is the path of the compositor's layout session socket.
	Socket string `yaml:"socket" json:"socket"`

	// Log configures logging.
	Log LogConfig `yaml:"log" json:"log"`

	// Cycle is the ordered generator list the engine cycles through
	// per tag. Empty means the default cycle of all builtins.
	Cycle []GeneratorConfig `yaml:"cycle" json:"cycle"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is "debug", "info", "warn", or "error". Empty means info.
	Level string `yaml:"level" json:"level"`
}

// SlogLevel maps the configured level name onto a slog level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.Level)
	}
}

// GapsValue is the scalar-or-record gaps form from config files: a
// bare number applies to all four sides, a mapping sets each side
// explicitly. The union is resolved here, once — generators only ever
// see the four-sided layout.Gaps.
type GapsValue struct {
	Gaps layout.Gaps
}

// gapsRecord is the explicit four-sided form.
type gapsRecord struct {
	Left   float64 `yaml:"left" json:"left"`
	Right  float64 `yaml:"right" json:"right"`
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// UnmarshalYAML accepts either a scalar or a four-sided mapping.
func (g *GapsValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("gaps: %w", err)
		}
		g.Gaps = layout.UniformGaps(v)
		return nil
	}
	var record gapsRecord
	if err := value.Decode(&record); err != nil {
		return fmt.Errorf("gaps: %w", err)
	}
	g.Gaps = layout.Gaps(record)
	return nil
}

// UnmarshalJSON accepts either a number or a four-sided object.
func (g *GapsValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var record gapsRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("gaps: %w", err)
		}
		g.Gaps = layout.Gaps(record)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("gaps: %w", err)
	}
	g.Gaps = layout.UniformGaps(v)
	return nil
}

// GeneratorConfig is one entry of the cycle: a generator kind plus its
// options. Only the fields relevant to the kind are consulted.
type GeneratorConfig struct {
	// Kind is the builtin name: "line", "master_stack", "dwindle",
	// "spiral", "corner", "fair", or "floating".
	Kind string `yaml:"kind" json:"kind"`

	// Direction is the line direction: "row" or "column" (line only).
	Direction string `yaml:"direction" json:"direction"`

	// Reversed inverts the growth direction (line, master_stack).
	Reversed bool `yaml:"reversed" json:"reversed"`

	// Side is the master side: "left", "right", "top", "bottom"
	// (master_stack only). Empty means left.
	Side string `yaml:"side" json:"side"`

	// Factor is the master area share (master_stack only). Zero means
	// 0.5.
	Factor float64 `yaml:"factor" json:"factor"`

	// Count is the master window count (master_stack only). Zero
	// means 1.
	Count int `yaml:"count" json:"count"`

	// Corner is the corner location: "top_left", "top_right",
	// "bottom_left", "bottom_right" (corner only). Empty means
	// top_left.
	Corner string `yaml:"corner" json:"corner"`

	// WidthFactor and HeightFactor are the corner window's shares
	// (corner only). Zero means 0.5.
	WidthFactor  float64 `yaml:"width_factor" json:"width_factor"`
	HeightFactor float64 `yaml:"height_factor" json:"height_factor"`

	// Axis is the line axis: "horizontal" or "vertical" (fair only).
	// Empty means horizontal.
	Axis string `yaml:"axis" json:"axis"`

	// OuterGaps is spacing around the whole arrangement. Scalar or
	// four-sided record.
	OuterGaps GapsValue `yaml:"outer_gaps" json:"outer_gaps"`

	// InnerGaps is spacing around each window. Scalar or four-sided
	// record.
	InnerGaps GapsValue `yaml:"inner_gaps" json:"inner_gaps"`
}

// Build validates the entry and constructs its generator.
func (g GeneratorConfig) Build() (layout.Generator, error) {
	outer := g.OuterGaps.Gaps
	inner := g.InnerGaps.Gaps

	switch g.Kind {
	case "line":
		dir, err := parseDirection(g.Direction)
		if err != nil {
			return nil, err
		}
		return layout.Line{
			Dir:       dir,
			Reversed:  g.Reversed,
			OuterGaps: outer,
			InnerGaps: inner,
		}, nil

	case "master_stack":
		side, err := parseSide(g.Side)
		if err != nil {
			return nil, err
		}
		factor := g.Factor
		if factor == 0 {
			factor = 0.5
		}
		count := g.Count
		if count == 0 {
			count = 1
		}
		return layout.MasterStack{
			Side:      side,
			Factor:    factor,
			Count:     count,
			Reversed:  g.Reversed,
			OuterGaps: outer,
			InnerGaps: inner,
		}, nil

	case "dwindle":
		return layout.Dwindle{OuterGaps: outer, InnerGaps: inner}, nil

	case "spiral":
		return layout.Spiral{OuterGaps: outer, InnerGaps: inner}, nil

	case "corner":
		loc, err := parseCorner(g.Corner)
		if err != nil {
			return nil, err
		}
		widthFactor := g.WidthFactor
		if widthFactor == 0 {
			widthFactor = 0.5
		}
		heightFactor := g.HeightFactor
		if heightFactor == 0 {
			heightFactor = 0.5
		}
		return layout.Corner{
			Loc:          loc,
			WidthFactor:  widthFactor,
			HeightFactor: heightFactor,
			OuterGaps:    outer,
			InnerGaps:    inner,
		}, nil

	case "fair":
		axis, err := parseAxis(g.Axis)
		if err != nil {
			return nil, err
		}
		return layout.Fair{Axis: axis, OuterGaps: outer, InnerGaps: inner}, nil

	case "floating":
		return layout.Floating{}, nil

	default:
		return nil, fmt.Errorf("unknown generator kind %q", g.Kind)
	}
}

// BuildCycle constructs the configured generator cycle. An empty cycle
// section yields the default cycle over every builtin.
func (c *Config) BuildCycle() (*layout.Cycle, error) {
	if len(c.Cycle) == 0 {
		return DefaultCycle(), nil
	}
	generators := make([]layout.Generator, 0, len(c.Cycle))
	for i, entry := range c.Cycle {
		generator, err := entry.Build()
		if err != nil {
			return nil, fmt.Errorf("cycle entry %d: %w", i, err)
		}
		generators = append(generators, generator)
	}
	return layout.NewCycle(generators...), nil
}

// DefaultCycle returns a cycle over all seven builtins with stock
// options and a small uniform gap.
func DefaultCycle() *layout.Cycle {
	inner := layout.UniformGaps(4)
	outer := layout.UniformGaps(4)
	return layout.NewCycle(
		layout.MasterStack{Factor: 0.5, Count: 1, OuterGaps: outer, InnerGaps: inner},
		layout.Dwindle{OuterGaps: outer, InnerGaps: inner},
		layout.Spiral{OuterGaps: outer, InnerGaps: inner},
		layout.Corner{WidthFactor: 0.5, HeightFactor: 0.5, OuterGaps: outer, InnerGaps: inner},
		layout.Fair{OuterGaps: outer, InnerGaps: inner},
		layout.Line{OuterGaps: outer, InnerGaps: inner},
		layout.Floating{},
	)
}

// Load reads and parses a config file. The format follows the
// extension: .json and .jsonc are parsed as JSONC, everything else as
// YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	// Surface option errors at load time.
	if _, err := cfg.BuildCycle(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func parseDirection(s string) (layout.Dir, error) {
	switch s {
	case "", "row":
		return layout.Row, nil
	case "column":
		return layout.Column, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseSide(s string) (layout.MasterSide, error) {
	switch s {
	case "", "left":
		return layout.MasterLeft, nil
	case "right":
		return layout.MasterRight, nil
	case "top":
		return layout.MasterTop, nil
	case "bottom":
		return layout.MasterBottom, nil
	default:
		return 0, fmt.Errorf("unknown master side %q", s)
	}
}

func parseCorner(s string) (layout.CornerLoc, error) {
	switch s {
	case "", "top_left":
		return layout.CornerTopLeft, nil
	case "top_right":
		return layout.CornerTopRight, nil
	case "bottom_left":
		return layout.CornerBottomLeft, nil
	case "bottom_right":
		return layout.CornerBottomRight, nil
	default:
		return 0, fmt.Errorf("unknown corner location %q", s)
	}
}

func parseAxis(s string) (layout.Axis, error) {
	switch s {
	case "", "horizontal":
		return layout.Horizontal, nil
	case "vertical":
		return layout.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}
