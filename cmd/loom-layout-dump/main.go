// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

// loom-layout-dump runs one layout generator offline and prints the
// resulting tree, either as an indented diagnostic tree or as the CBOR
// wire form in diagnostic notation. It exists for eyeballing generator
// changes without a compositor on the other end.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/loomwm/loom/layout"
	"github.com/loomwm/loom/lib/codec"
	"github.com/loomwm/loom/lib/config"
	"github.com/loomwm/loom/lib/treeview"
	"github.com/loomwm/loom/wire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		kind        string
		entry       int
		windowCount int
		showWire    bool
	)

	pflag.StringVar(&configPath, "config", "", "engine config file; uses its cycle entries instead of stock options")
	pflag.StringVar(&kind, "generator", "", "builtin to run: line, master_stack, dwindle, spiral, corner, fair, floating")
	pflag.IntVar(&entry, "entry", -1, "cycle entry index from the config to run (alternative to --generator)")
	pflag.IntVar(&windowCount, "count", 4, "window count to lay out")
	pflag.BoolVar(&showWire, "wire", false, "print the serialized wire form in CBOR diagnostic notation")
	pflag.Parse()

	if windowCount < 0 {
		return fmt.Errorf("--count must be non-negative")
	}

	generator, err := pickGenerator(configPath, kind, entry)
	if err != nil {
		return err
	}

	tree := generator.Layout(windowCount)

	if showWire {
		data, err := codec.Marshal(wire.FromTree(tree))
		if err != nil {
			return fmt.Errorf("encoding tree: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnosing tree: %w", err)
		}
		fmt.Println(notation)
		return nil
	}

	styles := treeview.PlainStyles()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		styles = treeview.DefaultStyles()
	}
	fmt.Print(treeview.Render(tree, styles))
	return nil
}

// pickGenerator resolves the generator to run: a config cycle entry
// when --entry is given, a named builtin with the config's options for
// that kind when present, or a named builtin with stock options.
func pickGenerator(configPath, kind string, entry int) (layout.Generator, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if entry >= 0 {
		if cfg == nil {
			return nil, fmt.Errorf("--entry requires --config")
		}
		if entry >= len(cfg.Cycle) {
			return nil, fmt.Errorf("--entry %d out of range: config has %d cycle entries", entry, len(cfg.Cycle))
		}
		return cfg.Cycle[entry].Build()
	}

	if kind == "" {
		return nil, fmt.Errorf("pass --generator or --entry")
	}

	if cfg != nil {
		for _, candidate := range cfg.Cycle {
			if candidate.Kind == kind {
				return candidate.Build()
			}
		}
	}
	return config.GeneratorConfig{Kind: kind}.Build()
}
