// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/loomwm/loom/layout"
	"github.com/loomwm/loom/lib/config"
	"github.com/loomwm/loom/session"
)

// socketEnv is consulted when neither --socket nor the config file
// names the compositor socket. Compositors that spawn the engine
// themselves pass the socket path through the environment.
const socketEnv = "LOOM_LAYOUT_SOCKET"

const versionString = "loom-layout 0.3.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		socketPath  string
		logLevel    string
		showVersion bool
	)

	pflag.StringVar(&configPath, "config", "", "path to the engine config file (YAML or JSONC)")
	pflag.StringVar(&socketPath, "socket", "", "compositor layout socket path (overrides config and "+socketEnv+")")
	pflag.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pflag.BoolVar(&showVersion, "version", false, "print version information and exit")
	pflag.Parse()

	if showVersion {
		fmt.Println(versionString)
		return nil
	}

	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if socketPath != "" {
		cfg.Socket = socketPath
	}
	if cfg.Socket == "" {
		cfg.Socket = os.Getenv(socketEnv)
	}
	if cfg.Socket == "" {
		return fmt.Errorf("no compositor socket: pass --socket, set socket in the config, or set %s", socketEnv)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger := newLogger(level)
	slog.SetDefault(logger)

	cycle, err := cfg.BuildCycle()
	if err != nil {
		return err
	}

	// Session establishment failure is fatal: the engine has no
	// purpose without an active session.
	conn, err := net.Dial("unix", cfg.Socket)
	if err != nil {
		return fmt.Errorf("connecting to compositor socket %s: %w", cfg.Socket, err)
	}

	// The cycle and the focus bookkeeping are shared between the
	// session goroutine (callback) and the signal goroutine (cycling),
	// so both go through this mutex.
	var mu sync.Mutex
	var lastOutput string
	var lastTag layout.TagID
	var haveLast bool

	generate := func(args session.Args) (any, error) {
		mu.Lock()
		defer mu.Unlock()
		if len(args.Tags) == 0 {
			// No active tag: nothing to key generator selection on,
			// leave the output untiled for this pass.
			cycle.ClearCurrentTag()
			return session.Response{Root: &layout.Node{}}, nil
		}
		tag := args.Tags[0].ID()
		cycle.SetCurrentTag(tag)
		if args.Output != nil {
			lastOutput = args.Output.Name()
			lastTag = tag
			haveLast = true
		}
		return session.Response{
			Root:   cycle.Layout(args.WindowCount),
			TreeID: cycle.CurrentTreeID(),
		}, nil
	}

	manager, err := session.NewManager(session.Config{
		Conn:     conn,
		Generate: generate,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		manager.Close()
	}()

	// SIGUSR1/SIGUSR2 cycle the most recently laid-out tag forward or
	// backward and ask the compositor for a fresh layout, so window
	// manager keybindings can drive cycling without a scripting API.
	cycleSignals := make(chan os.Signal, 1)
	signal.Notify(cycleSignals, syscall.SIGUSR1, syscall.SIGUSR2)
	go func() {
		for sig := range cycleSignals {
			mu.Lock()
			if !haveLast {
				mu.Unlock()
				logger.Warn("cycle signal before first layout request", "signal", sig.String())
				continue
			}
			tag, output := lastTag, lastOutput
			if sig == syscall.SIGUSR1 {
				cycle.CycleForward(tag)
			} else {
				cycle.CycleBackward(tag)
			}
			mu.Unlock()
			logger.Info("cycled layout", "tag", tag, "output", output, "signal", sig.String())
			manager.ForceLayout(output)
		}
	}()

	logger.Info("layout session established", "socket", cfg.Socket)
	return manager.Run(ctx)
}

// newLogger builds the process logger: human-readable text when stderr
// is a terminal, JSON when piped into a log collector.
func newLogger(level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
