// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/loomwm/loom/layout"
	"github.com/loomwm/loom/lib/codec"
	"github.com/loomwm/loom/wire"
)

// Args is the input to a generation callback: the resolved handles and
// the window count from one layout-request event.
type Args struct {
	// Output is the output being laid out. Nil when the resolver does
	// not know the output — the callback decides whether that matters.
	Output Output

	// WindowCount is the number of windows to tile. Never negative.
	WindowCount int

	// Tags are the active tags on the output, in request order.
	Tags []Tag
}

// Response is the normalized result of a generation callback.
type Response struct {
	// Root is the layout tree. Nil serializes as an empty root.
	Root *layout.Node

	// TreeID identifies the (tag, generator) pair for size retention.
	TreeID uint64
}

// LayoutFunc generates a layout tree for one request. Two return
// shapes are accepted, for compatibility with callbacks written
// against the bare-tree API: a *layout.Node (tree id 0) or a Response
// / *Response. Anything else — including a nil tree — is treated as a
// callback failure and answered with the neutral empty response. The
// shape switch happens once, at the session boundary; everything past
// it works with the normalized Response.
type LayoutFunc func(Args) (any, error)

// Config carries the dependencies for a Manager.
type Config struct {
	// Conn is the established layout session stream. Required.
	Conn io.ReadWriteCloser

	// Generate is the generation callback. Required.
	Generate LayoutFunc

	// Outputs resolves output names to handles. Nil uses a static
	// resolver whose handles carry only the wire name.
	Outputs OutputResolver

	// Tags resolves tag ids to handles. Nil uses a static resolver
	// whose handles carry only the wire id.
	Tags TagResolver

	// Logger receives session diagnostics. Nil uses slog.Default.
	Logger *slog.Logger
}

// Manager owns one layout session. Create with NewManager, drive with
// Run; ForceLayout may be called from any goroutine while Run is
// active.
type Manager struct {
	conn     io.ReadWriteCloser
	decoder  *codec.Decoder
	outputs  OutputResolver
	tags     TagResolver
	generate LayoutFunc
	logger   *slog.Logger

	// writeMu serializes outbound messages. Responses are written from
	// Run's goroutine and force-layout requests from whichever
	// goroutine the scripting side calls in; a message must hit the
	// stream whole, so writes are mutually exclusive.
	writeMu sync.Mutex
	encoder *codec.Encoder
}

// NewManager validates the config and returns a manager for the given
// stream.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Conn == nil {
		return nil, errors.New("session: Conn is required")
	}
	if cfg.Generate == nil {
		return nil, errors.New("session: Generate is required")
	}
	if cfg.Outputs == nil {
		cfg.Outputs = staticResolver{}
	}
	if cfg.Tags == nil {
		cfg.Tags = staticResolver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Manager{
		conn:     cfg.Conn,
		decoder:  codec.NewDecoder(cfg.Conn),
		encoder:  codec.NewEncoder(cfg.Conn),
		outputs:  cfg.Outputs,
		tags:     cfg.Tags,
		generate: cfg.Generate,
		logger:   cfg.Logger,
	}, nil
}

// Run processes layout-request events until the stream closes or ctx
// is cancelled. Events are handled strictly one at a time: callback,
// serialization, and response write all complete before the next
// decode. Returns nil on orderly stream close or cancellation, an
// error if the stream breaks mid-message.
func (m *Manager) Run(ctx context.Context) error {
	for {
		var event wire.LayoutEvent
		if err := m.decoder.Decode(&event); err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("decoding layout event: %w", err)
		}
		m.handleEvent(event)
	}
}

// Close closes the underlying stream, unblocking Run.
func (m *Manager) Close() error {
	return m.conn.Close()
}

// handleEvent services one layout request end to end.
func (m *Manager) handleEvent(event wire.LayoutEvent) {
	windowCount := event.WindowCount
	if windowCount < 0 {
		windowCount = 0
	}

	output, ok := m.outputs.OutputByName(event.OutputName)
	if !ok {
		m.logger.Warn("layout request for unknown output",
			"output", event.OutputName, "request_id", event.RequestID)
	}

	tagIDs := make([]layout.TagID, 0, len(event.TagIDs))
	for _, id := range event.TagIDs {
		tagIDs = append(tagIDs, layout.TagID(id))
	}

	response := m.invoke(Args{
		Output:      output,
		WindowCount: windowCount,
		Tags:        m.tags.TagsByID(tagIDs),
	})

	root := response.Root
	if root == nil {
		root = &layout.Node{}
	}
	node := wire.FromTree(root)

	if err := m.write(wire.Request{
		Kind:       wire.KindTreeResponse,
		OutputName: event.OutputName,
		RequestID:  event.RequestID,
		TreeID:     response.TreeID,
		RootNode:   &node,
	}); err != nil {
		m.logger.Error("writing layout response",
			"output", event.OutputName, "request_id", event.RequestID, "error", err)
	}
}

// invoke runs the generation callback and normalizes its dual-shape
// result. Errors, panics, nil trees, and unrecognized return types all
// collapse to the neutral response — the session survives every
// callback failure.
func (m *Manager) invoke(args Args) (response Response) {
	neutral := Response{Root: &layout.Node{}}
	response = neutral

	defer func() {
		if recovered := recover(); recovered != nil {
			m.logger.Error("layout callback panicked", "panic", recovered)
			response = neutral
		}
	}()

	result, err := m.generate(args)
	if err != nil {
		m.logger.Error("layout callback failed", "error", err)
		return neutral
	}

	switch v := result.(type) {
	case *layout.Node:
		if v == nil {
			m.logger.Error("layout callback returned nil tree")
			return neutral
		}
		return Response{Root: v}
	case Response:
		return v
	case *Response:
		if v == nil {
			m.logger.Error("layout callback returned nil response")
			return neutral
		}
		return *v
	default:
		m.logger.Error("layout callback returned unsupported type",
			"type", fmt.Sprintf("%T", result))
		return neutral
	}
}

// ForceLayout asks the compositor to re-request the layout for the
// named output, or for the focused output when outputName is empty.
// Failures (unknown focus, write error) are logged and dropped — the
// operation is advisory and has no retry.
func (m *Manager) ForceLayout(outputName string) {
	if outputName == "" {
		focused, ok := m.outputs.FocusedOutput()
		if !ok {
			m.logger.Warn("force layout with no focused output")
			return
		}
		outputName = focused.Name()
	}

	if err := m.write(wire.Request{
		Kind:       wire.KindForceLayout,
		OutputName: outputName,
	}); err != nil {
		m.logger.Error("writing force-layout request",
			"output", outputName, "error", err)
	}
}

// write encodes one outbound message under the write lock.
func (m *Manager) write(request wire.Request) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.encoder.Encode(request)
}
