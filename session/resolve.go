// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package session

import "github.com/loomwm/loom/layout"

// Output is a handle to a compositor output. Resolution of names to
// handles is the resolver's business; the session only threads handles
// through to the generation callback.
type Output interface {
	// Name is the compositor's connector name for the output
	// (e.g. "DP-1").
	Name() string
}

// Tag is a handle to a compositor tag.
type Tag interface {
	// ID is the compositor's numeric identifier for the tag.
	ID() layout.TagID
}

// OutputResolver resolves output names to handles.
type OutputResolver interface {
	// OutputByName returns the handle for a connector name, or false
	// when the output is unknown.
	OutputByName(name string) (Output, bool)

	// FocusedOutput returns the currently focused output, or false
	// when nothing is focused.
	FocusedOutput() (Output, bool)
}

// TagResolver resolves tag ids to handles.
type TagResolver interface {
	// TagsByID returns handles for the given ids, preserving order.
	// Unknown ids are skipped.
	TagsByID(ids []layout.TagID) []Tag
}

// staticOutput is the fallback Output handle used when no resolver is
// configured: the name is the handle.
type staticOutput string

func (o staticOutput) Name() string { return string(o) }

// staticTag is the fallback Tag handle: the id is the handle.
type staticTag layout.TagID

func (t staticTag) ID() layout.TagID { return layout.TagID(t) }

// staticResolver resolves names and ids to themselves. Used when the
// embedding program has no richer handle registry — the callback still
// gets usable handles carrying the wire identifiers.
type staticResolver struct{}

func (staticResolver) OutputByName(name string) (Output, bool) {
	if name == "" {
		return nil, false
	}
	return staticOutput(name), true
}

func (staticResolver) FocusedOutput() (Output, bool) {
	// Focus tracking needs compositor state the static resolver does
	// not have.
	return nil, false
}

func (staticResolver) TagsByID(ids []layout.TagID) []Tag {
	tags := make([]Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, staticTag(id))
	}
	return tags
}
