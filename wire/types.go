// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Request kinds for client→compositor messages on the layout session.
const (
	// KindForceLayout asks the compositor to re-request a layout for
	// an output, e.g. after the scripting side cycled generators.
	KindForceLayout = "force_layout"

	// KindTreeResponse answers a layout request with a serialized
	// tree, tagged with the request id it satisfies.
	KindTreeResponse = "tree_response"
)

// Request is a client→compositor message. Kind selects which of the
// remaining fields are meaningful: force_layout carries only
// OutputName; tree_response carries all of them.
type Request struct {
	// Kind is the request type: "force_layout" or "tree_response".
	Kind string `cbor:"kind"`

	// OutputName names the output this request concerns.
	OutputName string `cbor:"output_name,omitempty"`

	// RequestID echoes the id of the layout request being answered.
	// Always present on the wire: the compositor matches responses by
	// key lookup, so a zero id is still emitted.
	RequestID uint32 `cbor:"request_id"`

	// TreeID identifies the (tag, generator) pair that produced the
	// tree, letting the compositor retain per-leaf sizing across
	// re-layouts. Zero means no identity (neutral response) and is
	// emitted explicitly.
	TreeID uint64 `cbor:"tree_id"`

	// RootNode is the serialized layout tree. Only set for
	// tree_response.
	RootNode *Node `cbor:"root_node,omitempty"`
}

// LayoutEvent is a compositor→client message asking for a layout.
type LayoutEvent struct {
	// OutputName names the output being laid out.
	OutputName string `cbor:"output_name"`

	// WindowCount is the number of windows to tile.
	WindowCount int `cbor:"window_count"`

	// TagIDs are the active tags on the output, in order. The first
	// tag is the one generator selection keys on.
	TagIDs []uint32 `cbor:"tag_ids"`

	// RequestID tags the response the compositor expects back.
	RequestID uint32 `cbor:"request_id"`
}

// FlexDir is the wire form of a node's layout direction.
type FlexDir uint8

const (
	// FlexDirRow lays children out side by side.
	FlexDirRow FlexDir = iota
	// FlexDirColumn stacks children vertically.
	FlexDirColumn
)

// String returns the wire enum name.
func (d FlexDir) String() string {
	if d == FlexDirColumn {
		return "COLUMN"
	}
	return "ROW"
}

// Gaps is per-side spacing in wire form. Always explicit on all four
// sides; scalar gaps are expanded before they reach the wire.
type Gaps struct {
	Left   float64 `cbor:"left"`
	Right  float64 `cbor:"right"`
	Top    float64 `cbor:"top"`
	Bottom float64 `cbor:"bottom"`
}

// Style carries a node's sizing attributes.
type Style struct {
	// SizeProportion is the node's weight among its siblings, a
	// flex-grow analogue. Never zero on the wire; unset serializes
	// as 1.0.
	SizeProportion float64 `cbor:"size_proportion"`

	// FlexDir is the direction children are laid out in.
	FlexDir FlexDir `cbor:"flex_dir"`

	// Gaps is spacing around the node's children.
	Gaps Gaps `cbor:"gaps"`
}

// TraversalOverride is an explicit list of child-branch choices for
// one window index, materialized from the tree's sparse override map.
type TraversalOverride struct {
	Overrides []uint32 `cbor:"overrides"`
}

// Node is the wire form of one layout tree node.
type Node struct {
	// Label is the node's diagnostic name, stable per algorithmic
	// position. Optional.
	Label string `cbor:"label,omitempty"`

	// TraversalOverrides maps window indices to explicit branch
	// choices. Keys need not be contiguous.
	TraversalOverrides map[uint32]TraversalOverride `cbor:"traversal_overrides"`

	// TraversalIndex orders this node among its siblings for window
	// insertion.
	TraversalIndex uint32 `cbor:"traversal_index"`

	// Style carries the node's sizing attributes.
	Style Style `cbor:"style"`

	// Children is the ordered list of child nodes.
	Children []Node `cbor:"children"`
}
