// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// Dir is the direction in which a node lays out its children.
type Dir int

const (
	// Row places children side by side, left to right.
	Row Dir = iota
	// Column stacks children top to bottom.
	Column
)

// String returns the direction name for logging and diagnostics.
func (d Dir) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// Orthogonal returns the other direction.
func (d Dir) Orthogonal() Dir {
	if d == Row {
		return Column
	}
	return Row
}

// Gaps is per-side spacing around a node's children. The compositor
// interprets values as logical pixels. Callers that want uniform
// spacing use UniformGaps; the config layer resolves the scalar-or-
// record form from config files into this struct before any generator
// runs, so the rest of the package only ever sees four explicit sides.
type Gaps struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// UniformGaps returns gaps with the same spacing on all four sides.
func UniformGaps(v float64) Gaps {
	return Gaps{Left: v, Right: v, Top: v, Bottom: v}
}

// Node is one node of a layout tree. A node with no children is a leaf
// and holds exactly one window; a node with children subdivides its
// rectangle among them along Dir, weighted by each child's
// SizeProportion.
//
// Zero values mean "unset" and take the documented wire defaults at
// serialization time: traversal index 0, size proportion 1.0, direction
// row, gaps 0 on all sides. Generators therefore only set the fields
// they care about.
type Node struct {
	// Label is an optional diagnostic name, stable per algorithmic
	// position (e.g. "builtin.dwindle.split.0.1"). The compositor
	// matches labels across successive trees to retain manual size
	// adjustments when the tree is regenerated.
	Label string

	// TraversalIndex orders this node among its siblings when the
	// compositor decides where a newly mapped window is inserted.
	// Lower indices fill first.
	TraversalIndex int

	// TraversalOverrides maps a window index to an explicit list of
	// child-branch choices, overriding the generic traversal mechanism
	// for that window. Keys need not be contiguous.
	TraversalOverrides map[int][]int

	// Dir is the direction children are laid out in.
	Dir Dir

	// Gaps is spacing applied around this node's children.
	Gaps Gaps

	// SizeProportion is this node's weight relative to its siblings,
	// a flex-grow analogue. Proportions are not normalized; 0 means
	// unset and serializes as 1.0.
	SizeProportion float64

	// Children is the ordered list of child nodes. Empty means leaf.
	Children []*Node
}

// CountLeaves returns the number of leaves in the tree rooted at n.
// A childless node counts as one leaf, including a childless root —
// callers distinguishing an empty tree from a single-window tree check
// len(n.Children) directly.
func (n *Node) CountLeaves() int {
	if len(n.Children) == 0 {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.CountLeaves()
	}
	return total
}

// Generator maps a window count to a layout tree. Implementations must
// be pure: no I/O, no shared mutable state, same inputs producing the
// same tree. Every generator returns a childless root for a zero
// window count; Floating returns a childless root for every count.
type Generator interface {
	Layout(windowCount int) *Node
}

// TagID identifies a compositor-side tag (a named group of windows).
// Cycle keys its per-tag generator selection on this.
type TagID uint32

// clampFactor restricts a split factor to [0.1, 0.9] so neither side
// of a split can collapse to nothing.
func clampFactor(f float64) float64 {
	if f < 0.1 {
		return 0.1
	}
	if f > 0.9 {
		return 0.9
	}
	return f
}
