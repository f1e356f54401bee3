// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// Line lays windows out in a single row or column. It is the simplest
// builtin and the workhorse of the library: MasterStack, Corner, and
// Fair all build their sub-areas by running nested Line generators.
type Line struct {
	// Dir is the direction windows are placed in.
	Dir Dir

	// Reversed inverts the growth direction. Children are still
	// inserted in array order 0..n-1, but their traversal indices run
	// n-1 down to 0, so the last inserted leaf carries the lowest
	// index and new windows fill from the other end.
	Reversed bool

	// OuterGaps is spacing around the whole line, applied on the root.
	OuterGaps Gaps

	// InnerGaps is spacing around each window, applied on every leaf.
	InnerGaps Gaps
}

// Layout returns a root with one leaf per window. A zero window count
// produces a childless root.
func (l Line) Layout(windowCount int) *Node {
	root := &Node{
		Label: "builtin.line",
		Dir:   l.Dir,
		Gaps:  l.OuterGaps,
	}
	if windowCount <= 0 {
		return root
	}
	root.Children = make([]*Node, 0, windowCount)
	for i := 0; i < windowCount; i++ {
		index := i
		if l.Reversed {
			index = windowCount - 1 - i
		}
		root.Children = append(root.Children, &Node{
			TraversalIndex: index,
			Gaps:           l.InnerGaps,
		})
	}
	return root
}
