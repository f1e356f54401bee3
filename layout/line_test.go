// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "testing"

func TestLineForward(t *testing.T) {
	root := Line{Dir: Row}.Layout(3)

	if root.Label != "builtin.line" {
		t.Errorf("root label = %q, want %q", root.Label, "builtin.line")
	}
	if root.Dir != Row {
		t.Errorf("root dir = %v, want row", root.Dir)
	}
	if len(root.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(root.Children))
	}
	for i, child := range root.Children {
		if child.TraversalIndex != i {
			t.Errorf("child %d traversal index = %d, want %d", i, child.TraversalIndex, i)
		}
		if len(child.Children) != 0 {
			t.Errorf("child %d is not a leaf", i)
		}
	}
}

func TestLineReversed(t *testing.T) {
	root := Line{Dir: Column, Reversed: true}.Layout(4)

	if len(root.Children) != 4 {
		t.Fatalf("got %d children, want 4", len(root.Children))
	}
	// Insertion order is unchanged; only the indices flip.
	for i, child := range root.Children {
		want := 3 - i
		if child.TraversalIndex != want {
			t.Errorf("child %d traversal index = %d, want %d", i, child.TraversalIndex, want)
		}
	}
}

func TestLineGaps(t *testing.T) {
	outer := UniformGaps(8)
	inner := UniformGaps(2)
	root := Line{OuterGaps: outer, InnerGaps: inner}.Layout(2)

	if root.Gaps != outer {
		t.Errorf("root gaps = %+v, want %+v", root.Gaps, outer)
	}
	for i, child := range root.Children {
		if child.Gaps != inner {
			t.Errorf("child %d gaps = %+v, want %+v", i, child.Gaps, inner)
		}
	}
}
