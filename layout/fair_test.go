// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"math"
	"testing"
)

func TestFairFiveWindowsVertical(t *testing.T) {
	root := Fair{Axis: Vertical}.Layout(5)

	// sqrt(5) rounds to 2 lines; five windows overflow 2x2, so lines
	// hold up to 3: first line 3, second 2.
	if root.Dir != Row {
		t.Errorf("root dir = %v, want row (vertical lines sit side by side)", root.Dir)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d lines, want 2", len(root.Children))
	}
	if got := len(root.Children[0].Children); got != 3 {
		t.Errorf("line 0 holds %d windows, want 3", got)
	}
	if got := len(root.Children[1].Children); got != 2 {
		t.Errorf("line 1 holds %d windows, want 2", got)
	}
	for j, line := range root.Children {
		if line.Dir != Column {
			t.Errorf("line %d dir = %v, want column", j, line.Dir)
		}
		if line.TraversalIndex != j {
			t.Errorf("line %d traversal index = %d, want %d", j, line.TraversalIndex, j)
		}
	}
	if got := root.Children[0].Label; got != "builtin.fair.line.0" {
		t.Errorf("line 0 label = %q", got)
	}
}

func TestFairTwoWindowsSingleLine(t *testing.T) {
	root := Fair{Axis: Horizontal}.Layout(2)

	// Two windows are one direct line, not nested.
	if root.Dir != Row {
		t.Errorf("root dir = %v, want row", root.Dir)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	for i, child := range root.Children {
		if len(child.Children) != 0 {
			t.Errorf("child %d is not a leaf", i)
		}
		if child.TraversalIndex != i {
			t.Errorf("child %d traversal index = %d, want %d", i, child.TraversalIndex, i)
		}
	}
}

func TestFairGridProperties(t *testing.T) {
	for n := 3; n <= 30; n++ {
		root := Fair{}.Layout(n)

		wantLines := int(math.Round(math.Sqrt(float64(n))))
		if len(root.Children) != wantLines {
			t.Errorf("n=%d: got %d lines, want %d", n, len(root.Children), wantLines)
			continue
		}
		maxPerLine := wantLines
		if n > wantLines*wantLines {
			maxPerLine = wantLines + 1
		}
		total := 0
		for j, line := range root.Children {
			count := len(line.Children)
			if count == 0 {
				t.Errorf("n=%d: line %d is empty", n, j)
			}
			if count > maxPerLine {
				t.Errorf("n=%d: line %d holds %d windows, max %d", n, j, count, maxPerLine)
			}
			total += count
		}
		if total != n {
			t.Errorf("n=%d: lines hold %d windows total", n, total)
		}
	}
}

func TestFairHorizontalAxis(t *testing.T) {
	root := Fair{Axis: Horizontal}.Layout(4)

	// Horizontal lines stack vertically.
	if root.Dir != Column {
		t.Errorf("root dir = %v, want column", root.Dir)
	}
	for j, line := range root.Children {
		if line.Dir != Row {
			t.Errorf("line %d dir = %v, want row", j, line.Dir)
		}
	}
}
