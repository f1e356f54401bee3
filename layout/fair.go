// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"
	"math"
)

// Axis is the direction Fair's lines run in.
type Axis int

const (
	// Horizontal lines run left to right and stack vertically.
	Horizontal Axis = iota
	// Vertical lines run top to bottom and sit side by side.
	Vertical
)

// String returns the axis name for logging and diagnostics.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Fair distributes windows as evenly as possible over a near-square
// grid of lines: sqrt(n) lines, earlier lines filled to capacity
// before later ones.
type Fair struct {
	// Axis is the direction each line runs in.
	Axis Axis

	// OuterGaps is spacing around the whole arrangement.
	OuterGaps Gaps

	// InnerGaps is spacing around each window.
	InnerGaps Gaps
}

// Layout builds the fair grid.
func (f Fair) Layout(windowCount int) *Node {
	lineDir := Row
	if f.Axis == Vertical {
		lineDir = Column
	}
	root := &Node{
		Label: "builtin.fair",
		Dir:   lineDir.Orthogonal(),
		Gaps:  f.OuterGaps,
	}
	if windowCount <= 0 {
		return root
	}
	if windowCount == 1 {
		root.Children = []*Node{{Gaps: f.InnerGaps}}
		return root
	}
	if windowCount == 2 {
		// Two windows are one direct line, not a 1x2 grid of nested
		// lines.
		root.Dir = lineDir
		root.Children = []*Node{
			{TraversalIndex: 0, Gaps: f.InnerGaps},
			{TraversalIndex: 1, Gaps: f.InnerGaps},
		}
		return root
	}

	lineCount := int(math.Round(math.Sqrt(float64(windowCount))))
	maxPerLine := lineCount
	if windowCount > lineCount*lineCount {
		maxPerLine = lineCount + 1
	}

	// Bucket windows into lines, filling earlier lines to capacity:
	// window i (1-indexed) lands in line ceil(i / maxPerLine).
	counts := make([]int, lineCount)
	for i := 1; i <= windowCount; i++ {
		line := (i + maxPerLine - 1) / maxPerLine
		counts[line-1]++
	}

	line := Line{Dir: lineDir, InnerGaps: f.InnerGaps}
	root.Children = make([]*Node, 0, lineCount)
	for j, count := range counts {
		sub := line.Layout(count)
		sub.Label = fmt.Sprintf("builtin.fair.line.%d", j)
		sub.TraversalIndex = j
		root.Children = append(root.Children, sub)
	}
	return root
}
