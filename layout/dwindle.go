// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "fmt"

// Dwindle splits the remaining space in half for every window after
// the first, alternating the split axis, so each new window takes half
// of what the previous one left over. Produces a right-leaning chain:
// depth n-1 for n windows.
type Dwindle struct {
	// OuterGaps is spacing around the whole arrangement.
	OuterGaps Gaps

	// InnerGaps is spacing around each window. Gaps live only on
	// leaves and the root; intermediate split containers carry none,
	// otherwise spacing would compound with chain depth.
	InnerGaps Gaps
}

// Layout builds the dwindle chain.
func (d Dwindle) Layout(windowCount int) *Node {
	return splitChain("builtin.dwindle", windowCount, d.OuterGaps, d.InnerGaps, dwindleStep)
}

// dwindleStep always assigns traversal index 0 to the first child and
// descends into the second, so the chain leans the same way forever.
func dwindleStep(i int) (firstIndex, secondIndex, descendInto int) {
	return 0, 1, 1
}

// spiralStep rotates on a four-step cycle: two steps assigning forward
// and descending into the second child, then two steps assigning
// backward and descending into the first. Reversing the descent
// direction every two splits is what makes the visiting order spiral
// instead of dwindling into one corner.
func spiralStep(i int) (firstIndex, secondIndex, descendInto int) {
	if i%4 < 2 {
		return 0, 1, 1
	}
	return 1, 0, 0
}

// splitChain is the shared chain constructor behind Dwindle and
// Spiral. For each step i in 0..n-2 the current container is split
// into two children (dir alternating column/row by parity of i), and
// construction descends into the child chosen by step. Each step adds
// one leaf; the final descent target stays a leaf, giving n leaves
// from n-1 splits.
func splitChain(label string, windowCount int, outerGaps, innerGaps Gaps, step func(i int) (int, int, int)) *Node {
	root := &Node{Label: label, Gaps: outerGaps}
	if windowCount <= 0 {
		return root
	}
	if windowCount == 1 {
		root.Children = []*Node{{Gaps: innerGaps}}
		return root
	}

	current := root
	for i := 0; i < windowCount-1; i++ {
		if current != root {
			// This node was created as a leaf in the previous step;
			// now that it becomes a split container its gaps move
			// down to the pair it produces.
			current.Gaps = Gaps{}
		}
		if i%2 == 0 {
			current.Dir = Column
		} else {
			current.Dir = Row
		}

		firstIndex, secondIndex, descendInto := step(i)
		first := &Node{
			Label:          fmt.Sprintf("%s.split.%d.1", label, i),
			TraversalIndex: firstIndex,
			Gaps:           innerGaps,
		}
		second := &Node{
			Label:          fmt.Sprintf("%s.split.%d.2", label, i),
			TraversalIndex: secondIndex,
			Gaps:           innerGaps,
		}
		current.Children = []*Node{first, second}
		if descendInto == 0 {
			current = first
		} else {
			current = second
		}
	}
	return root
}
