// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// MasterSide is the screen side the master area occupies.
type MasterSide int

const (
	MasterLeft MasterSide = iota
	MasterRight
	MasterTop
	MasterBottom
)

// String returns the side name for logging and diagnostics.
func (s MasterSide) String() string {
	switch s {
	case MasterRight:
		return "right"
	case MasterTop:
		return "top"
	case MasterBottom:
		return "bottom"
	default:
		return "left"
	}
}

// MasterStack divides the output into a master area holding the first
// few windows and a stack area holding the rest, the classic tiling-wm
// arrangement.
type MasterStack struct {
	// Side is where the master area sits. Left and right split the
	// output into a row; top and bottom split it into a column.
	Side MasterSide

	// Factor is the share of the output the master area takes,
	// clamped to [0.1, 0.9].
	Factor float64

	// Count is how many windows the master area holds. Clamped below
	// to 1 and above to the window count.
	Count int

	// Reversed passes through to the nested line runs (windows grow
	// from the far end of each area) and swaps which area new windows
	// default into.
	Reversed bool

	// OuterGaps is spacing around the whole arrangement.
	OuterGaps Gaps

	// InnerGaps is spacing around each window.
	InnerGaps Gaps
}

// Layout builds the master/stack tree. When every window fits in the
// master area the root has exactly one child.
func (m MasterStack) Layout(windowCount int) *Node {
	rootDir := Row
	if m.Side == MasterTop || m.Side == MasterBottom {
		rootDir = Column
	}
	root := &Node{
		Label: "builtin.master_stack",
		Dir:   rootDir,
		Gaps:  m.OuterGaps,
	}
	if windowCount <= 0 {
		return root
	}

	factor := clampFactor(m.Factor)
	masterCount := m.Count
	if masterCount < 1 {
		masterCount = 1
	}
	if masterCount > windowCount {
		masterCount = windowCount
	}

	// Each area lays its windows out along the axis orthogonal to the
	// root split: a left/right master stacks windows vertically inside
	// the area, a top/bottom master lines them up horizontally.
	area := Line{
		Dir:       rootDir.Orthogonal(),
		Reversed:  m.Reversed,
		InnerGaps: m.InnerGaps,
	}

	masterIndex, stackIndex := 0, 1
	if m.Reversed {
		masterIndex, stackIndex = 1, 0
	}

	master := area.Layout(masterCount)
	master.Label = "builtin.master_stack.master"
	master.TraversalIndex = masterIndex
	master.SizeProportion = factor * 10

	if windowCount <= masterCount {
		root.Children = []*Node{master}
		return root
	}

	stack := area.Layout(windowCount - masterCount)
	stack.Label = "builtin.master_stack.stack"
	stack.TraversalIndex = stackIndex
	stack.SizeProportion = (1 - factor) * 10

	if m.Side == MasterLeft || m.Side == MasterTop {
		root.Children = []*Node{master, stack}
	} else {
		root.Children = []*Node{stack, master}
	}
	return root
}
