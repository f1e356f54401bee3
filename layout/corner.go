// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// CornerLoc is the corner of the output the corner window occupies.
type CornerLoc int

const (
	CornerTopLeft CornerLoc = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// String returns the corner name for logging and diagnostics.
func (l CornerLoc) String() string {
	switch l {
	case CornerTopRight:
		return "top_right"
	case CornerBottomLeft:
		return "bottom_left"
	case CornerBottomRight:
		return "bottom_right"
	default:
		return "top_left"
	}
}

// isTop reports whether the corner sits on the top edge.
func (l CornerLoc) isTop() bool {
	return l == CornerTopLeft || l == CornerTopRight
}

// isLeft reports whether the corner sits on the left edge.
func (l CornerLoc) isLeft() bool {
	return l == CornerTopLeft || l == CornerBottomLeft
}

// Corner keeps one large window pinned in a corner, flanked by a
// vertical stack along the opposite edge and a horizontal stack along
// the opposite rim. Windows after the first alternate between the two
// stacks.
type Corner struct {
	// Loc is the corner the large window occupies.
	Loc CornerLoc

	// WidthFactor is the share of the output width the corner side
	// takes, clamped to [0.1, 0.9].
	WidthFactor float64

	// HeightFactor is the share of that side's height the corner
	// window takes, clamped to [0.1, 0.9].
	HeightFactor float64

	// OuterGaps is spacing around the whole arrangement.
	OuterGaps Gaps

	// InnerGaps is spacing around each window.
	InnerGaps Gaps
}

// Layout builds the corner tree.
func (c Corner) Layout(windowCount int) *Node {
	root := &Node{
		Label: "builtin.corner",
		Dir:   Row,
		Gaps:  c.OuterGaps,
	}
	if windowCount <= 0 {
		return root
	}
	if windowCount == 1 {
		root.Children = []*Node{{Gaps: c.InnerGaps}}
		return root
	}

	widthFactor := clampFactor(c.WidthFactor)
	heightFactor := clampFactor(c.HeightFactor)

	// Windows after the corner alternate between the vertical stack
	// and the horizontal stack, vertical first.
	remaining := windowCount - 1
	verticalCount := (remaining + 1) / 2
	horizontalCount := remaining / 2

	vertical := Line{Dir: Column, InnerGaps: c.InnerGaps}.Layout(verticalCount)
	vertical.Label = "builtin.corner.vertical"
	vertical.SizeProportion = (1 - widthFactor) * 10

	var composite *Node
	if horizontalCount == 0 {
		// Nothing to flank the corner with on its own side yet: the
		// corner window takes the whole side, no nested split.
		composite = &Node{
			Label:          "builtin.corner.corner",
			Gaps:           c.InnerGaps,
			SizeProportion: widthFactor * 10,
		}
	} else {
		corner := &Node{
			Label:          "builtin.corner.corner",
			Gaps:           c.InnerGaps,
			SizeProportion: heightFactor * 10,
		}
		horizontal := Line{Dir: Row, InnerGaps: c.InnerGaps}.Layout(horizontalCount)
		horizontal.Label = "builtin.corner.horizontal"
		horizontal.SizeProportion = (1 - heightFactor) * 10

		composite = &Node{
			Label:          "builtin.corner.side",
			Dir:            Column,
			SizeProportion: widthFactor * 10,
		}
		if c.Loc.isTop() {
			composite.Children = []*Node{corner, horizontal}
		} else {
			composite.Children = []*Node{horizontal, corner}
		}
	}

	if c.Loc.isLeft() {
		root.Children = []*Node{composite, vertical}
	} else {
		root.Children = []*Node{vertical, composite}
	}

	// Alternate new windows between the two root branches regardless
	// of traversal indices: even window indices take one branch, odd
	// the other.
	overrides := make(map[int][]int, windowCount)
	for i := 0; i < windowCount; i++ {
		overrides[i] = []int{i % 2}
	}
	root.TraversalOverrides = overrides

	return root
}
