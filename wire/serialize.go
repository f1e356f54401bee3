// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "github.com/loomwm/loom/layout"

// FromTree converts a layout tree into its wire form, depth first,
// applying the wire defaults for unset fields: traversal index 0,
// size proportion 1.0, direction ROW, gaps 0 on all sides. The sparse
// traversal-override map is materialized into explicit per-index
// records. Pure: no shared state, never fails — malformed or absent
// optional fields resolve to defaults rather than errors.
func FromTree(node *layout.Node) Node {
	out := Node{
		Label:          node.Label,
		TraversalIndex: clampIndex(node.TraversalIndex),
		Style: Style{
			SizeProportion: node.SizeProportion,
			FlexDir:        flexDir(node.Dir),
			Gaps: Gaps{
				Left:   node.Gaps.Left,
				Right:  node.Gaps.Right,
				Top:    node.Gaps.Top,
				Bottom: node.Gaps.Bottom,
			},
		},
	}
	if out.Style.SizeProportion == 0 {
		out.Style.SizeProportion = 1.0
	}

	if len(node.TraversalOverrides) > 0 {
		out.TraversalOverrides = make(map[uint32]TraversalOverride, len(node.TraversalOverrides))
		for windowIndex, choices := range node.TraversalOverrides {
			override := TraversalOverride{Overrides: make([]uint32, 0, len(choices))}
			for _, choice := range choices {
				override.Overrides = append(override.Overrides, clampIndex(choice))
			}
			out.TraversalOverrides[clampIndex(windowIndex)] = override
		}
	}

	if len(node.Children) > 0 {
		out.Children = make([]Node, 0, len(node.Children))
		for _, child := range node.Children {
			out.Children = append(out.Children, FromTree(child))
		}
	}
	return out
}

// flexDir maps the tree direction onto the two-valued wire enum.
func flexDir(d layout.Dir) FlexDir {
	if d == layout.Column {
		return FlexDirColumn
	}
	return FlexDirRow
}

// clampIndex converts an int index to the unsigned wire form. Negative
// values are malformed input and resolve to 0 per the permissive
// defaulting rule.
func clampIndex(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
