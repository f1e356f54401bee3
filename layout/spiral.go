// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// Spiral is Dwindle's rotating sibling: the same alternating split
// chain, but the descent direction reverses every two splits, so
// successive windows wind around the center instead of shrinking into
// one corner.
type Spiral struct {
	// OuterGaps is spacing around the whole arrangement.
	OuterGaps Gaps

	// InnerGaps is spacing around each window.
	InnerGaps Gaps
}

// Layout builds the spiral chain.
func (s Spiral) Layout(windowCount int) *Node {
	return splitChain("builtin.spiral", windowCount, s.OuterGaps, s.InnerGaps, spiralStep)
}
