// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// Floating opts a tag out of tiling: it returns a childless root for
// every window count. A tree with no leaves tells the compositor that
// no window is managed — all windows on the tag float.
type Floating struct{}

// Layout returns a childless root regardless of windowCount.
func (Floating) Layout(windowCount int) *Node {
	return &Node{Label: "builtin.floating"}
}
