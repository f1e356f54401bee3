// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

// Package layout implements loom's layout trees: recursive proportional
// subdivisions of an output that tell the compositor how to tile a set
// of windows. A tree is pure data — no geometry, no pixels. The
// compositor walks it, splits the output rectangle according to each
// node's direction and size proportion, applies gaps, and places one
// window per leaf.
//
// The package is organized around the generation data flow:
//
//   - node.go: the Node tree model shared by all generators
//   - line.go, masterstack.go, dwindle.go, spiral.go, corner.go,
//     fair.go, floating.go: the builtin generators, each mapping a
//     window count to a tree
//   - cycle.go: the stateful per-tag generator selector
//
// Generators are pure: the same options and window count always produce
// the same tree. All state (which generator a tag currently uses) lives
// in Cycle. Trees are built fresh per request and discarded after
// serialization; node labels and traversal indices are the only handles
// the compositor uses to carry per-window sizing across successive
// trees.
package layout
