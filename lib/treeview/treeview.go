// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

// Package treeview renders a layout tree as an indented text tree for
// diagnostics. Used by loom-layout-dump to show what a generator
// produces for a given window count without involving a compositor.
package treeview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loomwm/loom/layout"
)

// Styles groups the render styles. DefaultStyles picks muted colors
// that degrade to plain text on dumb terminals; tests use PlainStyles
// for stable output.
type Styles struct {
	Label    lipgloss.Style
	Dir      lipgloss.Style
	Detail   lipgloss.Style
	Branch   lipgloss.Style
	LeafMark lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Label:    lipgloss.NewStyle().Bold(true),
		Dir:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Branch:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LeafMark: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// PlainStyles returns styles with no color or emphasis.
func PlainStyles() Styles {
	return Styles{
		Label:    lipgloss.NewStyle(),
		Dir:      lipgloss.NewStyle(),
		Detail:   lipgloss.NewStyle(),
		Branch:   lipgloss.NewStyle(),
		LeafMark: lipgloss.NewStyle(),
	}
}

// Render returns a multi-line rendering of the tree rooted at node.
func Render(node *layout.Node, styles Styles) string {
	var b strings.Builder
	renderNode(&b, node, "", "", styles)
	return b.String()
}

// renderNode writes one node line and recurses into children with
// box-drawing prefixes.
func renderNode(b *strings.Builder, node *layout.Node, linePrefix, childPrefix string, styles Styles) {
	b.WriteString(styles.Branch.Render(linePrefix))
	b.WriteString(describe(node, styles))
	b.WriteString("\n")

	for i, child := range node.Children {
		last := i == len(node.Children)-1
		branch, continuation := "├── ", "│   "
		if last {
			branch, continuation = "└── ", "    "
		}
		renderNode(b, child, childPrefix+branch, childPrefix+continuation, styles)
	}
}

// describe formats a single node: label (or a leaf marker), direction
// for containers, then the non-default details.
func describe(node *layout.Node, styles Styles) string {
	var parts []string

	if node.Label != "" {
		parts = append(parts, styles.Label.Render(node.Label))
	} else if len(node.Children) == 0 {
		parts = append(parts, styles.LeafMark.Render("window"))
	} else {
		parts = append(parts, styles.Label.Render("node"))
	}

	if len(node.Children) > 0 {
		parts = append(parts, styles.Dir.Render(node.Dir.String()))
	}

	var details []string
	if node.TraversalIndex != 0 {
		details = append(details, fmt.Sprintf("traversal=%d", node.TraversalIndex))
	}
	if node.SizeProportion != 0 && node.SizeProportion != 1.0 {
		details = append(details, fmt.Sprintf("size=%.2f", node.SizeProportion))
	}
	if node.Gaps != (layout.Gaps{}) {
		details = append(details, fmt.Sprintf("gaps=%.0f/%.0f/%.0f/%.0f",
			node.Gaps.Left, node.Gaps.Right, node.Gaps.Top, node.Gaps.Bottom))
	}
	if len(node.TraversalOverrides) > 0 {
		details = append(details, formatOverrides(node.TraversalOverrides))
	}
	if len(details) > 0 {
		parts = append(parts, styles.Detail.Render("["+strings.Join(details, " ")+"]"))
	}

	return strings.Join(parts, " ")
}

// formatOverrides renders the override map in ascending key order so
// output is stable across runs.
func formatOverrides(overrides map[int][]int) string {
	keys := make([]int, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var entries []string
	for _, k := range keys {
		choices := make([]string, 0, len(overrides[k]))
		for _, c := range overrides[k] {
			choices = append(choices, fmt.Sprintf("%d", c))
		}
		entries = append(entries, fmt.Sprintf("%d:%s", k, strings.Join(choices, ",")))
	}
	return "overrides{" + strings.Join(entries, " ") + "}"
}
