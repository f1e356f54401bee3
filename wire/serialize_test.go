// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"testing"

	"github.com/loomwm/loom/layout"
	"github.com/loomwm/loom/lib/codec"
)

func TestFromTreeDefaults(t *testing.T) {
	out := FromTree(&layout.Node{})

	if out.TraversalIndex != 0 {
		t.Errorf("traversal index = %d, want 0", out.TraversalIndex)
	}
	if out.Style.SizeProportion != 1.0 {
		t.Errorf("size proportion = %v, want 1.0 (unset default)", out.Style.SizeProportion)
	}
	if out.Style.FlexDir != FlexDirRow {
		t.Errorf("flex dir = %v, want ROW", out.Style.FlexDir)
	}
	if out.Style.Gaps != (Gaps{}) {
		t.Errorf("gaps = %+v, want zero on all sides", out.Style.Gaps)
	}
	if len(out.Children) != 0 {
		t.Errorf("got %d children, want 0", len(out.Children))
	}
	if out.TraversalOverrides != nil {
		t.Errorf("overrides = %v, want nil", out.TraversalOverrides)
	}
}

func TestFromTreeUniformGaps(t *testing.T) {
	out := FromTree(&layout.Node{Gaps: layout.UniformGaps(3.5)})

	want := Gaps{Left: 3.5, Right: 3.5, Top: 3.5, Bottom: 3.5}
	if out.Style.Gaps != want {
		t.Errorf("gaps = %+v, want %+v", out.Style.Gaps, want)
	}
}

func TestFromTreeStructure(t *testing.T) {
	tree := layout.MasterStack{Side: layout.MasterLeft, Factor: 0.5, Count: 1}.Layout(3)
	out := FromTree(tree)

	if out.Label != "builtin.master_stack" {
		t.Errorf("root label = %q", out.Label)
	}
	if len(out.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(out.Children))
	}

	master, stack := out.Children[0], out.Children[1]
	if master.Style.SizeProportion != 5.0 || stack.Style.SizeProportion != 5.0 {
		t.Errorf("sizes = %v/%v, want 5.0/5.0", master.Style.SizeProportion, stack.Style.SizeProportion)
	}
	if master.TraversalIndex != 0 || stack.TraversalIndex != 1 {
		t.Errorf("traversal indices = %d/%d, want 0/1", master.TraversalIndex, stack.TraversalIndex)
	}
	if master.Style.FlexDir != FlexDirColumn {
		t.Errorf("master flex dir = %v, want COLUMN", master.Style.FlexDir)
	}
	// Leaves are unset in the tree and pick up the 1.0 default.
	for i, leaf := range stack.Children {
		if leaf.Style.SizeProportion != 1.0 {
			t.Errorf("stack leaf %d size = %v, want 1.0", i, leaf.Style.SizeProportion)
		}
	}
}

func TestFromTreeOverrides(t *testing.T) {
	tree := &layout.Node{
		TraversalOverrides: map[int][]int{
			0: {0},
			2: {1, 0},
		},
	}
	out := FromTree(tree)

	if len(out.TraversalOverrides) != 2 {
		t.Fatalf("got %d overrides, want 2", len(out.TraversalOverrides))
	}
	if got := out.TraversalOverrides[0].Overrides; len(got) != 1 || got[0] != 0 {
		t.Errorf("override 0 = %v, want [0]", got)
	}
	got := out.TraversalOverrides[2].Overrides
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("override 2 = %v, want [1 0]", got)
	}
}

func TestFromTreeClampsNegativeIndices(t *testing.T) {
	tree := &layout.Node{
		TraversalIndex:     -3,
		TraversalOverrides: map[int][]int{0: {-1}},
	}
	out := FromTree(tree)

	if out.TraversalIndex != 0 {
		t.Errorf("traversal index = %d, want 0", out.TraversalIndex)
	}
	if got := out.TraversalOverrides[0].Overrides[0]; got != 0 {
		t.Errorf("override choice = %d, want 0", got)
	}
}

func TestRequestEmitsZeroIDs(t *testing.T) {
	root := FromTree(&layout.Node{})
	request := Request{
		Kind:     KindTreeResponse,
		RootNode: &root,
	}

	data, err := codec.Marshal(request)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	// Compositors look these keys up rather than decoding into a
	// defaults-bearing struct, so zero values must still be present.
	for _, key := range []string{"request_id", "tree_id"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("encoded request omits %q", key)
		}
	}
}

func TestRequestRoundTrip(t *testing.T) {
	tree := layout.Line{}.Layout(2)
	root := FromTree(tree)
	request := Request{
		Kind:       KindTreeResponse,
		OutputName: "DP-1",
		RequestID:  7,
		TreeID:     10000005,
		RootNode:   &root,
	}

	data, err := codec.Marshal(request)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded Request
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Kind != KindTreeResponse || decoded.OutputName != "DP-1" {
		t.Errorf("decoded header = %q/%q", decoded.Kind, decoded.OutputName)
	}
	if decoded.RequestID != 7 || decoded.TreeID != 10000005 {
		t.Errorf("decoded ids = %d/%d, want 7/10000005", decoded.RequestID, decoded.TreeID)
	}
	if decoded.RootNode == nil || len(decoded.RootNode.Children) != 2 {
		t.Fatalf("decoded root = %+v, want 2 children", decoded.RootNode)
	}
}
