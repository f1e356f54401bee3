// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// treeIDMultiplier spreads selected-index values apart when packing a
// (tag, index) pair into a single tree id. The packing collides once
// tag ids approach this magnitude; compositor tag ids are small
// sequential integers in practice, so the headroom is ample, but the
// arithmetic is done in uint64 so a pathological tag id degrades to a
// collision rather than an overflow.
const treeIDMultiplier = 9999999

// Cycle is a stateful wrapper around an ordered list of generators. It
// remembers, per tag, which generator is selected (a 1-based index,
// lazily initialized to 1), and lets callers cycle the selection
// forward or backward with wraparound.
//
// Cycle is not safe for concurrent use. The session model processes
// one layout request at a time and cycling happens from the same
// cooperative context, so no lock is carried; an embedding that
// introduces real concurrency must add its own synchronization.
type Cycle struct {
	generators []Generator
	indices    map[TagID]int

	// currentTag is the tag being laid out right now, set by the
	// generation callback for the duration of a request so that
	// Layout and CurrentTreeID know which tag's selection applies.
	currentTag    TagID
	hasCurrentTag bool
}

// NewCycle returns a Cycle over the given generators in order. The
// first generator is every tag's initial selection.
func NewCycle(generators ...Generator) *Cycle {
	return &Cycle{
		generators: generators,
		indices:    make(map[TagID]int),
	}
}

// index returns the tag's 1-based selected index, initializing an
// unseen tag to 1.
func (c *Cycle) index(tag TagID) int {
	if v, ok := c.indices[tag]; ok {
		return v
	}
	c.indices[tag] = 1
	return 1
}

// CycleForward advances the tag's selection by one, wrapping from the
// last generator back to the first.
func (c *Cycle) CycleForward(tag TagID) {
	if len(c.generators) == 0 {
		return
	}
	next := c.index(tag) + 1
	if next > len(c.generators) {
		next = 1
	}
	c.indices[tag] = next
}

// CycleBackward moves the tag's selection back by one, wrapping from
// the first generator to the last.
func (c *Cycle) CycleBackward(tag TagID) {
	if len(c.generators) == 0 {
		return
	}
	previous := c.index(tag) - 1
	if previous < 1 {
		previous = len(c.generators)
	}
	c.indices[tag] = previous
}

// Current returns the tag's selected generator, or nil when the cycle
// holds no generators.
func (c *Cycle) Current(tag TagID) Generator {
	if len(c.generators) == 0 {
		return nil
	}
	return c.generators[c.index(tag)-1]
}

// SetCurrentTag marks tag as the one being laid out. The generation
// callback calls this before delegating to Layout so that the produced
// tree id reflects the tag.
func (c *Cycle) SetCurrentTag(tag TagID) {
	c.currentTag = tag
	c.hasCurrentTag = true
}

// ClearCurrentTag forgets the current tag. Subsequent Layout calls
// return an empty tree and CurrentTreeID falls back to the tagless id.
func (c *Cycle) ClearCurrentTag() {
	c.currentTag = 0
	c.hasCurrentTag = false
}

// CurrentTreeID returns a stable identifier for the (current tag,
// selected generator) pair. The compositor uses it to retain per-leaf
// sizing across re-layouts of the same tag with the same generator.
// Always greater than zero; deterministic for an unchanged pair.
// Without a current tag the id is the constant 1, shared by every
// tagless call.
func (c *Cycle) CurrentTreeID() uint64 {
	var tagPart, indexPart uint64
	if c.hasCurrentTag {
		tagPart = uint64(c.currentTag)
		indexPart = uint64(c.index(c.currentTag))
	}
	return tagPart + indexPart*treeIDMultiplier + 1
}

// Layout produces a tree for windowCount windows using the current
// tag's selected generator. Without a current tag (or with an empty
// generator list) it returns a childless root, leaving all windows
// unmanaged for this pass.
func (c *Cycle) Layout(windowCount int) *Node {
	if c.hasCurrentTag {
		if generator := c.Current(c.currentTag); generator != nil {
			return generator.Layout(windowCount)
		}
	}
	return &Node{}
}
