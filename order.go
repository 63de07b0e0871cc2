package coverflow

import "math"

// DrawPass is the result of resolving the draw order of the visible items.
type DrawPass struct {
	// Ranks[i] is the draw position of items[i]. Rank 0 draws first and
	// len(items)-1 draws last, on top of everything else.
	Ranks []int
	// Center is the index into items of the center item, or -1.
	Center int
	// Offset is the signed distance in pixels from the viewport center to
	// the center item. Zero when no item claimed the center.
	Offset float64
}

// DrawOrder picks the center item of a draw pass and hands out draw ranks.
// Call Reset at the start of every pass, then Rank once per item in
// increasing index order (left to right).
//
// The first item that overlaps the viewport center, or that lies at or past
// it, becomes the center item and is drawn last. Everything else keeps its
// natural order with the center item's slot removed.
type DrawOrder struct {
	claimed bool
	index   int
	offset  float64
}

// Reset forgets the center item of the previous pass.
func (o *DrawOrder) Reset() {
	*o = DrawOrder{}
}

// Rank returns the draw position of the item at iteration index i out of
// count. Asking again for an index already ranked in this pass returns the
// same answer.
func (o *DrawOrder) Rank(v View, count, i int, it Item) int {
	if o.claimed {
		switch {
		case i == o.index:
			return count - 1
		case i > o.index:
			return i - 1
		default:
			return i
		}
	}

	d := it.Center - v.Center()
	sz := v.Spacing * it.Width / 2
	if math.Abs(d) < sz || d >= 0 {
		o.claimed = true
		o.index = i
		o.offset = d
		return count - 1
	}
	return i
}

// Center returns the iteration index and offset of this pass's center item.
func (o *DrawOrder) Center() (index int, offset float64, ok bool) {
	if !o.claimed {
		return -1, 0, false
	}
	return o.index, o.offset, true
}

// CenterOffset returns the recorded center offset, or 0 if no item claimed
// the center yet.
func (o *DrawOrder) CenterOffset() float64 {
	return o.offset
}

// ResolveDrawOrder runs a complete pass over items, which must be sorted left
// to right.
func ResolveDrawOrder(v View, items []Item) DrawPass {
	var o DrawOrder
	return resolveInto(&o, v, items, nil)
}

// resolveInto runs a pass with o, reusing ranks when it has the capacity.
func resolveInto(o *DrawOrder, v View, items []Item, ranks []int) DrawPass {
	o.Reset()
	if cap(ranks) < len(items) {
		ranks = make([]int, len(items))
	}
	ranks = ranks[:len(items)]
	for i := range items {
		ranks[i] = o.Rank(v, len(items), i, items[i])
	}
	idx, off, ok := o.Center()
	if !ok {
		idx = -1
	}
	return DrawPass{Ranks: ranks, Center: idx, Offset: off}
}
