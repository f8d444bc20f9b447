// Package cell wraps the H3 geospatial cell hierarchy with the pure
// functions the pruning policy and search engine need: resolution
// lookup, ancestor-at-resolution, lowest common ancestor, and the
// parent-containment check used to gate expansion under pruning.
package cell

import (
	h3 "github.com/uber/h3-go/v4"
)

// Cell identifies a region in the hierarchy. 0 means "no cell".
type Cell uint64

// NoCell is the sentinel for "unknown cell".
const NoCell Cell = 0

// NoResolution is returned for a cell with no defined resolution.
const NoResolution = -1

// Resolution returns the integer resolution of c, or NoResolution for
// cell 0.
func Resolution(c Cell) int {
	if c == NoCell {
		return NoResolution
	}
	return h3.Cell(c).Resolution()
}

// Parent returns the ancestor of c at resolution r. If r is equal to or
// finer than c's own resolution (r >= Resolution(c)), c is returned
// unchanged. If the underlying
// hierarchy cannot resolve the ancestor (malformed cell, invalid
// resolution), it returns NoCell.
func Parent(c Cell, r int) Cell {
	if c == NoCell || r < 0 {
		return NoCell
	}
	cur := Resolution(c)
	if r >= cur {
		return c
	}
	p := h3.Cell(c).Parent(r)
	if p == 0 {
		return NoCell
	}
	return Cell(p)
}

// LCA returns the lowest common ancestor of a and b: coarsen the deeper
// cell to the other's resolution, then climb both in lockstep until
// they match or resolution 0 is reached. Returns NoCell if they never
// meet.
func LCA(a, b Cell) Cell {
	if a == NoCell || b == NoCell {
		return NoCell
	}

	res_a := Resolution(a)
	res_b := Resolution(b)
	min_res := res_a
	if res_b < min_res {
		min_res = res_b
	}

	c1 := a
	if res_a > min_res {
		c1 = Parent(a, min_res)
	}
	c2 := b
	if res_b > min_res {
		c2 = Parent(b, min_res)
	}

	for c1 != c2 && min_res > 0 {
		min_res--
		c1 = Parent(c1, min_res)
		c2 = Parent(c2, min_res)
	}

	if c1 == c2 {
		return c1
	}
	return NoCell
}

// ParentCheck reports whether node_cell's ancestor at high_res equals
// high_cell. high_cell == 0 or high_res < 0 means no pruning is active,
// so the check trivially succeeds. node_cell == 0 never matches. A
// high_res finer than node_cell's own resolution can never match
// either, since the node sits at a coarser level than the constraint
// demands.
func ParentCheck(node_cell, high_cell Cell, high_res int) bool {
	if high_cell == NoCell || high_res < 0 {
		return true
	}
	if node_cell == NoCell {
		return false
	}
	if high_res > Resolution(node_cell) {
		return false
	}
	return Parent(node_cell, high_res) == high_cell
}
