package routing

import (
	"math"

	"github.com/Khoshkhah/routing-engine/cell"
	"github.com/Khoshkhah/routing-engine/graph"
	"github.com/Khoshkhah/routing-engine/shortcut"
	. "github.com/Khoshkhah/routing-engine/util"
)

//*******************************************
// query-local search state
//*******************************************

// searchState owns everything a single query allocates and releases:
// two distance tables, two parent tables, two priority queues. Nothing
// here is shared between queries, so concurrent queries against one
// immutable *graph.Store need no locking.
type searchState struct {
	dist_fwd Dict[uint32, float64]
	dist_bwd Dict[uint32, float64]

	parent_fwd Dict[uint32, uint32]
	parent_bwd Dict[uint32, uint32]

	pq_fwd PriorityQueue[uint32, float64]
	pq_bwd PriorityQueue[uint32, float64]

	best    float64
	meeting uint32
	found   bool
}

func newSearchState() *searchState {
	return &searchState{
		dist_fwd:   NewDict[uint32, float64](64),
		dist_bwd:   NewDict[uint32, float64](64),
		parent_fwd: NewDict[uint32, uint32](64),
		parent_bwd: NewDict[uint32, uint32](64),
		pq_fwd:     NewPriorityQueue[uint32, float64](64),
		pq_bwd:     NewPriorityQueue[uint32, float64](64),
		best:       math.Inf(1),
	}
}

// popIfAny pops the queue's top and reports the item, its popped
// distance, and whether anything was popped.
func popIfAny(pq *PriorityQueue[uint32, float64]) (uint32, float64, bool) {
	_, priority, ok := pq.Peek()
	if !ok {
		return 0, 0, false
	}
	item, _ := pq.Dequeue()
	return item, priority, true
}

// stale reports whether a popped distance d is outdated with respect to
// the table's current best-known distance for u — classic lazy-deletion
// Dijkstra: relaxation never removes old heap entries, the pop site
// discards them instead.
func stale(dist Dict[uint32, float64], u uint32, d float64) bool {
	cur, ok := dist.Get(u)
	return ok && d > cur
}

// updateBest records a new best meeting cost if it improves on the
// current one.
func (s *searchState) updateBest(at uint32, total float64) {
	if total < s.best {
		s.best = total
		s.meeting = at
		s.found = true
	}
}

// reconstruct walks parent_fwd from the meeting node back to its origin
// (prepending), then parent_bwd from the meeting node to its origin
// (appending).
func (s *searchState) reconstruct() []uint32 {
	fwd_part := NewList[uint32](8)
	curr := s.meeting
	for {
		fwd_part.Add(curr)
		p := s.parent_fwd[curr]
		if p == curr {
			break
		}
		curr = p
	}

	path := NewList[uint32](fwd_part.Length() + 4)
	for i := fwd_part.Length() - 1; i >= 0; i-- {
		path.Add(fwd_part[i])
	}

	curr = s.meeting
	for {
		p := s.parent_bwd[curr]
		if p == curr {
			break
		}
		curr = p
		path.Add(curr)
	}

	return []uint32(path)
}

//*******************************************
// classic query (no geospatial pruning)
//*******************************************

// QueryClassic runs the unpruned bidirectional search: forward admits
// only Up shortcuts, backward admits Down and Lateral. Meeting is tested
// inline at each successful relaxation.
func QueryClassic(store *graph.Store, source, target uint32) Result {
	if source == target {
		return Result{Distance: store.EdgeCost(source), Path: []uint32{source}, Reachable: true}
	}

	s := newSearchState()
	s.dist_fwd[source] = 0
	s.parent_fwd[source] = source
	s.pq_fwd.Enqueue(source, 0)

	target_cost := store.EdgeCost(target)
	s.dist_bwd[target] = target_cost
	s.parent_bwd[target] = target
	s.pq_bwd.Enqueue(target, target_cost)

	for s.pq_fwd.Length() > 0 || s.pq_bwd.Length() > 0 {
		classicForwardStep(store, s)
		classicBackwardStep(store, s)

		if s.pq_fwd.Length() > 0 && s.pq_bwd.Length() > 0 {
			_, fd, _ := s.pq_fwd.Peek()
			_, bd, _ := s.pq_bwd.Peek()
			if fd >= s.best && bd >= s.best {
				break
			}
		} else if s.pq_fwd.Length() == 0 && s.pq_bwd.Length() == 0 {
			break
		}
	}

	if !s.found {
		return unreachable()
	}
	return Result{Distance: s.best, Path: s.reconstruct(), Reachable: true}
}

func classicForwardStep(store *graph.Store, s *searchState) {
	u, d, ok := popIfAny(&s.pq_fwd)
	if !ok {
		return
	}
	if stale(s.dist_fwd, u, d) || d >= s.best {
		return
	}

	for _, sc := range store.Forward(u) {
		if sc.Inside != shortcut.Up {
			continue
		}
		nd := d + sc.Cost
		if cur, ok := s.dist_fwd.Get(sc.To); !ok || nd < cur {
			s.dist_fwd[sc.To] = nd
			s.parent_fwd[sc.To] = u
			s.pq_fwd.Enqueue(sc.To, nd)

			if bd, ok := s.dist_bwd.Get(sc.To); ok {
				s.updateBest(sc.To, nd+bd)
			}
		}
	}
}

func classicBackwardStep(store *graph.Store, s *searchState) {
	u, d, ok := popIfAny(&s.pq_bwd)
	if !ok {
		return
	}
	if stale(s.dist_bwd, u, d) || d >= s.best {
		return
	}

	for _, sc := range store.Backward(u) {
		if sc.Inside != shortcut.Down && sc.Inside != shortcut.Lateral {
			continue
		}
		nd := d + sc.Cost
		if cur, ok := s.dist_bwd.Get(sc.From); !ok || nd < cur {
			s.dist_bwd[sc.From] = nd
			s.parent_bwd[sc.From] = u
			s.pq_bwd.Enqueue(sc.From, nd)

			if fd, ok := s.dist_fwd.Get(sc.From); ok {
				s.updateBest(sc.From, fd+nd)
			}
		}
	}
}

//*******************************************
// pruned query (geospatial pruning)
//*******************************************

// QueryPruned runs the geospatially pruned bidirectional search: the
// meeting test runs at pop time (before the staleness/bound guard), and
// admissibility is gated by cell.ParentCheck against the query's high
// cell.
func QueryPruned(store *graph.Store, source, target uint32) Result {
	if source == target {
		return Result{Distance: store.EdgeCost(source), Path: []uint32{source}, Reachable: true}
	}

	high := ComputeHighCell(store, source, target)

	s := newSearchState()
	s.dist_fwd[source] = 0
	s.parent_fwd[source] = source
	s.pq_fwd.Enqueue(source, 0)

	target_cost := store.EdgeCost(target)
	s.dist_bwd[target] = target_cost
	s.parent_bwd[target] = target
	s.pq_bwd.Enqueue(target, target_cost)

	for s.pq_fwd.Length() > 0 || s.pq_bwd.Length() > 0 {
		prunedForwardStep(store, s, high)
		prunedBackwardStep(store, s, high)

		if s.best < math.Inf(1) {
			fwd_can := false
			if _, p, ok := s.pq_fwd.Peek(); ok && p < s.best {
				fwd_can = true
			}
			bwd_can := false
			if _, p, ok := s.pq_bwd.Peek(); ok && p < s.best {
				bwd_can = true
			}
			if !fwd_can && !bwd_can {
				break
			}
		} else if s.pq_fwd.Length() == 0 && s.pq_bwd.Length() == 0 {
			break
		}
	}

	if !s.found {
		return unreachable()
	}
	return Result{Distance: s.best, Path: s.reconstruct(), Reachable: true}
}

func prunedForwardStep(store *graph.Store, s *searchState, high HighCell) {
	u, d, ok := popIfAny(&s.pq_fwd)
	if !ok {
		return
	}

	if bd, ok := s.dist_bwd.Get(u); ok {
		s.updateBest(u, d+bd)
	}

	if stale(s.dist_fwd, u, d) || d >= s.best {
		return
	}

	if !cell.ParentCheck(store.EdgeCell(u), high.Cell, high.Res) {
		return
	}

	for _, sc := range store.Forward(u) {
		if sc.Inside != shortcut.Up {
			continue
		}
		nd := d + sc.Cost
		if cur, ok := s.dist_fwd.Get(sc.To); !ok || nd < cur {
			s.dist_fwd[sc.To] = nd
			s.parent_fwd[sc.To] = u
			s.pq_fwd.Enqueue(sc.To, nd)
		}
	}
}

func prunedBackwardStep(store *graph.Store, s *searchState, high HighCell) {
	u, d, ok := popIfAny(&s.pq_bwd)
	if !ok {
		return
	}

	if fd, ok := s.dist_fwd.Get(u); ok {
		s.updateBest(u, fd+d)
	}

	if stale(s.dist_bwd, u, d) || d >= s.best {
		return
	}

	u_cell := store.EdgeCell(u)
	check := cell.ParentCheck(u_cell, high.Cell, high.Res)
	at_high := u_cell == high.Cell

	for _, sc := range store.Backward(u) {
		if !backwardAdmissiblePruned(sc.Inside, check, at_high) {
			continue
		}
		nd := d + sc.Cost
		if cur, ok := s.dist_bwd.Get(sc.From); !ok || nd < cur {
			s.dist_bwd[sc.From] = nd
			s.parent_bwd[sc.From] = u
			s.pq_bwd.Enqueue(sc.From, nd)
		}
	}
}

// backwardAdmissiblePruned implements the admission table for the
// backward direction under pruning.
func backwardAdmissiblePruned(inside shortcut.Inside, check, at_high bool) bool {
	switch inside {
	case shortcut.Down:
		return check
	case shortcut.Lateral:
		return at_high || !check
	case shortcut.Boundary:
		return !check
	default: // Up never admissible backward
		return false
	}
}

//*******************************************
// multi-endpoint query
//*******************************************

// WeightedEdge pairs an edge with a starting distance already accrued
// before it — e.g. a partial cost from an access leg outside this
// graph.
type WeightedEdge struct {
	Edge uint32
	Dist float64
}

// QueryMulti runs the multi-endpoint search: several weighted sources
// seed the forward frontier, several weighted targets seed the backward
// one, both admissibility tables match the classic variant (pruning is
// not offered here — there is no single source/target pair to derive a
// high cell from), and once best is finite a queue whose top can no
// longer improve is drained outright rather than merely skipped,
// accelerating convergence.
func QueryMulti(store *graph.Store, sources, targets []WeightedEdge) Result {
	s := newSearchState()

	for _, src := range sources {
		if _, ok := store.EdgeMeta(src.Edge); !ok {
			continue
		}
		if cur, ok := s.dist_fwd.Get(src.Edge); !ok || src.Dist < cur {
			s.dist_fwd[src.Edge] = src.Dist
			s.parent_fwd[src.Edge] = src.Edge
			s.pq_fwd.Enqueue(src.Edge, src.Dist)
		}
	}
	for _, tgt := range targets {
		if _, ok := store.EdgeMeta(tgt.Edge); !ok {
			continue
		}
		d := tgt.Dist + store.EdgeCost(tgt.Edge)
		if cur, ok := s.dist_bwd.Get(tgt.Edge); !ok || d < cur {
			s.dist_bwd[tgt.Edge] = d
			s.parent_bwd[tgt.Edge] = tgt.Edge
			s.pq_bwd.Enqueue(tgt.Edge, d)
		}
	}

	for s.pq_fwd.Length() > 0 || s.pq_bwd.Length() > 0 {
		multiForwardStep(store, s)
		multiBackwardStep(store, s)

		if s.best < math.Inf(1) {
			if _, p, ok := s.pq_fwd.Peek(); ok && p >= s.best {
				s.pq_fwd.Clear()
			}
			if _, p, ok := s.pq_bwd.Peek(); ok && p >= s.best {
				s.pq_bwd.Clear()
			}
		}
	}

	if !s.found {
		return unreachable()
	}
	return Result{Distance: s.best, Path: s.reconstruct(), Reachable: true}
}

func multiForwardStep(store *graph.Store, s *searchState) {
	u, d, ok := popIfAny(&s.pq_fwd)
	if !ok {
		return
	}

	if bd, ok := s.dist_bwd.Get(u); ok {
		s.updateBest(u, d+bd)
	}

	cur, has := s.dist_fwd.Get(u)
	if d >= s.best || !has || d > cur {
		return
	}

	for _, sc := range store.Forward(u) {
		if sc.Inside != shortcut.Up {
			continue
		}
		nd := d + sc.Cost
		if cur, ok := s.dist_fwd.Get(sc.To); !ok || nd < cur {
			s.dist_fwd[sc.To] = nd
			s.parent_fwd[sc.To] = u
			s.pq_fwd.Enqueue(sc.To, nd)
		}
	}
}

func multiBackwardStep(store *graph.Store, s *searchState) {
	u, d, ok := popIfAny(&s.pq_bwd)
	if !ok {
		return
	}

	if fd, ok := s.dist_fwd.Get(u); ok {
		s.updateBest(u, fd+d)
	}

	cur, has := s.dist_bwd.Get(u)
	if d >= s.best || !has || d > cur {
		return
	}

	for _, sc := range store.Backward(u) {
		if sc.Inside != shortcut.Down && sc.Inside != shortcut.Lateral {
			continue
		}
		nd := d + sc.Cost
		if cur, ok := s.dist_bwd.Get(sc.From); !ok || nd < cur {
			s.dist_bwd[sc.From] = nd
			s.parent_bwd[sc.From] = u
			s.pq_bwd.Enqueue(sc.From, nd)
		}
	}
}
