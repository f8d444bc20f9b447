// Package graph holds the immutable, in-memory store of shortcuts and
// edge metadata the search engine queries against: contiguous shortcut
// records plus forward/backward adjacency indices keyed by edge id.
// Slice-backed storage, Dict-keyed adjacency accessors, no mutation
// surface once built.
package graph

import (
	"github.com/Khoshkhah/routing-engine/cell"
	"github.com/Khoshkhah/routing-engine/shortcut"
	. "github.com/Khoshkhah/routing-engine/util"
)

//*******************************************
// store
//*******************************************

// Store is immutable after Build: every adjacency entry references a
// valid position in shortcuts, and no method mutates either slice.
type Store struct {
	shortcuts Array[shortcut.Shortcut]
	meta      Dict[uint32, shortcut.EdgeMeta]

	fwd_adj Dict[uint32, List[int32]]
	bwd_adj Dict[uint32, List[int32]]
}

// NewBuilder starts an empty store under construction. Call AddShortcut
// / SetEdgeMeta to populate it, then Build to seal it.
func NewBuilder() *Builder {
	return &Builder{
		shortcuts: NewList[shortcut.Shortcut](1024),
		meta:      NewDict[uint32, shortcut.EdgeMeta](1024),
	}
}

type Builder struct {
	shortcuts List[shortcut.Shortcut]
	meta      Dict[uint32, shortcut.EdgeMeta]
}

// AddShortcut appends a shortcut record. Adjacency indices are built
// once, in Build, rather than incrementally, since the loader may add
// shortcuts from several chunked files before any query can run.
func (self *Builder) AddShortcut(sc shortcut.Shortcut) {
	self.shortcuts.Add(sc)
}

func (self *Builder) SetEdgeMeta(edge uint32, meta shortcut.EdgeMeta) {
	self.meta[edge] = meta
}

func (self *Builder) ShortcutCount() int {
	return self.shortcuts.Length()
}
func (self *Builder) EdgeMetaCount() int {
	return self.meta.Length()
}

// Build seals the store: from this point on no AddShortcut/SetEdgeMeta
// call is permitted, and the returned Store is safe to share across
// concurrently running queries.
func (self *Builder) Build() *Store {
	shortcuts := Array[shortcut.Shortcut](self.shortcuts)

	fwd := NewDict[uint32, List[int32]](shortcuts.Length())
	bwd := NewDict[uint32, List[int32]](shortcuts.Length())
	for i := 0; i < shortcuts.Length(); i++ {
		sc := shortcuts[i]
		fwd_list := fwd[sc.From]
		fwd_list.Add(int32(i))
		fwd[sc.From] = fwd_list

		bwd_list := bwd[sc.To]
		bwd_list.Add(int32(i))
		bwd[sc.To] = bwd_list
	}

	return &Store{
		shortcuts: shortcuts,
		meta:      self.meta,
		fwd_adj:   fwd,
		bwd_adj:   bwd,
	}
}

//*******************************************
// read accessors
//*******************************************

func (self *Store) ShortcutCount() int {
	return self.shortcuts.Length()
}
func (self *Store) EdgeCount() int {
	return self.meta.Length()
}

// EdgeCost returns the metadata cost of edge e, or 0 if unknown.
func (self *Store) EdgeCost(e uint32) float64 {
	m, ok := self.meta.Get(e)
	if !ok {
		return 0
	}
	return m.Cost
}

// EdgeCell returns the incoming_cell of edge e, or 0 if unknown.
func (self *Store) EdgeCell(e uint32) cell.Cell {
	m, ok := self.meta.Get(e)
	if !ok {
		return cell.NoCell
	}
	return m.IncomingCell
}

// EdgeMeta returns the full metadata record for e and whether it exists.
func (self *Store) EdgeMeta(e uint32) (shortcut.EdgeMeta, bool) {
	return self.meta.Get(e)
}

// Forward returns the shortcut records where From == e, the empty slice
// if e has none.
func (self *Store) Forward(e uint32) []shortcut.Shortcut {
	return self.collect(self.fwd_adj, e)
}

// Backward returns the shortcut records where To == e, the empty slice
// if e has none.
func (self *Store) Backward(e uint32) []shortcut.Shortcut {
	return self.collect(self.bwd_adj, e)
}

func (self *Store) collect(adj Dict[uint32, List[int32]], e uint32) []shortcut.Shortcut {
	positions, ok := adj.Get(e)
	if !ok {
		return nil
	}
	out := make([]shortcut.Shortcut, positions.Length())
	for i, pos := range positions {
		out[i] = self.shortcuts[pos]
	}
	return out
}
