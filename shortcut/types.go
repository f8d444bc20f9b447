package shortcut

import "github.com/Khoshkhah/routing-engine/cell"

//*******************************************
// shortcut record
//*******************************************

// Shortcut is a precomputed hierarchical arc between two edges, not two
// vertices.
type Shortcut struct {
	From    uint32
	To      uint32
	Cost    float64
	ViaEdge uint32
	Cell    cell.Cell
	Inside  Inside
}

func NewShortcut(from, to uint32, cost float64, via_edge uint32, c cell.Cell, inside Inside) Shortcut {
	return Shortcut{
		From:    from,
		To:      to,
		Cost:    cost,
		ViaEdge: via_edge,
		Cell:    c,
		Inside:  inside,
	}
}

//*******************************************
// edge metadata record
//*******************************************

// EdgeMeta is the per-edge attribute record consumed by the pruning
// policy and the search engine's cost/cell lookups.
type EdgeMeta struct {
	IncomingCell cell.Cell
	OutgoingCell cell.Cell
	LCARes       int
	Length       float64
	Cost         float64
}
