package routing

import (
	"github.com/Khoshkhah/routing-engine/cell"
	"github.com/Khoshkhah/routing-engine/graph"
)

// HighCell is the pruning envelope for a query: the smallest cell
// hierarchically certain to contain every cost-optimal path between a
// source and target edge.
type HighCell struct {
	Cell cell.Cell
	Res  int
}

// noPruning disables pruning: every ParentCheck against it trivially
// succeeds.
var noPruning = HighCell{Cell: cell.NoCell, Res: cell.NoResolution}

// ComputeHighCell derives the pruning envelope for a query: fetch both
// endpoints' metadata, coarsen each incoming_cell to its own lca_res,
// then take the LCA of the two coarsened cells. Missing metadata or an
// unknown cell on either side disables pruning for the query.
func ComputeHighCell(store *graph.Store, source, target uint32) HighCell {
	src_meta, ok := store.EdgeMeta(source)
	if !ok || src_meta.IncomingCell == cell.NoCell {
		return noPruning
	}
	dst_meta, ok := store.EdgeMeta(target)
	if !ok || dst_meta.IncomingCell == cell.NoCell {
		return noPruning
	}

	src_cell := src_meta.IncomingCell
	if src_meta.LCARes >= 0 {
		src_cell = cell.Parent(src_cell, src_meta.LCARes)
	}
	dst_cell := dst_meta.IncomingCell
	if dst_meta.LCARes >= 0 {
		dst_cell = cell.Parent(dst_cell, dst_meta.LCARes)
	}

	lca := cell.LCA(src_cell, dst_cell)
	if lca == cell.NoCell {
		return noPruning
	}
	return HighCell{Cell: lca, Res: cell.Resolution(lca)}
}
