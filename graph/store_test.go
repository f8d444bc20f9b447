package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Khoshkhah/routing-engine/cell"
	"github.com/Khoshkhah/routing-engine/graph"
	"github.com/Khoshkhah/routing-engine/shortcut"
)

func buildSimpleStore() *graph.Store {
	b := graph.NewBuilder()
	b.SetEdgeMeta(1, shortcut.EdgeMeta{IncomingCell: cell.Cell(100), Cost: 1.0, LCARes: -1})
	b.SetEdgeMeta(2, shortcut.EdgeMeta{IncomingCell: cell.Cell(200), Cost: 2.0, LCARes: -1})
	b.AddShortcut(shortcut.NewShortcut(1, 2, 5.0, 0, cell.Cell(100), shortcut.Up))
	b.AddShortcut(shortcut.NewShortcut(2, 1, 5.0, 0, cell.Cell(100), shortcut.Down))
	return b.Build()
}

// buildMixedInsideStore exercises all four Inside variants, not just
// Up/Down, so the adjacency index is checked against a shortcut set that
// actually contains Lateral and Boundary records.
func buildMixedInsideStore() *graph.Store {
	b := graph.NewBuilder()
	b.SetEdgeMeta(1, shortcut.EdgeMeta{IncomingCell: cell.Cell(100), Cost: 1.0, LCARes: -1})
	b.SetEdgeMeta(2, shortcut.EdgeMeta{IncomingCell: cell.Cell(200), Cost: 2.0, LCARes: -1})
	b.SetEdgeMeta(3, shortcut.EdgeMeta{IncomingCell: cell.Cell(300), Cost: 3.0, LCARes: -1})
	b.AddShortcut(shortcut.NewShortcut(1, 2, 5.0, 0, cell.Cell(100), shortcut.Lateral))
	b.AddShortcut(shortcut.NewShortcut(2, 3, 6.0, 0, cell.Cell(200), shortcut.Boundary))
	return b.Build()
}

func TestStoreCounts(t *testing.T) {
	store := buildSimpleStore()
	assert.Equal(t, 2, store.ShortcutCount())
	assert.Equal(t, 2, store.EdgeCount())
}

func TestStoreEdgeCostAndCellDefaults(t *testing.T) {
	store := buildSimpleStore()
	assert.Equal(t, 1.0, store.EdgeCost(1))
	assert.Equal(t, 0.0, store.EdgeCost(999), "unknown edge should default to zero cost")
	assert.Equal(t, cell.NoCell, store.EdgeCell(999), "unknown edge should default to NoCell")
}

func TestStoreForwardBackwardAdjacency(t *testing.T) {
	store := buildSimpleStore()

	fwd := store.Forward(1)
	if assert.Len(t, fwd, 1) {
		assert.Equal(t, uint32(2), fwd[0].To)
	}

	bwd := store.Backward(2)
	if assert.Len(t, bwd, 1) {
		assert.Equal(t, uint32(1), bwd[0].From)
	}

	got := store.Forward(2)
	if assert.Len(t, got, 1) {
		assert.Equal(t, uint32(1), got[0].To)
	}

	assert.Nil(t, store.Forward(999), "edge with no shortcuts should have nil adjacency")
}

func TestStoreEdgeMetaPresence(t *testing.T) {
	store := buildSimpleStore()

	_, ok := store.EdgeMeta(1)
	assert.True(t, ok)
	_, ok = store.EdgeMeta(999)
	assert.False(t, ok)
}

func TestStoreLateralAndBoundaryAdjacency(t *testing.T) {
	store := buildMixedInsideStore()

	fwd := store.Forward(1)
	if assert.Len(t, fwd, 1) {
		assert.Equal(t, shortcut.Lateral, fwd[0].Inside)
		assert.Equal(t, uint32(2), fwd[0].To)
	}

	bwd := store.Backward(3)
	if assert.Len(t, bwd, 1) {
		assert.Equal(t, shortcut.Boundary, bwd[0].Inside)
		assert.Equal(t, uint32(2), bwd[0].From)
	}
}
