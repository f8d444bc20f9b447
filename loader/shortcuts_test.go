package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khoshkhah/routing-engine/graph"
	"github.com/Khoshkhah/routing-engine/loadctx"
)

func writeShortcutParquet(t *testing.T, path string, rows []shortcutRow) {
	t.Helper()
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, parquet.Write(file, rows))
}

func TestLoadShortcutsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunk.parquet")
	writeShortcutParquet(t, path, []shortcutRow{
		{IncomingEdge: 1, OutgoingEdge: 2, Cost: 5.0, ViaEdge: 0, Cell: 100, Inside: 1},
		{IncomingEdge: 2, OutgoingEdge: 1, Cost: 5.0, ViaEdge: 0, Cell: 100, Inside: -1},
	})

	builder := graph.NewBuilder()
	n, err := LoadShortcuts(path, builder)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, builder.ShortcutCount())
}

func TestLoadShortcutsDirectoryConcatenatesChunks(t *testing.T) {
	dir := t.TempDir()
	writeShortcutParquet(t, filepath.Join(dir, "a.parquet"), []shortcutRow{
		{IncomingEdge: 1, OutgoingEdge: 2, Cost: 5.0, Cell: 100, Inside: 1},
	})
	writeShortcutParquet(t, filepath.Join(dir, "b.parquet"), []shortcutRow{
		{IncomingEdge: 2, OutgoingEdge: 1, Cost: 5.0, Cell: 100, Inside: -1},
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0o644))

	builder := graph.NewBuilder()
	n, err := LoadShortcuts(dir, builder)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "should concatenate across two chunk files")
}

func TestLoadShortcutsMissingPath(t *testing.T) {
	builder := graph.NewBuilder()
	_, err := LoadShortcuts(filepath.Join(t.TempDir(), "missing"), builder)
	assert.Error(t, err)
}

func TestLoadShortcutsRejectsZeroRecords(t *testing.T) {
	dir := t.TempDir()
	// a directory with no .parquet entries at all.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0o644))

	builder := graph.NewBuilder()
	_, err := LoadShortcuts(dir, builder)
	require.Error(t, err)
	assert.True(t, errors.Is(err, loadctx.ErrShortcutsUnreadable))
}

func TestLoadShortcutsRejectsInvalidInside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunk.parquet")
	writeShortcutParquet(t, path, []shortcutRow{
		{IncomingEdge: 1, OutgoingEdge: 2, Cost: 5.0, Cell: 100, Inside: 5},
	})

	builder := graph.NewBuilder()
	_, err := LoadShortcuts(path, builder)
	require.Error(t, err)
	assert.True(t, errors.Is(err, loadctx.ErrInvalidInside))
	assert.Equal(t, 0, builder.ShortcutCount(), "a corrupt chunk should not partially load")
}

// TestLoadShortcutsRejectsInvalidInsideWithoutPartialLoad exercises a
// chunk where the invalid row isn't first: earlier, well-formed rows
// must not have already been committed to the builder by the time the
// later row's invalid inside value is discovered.
func TestLoadShortcutsRejectsInvalidInsideWithoutPartialLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunk.parquet")
	writeShortcutParquet(t, path, []shortcutRow{
		{IncomingEdge: 1, OutgoingEdge: 2, Cost: 5.0, Cell: 100, Inside: 1},
		{IncomingEdge: 2, OutgoingEdge: 3, Cost: 5.0, Cell: 100, Inside: -1},
		{IncomingEdge: 3, OutgoingEdge: 4, Cost: 5.0, Cell: 100, Inside: 5},
	})

	builder := graph.NewBuilder()
	_, err := LoadShortcuts(path, builder)
	require.Error(t, err)
	assert.True(t, errors.Is(err, loadctx.ErrInvalidInside))
	assert.Equal(t, 0, builder.ShortcutCount(), "rows preceding the invalid one must not be committed either")
}
