// Package loader ingests the columnar shortcut artifact into a
// graph.Builder: a directory of chunked files or a single file, each row
// group expanded into shortcut.Shortcut records.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/Khoshkhah/routing-engine/cell"
	"github.com/Khoshkhah/routing-engine/graph"
	"github.com/Khoshkhah/routing-engine/loadctx"
	"github.com/Khoshkhah/routing-engine/shortcut"
)

// shortcutRow mirrors the artifact's schema: incoming_edge, outgoing_edge,
// cost, via_edge, cell, inside.
type shortcutRow struct {
	IncomingEdge int64   `parquet:"incoming_edge"`
	OutgoingEdge int64   `parquet:"outgoing_edge"`
	Cost         float64 `parquet:"cost"`
	ViaEdge      int64   `parquet:"via_edge"`
	Cell         int64   `parquet:"cell"`
	Inside       int8    `parquet:"inside"`
}

// LoadShortcuts loads every shortcut record under path into builder. If
// path is a directory, every ".parquet" file inside it is read and
// concatenated; otherwise path is read as a single file. Returns the
// number of shortcut records loaded.
func LoadShortcuts(path string, builder *graph.Builder) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	total := 0
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return 0, err
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".parquet" {
				continue
			}
			n, err := loadFile(filepath.Join(path, entry.Name()), builder)
			if err != nil {
				return total, err
			}
			total += n
		}
	} else {
		n, err := loadFile(path, builder)
		if err != nil {
			return total, err
		}
		total += n
	}

	if total == 0 {
		return 0, fmt.Errorf("%s: %w", path, loadctx.ErrShortcutsUnreadable)
	}

	return total, nil
}

func loadFile(path string, builder *graph.Builder) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, err
	}

	rows, err := parquet.Read[shortcutRow](file, info.Size())
	if err != nil {
		return 0, err
	}

	shortcuts := make([]shortcut.Shortcut, len(rows))
	for i, row := range rows {
		inside := shortcut.Inside(row.Inside)
		if !inside.Valid() {
			return 0, fmt.Errorf("%s: edge %d -> %d: %w (got %d)", path, row.IncomingEdge, row.OutgoingEdge, loadctx.ErrInvalidInside, row.Inside)
		}
		shortcuts[i] = shortcut.NewShortcut(
			uint32(row.IncomingEdge),
			uint32(row.OutgoingEdge),
			row.Cost,
			uint32(row.ViaEdge),
			cell.Cell(row.Cell),
			inside,
		)
	}

	for _, sc := range shortcuts {
		builder.AddShortcut(sc)
	}

	return len(shortcuts), nil
}
