// Package attr loads per-edge attribute records from the edge metadata
// CSV artifact: a hand-rolled scanner rather than encoding/csv, since the
// geometry column carries embedded commas inside WKT strings that only a
// quote-toggle reader handles correctly.
package attr

import (
	"bufio"
	"os"
	"strconv"

	"github.com/Khoshkhah/routing-engine/cell"
	"github.com/Khoshkhah/routing-engine/shortcut"
	. "github.com/Khoshkhah/routing-engine/util"
)

//*******************************************
// line scanner
//*******************************************

// splitRow scans one CSV line, toggling a quoted flag on each '"' and
// treating ',' as a delimiter only outside quotes. It never interprets
// escaped quotes or unescapes field contents, matching the artifact's
// producer exactly.
func splitRow(line string) []string {
	row := NewList[string](12)
	field := make([]byte, 0, 32)
	in_quotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			in_quotes = !in_quotes
		case c == ',' && !in_quotes:
			row.Add(string(field))
			field = field[:0]
		default:
			field = append(field, c)
		}
	}
	row.Add(string(field))
	return []string(row)
}

//*******************************************
// fixed column layout
//*******************************************

// Column indices within a row. Only length, cost, incoming_cell,
// outgoing_cell, lca_res and id are consumed; source, target, maxspeed,
// geometry and highway are present in the artifact but unused by the
// search engine.
const (
	col_length        = 2
	col_cost          = 6
	col_incoming_cell = 7
	col_outgoing_cell = 8
	col_lca_res       = 9
	col_id            = 10
	min_columns       = 11
)

// Result summarizes a load: the metadata keyed by edge id, and how many
// rows were dropped for being short or malformed.
type Result struct {
	Meta    Dict[uint32, shortcut.EdgeMeta]
	Dropped int
}

// Load reads an edge metadata CSV file, skipping its header line. A row
// with fewer than 11 columns, or whose numeric fields fail to parse, is
// counted as dropped and otherwise ignored — the same silent-skip policy
// the artifact's own producer relies on.
func Load(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer file.Close()

	meta := NewDict[uint32, shortcut.EdgeMeta](1024)
	dropped := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return Result{Meta: meta, Dropped: dropped}, nil
	}

	for scanner.Scan() {
		row := splitRow(scanner.Text())
		if len(row) < min_columns {
			dropped++
			continue
		}

		rec, ok := parseRow(row)
		if !ok {
			dropped++
			continue
		}
		meta[rec.id] = rec.meta
	}

	return Result{Meta: meta, Dropped: dropped}, scanner.Err()
}

type parsedRow struct {
	id   uint32
	meta shortcut.EdgeMeta
}

func parseRow(row []string) (parsedRow, bool) {
	id, err := strconv.ParseUint(row[col_id], 10, 32)
	if err != nil {
		return parsedRow{}, false
	}
	incoming, err := strconv.ParseUint(row[col_incoming_cell], 10, 64)
	if err != nil {
		return parsedRow{}, false
	}
	outgoing, err := strconv.ParseUint(row[col_outgoing_cell], 10, 64)
	if err != nil {
		return parsedRow{}, false
	}
	lca_res, err := strconv.Atoi(row[col_lca_res])
	if err != nil {
		return parsedRow{}, false
	}
	length, err := strconv.ParseFloat(row[col_length], 64)
	if err != nil {
		return parsedRow{}, false
	}
	cost, err := strconv.ParseFloat(row[col_cost], 64)
	if err != nil {
		return parsedRow{}, false
	}

	return parsedRow{
		id: uint32(id),
		meta: shortcut.EdgeMeta{
			IncomingCell: cell.Cell(incoming),
			OutgoingCell: cell.Cell(outgoing),
			LCARes:       lca_res,
			Length:       length,
			Cost:         cost,
		},
	}, true
}
