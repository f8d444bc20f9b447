package loader

import (
	"fmt"

	"github.com/Khoshkhah/routing-engine/attr"
	"github.com/Khoshkhah/routing-engine/graph"
	"github.com/Khoshkhah/routing-engine/loadctx"
)

// LoadEdgeMetadata reads the edge metadata CSV at path into builder and
// returns how many rows were dropped for being short or malformed.
func LoadEdgeMetadata(path string, builder *graph.Builder) (dropped int, err error) {
	result, err := attr.Load(path)
	if err != nil {
		return 0, err
	}
	if result.Meta.Length() == 0 {
		return 0, fmt.Errorf("%s: %w", path, loadctx.ErrEdgeMetadataUnreadable)
	}
	for edge, meta := range result.Meta {
		builder.SetEdgeMeta(edge, meta)
	}
	return result.Dropped, nil
}
