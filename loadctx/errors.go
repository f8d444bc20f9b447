// Package loadctx declares the sentinel errors returned when the
// precomputed artifacts this engine depends on cannot be turned into a
// usable graph. Every instance is fatal to the load path: callers wrap
// it with fmt.Errorf("...: %w", err) and the process exits non-zero.
package loadctx

import "errors"

// ErrShortcutsUnreadable is returned when a shortcut directory/file
// resolves but yields zero shortcut records. A missing path or an
// unreadable parquet chunk is returned as the underlying os or parquet
// error, not wrapped in this sentinel.
var ErrShortcutsUnreadable = errors.New("shortcut artifact unreadable or empty")

// ErrEdgeMetadataUnreadable is returned when the edge metadata file
// parses but yields zero edge metadata records. A missing or unreadable
// file is returned as the underlying os error, not wrapped in this
// sentinel.
var ErrEdgeMetadataUnreadable = errors.New("edge metadata file unreadable or empty")

// ErrInvalidInside covers a loaded shortcut record whose inside tag is
// not one of the four defined variants.
var ErrInvalidInside = errors.New("shortcut record has an invalid inside value")
