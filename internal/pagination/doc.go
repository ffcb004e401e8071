// Package pagination provides page-window math shared by the listing pipeline
// and the one-shot renderers.
//
// This package contains:
//   - Params: page number and page size with validation
//   - Window/Slice: the clipped, contiguous window of a page
//   - Meta: response metadata for structured (JSON/YAML) output
//
// Out-of-range pages are not clamped: they produce an empty window. Callers
// that want a bounded page must check against TotalPages themselves.
package pagination
