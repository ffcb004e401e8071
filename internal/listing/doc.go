// Package listing implements the user listing pipeline: a raw record set plus
// an immutable view state (search term, sort key, page) from which the
// rendered page is derived.
//
// The derived view is computed in three steps:
//  1. Filter: keep records whose name or role contains the search term,
//     compared case-insensitively.
//  2. Sort: stable, locale-aware ascending order on name or email.
//  3. Paginate: a clipped, contiguous window of the sorted set.
//
// View state only changes through Reduce, a pure function of (state, event).
// Derive is a pure function of (records, state, page size) and is invoked
// fresh on every render; nothing is memoized.
package listing
