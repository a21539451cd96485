// Package paging provides offset-based and cursor-based pagination for
// ordered record collections exposed over web APIs.
//
// The two modes are deliberately separate strategies rather than one
// abstraction: offset paging returns total-count metadata and supports
// arbitrary page jumps, while cursor (keyset) paging trades that metadata
// for constant-cost continuation over the identifier ordering.
//
// # Offset Mode
//
// Offset paging skips (page-1)*pageSize records and takes pageSize,
// ordered by name. Parameters are normalized before querying:
//
//	params := paging.OffsetParams{Page: 0, PageSize: 500}
//	result, err := paging.Offset(ctx, source, params)
//	// queried as page=1, pageSize=100; result echoes the normalized values
//
// A page beyond the end of the result set is not an error: it yields an
// empty item list with Total and TotalPages still describing the full
// filtered set.
//
// # Cursor Mode
//
// Cursor paging walks records strictly by ascending identifier. The cursor
// token is the decimal form of the last identifier returned; an empty
// cursor starts from the beginning:
//
//	result, err := paging.Cursor(ctx, source, paging.CursorParams{PageSize: 20})
//	// result.NextCursor feeds the next call; "" signals exhaustion
//
// A page that comes back short of pageSize is always the last page. A
// cursor that is present but not a positive integer fails with
// ErrInvalidCursor rather than silently restarting.
//
// # Record Sources
//
// The engine owns no storage: it drives a Source, which exposes ordered,
// countable, filterable access to records. Repositories implement Source
// and keep all query construction to themselves.
package paging
