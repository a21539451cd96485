package paging

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Pagination bounds shared by both modes.
const (
	DefaultOffsetPageSize = 10
	DefaultCursorPageSize = 20
	MaxPageSize           = 100
)

// ErrInvalidCursor is returned when a cursor is present but not a
// positive integer.
var ErrInvalidCursor = errors.New("invalid cursor")

// OffsetParams holds the offset-mode pagination parameters.
type OffsetParams struct {
	Query    string `json:"query"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// OffsetResult holds one offset-mode page plus continuation metadata.
// Total and TotalPages describe the full filtered set, not the page.
type OffsetResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// CursorParams holds the cursor-mode pagination parameters.
type CursorParams struct {
	Cursor   string `json:"cursor"`
	PageSize int    `json:"pageSize"`
}

// CursorResult holds one cursor-mode page. NextCursor is empty when the
// collection is exhausted.
type CursorResult[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next"`
}

// Keyed is implemented by records whose cursor encodes a monotonically
// increasing integer identifier.
type Keyed interface {
	CursorID() int64
}

// Source exposes ordered, countable, filterable record access. Page and
// Count see the same filter; After walks the identifier ordering.
type Source[T any] interface {
	Page(ctx context.Context, query string, offset, limit int) ([]T, error)
	Count(ctx context.Context, query string) (int, error)
	After(ctx context.Context, lastID int64, limit int) ([]T, error)
}

// NormalizeOffset clamps offset-mode parameters into their valid ranges
// and trims the filter text. The normalized values are what a result
// echoes back.
func NormalizeOffset(p OffsetParams) OffsetParams {
	p.Query = strings.TrimSpace(p.Query)
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultOffsetPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// NormalizeCursor clamps cursor-mode parameters into their valid ranges.
// The default page size intentionally differs from offset mode.
func NormalizeCursor(p CursorParams) CursorParams {
	if p.PageSize < 1 {
		p.PageSize = DefaultCursorPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// EncodeCursor encodes the identifier of the last record returned.
func EncodeCursor(id int64) string {
	return strconv.FormatInt(id, 10)
}

// DecodeCursor decodes a cursor token. An empty cursor means "start from
// the beginning" and decodes to zero; anything else must be a positive
// integer.
func DecodeCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(cursor, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, cursor)
	}
	return id, nil
}

// TotalPages computes ceil(total/pageSize), zero when total is zero.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Offset produces one offset-mode page. Parameters are normalized before
// the source is queried; out-of-range pages yield an empty item list with
// the metadata of the full filtered set.
func Offset[T any](ctx context.Context, src Source[T], p OffsetParams) (*OffsetResult[T], error) {
	p = NormalizeOffset(p)

	total, err := src.Count(ctx, p.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	items, err := src.Page(ctx, p.Query, (p.Page-1)*p.PageSize, p.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query page: %w", err)
	}
	if items == nil {
		items = make([]T, 0)
	}

	return &OffsetResult[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: TotalPages(total, p.PageSize),
	}, nil
}

// Cursor produces one cursor-mode page. NextCursor is set only when the
// page came back full; a short page is always the last one.
func Cursor[T Keyed](ctx context.Context, src Source[T], p CursorParams) (*CursorResult[T], error) {
	p = NormalizeCursor(p)

	last, err := DecodeCursor(p.Cursor)
	if err != nil {
		return nil, err
	}

	items, err := src.After(ctx, last, p.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query after cursor: %w", err)
	}
	if items == nil {
		items = make([]T, 0)
	}

	next := ""
	if len(items) == p.PageSize {
		next = EncodeCursor(items[len(items)-1].CursorID())
	}

	return &CursorResult[T]{
		Items:      items,
		NextCursor: next,
	}, nil
}
