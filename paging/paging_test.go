package paging

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64
	Name string
	Desc string
}

func (r record) CursorID() int64 { return r.ID }

// memorySource backs the engine with an in-memory ordered record set.
type memorySource struct {
	records []record
}

func (s *memorySource) filtered(query string) []record {
	out := make([]record, 0, len(s.records))
	for _, r := range s.records {
		if query == "" ||
			strings.Contains(strings.ToLower(r.Name), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(r.Desc), strings.ToLower(query)) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *memorySource) Page(_ context.Context, query string, offset, limit int) ([]record, error) {
	all := s.filtered(query)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *memorySource) Count(_ context.Context, query string) (int, error) {
	return len(s.filtered(query)), nil
}

func (s *memorySource) After(_ context.Context, lastID int64, limit int) ([]record, error) {
	out := make([]record, 0, limit)
	ids := make([]record, len(s.records))
	copy(ids, s.records)
	sort.Slice(ids, func(i, j int) bool { return ids[i].ID < ids[j].ID })
	for _, r := range ids {
		if r.ID > lastID {
			out = append(out, r)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func newSource(n int) *memorySource {
	s := &memorySource{}
	for i := 1; i <= n; i++ {
		s.records = append(s.records, record{
			ID:   int64(i),
			Name: fmt.Sprintf("Item %02d", i),
			Desc: fmt.Sprintf("description %d", i),
		})
	}
	return s
}

func TestNormalizeOffset(t *testing.T) {
	tests := []struct {
		name     string
		in       OffsetParams
		page     int
		pageSize int
	}{
		{"zero values", OffsetParams{}, 1, 10},
		{"negative page", OffsetParams{Page: -5, PageSize: 20}, 1, 20},
		{"oversized pageSize", OffsetParams{Page: 2, PageSize: 500}, 2, 100},
		{"valid untouched", OffsetParams{Page: 3, PageSize: 25}, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOffset(tt.in)
			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.pageSize, got.PageSize)

			// normalization is idempotent
			again := NormalizeOffset(got)
			assert.Equal(t, got, again)
		})
	}
}

func TestNormalizeOffsetTrimsQuery(t *testing.T) {
	got := NormalizeOffset(OffsetParams{Query: "  widget  "})
	assert.Equal(t, "widget", got.Query)
}

func TestNormalizeCursor(t *testing.T) {
	assert.Equal(t, DefaultCursorPageSize, NormalizeCursor(CursorParams{}).PageSize)
	assert.Equal(t, MaxPageSize, NormalizeCursor(CursorParams{PageSize: 1000}).PageSize)
	assert.Equal(t, 7, NormalizeCursor(CursorParams{PageSize: 7}).PageSize)
}

func TestDecodeCursor(t *testing.T) {
	id, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	id, err = DecodeCursor("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"abc", "-1", "0", "1.5", "1e3", " 7"} {
		_, err := DecodeCursor(bad)
		assert.ErrorIs(t, err, ErrInvalidCursor, "cursor %q", bad)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
}

func TestOffsetFirstPage(t *testing.T) {
	src := newSource(25)

	result, err := Offset[record](context.Background(), src, OffsetParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, result.Items, 10)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.PageSize)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, "Item 01", result.Items[0].Name)
}

func TestOffsetLastPageShort(t *testing.T) {
	src := newSource(25)

	result, err := Offset[record](context.Background(), src, OffsetParams{Page: 3, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, result.Items, 5)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestOffsetBeyondEndIsNotAnError(t *testing.T) {
	src := newSource(25)

	result, err := Offset[record](context.Background(), src, OffsetParams{Page: 99, PageSize: 10})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestOffsetTotalSumsAcrossPages(t *testing.T) {
	src := newSource(47)

	first, err := Offset[record](context.Background(), src, OffsetParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	sum := 0
	for page := 1; page <= first.TotalPages; page++ {
		result, err := Offset[record](context.Background(), src, OffsetParams{Page: page, PageSize: 10})
		require.NoError(t, err)
		sum += len(result.Items)
	}
	assert.Equal(t, first.Total, sum)
}

func TestOffsetFilter(t *testing.T) {
	src := &memorySource{records: []record{
		{ID: 1, Name: "Copper Kettle", Desc: "kitchen"},
		{ID: 2, Name: "Steel Pan", Desc: "KITCHEN gear"},
		{ID: 3, Name: "Oak Table", Desc: "furniture"},
	}}

	result, err := Offset[record](context.Background(), src, OffsetParams{Query: "kitchen", PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.Total)
}

func TestCursorWalkTerminates(t *testing.T) {
	src := newSource(25)

	var seen []int64
	cursor := ""
	calls := 0
	for {
		result, err := Cursor[record](context.Background(), src, CursorParams{Cursor: cursor, PageSize: 10})
		require.NoError(t, err)
		calls++

		for _, r := range result.Items {
			seen = append(seen, r.ID)
		}
		if result.NextCursor == "" {
			break
		}
		cursor = result.NextCursor
		require.LessOrEqual(t, calls, 3, "cursor walk must terminate")
	}

	assert.Equal(t, 3, calls)
	assert.Len(t, seen, 25)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1], "ids must be strictly increasing")
	}
}

func TestCursorPageBoundaries(t *testing.T) {
	src := newSource(25)

	first, err := Cursor[record](context.Background(), src, CursorParams{PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, EncodeCursor(first.Items[9].ID), first.NextCursor)

	second, err := Cursor[record](context.Background(), src, CursorParams{Cursor: first.NextCursor, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, second.Items, 10)

	third, err := Cursor[record](context.Background(), src, CursorParams{Cursor: second.NextCursor, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, third.Items, 5)
	assert.Equal(t, "", third.NextCursor)
}

func TestCursorRereadIsIdempotent(t *testing.T) {
	src := newSource(25)

	first, err := Cursor[record](context.Background(), src, CursorParams{PageSize: 10})
	require.NoError(t, err)

	again, err := Cursor[record](context.Background(), src, CursorParams{PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestCursorExactMultipleEndsWithEmptyTrailingPage(t *testing.T) {
	src := newSource(20)

	first, err := Cursor[record](context.Background(), src, CursorParams{PageSize: 10})
	require.NoError(t, err)
	second, err := Cursor[record](context.Background(), src, CursorParams{Cursor: first.NextCursor, PageSize: 10})
	require.NoError(t, err)

	// the second page is full, so exhaustion only shows on the third call
	require.NotEmpty(t, second.NextCursor)
	third, err := Cursor[record](context.Background(), src, CursorParams{Cursor: second.NextCursor, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, third.Items)
	assert.Equal(t, "", third.NextCursor)
}

func TestCursorInvalid(t *testing.T) {
	src := newSource(5)

	_, err := Cursor[record](context.Background(), src, CursorParams{Cursor: "not-a-number"})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}
