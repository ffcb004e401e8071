package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "valid default", params: NewParams()},
		{name: "valid large page", params: Params{Page: 999, PageSize: 5}},
		{name: "zero page", params: Params{Page: 0, PageSize: 5}, wantErr: ErrInvalidPage},
		{name: "negative page", params: Params{Page: -3, PageSize: 5}, wantErr: ErrInvalidPage},
		{name: "zero page size", params: Params{Page: 1, PageSize: 0}, wantErr: ErrInvalidPageSize},
		{name: "page size too large", params: Params{Page: 1, PageSize: MaxPageSize + 1}, wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int
		pageSize int
		want     int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{12, 5, 3},
		{12, 0, 0},
		{-1, 5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize), "total=%d pageSize=%d", tt.total, tt.pageSize)
	}
}

// TestTotalPages_MatchesCeiling checks ceil(n/size) over a grid of inputs.
func TestTotalPages_MatchesCeiling(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for n := 0; n <= 50; n++ {
			want := n / size
			if n%size != 0 {
				want++
			}
			require.Equal(t, want, TotalPages(n, size), "n=%d size=%d", n, size)
		}
	}
}

func TestParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", params: Params{Page: 1, PageSize: 5}, total: 12, wantStart: 0, wantEnd: 5},
		{name: "middle page", params: Params{Page: 2, PageSize: 5}, total: 12, wantStart: 5, wantEnd: 10},
		{name: "last partial page", params: Params{Page: 3, PageSize: 5}, total: 12, wantStart: 10, wantEnd: 12},
		{name: "past the end", params: Params{Page: 4, PageSize: 5}, total: 12, wantStart: 12, wantEnd: 12},
		{name: "far past the end", params: Params{Page: 1 << 40, PageSize: 5}, total: 12, wantStart: 12, wantEnd: 12},
		{name: "page zero", params: Params{Page: 0, PageSize: 5}, total: 12, wantStart: 0, wantEnd: 0},
		{name: "negative page does not wrap", params: Params{Page: -1, PageSize: 5}, total: 12, wantStart: 0, wantEnd: 0},
		{name: "empty input", params: Params{Page: 1, PageSize: 5}, total: 0, wantStart: 0, wantEnd: 0},
		{name: "zero page size", params: Params{Page: 1, PageSize: 0}, total: 12, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	t.Run("twelve items page three", func(t *testing.T) {
		got := Slice(items, Params{Page: 3, PageSize: 5})
		assert.Equal(t, []int{10, 11}, got)
	})

	t.Run("never more than page size", func(t *testing.T) {
		for page := -2; page <= 5; page++ {
			got := Slice(items, Params{Page: page, PageSize: 5})
			assert.LessOrEqual(t, len(got), 5)
		}
	})

	t.Run("pages concatenate to the input", func(t *testing.T) {
		params := Params{PageSize: 5}
		var all []int
		for page := 1; page <= TotalPages(len(items), params.PageSize); page++ {
			params.Page = page
			all = append(all, Slice(items, params)...)
		}
		assert.Equal(t, items, all)
	})

	t.Run("append does not clobber source", func(t *testing.T) {
		got := Slice(items, Params{Page: 1, PageSize: 5})
		_ = append(got, 99)
		assert.Equal(t, 5, items[5])
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Empty(t, Slice[int](nil, NewParams()))
	})
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		total  int
		want   Meta
	}{
		{
			name:   "first of three",
			params: Params{Page: 1, PageSize: 5},
			total:  12,
			want: Meta{
				CurrentPage: 1, PageSize: 5, TotalPages: 3, TotalItems: 12,
				FirstItem: 1, LastItem: 5, HasPrevious: false, HasNext: true,
			},
		},
		{
			name:   "last of three",
			params: Params{Page: 3, PageSize: 5},
			total:  12,
			want: Meta{
				CurrentPage: 3, PageSize: 5, TotalPages: 3, TotalItems: 12,
				FirstItem: 11, LastItem: 12, HasPrevious: true, HasNext: false,
			},
		},
		{
			name:   "empty result",
			params: Params{Page: 1, PageSize: 5},
			total:  0,
			want: Meta{
				CurrentPage: 1, PageSize: 5, TotalPages: 0, TotalItems: 0,
			},
		},
		{
			name:   "out of range page",
			params: Params{Page: 7, PageSize: 5},
			total:  12,
			want: Meta{
				CurrentPage: 7, PageSize: 5, TotalPages: 3, TotalItems: 12,
				HasPrevious: true, HasNext: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.params, tt.total))
		})
	}
}
