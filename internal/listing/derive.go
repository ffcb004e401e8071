package listing

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/userlist/internal/pagination"
	"github.com/rshade/userlist/internal/users"
)

// View is the derived, read-only projection rendered by the surfaces.
type View struct {
	// Items is the page slice: at most PageSize records, in sorted order.
	Items []users.User

	// TotalPages is ceil(FilteredCount / PageSize), 0 when nothing matches.
	TotalPages int

	// FilteredCount is the number of records that matched the search term.
	FilteredCount int

	// Page and PageSize echo the inputs the view was derived for.
	Page     int
	PageSize int
}

// Meta returns pagination metadata for structured output.
func (v View) Meta() pagination.Meta {
	return pagination.NewMeta(pagination.Params{Page: v.Page, PageSize: v.PageSize}, v.FilteredCount)
}

// Empty reports whether the page slice has no records.
func (v View) Empty() bool {
	return len(v.Items) == 0
}

// Filter returns the records whose name or role contains term, compared
// case-insensitively. An empty term keeps everything. The input is not
// modified and the result never aliases it.
func Filter(records []users.User, term string) []users.User {
	out := make([]users.User, 0, len(records))
	needle := strings.ToLower(term)
	for _, u := range records {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Role), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Sort returns a copy of records in ascending locale-aware order of the field
// chosen by key. Equal keys keep their relative order. An invalid key sorts
// by name.
func Sort(records []users.User, key SortKey) []users.User {
	sorted := slices.Clone(records)
	// Collators keep scratch buffers, so each call gets its own.
	c := collate.New(language.English)

	field := func(u users.User) string { return u.Name }
	if key == SortByEmail {
		field = func(u users.User) string { return u.Email }
	}

	slices.SortStableFunc(sorted, func(a, b users.User) int {
		return c.CompareString(field(a), field(b))
	})
	return sorted
}

// Derive computes the page of records for state: filter, then sort, then
// paginate. It is pure and safe to call on every render.
func Derive(records []users.User, state ViewState, pageSize int) View {
	filtered := Filter(records, state.SearchTerm)
	sorted := Sort(filtered, state.SortKey)
	params := pagination.Params{Page: state.Page, PageSize: pageSize}

	return View{
		Items:         pagination.Slice(sorted, params),
		TotalPages:    pagination.TotalPages(len(sorted), pageSize),
		FilteredCount: len(sorted),
		Page:          state.Page,
		PageSize:      pageSize,
	}
}
