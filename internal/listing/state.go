package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/userlist/internal/pagination"
)

// PagePolicy decides what happens to the page number when the search term or
// sort key changes.
type PagePolicy string

const (
	// PageKeep leaves the page number untouched. A narrower filter can leave
	// the page past the end of the filtered set, which renders an empty page.
	PageKeep PagePolicy = "keep"
	// PageReset returns to the first page whenever the search term or sort
	// key actually changes.
	PageReset PagePolicy = "reset"
)

// DefaultPagePolicy keeps the page on search and sort changes.
const DefaultPagePolicy = PageKeep

// ErrInvalidPagePolicy is returned by ParsePagePolicy for unknown policies.
var ErrInvalidPagePolicy = errors.New("invalid page policy")

// ParsePagePolicy parses "keep" or "reset", case-insensitively.
func ParsePagePolicy(s string) (PagePolicy, error) {
	switch PagePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PageKeep:
		return PageKeep, nil
	case PageReset:
		return PageReset, nil
	default:
		return "", fmt.Errorf("%w: %q (must be keep or reset)", ErrInvalidPagePolicy, s)
	}
}

// ViewState is the user-controlled input of the pipeline. It is a value:
// every change produces a new ViewState through Reduce.
type ViewState struct {
	SearchTerm string
	SortKey    SortKey
	Page       int
}

// NewViewState returns the initial state: empty search, sorted by name,
// first page.
func NewViewState() ViewState {
	return ViewState{
		SearchTerm: "",
		SortKey:    DefaultSortKey,
		Page:       pagination.DefaultPage,
	}
}

// Event is a user interaction that changes the view state.
type Event interface {
	isEvent()
}

// SearchTermChanged replaces the search term.
type SearchTermChanged struct {
	Term string
}

// SortKeyChanged replaces the sort key. Invalid keys are ignored.
type SortKeyChanged struct {
	Key SortKey
}

// PageChanged replaces the page number. The value is not clamped.
type PageChanged struct {
	Page int
}

func (SearchTermChanged) isEvent() {}
func (SortKeyChanged) isEvent()    {}
func (PageChanged) isEvent()       {}

// Reduce returns the state that results from applying ev to s under policy.
// It has no side effects; unknown events return s unchanged.
func Reduce(s ViewState, ev Event, policy PagePolicy) ViewState {
	switch e := ev.(type) {
	case SearchTermChanged:
		if policy == PageReset && e.Term != s.SearchTerm {
			s.Page = pagination.DefaultPage
		}
		s.SearchTerm = e.Term
	case SortKeyChanged:
		if !e.Key.Valid() {
			return s
		}
		if policy == PageReset && e.Key != s.SortKey {
			s.Page = pagination.DefaultPage
		}
		s.SortKey = e.Key
	case PageChanged:
		s.Page = e.Page
	}
	return s
}
