package listing

import (
	"slices"

	"github.com/rshade/userlist/internal/pagination"
	"github.com/rshade/userlist/internal/users"
)

// Pipeline holds the raw record set and the current view state. It is owned
// by a single event loop and is not safe for concurrent use.
type Pipeline struct {
	records  []users.User
	state    ViewState
	pageSize int
	policy   PagePolicy
}

// NewPipeline creates an empty pipeline. A non-positive pageSize falls back
// to pagination.DefaultPageSize and an unknown policy to DefaultPagePolicy.
func NewPipeline(pageSize int, policy PagePolicy) *Pipeline {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	if policy != PageKeep && policy != PageReset {
		policy = DefaultPagePolicy
	}
	return &Pipeline{
		state:    NewViewState(),
		pageSize: pageSize,
		policy:   policy,
	}
}

// Load replaces the raw record set wholesale. View state is left untouched.
func (p *Pipeline) Load(records []users.User) {
	p.records = slices.Clone(records)
}

// Records returns a copy of the raw record set.
func (p *Pipeline) Records() []users.User {
	return slices.Clone(p.records)
}

// State returns the current view state.
func (p *Pipeline) State() ViewState {
	return p.state
}

// SetState replaces the whole view state, e.g. to seed it from flags.
func (p *Pipeline) SetState(s ViewState) {
	p.state = s
}

// PageSize returns the fixed page size.
func (p *Pipeline) PageSize() int {
	return p.pageSize
}

// Policy returns the page policy.
func (p *Pipeline) Policy() PagePolicy {
	return p.policy
}

// Dispatch applies ev through Reduce.
func (p *Pipeline) Dispatch(ev Event) {
	p.state = Reduce(p.state, ev, p.policy)
}

// SetSearchTerm updates the search term.
func (p *Pipeline) SetSearchTerm(term string) {
	p.Dispatch(SearchTermChanged{Term: term})
}

// SetSortKey updates the sort key. Keys other than name and email are ignored.
func (p *Pipeline) SetSortKey(key SortKey) {
	p.Dispatch(SortKeyChanged{Key: key})
}

// SetPage updates the page number without clamping.
func (p *Pipeline) SetPage(n int) {
	p.Dispatch(PageChanged{Page: n})
}

// Derive computes the current page.
func (p *Pipeline) Derive() View {
	return Derive(p.records, p.state, p.pageSize)
}
