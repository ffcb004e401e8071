package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/userlist/internal/listing"
	"github.com/rshade/userlist/internal/logging"
	"github.com/rshade/userlist/internal/source"
	"github.com/rshade/userlist/internal/theme"
	"github.com/rshade/userlist/internal/tui/detail"
	listview "github.com/rshade/userlist/internal/tui/list"
	"github.com/rshade/userlist/internal/users"
)

// UserFetcher loads the full record set. It should honour ctx cancellation.
type UserFetcher func(ctx context.Context) ([]users.User, error)

// usersLoadedMsg carries a fetch result tagged with the load that issued it.
type usersLoadedMsg struct {
	gen     uint64
	records []users.User
	err     error
}

// UsersModelOptions configures a UsersModel. Zero values select defaults.
type UsersModelOptions struct {
	PageSize int
	Policy   listing.PagePolicy
	Theme    *theme.Theme

	// State seeds the search term, sort key and page.
	State *listing.ViewState
}

// UsersModel is the Bubble Tea model for the interactive user listing.
type UsersModel struct {
	state ViewState

	pipeline *listing.Pipeline
	view     listing.View
	gen      listing.Generation

	fetcher UserFetcher
	ctx     context.Context //nolint:containedctx // Cancels the in-flight fetch on quit
	cancel  context.CancelFunc

	list      *listview.Model[users.User]
	search    textinput.Model
	searching bool
	pager     paginator.Model
	loading   *LoadingState
	theme     theme.Theme

	errMessage string
	err        error

	width int
}

// NewUsersModel creates a model that starts in the loading state. The fetch
// is issued by Init.
func NewUsersModel(ctx context.Context, fetcher UserFetcher, opts UsersModelOptions) *UsersModel {
	t := theme.Default()
	if opts.Theme != nil {
		t = *opts.Theme
	}

	pipeline := listing.NewPipeline(opts.PageSize, opts.Policy)
	if opts.State != nil {
		pipeline.SetState(*opts.State)
	}

	ctx, cancel := context.WithCancel(ctx)
	m := &UsersModel{
		state:    ViewStateLoading,
		pipeline: pipeline,
		fetcher:  fetcher,
		ctx:      ctx,
		cancel:   cancel,
		list:     listview.New[users.User](nil, renderUserRow(t)),
		search:   newSearchInput(),
		pager:    newPaginator(t),
		loading:  NewLoadingState(),
		theme:    t,
	}
	m.list.SetSeparator(t.Rule(0))
	m.search.SetValue(pipeline.State().SearchTerm)
	return m
}

// newSearchInput creates the search text input.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = searchLabel
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth
	return ti
}

// Init starts the spinner and the first fetch.
func (m *UsersModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd())
}

// fetchCmd begins a new load generation and returns the command running it.
func (m *UsersModel) fetchCmd() tea.Cmd {
	id := m.gen.Begin()
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		records, err := fetcher(ctx)
		return usersLoadedMsg{gen: id, records: records, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.list.SetSeparator(m.theme.Rule(m.width))
		return m, nil
	}

	if loadMsg, ok := msg.(usersLoadedMsg); ok {
		return m.handleLoaded(loadMsg)
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *UsersModel) handleLoaded(msg usersLoadedMsg) (tea.Model, tea.Cmd) {
	log := logging.ComponentLogger(*logging.FromContext(m.ctx), "tui")
	if !m.gen.Current(msg.gen) {
		log.Debug().Uint64("generation", msg.gen).Msg("discarding stale user load")
		return m, nil
	}

	if msg.err != nil {
		m.err = msg.err
		m.errMessage = source.UserMessage
		m.state = ViewStateError
		m.pipeline.Load(nil)
		m.refresh()
		log.Error().Err(msg.err).Msg("loading users")
		return m, nil
	}

	m.err = nil
	m.errMessage = ""
	m.pipeline.Load(msg.records)
	m.state = ViewStateList
	m.refresh()
	log.Debug().Int("records", len(msg.records)).Msg("users loaded")
	return m, nil
}

func (m *UsersModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			return m.quit()
		}
	}
	return m, m.loading.Update(msg)
}

func (m *UsersModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			return m.quit()
		case keyEnter, keyEsc:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.pipeline.State().SearchTerm {
		m.pipeline.SetSearchTerm(term)
		m.list.SetSelected(0)
		m.refresh()
	}
	return m, cmd
}

func (m *UsersModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		return m.quit()
	case keySlash:
		m.searching = true
		return m, m.search.Focus()
	case keyS:
		m.pipeline.SetSortKey(m.pipeline.State().SortKey.Next())
		m.refresh()
		return m, nil
	case keyLeft, keyH:
		m.PrevPage()
		return m, nil
	case keyRight, keyL:
		m.NextPage()
		return m, nil
	case keyEnter:
		if m.list.GetSelectedItem() != nil {
			m.state = ViewStateDetail
		}
		return m, nil
	case keyEsc:
		if m.pipeline.State().SearchTerm != "" {
			m.search.SetValue("")
			m.pipeline.SetSearchTerm("")
			m.refresh()
		}
		return m, nil
	case keyR:
		return m.reload()
	}

	m.list.Update(keyMsg)
	return m, nil
}

func (m *UsersModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			return m.quit()
		case keyEsc, keyEnter:
			m.state = ViewStateList
		}
	}
	return m, nil
}

func (m *UsersModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC, keyEsc:
			return m.quit()
		case keyR:
			return m.reload()
		}
	}
	return m, nil
}

// reload discards the current load, if any, and fetches again.
func (m *UsersModel) reload() (tea.Model, tea.Cmd) {
	m.state = ViewStateLoading
	m.err = nil
	m.errMessage = ""
	return m, tea.Batch(m.loading.Init(), m.fetchCmd())
}

// quit cancels the fetch and invalidates its generation so a late result is
// dropped.
func (m *UsersModel) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	m.gen.Cancel()
	m.state = ViewStateQuitting
	return m, tea.Quit
}

// PrevPage moves one page back, landing on the last page when the current
// page lies past the end.
func (m *UsersModel) PrevPage() {
	page := m.pipeline.State().Page
	target := min(page-1, m.view.TotalPages)
	if target < 1 || target == page {
		return
	}
	m.setPage(target)
}

// NextPage moves one page forward, stopping at the last page.
func (m *UsersModel) NextPage() {
	page := m.pipeline.State().Page
	if page >= m.view.TotalPages {
		return
	}
	m.setPage(page + 1)
}

func (m *UsersModel) setPage(n int) {
	m.pipeline.SetPage(n)
	m.list.SetSelected(0)
	m.refresh()
}

// refresh re-derives the visible page from the pipeline.
func (m *UsersModel) refresh() {
	m.view = m.pipeline.Derive()
	m.list.SetItems(m.view.Items)
	syncPaginator(&m.pager, m.view.Page, m.view.TotalPages)
}

// View renders the current view.
func (m *UsersModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return m.theme.Title.Render(titleText) + "\n" + RenderLoading(m.loading)
	case ViewStateError:
		return RenderLoadError(m.theme, m.errMessage) + m.theme.Help.Render(errorHelp) + "\n"
	case ViewStateDetail:
		if u := m.list.GetSelectedItem(); u != nil {
			return detail.Render(m.theme, *u)
		}
		return m.renderList()
	case ViewStateList:
		return m.renderList()
	default:
		return ""
	}
}

func (m *UsersModel) renderList() string {
	help := listHelp
	if m.searching {
		help = searchHelp
	}
	return renderListingFrame(m.theme, listingFrame{
		search: m.search.View(),
		sort:   m.pipeline.State().SortKey,
		rows:   m.list.View(),
		pager:  renderPageControl(m.theme, m.pager, m.view.Page, m.view.TotalPages),
		help:   help,
		width:  m.width,
	})
}

// State returns the current screen.
func (m *UsersModel) State() ViewState {
	return m.state
}

// Loading reports whether a fetch is in flight.
func (m *UsersModel) Loading() bool {
	return m.state == ViewStateLoading
}

// ErrorMessage returns the viewer-facing load failure message, if any.
func (m *UsersModel) ErrorMessage() string {
	return m.errMessage
}

// Err returns the underlying load failure, if any.
func (m *UsersModel) Err() error {
	return m.err
}

// ListingState returns the search term, sort key and page.
func (m *UsersModel) ListingState() listing.ViewState {
	return m.pipeline.State()
}

// CurrentView returns the last derived page.
func (m *UsersModel) CurrentView() listing.View {
	return m.view
}

// Searching reports whether the search input has focus.
func (m *UsersModel) Searching() bool {
	return m.searching
}

// SelectedUser returns the highlighted record, or nil.
func (m *UsersModel) SelectedUser() *users.User {
	return m.list.GetSelectedItem()
}
