package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"

	"github.com/rshade/userlist/internal/listing"
	"github.com/rshade/userlist/internal/theme"
	listview "github.com/rshade/userlist/internal/tui/list"
	"github.com/rshade/userlist/internal/users"
)

// Screen text.
const (
	titleText        = "User List"
	searchLabel      = "Search by name or role"
	sortLabel        = "Sort By"
	emptyListText    = "No users found"
	cursorSelected   = "> "
	cursorUnselected = "  "

	// maxDotPages is the most pages drawn as dots; beyond it the page
	// control switches to "n/total".
	maxDotPages = 10
)

// renderUserRow returns the row renderer: the name on the first line and
// "<email> - Role: <role>" below it.
func renderUserRow(t theme.Theme) listview.RenderFunc[users.User] {
	return func(u users.User, selected bool) string {
		cursor, name := cursorUnselected, t.Primary.Render(u.Name)
		if selected {
			cursor, name = t.Selected.Render(cursorSelected), t.Selected.Render(u.Name)
		}
		return cursor + name + "\n" + cursorUnselected + t.Secondary.Render(u.SecondaryLabel())
	}
}

// renderSortSelector draws "Sort By: [Name]  Email" with the active key
// bracketed.
func renderSortSelector(t theme.Theme, active listing.SortKey) string {
	opts := make([]string, 0, len(listing.SortKeys()))
	for _, k := range listing.SortKeys() {
		if k == active {
			opts = append(opts, t.Control.Render("["+k.Label()+"]"))
			continue
		}
		opts = append(opts, t.Label.Render(" "+k.Label()+" "))
	}
	return t.Label.Render(sortLabel+":") + " " + strings.Join(opts, " ")
}

// newPaginator creates the page control styled with t.
func newPaginator(t theme.Theme) paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = t.ActiveDot.Render("•")
	p.InactiveDot = t.InactiveDot.Render("○")
	p.ArabicFormat = "%d/%d"
	return p
}

// syncPaginator binds p to a 1-based page out of total.
func syncPaginator(p *paginator.Model, page, total int) {
	p.TotalPages = total
	p.Page = page - 1
	if total > maxDotPages {
		p.Type = paginator.Arabic
	} else {
		p.Type = paginator.Dots
	}
}

// renderPageControl draws the paginator plus "Page X of Y". It is empty when
// there are no pages.
func renderPageControl(t theme.Theme, p paginator.Model, page, total int) string {
	if total <= 0 {
		return ""
	}
	return p.View() + "  " + t.Label.Render(fmt.Sprintf("Page %d of %d", page, total))
}

// listingFrame is everything the list screen shows.
type listingFrame struct {
	search string
	sort   listing.SortKey
	rows   string
	pager  string
	help   string
	width  int
}

func renderListingFrame(t theme.Theme, f listingFrame) string {
	var sb strings.Builder
	sb.WriteString(t.Title.Render(titleText))
	sb.WriteString("\n")
	sb.WriteString(t.Label.Render(searchLabel+":") + " " + f.search + "\n")
	sb.WriteString(renderSortSelector(t, f.sort) + "\n")
	sb.WriteString(t.Rule(f.width) + "\n")

	if f.rows == "" {
		sb.WriteString(t.Secondary.Render(emptyListText) + "\n")
	} else {
		sb.WriteString(f.rows + "\n")
	}

	sb.WriteString(t.Rule(f.width) + "\n")
	if f.pager != "" {
		sb.WriteString(f.pager + "\n")
	}
	if f.help != "" {
		sb.WriteString(t.Help.Render(f.help) + "\n")
	}
	return sb.String()
}

// RenderStatic renders one page of the listing without interaction, for
// styled and plain output modes. Rows are not highlighted.
func RenderStatic(t theme.Theme, state listing.ViewState, view listing.View) string {
	render := renderUserRow(t)
	rows := listview.New(view.Items, func(u users.User, _ bool) string {
		return render(u, false)
	})
	rows.SetSeparator(t.Rule(0))

	search := t.Secondary.Render("(none)")
	if state.SearchTerm != "" {
		search = t.Control.Render(state.SearchTerm)
	}

	p := newPaginator(t)
	syncPaginator(&p, view.Page, view.TotalPages)

	return renderListingFrame(t, listingFrame{
		search: search,
		sort:   state.SortKey,
		rows:   rows.View(),
		pager:  renderPageControl(t, p, view.Page, view.TotalPages),
	})
}

// RenderLoadError renders the load-failure screen.
func RenderLoadError(t theme.Theme, message string) string {
	return t.Title.Render(titleText) + "\n" + t.Error.Render(message) + "\n"
}

// PlainTheme returns a theme with no styling, for plain output.
func PlainTheme() theme.Theme {
	return theme.Theme{Palette: theme.DefaultPalette()}
}
