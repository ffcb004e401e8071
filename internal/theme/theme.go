// Package theme holds the palette and typography of the user list and turns
// them into lipgloss styles.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette defaults: Material purple 500 and blue 700 for primary and
// secondary, Material error red for failures.
const (
	DefaultPrimary   = "#9C27B0"
	DefaultSecondary = "#1976D2"
	DefaultError     = "#D32F2F"
	DefaultMuted     = "#757575"
	DefaultDivider   = "#BDBDBD"
)

// dividerWidth is the width of the rule drawn between list items.
const dividerWidth = 48

// Palette is the set of colors a Theme is built from. Values are hex colors.
type Palette struct {
	Primary   string `yaml:"primary"   json:"primary"   validate:"omitempty,hexcolor"`
	Secondary string `yaml:"secondary" json:"secondary" validate:"omitempty,hexcolor"`
	Error     string `yaml:"error"     json:"error"     validate:"omitempty,hexcolor"`
	Muted     string `yaml:"muted"     json:"muted"     validate:"omitempty,hexcolor"`
	Divider   string `yaml:"divider"   json:"divider"   validate:"omitempty,hexcolor"`
}

// DefaultPalette returns the stock palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   DefaultPrimary,
		Secondary: DefaultSecondary,
		Error:     DefaultError,
		Muted:     DefaultMuted,
		Divider:   DefaultDivider,
	}
}

// withDefaults fills empty colors from the stock palette.
func (p Palette) withDefaults() Palette {
	d := DefaultPalette()
	if p.Primary == "" {
		p.Primary = d.Primary
	}
	if p.Secondary == "" {
		p.Secondary = d.Secondary
	}
	if p.Error == "" {
		p.Error = d.Error
	}
	if p.Muted == "" {
		p.Muted = d.Muted
	}
	if p.Divider == "" {
		p.Divider = d.Divider
	}
	return p
}

// Theme is the resolved palette plus the styles derived from it.
type Theme struct {
	Palette Palette

	// Title is the heading style: bold, primary color.
	Title lipgloss.Style
	// Primary renders a record's primary label (its name).
	Primary lipgloss.Style
	// Secondary renders a record's secondary label.
	Secondary lipgloss.Style
	// Label renders form labels such as "Sort By".
	Label lipgloss.Style
	// Control renders form values (search text, selected sort option).
	// Option text keeps its case.
	Control lipgloss.Style
	// Error renders the load-failure message.
	Error lipgloss.Style
	// Divider renders the rule between list items.
	Divider lipgloss.Style
	// Selected highlights the selected list item.
	Selected lipgloss.Style
	// ActiveDot and InactiveDot render the page control.
	ActiveDot   lipgloss.Style
	InactiveDot lipgloss.Style
	// Help renders the key hint line.
	Help lipgloss.Style
	// Box frames the detail view.
	Box lipgloss.Style
}

// New builds a Theme from p. Empty colors use the stock palette.
func New(p Palette) Theme {
	p = p.withDefaults()
	primary := lipgloss.Color(p.Primary)
	secondary := lipgloss.Color(p.Secondary)
	muted := lipgloss.Color(p.Muted)

	return Theme{
		Palette:     p,
		Title:       lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Primary:     lipgloss.NewStyle(),
		Secondary:   lipgloss.NewStyle().Foreground(muted),
		Label:       lipgloss.NewStyle().Foreground(muted),
		Control:     lipgloss.NewStyle().Foreground(secondary),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Divider)),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		ActiveDot:   lipgloss.NewStyle().Foreground(primary),
		InactiveDot: lipgloss.NewStyle().Foreground(muted),
		Help:        lipgloss.NewStyle().Foreground(muted),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
	}
}

// Default returns the stock theme.
func Default() Theme {
	return New(DefaultPalette())
}

// Rule returns a divider line of the given width, or the default width when
// width is not positive.
func (t Theme) Rule(width int) string {
	if width <= 0 || width > dividerWidth {
		width = dividerWidth
	}
	line := make([]rune, width)
	for i := range line {
		line[i] = '─'
	}
	return t.Divider.Render(string(line))
}
