package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc is a function that renders an item.
// The selected parameter indicates whether this item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a list of items with a selection cursor.
type Model[T any] struct {
	// items contains the rows on display
	items []T

	// renderFunc renders a single item
	renderFunc RenderFunc[T]

	// separator is placed between rendered rows; empty means none
	separator string

	// selected is the currently selected item index (0-based)
	selected int
}

// New creates a list model.
func New[T any](items []T, renderFunc RenderFunc[T]) *Model[T] {
	return &Model[T]{
		items:      items,
		renderFunc: renderFunc,
	}
}

// SetSeparator sets the line drawn between rows.
func (m *Model[T]) SetSeparator(sep string) {
	m.separator = sep
}

// SetItems replaces the rows, keeping the cursor in bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// Init initializes the model (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		m.handleKeyMsg(keyMsg)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are relevant.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.MoveUp()
	case tea.KeyDown:
		m.MoveDown()
	case tea.KeyHome:
		m.selected = 0
	case tea.KeyEnd:
		m.selected = len(m.items) - 1
	case tea.KeyRunes:
		// Handle vim-style navigation
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.MoveDown()
			case 'k':
				m.MoveUp()
			}
		}
	default:
	}
}

// MoveUp moves the cursor one row up, stopping at the first row.
func (m *Model[T]) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the cursor one row down, stopping at the last row.
func (m *Model[T]) MoveDown() {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
}

// View renders every row, separated by the separator line.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, item := range m.items {
		if i > 0 {
			sb.WriteString("\n")
			if m.separator != "" {
				sb.WriteString(m.separator + "\n")
			}
		}
		sb.WriteString(m.renderFunc(item, i == m.selected))
	}
	return sb.String()
}

// ItemCount returns the number of rows.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
}

// GetSelectedItem returns the currently selected item.
// Returns nil if list is empty.
func (m *Model[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
