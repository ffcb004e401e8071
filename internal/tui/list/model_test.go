package listview_test

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rshade/userlist/internal/tui/list"
)

func renderInt(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func TestModel_Navigation(t *testing.T) {
	m := listview.New([]int{1, 2, 3}, renderInt)
	assert.Equal(t, 0, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.Selected())

	// Stops at the last row.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, m.Selected())
}

func TestModel_SetItemsClampsSelection(t *testing.T) {
	m := listview.New([]int{1, 2, 3, 4}, renderInt)
	m.SetSelected(3)

	m.SetItems([]int{9, 8})
	assert.Equal(t, 1, m.Selected())

	m.SetItems(nil)
	assert.Equal(t, 0, m.Selected())
	assert.Nil(t, m.GetSelectedItem())
	assert.Empty(t, m.View())
}

func TestModel_SetSelectedBounds(t *testing.T) {
	m := listview.New([]int{1, 2}, renderInt)

	m.SetSelected(-4)
	assert.Equal(t, 0, m.Selected())

	m.SetSelected(10)
	assert.Equal(t, 1, m.Selected())

	item := m.GetSelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, 2, *item)
}

func TestModel_ViewWithSeparator(t *testing.T) {
	m := listview.New([]int{1, 2}, renderInt)
	assert.Equal(t, "> 1\n  2", m.View())

	m.SetSeparator("--")
	assert.Equal(t, "> 1\n--\n  2", m.View())
	assert.Equal(t, 2, m.ItemCount())
}
