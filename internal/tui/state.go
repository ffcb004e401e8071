package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the screen a model is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the fetch is in flight.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the filtered, sorted page of records.
	ViewStateList
	// ViewStateDetail shows a single record.
	ViewStateDetail
	// ViewStateError shows the load failure message.
	ViewStateError
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// String returns the state name for logs.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// defaultLoadingMessage is shown next to the spinner.
const defaultLoadingMessage = "Loading..."

// LoadingState is a spinner with a message.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading state with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &LoadingState{spinner: s, message: defaultLoadingMessage}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// Message returns the text shown next to the spinner.
func (l *LoadingState) Message() string {
	return l.message
}

// RenderLoading returns the string to display for a loading screen.
// If loading is nil, it returns the plain text "Loading...".
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return defaultLoadingMessage
	}
	return fmt.Sprintf("\n %s %s\n\n", loading.spinner.View(), loading.message)
}
