package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain is uncolored text for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is a colored one-shot render.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the output mode from the flags, the environment
// (NO_COLOR, TERM=dumb) and whether stdin and stdout are terminals.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(
		term.IsTerminal(int(os.Stdin.Fd())),
		term.IsTerminal(int(os.Stdout.Fd())),
		forceColor, noColor, plain,
		os.Getenv,
	)
}

func detectOutputMode(
	stdinTTY, stdoutTTY bool,
	forceColor, noColor, plain bool,
	getenv func(string) string,
) OutputMode {
	if plain {
		return OutputModePlain
	}

	colorless := noColor || getenv("NO_COLOR") != "" || getenv("TERM") == "dumb"
	if colorless {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}

	switch {
	case stdinTTY && stdoutTTY:
		return OutputModeInteractive
	case stdoutTTY, forceColor:
		return OutputModeStyled
	default:
		return OutputModePlain
	}
}
