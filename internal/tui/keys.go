package tui

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
	keyS     = "s"
	keyR     = "r"
	keyLeft  = "left"
	keyRight = "right"
	keyH     = "h"
	keyL     = "l"
)

// Help lines per screen.
const (
	listHelp   = "[/] Search  [s] Sort  [←→/hl] Page  [↑↓/jk] Navigate  [Enter] Details  [r] Reload  [q] Quit"
	searchHelp = "[Enter/Esc] Done"
	errorHelp  = "[r] Retry  [q] Quit"
)

// Text input sizing.
const (
	searchInputCharLimit = 64
	searchInputWidth     = 32
)
