package tui

import "github.com/charmbracelet/bubbles/key"

// Key strings as reported by tea.KeyMsg.String().
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEsc      = "esc"
	keyEnter    = "enter"
	keySlash    = "/"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyPlus     = "+"
	keyEquals   = "="
	keyMinus    = "-"
	keyZero     = "0"
	keyCompany  = "c"
	keyCap      = "a"
	keyYear     = "y"
	keyOrder    = "o"
	keyReset    = "x"
	keyLang     = "L"
	keyTheme    = "T"
	keyHelp     = "?"
	keyCopy     = "y"
)

// keyMap describes the bindings shown by the help bar.
type keyMap struct {
	Pan      key.Binding
	Zoom     key.Binding
	Reset    key.Binding
	Search   key.Binding
	Company  key.Binding
	Cap      key.Binding
	Year     key.Binding
	Order    key.Binding
	Clear    key.Binding
	Focus    key.Binding
	Open     key.Binding
	Language key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pan:      key.NewBinding(key.WithKeys(keyLeft, keyRight, keyH, keyL), key.WithHelp("←/→", "pan")),
		Zoom:     key.NewBinding(key.WithKeys(keyPlus, keyEquals, keyMinus), key.WithHelp("+/-", "zoom")),
		Reset:    key.NewBinding(key.WithKeys(keyZero), key.WithHelp("0", "reset view")),
		Search:   key.NewBinding(key.WithKeys(keySlash), key.WithHelp("/", "search")),
		Company:  key.NewBinding(key.WithKeys(keyCompany), key.WithHelp("c", "company")),
		Cap:      key.NewBinding(key.WithKeys(keyCap), key.WithHelp("a", "capability")),
		Year:     key.NewBinding(key.WithKeys(keyYear), key.WithHelp("y", "year")),
		Order:    key.NewBinding(key.WithKeys(keyOrder), key.WithHelp("o", "sort")),
		Clear:    key.NewBinding(key.WithKeys(keyReset), key.WithHelp("x", "reset filters")),
		Focus:    key.NewBinding(key.WithKeys(keyTab, keyShiftTab), key.WithHelp("tab", "focus")),
		Open:     key.NewBinding(key.WithKeys(keyEnter), key.WithHelp("enter", "open")),
		Language: key.NewBinding(key.WithKeys(keyLang), key.WithHelp("L", "language")),
		Theme:    key.NewBinding(key.WithKeys(keyTheme), key.WithHelp("T", "theme")),
		Help:     key.NewBinding(key.WithKeys(keyHelp), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys(keyQuit, keyCtrlC), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pan, k.Zoom, k.Search, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pan, k.Zoom, k.Reset, k.Focus, k.Open},
		{k.Search, k.Company, k.Cap, k.Year, k.Order, k.Clear},
		{k.Language, k.Theme, k.Help, k.Quit},
	}
}
