package tui

// ViewState represents the current state of the timeline TUI.
type ViewState int

const (
	// ViewStateTimeline is the default state: the timeline receives input.
	ViewStateTimeline ViewState = iota
	// ViewStateSearch routes keys to the search box.
	ViewStateSearch
	// ViewStateDetail shows the detail overlay and locks the timeline.
	ViewStateDetail
	// ViewStateQuitting is entered once quit was requested.
	ViewStateQuitting
)

func (s ViewState) String() string {
	switch s {
	case ViewStateTimeline:
		return "timeline"
	case ViewStateSearch:
		return "search"
	case ViewStateDetail:
		return "detail"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
