// Package tui implements the interactive timeline: a Bubble Tea program that
// draws the filtered model list on a pannable, zoomable canvas and opens a
// detail overlay for the selected model.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/aichronos/internal/config"
	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/i18n"
	"github.com/rshade/aichronos/internal/logging"
	"github.com/rshade/aichronos/internal/timeline"
)

// Screen geometry.
const (
	defaultWidth  = 80
	defaultHeight = 24
	// canvasTop is the first screen row of the timeline canvas, below the
	// header and the filter bar.
	canvasTop     = 3
	statusTimeout = 3 * time.Second
	searchLimit   = 64
)

// Options configures the timeline TUI. It is an explicit value: nothing in
// the package reads global configuration.
type Options struct {
	Lang   i18n.Language
	Theme  config.Theme
	Bounds timeline.Bounds
	Layout timeline.Layout

	// ZoomStep is the factor of one zoom key press.
	ZoomStep float64
	// WheelDelta is the wheel delta of one mouse wheel notch.
	WheelDelta float64
	// PanStep is the number of columns one pan key press moves.
	PanStep float64

	Filter dataset.Filter
	Order  dataset.SortOrder

	// Clipboard writes text to the system clipboard. Nil uses atotto/clipboard.
	Clipboard func(string) error
}

// OptionsFromConfig derives Options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Lang:       cfg.Language(),
		Theme:      cfg.Theme(),
		Bounds:     cfg.Bounds(),
		Layout:     cfg.Layout(),
		ZoomStep:   cfg.Viewport.ZoomStep,
		WheelDelta: cfg.Viewport.WheelDelta,
		PanStep:    cfg.Viewport.PanStep,
	}
}

func (o Options) withDefaults() Options {
	if o.Lang == "" {
		o.Lang = i18n.DefaultLanguage
	}
	if o.Theme == "" {
		o.Theme = config.DefaultTheme
	}
	if o.Bounds.Validate() != nil {
		o.Bounds = timeline.DefaultBounds()
	}
	if o.Layout.Spacing <= 0 {
		o.Layout = timeline.DefaultLayout()
	}
	if o.ZoomStep <= 1 {
		o.ZoomStep = config.DefaultZoomStep
	}
	if o.WheelDelta <= 0 {
		o.WheelDelta = config.DefaultWheelDelta
	}
	if o.PanStep <= 0 {
		o.PanStep = config.DefaultPanStep
	}
	if o.Clipboard == nil {
		o.Clipboard = clipboard.WriteAll
	}
	return o
}

// DatasetReloadedMsg is sent when the watched dataset file was reloaded.
// On failure Err is set and the current data is kept.
type DatasetReloadedMsg struct {
	Dataset *dataset.Dataset
	Err     error
}

// statusExpiredMsg clears the status line if no newer message replaced it.
type statusExpiredMsg struct {
	seq int
}

// clipboardResultMsg reports the outcome of a copy.
type clipboardResultMsg struct {
	err error
}

// noSourceMsg is reported when the model on display has no source link.
type noSourceMsg struct{}

// selection is the single selected model ID, written by the controller's
// select callback.
type selection struct {
	id string
}

// nodePress is a left press on a node or its card that has not been
// released yet.
type nodePress struct {
	index int
	x, y  int
}

// AppModel is the Bubble Tea model of the timeline TUI.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type AppModel struct {
	ctx    context.Context
	opts   Options
	state  ViewState
	styles Styles
	labels i18n.UIText
	keys   keyMap
	help   help.Model

	// Data pipeline: dataset -> localized -> filtered and sorted -> items.
	data   *dataset.Dataset
	models []dataset.Model
	shown  []dataset.Model
	items  []timeline.Item
	filter dataset.Filter
	order  dataset.SortOrder

	controller  *timeline.Controller
	surface     *Surface
	selection   *selection
	press       *nodePress
	focus       int
	focusActive bool

	search textinput.Model
	detail *DetailModel

	width  int
	height int

	status    string
	statusErr bool
	statusSeq int
}

// NewAppModel creates the TUI model over ds.
func NewAppModel(ctx context.Context, ds *dataset.Dataset, opts Options) AppModel {
	opts = opts.withDefaults()
	sel := &selection{}

	m := AppModel{
		ctx:       ctx,
		opts:      opts,
		state:     ViewStateTimeline,
		styles:    NewStyles(opts.Theme),
		labels:    i18n.Labels(opts.Lang),
		keys:      newKeyMap(),
		help:      help.New(),
		data:      ds,
		filter:    opts.Filter,
		order:     opts.Order,
		surface:   &Surface{},
		selection: sel,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.controller = timeline.NewController(opts.Bounds, func(item timeline.Item) {
		sel.id = item.ID
	})
	m.search = newSearchInput(m.labels, opts.Filter.Search)
	m.refresh()

	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("component", "tui").
		Int("models", len(m.models)).
		Int("shown", len(m.shown)).
		Msg("timeline model created")
	return m
}

func newSearchInput(labels i18n.UIText, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = labels.SearchPlaceholder
	ti.CharLimit = searchLimit
	ti.Prompt = "/ "
	ti.SetValue(value)
	return ti
}

// Init initializes the model (Bubble Tea interface).
func (m AppModel) Init() tea.Cmd {
	return nil
}

// State returns the current view state.
func (m AppModel) State() ViewState {
	return m.state
}

// Transform returns the current view transform.
func (m AppModel) Transform() timeline.Transform {
	return m.controller.Transform()
}

// Items returns the displayed timeline items in order.
func (m AppModel) Items() []timeline.Item {
	return m.items
}

// SelectedID returns the ID of the last selected model.
func (m AppModel) SelectedID() string {
	return m.selection.id
}

// Locked reports whether the detail overlay holds the timeline scroll lock.
func (m AppModel) Locked() bool {
	return m.surface.Locked()
}

// Close releases every resource the model holds. It is safe to call on a
// model that was already closed.
func (m AppModel) Close() {
	if m.detail != nil {
		m.detail.Close()
	}
}

// refresh re-runs the data pipeline. The view transform is left untouched.
func (m *AppModel) refresh() {
	m.models = m.data.Localize(m.opts.Lang)
	m.shown = dataset.Apply(m.models, m.filter, m.order)
	m.items = dataset.TimelineItems(m.shown)

	if m.focus >= len(m.items) {
		m.focus = max(0, len(m.items)-1)
	}

	if m.detail != nil {
		model, ok := m.shownByID(m.detail.ID())
		if !ok {
			m.closeDetail()
			return
		}
		m.detail.Restyle(model, m.labels, m.styles)
	}
}

func (m AppModel) shownByID(id string) (dataset.Model, bool) {
	for _, model := range m.shown {
		if model.ID == id {
			return model, true
		}
	}
	return dataset.Model{}, false
}

func (m *AppModel) openDetail(id string) {
	model, ok := m.shownByID(id)
	if !ok {
		return
	}
	m.closeDetail()
	d := NewDetailModel(model, m.labels, m.styles, m.surface, m.width, m.height)
	m.detail = &d
	m.search.Blur()
	m.state = ViewStateDetail
	m.press = nil
	m.controller.CancelDrag()
}

// closeDetail closes the overlay and releases its scroll lock.
func (m *AppModel) closeDetail() {
	if m.detail != nil {
		m.detail.Close()
		m.detail = nil
	}
	if m.state == ViewStateDetail {
		m.state = ViewStateTimeline
	}
}

func (m *AppModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m AppModel) scene() timeline.Scene {
	highlight := ""
	if m.focusActive && m.focus < len(m.items) {
		highlight = m.items[m.focus].ID
	}
	return timeline.Scene{
		Items:      m.items,
		Layout:     m.opts.Layout,
		Transform:  m.controller.Transform(),
		Width:      m.width,
		Highlight:  highlight,
		MarkLatest: m.order == dataset.Newest,
	}
}
