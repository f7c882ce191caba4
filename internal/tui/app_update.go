package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/i18n"
	"github.com/rshade/aichronos/internal/logging"
	"github.com/rshade/aichronos/internal/timeline"
)

// Update handles messages and updates the model state (Bubble Tea interface).
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.detail != nil {
			d, _ := m.detail.Update(msg)
			m.detail = &d
		}
		return m, nil
	case DatasetReloadedMsg:
		return m.handleReload(msg)
	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case clipboardResultMsg:
		if msg.err != nil {
			return m, m.setStatus(msg.err.Error(), true)
		}
		return m, m.setStatus(m.labels.Copied, false)
	case noSourceMsg:
		return m, m.setStatus(m.labels.NoSource, true)
	case tea.BlurMsg:
		m.controller.CancelDrag()
		m.press = nil
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch m.state {
	case ViewStateSearch:
		m.search, cmd = m.search.Update(msg)
	case ViewStateDetail:
		if m.detail != nil {
			var d DetailModel
			d, cmd = m.detail.Update(msg)
			m.detail = &d
		}
	case ViewStateTimeline, ViewStateQuitting:
	}
	return m, cmd
}

func (m AppModel) handleReload(msg DatasetReloadedMsg) (tea.Model, tea.Cmd) {
	logger := logging.FromContext(m.ctx)
	if msg.Err != nil {
		logger.Warn().Str("component", "tui").Err(msg.Err).Msg("keeping previous dataset")
		return m, m.setStatus(m.labels.ReloadFailed+": "+msg.Err.Error(), true)
	}
	if msg.Dataset == nil {
		return m, nil
	}
	m.data = msg.Dataset
	m.refresh()
	logger.Info().Str("component", "tui").Int("shown", len(m.shown)).Msg("dataset swapped")
	return m, m.setStatus(m.labels.DatasetReloaded, false)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case ViewStateSearch:
		return m.handleSearchKey(msg)
	case ViewStateDetail:
		return m.handleDetailKey(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m.handleTimelineKey(msg)
	}
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.closeDetail()
	m.controller.CancelDrag()
	m.state = ViewStateQuitting
	return m, tea.Quit
}

//nolint:gocyclo,cyclop // One branch per key binding.
func (m AppModel) handleTimelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	center := float64(m.width) / 2 //nolint:mnd // Screen center.

	if k := msg.String(); k == keyQuit || k == keyCtrlC {
		return m.quit()
	}
	if m.surface.Locked() {
		return m, nil
	}

	switch msg.String() {
	case keyLeft, keyH:
		m.controller.PanBy(m.opts.PanStep)
	case keyRight, keyL:
		m.controller.PanBy(-m.opts.PanStep)
	case keyPlus, keyEquals:
		m.controller.ZoomAround(m.opts.ZoomStep, center)
	case keyMinus:
		m.controller.ZoomAround(1/m.opts.ZoomStep, center)
	case keyZero:
		m.controller.Reset()
	case keySlash:
		m.state = ViewStateSearch
		cmd := m.search.Focus()
		return m, cmd
	case keyCompany:
		m.filter.Company = dataset.Cycle(dataset.Companies(), m.filter.Company)
		m.refresh()
	case keyCap:
		m.filter.Capability = dataset.Cycle(dataset.Capabilities(m.models), m.filter.Capability)
		m.refresh()
	case keyYear:
		m.filter.Year = dataset.Cycle(dataset.Years(m.models), m.filter.Year)
		m.refresh()
	case keyOrder:
		m.order = m.order.Toggle()
		m.refresh()
	case keyReset:
		m.filter = dataset.Filter{}
		m.search.SetValue("")
		m.refresh()
	case keyTab:
		m.moveFocus(1)
	case keyShiftTab:
		m.moveFocus(-1)
	case keyEnter:
		if m.focusActive && m.focus < len(m.items) {
			return m.selectIndex(m.focus)
		}
	case keyLang:
		m.toggleLanguage()
	case keyTheme:
		m.toggleTheme()
	case keyHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m AppModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC:
		return m.quit()
	case keyEnter:
		m.state = ViewStateTimeline
		m.search.Blur()
		return m, nil
	case keyEsc:
		m.state = ViewStateTimeline
		m.search.Blur()
		m.search.SetValue("")
		m.filter.Search = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.filter.Search {
		m.filter.Search = v
		m.refresh()
	}
	return m, cmd
}

func (m AppModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		return m.quit()
	case keyEsc:
		m.closeDetail()
		return m, nil
	case keyCopy:
		return m, m.copySource()
	case keyLang:
		m.toggleLanguage()
		return m, nil
	case keyTheme:
		m.toggleTheme()
		return m, nil
	}
	if m.detail == nil {
		return m, nil
	}
	d, cmd := m.detail.Update(msg)
	m.detail = &d
	return m, cmd
}

func (m AppModel) copySource() tea.Cmd {
	if m.detail == nil {
		return nil
	}
	src := m.detail.model.Source
	if src == "" {
		return func() tea.Msg { return noSourceMsg{} }
	}
	write := m.opts.Clipboard
	return func() tea.Msg {
		return clipboardResultMsg{err: write(src)}
	}
}

func (m *AppModel) toggleLanguage() {
	m.opts.Lang = m.opts.Lang.Toggle()
	m.labels = i18n.Labels(m.opts.Lang)
	m.search.Placeholder = m.labels.SearchPlaceholder
	m.refresh()
}

func (m *AppModel) toggleTheme() {
	m.opts.Theme = m.opts.Theme.Toggle()
	m.styles = NewStyles(m.opts.Theme)
	if m.detail != nil {
		m.detail.Restyle(m.detail.model, m.labels, m.styles)
	}
}

// moveFocus steps the keyboard focus and centers the focused item.
func (m *AppModel) moveFocus(step int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	if !m.focusActive {
		m.focusActive = true
		if step < 0 {
			m.focus = n - 1
		} else {
			m.focus = 0
		}
	} else {
		m.focus = ((m.focus+step)%n + n) % n
	}
	delta := m.opts.Layout.CenterOn(m.focus, m.controller.Transform(), float64(m.width)/2) //nolint:mnd // Screen center.
	m.controller.PanBy(delta)
}

// selectIndex forwards item i to the controller and opens its overlay when
// the selection went through.
func (m AppModel) selectIndex(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.items) {
		return m, nil
	}
	if !m.controller.SelectItem(m.items[i]) {
		return m, nil
	}
	m.focus = i
	m.focusActive = true
	m.openDetail(m.selection.id)
	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case ViewStateDetail:
		return m.handleDetailMouse(msg)
	case ViewStateQuitting:
		return m, nil
	case ViewStateTimeline, ViewStateSearch:
	}
	if m.surface.Locked() {
		m.press = nil
		m.controller.CancelDrag()
		return m, nil
	}

	x := float64(msg.X)
	switch {
	case isWheel(msg.Button):
		if msg.Action == tea.MouseActionPress {
			m.controller.HandleWheel(m.wheelEvent(msg))
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.inCanvas(msg.Y) {
			return m, nil
		}
		if idx, ok := m.hitItem(msg.X, msg.Y); ok {
			m.press = &nodePress{index: idx, x: msg.X, y: msg.Y}
			return m, nil
		}
		m.controller.BeginDrag(x)

	case msg.Action == tea.MouseActionMotion:
		if m.press != nil && (msg.X != m.press.x || msg.Y != m.press.y) {
			m.press = nil
		}
		if !m.controller.Dragging() {
			return m, nil
		}
		if !m.inCanvas(msg.Y) || msg.X < 0 || msg.X >= m.width {
			m.controller.CancelDrag()
			return m, nil
		}
		m.controller.ContinueDrag(x)

	case msg.Action == tea.MouseActionRelease:
		if m.controller.Dragging() {
			m.controller.EndDrag()
			return m, nil
		}
		press := m.press
		m.press = nil
		if press == nil {
			return m, nil
		}
		if idx, ok := m.hitItem(msg.X, msg.Y); ok && idx == press.index {
			return m.selectIndex(idx)
		}
	}
	return m, nil
}

// handleDetailMouse routes pointer input to the overlay while it holds the
// scroll lock. A press on the backdrop closes the overlay.
func (m AppModel) handleDetailMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		!m.detail.Contains(msg.X, msg.Y, m.width, m.height) {
		m.closeDetail()
		return m, nil
	}
	d, cmd := m.detail.Update(msg)
	m.detail = &d
	return m, cmd
}

func isWheel(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	default:
		return false
	}
}

// wheelEvent converts a terminal wheel report into controller units. One
// notch is WheelDelta; up and left are negative.
func (m AppModel) wheelEvent(msg tea.MouseMsg) timeline.WheelEvent {
	ev := timeline.WheelEvent{
		Pointer: float64(msg.X),
		Ctrl:    msg.Ctrl,
		Meta:    msg.Alt,
		Shift:   msg.Shift,
	}
	switch msg.Button { //nolint:exhaustive // Only wheel buttons reach here.
	case tea.MouseButtonWheelUp:
		ev.DeltaY = -m.opts.WheelDelta
	case tea.MouseButtonWheelDown:
		ev.DeltaY = m.opts.WheelDelta
	case tea.MouseButtonWheelLeft:
		ev.DeltaX = -m.opts.WheelDelta
	case tea.MouseButtonWheelRight:
		ev.DeltaX = m.opts.WheelDelta
	}
	return ev
}

func (m AppModel) inCanvas(y int) bool {
	return y >= canvasTop && y < canvasTop+timeline.CanvasHeight
}

// hitItem returns the item whose node or card covers screen cell (x, y).
// Year labels, boundaries, the bare spine and empty space are not hits.
func (m AppModel) hitItem(x, y int) (int, bool) {
	if !m.inCanvas(y) || len(m.items) == 0 {
		return -1, false
	}
	row := y - canvasTop
	scene := m.scene()
	cell := timeline.Render(scene).At(x, row)

	switch cell.Kind { //nolint:exhaustive // Everything else is background.
	case timeline.CellNode, timeline.CellNodeMilestone, timeline.CellNodeSelected,
		timeline.CellGroup, timeline.CellLabel, timeline.CellLabelSelected,
		timeline.CellDate, timeline.CellBadge:
	default:
		return -1, false
	}

	parity := -1
	switch {
	case row >= timeline.RowAboveGroup && row <= timeline.RowAboveDate:
		parity = 0
	case row >= timeline.RowBelowGroup && row <= timeline.RowBelowDate:
		parity = 1
	}

	best, bestDist := -1, math.Inf(1)
	from, to := scene.Layout.Visible(len(scene.Items), scene.Transform, scene.Width)
	for i := from; i < to; i++ {
		if parity >= 0 && i%2 != parity {
			continue
		}
		d := math.Abs(scene.Layout.ScreenX(i, scene.Transform) - float64(x))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
