package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/aichronos/internal/config"
	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/i18n"
	"github.com/rshade/aichronos/internal/timeline"
)

const testDataset = `{"version": "1.0.0", "models": [
  {"id": "g1", "company": "Google", "releaseDate": "2024-02-15", "highlight": true,
   "capabilities": ["Multimodal"], "source": "https://example.com/g1",
   "en": {"name": "Gemini X", "description": "Multimodal model.", "coreTech": "MoE", "features": ["Long context"], "useCases": ["Analysis"]},
   "zh": {"name": "双子 X", "description": "多模态模型。", "coreTech": "混合专家", "features": ["长上下文"], "useCases": ["分析"]}},
  {"id": "o1", "company": "OpenAI", "releaseDate": "2023-03-14", "params": "",
   "capabilities": ["NLP"],
   "en": {"name": "GPT Y", "description": "Language model."},
   "zh": {"name": "GPT 乙", "description": "语言模型。"}},
  {"id": "m1", "company": "Meta", "releaseDate": "2023-02-24", "params": "65B",
   "capabilities": ["NLP", "Code"],
   "en": {"name": "Llama Z", "description": "Open model."},
   "zh": {"name": "羊驼 Z", "description": "开放模型。"}}
]}`

// Item columns at scale 1 with the default layout.
const (
	colG1    = 12
	colO1    = 26
	spineRow = canvasTop + timeline.RowSpine
	yearRow  = canvasTop + timeline.RowYear
)

type clipboardStub struct {
	written []string
	err     error
}

func (c *clipboardStub) write(s string) error {
	c.written = append(c.written, s)
	return c.err
}

func mustDataset(t *testing.T, doc string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Parse([]byte(doc))
	require.NoError(t, err)
	return ds
}

func newTestModel(t *testing.T) (AppModel, *clipboardStub) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	clip := &clipboardStub{}
	m := NewAppModel(context.Background(), mustDataset(t, testDataset), Options{
		Lang:      i18n.English,
		Theme:     config.ThemeDark,
		Clipboard: clip.write,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, clip
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am
}

func updateCmd(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func wheel(button tea.MouseButton, x int, ctrl bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: spineRow, Action: tea.MouseActionPress, Button: button, Ctrl: ctrl}
}

func itemIDs(m AppModel) []string {
	ids := make([]string, len(m.Items()))
	for i, it := range m.Items() {
		ids[i] = it.ID
	}
	return ids
}

func TestNewAppModel(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, ViewStateTimeline, m.State())
	assert.Equal(t, []string{"g1", "o1", "m1"}, itemIDs(m))
	assert.Equal(t, timeline.Transform{Offset: 0, Scale: 1}, m.Transform())
	assert.False(t, m.Locked())
	assert.Nil(t, m.Init())
}

func TestNewAppModel_LogsToContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	NewAppModel(ctx, mustDataset(t, testDataset), Options{Lang: i18n.English, Theme: config.ThemeDark})

	assert.Contains(t, buf.String(), "timeline model created")
	assert.Contains(t, buf.String(), `"shown":3`)
}

func TestAppModel_KeyboardPanZoom(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, -config.DefaultPanStep, m.Transform().Offset, 1e-9)

	m = update(t, m, runes("h"))
	assert.InDelta(t, 0, m.Transform().Offset, 1e-9)

	// Zoom keys pivot on the screen center (column 40).
	m = update(t, m, runes("+"))
	assert.InDelta(t, 1.25, m.Transform().Scale, 1e-9)
	assert.InDelta(t, -10, m.Transform().Offset, 1e-9)

	m = update(t, m, runes("-"))
	assert.InDelta(t, 1, m.Transform().Scale, 1e-9)
	assert.InDelta(t, 0, m.Transform().Offset, 1e-9)

	for range 20 {
		m = update(t, m, runes("+"))
	}
	assert.InDelta(t, timeline.DefaultMaxScale, m.Transform().Scale, 1e-9)

	m = update(t, m, runes("0"))
	assert.Equal(t, timeline.Transform{Offset: 0, Scale: 1}, m.Transform())
}

func TestAppModel_DragPansWithoutSelecting(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, press(1, yearRow))
	assert.True(t, m.controller.Dragging())

	m = update(t, m, motion(11, yearRow))
	assert.InDelta(t, 10, m.Transform().Offset, 1e-9)

	m = update(t, m, motion(6, yearRow))
	assert.InDelta(t, 5, m.Transform().Offset, 1e-9)

	m = update(t, m, release(6, yearRow))
	assert.False(t, m.controller.Dragging())
	assert.InDelta(t, 5, m.Transform().Offset, 1e-9)
	assert.Empty(t, m.SelectedID())
	assert.Equal(t, ViewStateTimeline, m.State())
}

func TestAppModel_DragCancelledOnLeaveAndBlur(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, press(1, yearRow))
	m = update(t, m, motion(4, yearRow))
	m = update(t, m, motion(9, 0))
	assert.False(t, m.controller.Dragging())
	assert.InDelta(t, 3, m.Transform().Offset, 1e-9)

	m = update(t, m, press(1, yearRow))
	require.True(t, m.controller.Dragging())
	m = update(t, m, tea.BlurMsg{})
	assert.False(t, m.controller.Dragging())
}

func TestAppModel_ClickNodeOpensDetail(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, press(colG1, spineRow))
	assert.False(t, m.controller.Dragging(), "node press must not start a drag")

	m = update(t, m, release(colG1, spineRow))
	assert.Equal(t, ViewStateDetail, m.State())
	assert.Equal(t, "g1", m.SelectedID())
	assert.True(t, m.Locked())
	assert.Contains(t, m.View(), "GOOGLE")
}

func TestAppModel_ClickCardBelowSpine(t *testing.T) {
	m, _ := newTestModel(t)

	// o1 is the second item, so its label sits below the spine.
	y := canvasTop + timeline.RowBelowLabel
	m = update(t, m, press(colO1, y))
	m = update(t, m, release(colO1, y))
	assert.Equal(t, "o1", m.SelectedID())
}

func TestAppModel_MotionCancelsClick(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, press(colG1, spineRow))
	m = update(t, m, motion(colG1+1, spineRow))
	m = update(t, m, release(colG1, spineRow))
	assert.Equal(t, ViewStateTimeline, m.State())
	assert.Empty(t, m.SelectedID())
}

func TestAppModel_DetailExitPathsReleaseLock(t *testing.T) {
	open := func(t *testing.T) AppModel {
		t.Helper()
		m, _ := newTestModel(t)
		m = update(t, m, press(colG1, spineRow))
		m = update(t, m, release(colG1, spineRow))
		require.True(t, m.Locked())
		return m
	}

	t.Run("escape", func(t *testing.T) {
		m := update(t, open(t), tea.KeyMsg{Type: tea.KeyEscape})
		assert.False(t, m.Locked())
		assert.Equal(t, ViewStateTimeline, m.State())
	})

	t.Run("backdrop click", func(t *testing.T) {
		m := open(t)
		m = update(t, m, press(40, 10))
		assert.True(t, m.Locked(), "press inside the panel keeps it open")
		m = update(t, m, press(0, 0))
		assert.False(t, m.Locked())
	})

	t.Run("quit", func(t *testing.T) {
		m, cmd := updateCmd(t, open(t), runes("q"))
		assert.Equal(t, ViewStateQuitting, m.State())
		assert.False(t, m.Locked())
		require.NotNil(t, cmd)
	})

	t.Run("filtered away", func(t *testing.T) {
		m := open(t)
		m.filter.Company = dataset.Meta
		m.refresh()
		assert.False(t, m.Locked())
		assert.Equal(t, ViewStateTimeline, m.State())
	})

	t.Run("reload drops model", func(t *testing.T) {
		m := open(t)
		dropped := mustDataset(t, `[{"id": "o1", "company": "OpenAI", "releaseDate": "2023-03-14",
			"en": {"name": "GPT Y"}, "zh": {"name": "GPT 乙"}}]`)
		m = update(t, m, DatasetReloadedMsg{Dataset: dropped})
		assert.False(t, m.Locked())
		assert.Equal(t, []string{"o1"}, itemIDs(m))
	})
}

func TestAppModel_LockedTimelineIgnoresInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, press(colG1, spineRow))
	m = update(t, m, release(colG1, spineRow))
	before := m.Transform()

	m = update(t, m, wheel(tea.MouseButtonWheelDown, 40, false))
	m = update(t, m, press(40, 10))
	m = update(t, m, motion(50, 10))
	m = update(t, m, runes("h"))

	assert.Equal(t, before, m.Transform())
	assert.False(t, m.controller.Dragging())
}

func TestAppModel_HeldLockBlocksTimeline(t *testing.T) {
	m, _ := newTestModel(t)
	lock := m.surface.Lock()
	require.Equal(t, ViewStateTimeline, m.State())
	before := m.Transform()

	m = update(t, m, wheel(tea.MouseButtonWheelDown, 40, false))
	m = update(t, m, wheel(tea.MouseButtonWheelUp, 40, true))
	m = update(t, m, press(1, yearRow))
	m = update(t, m, motion(11, yearRow))
	m = update(t, m, release(11, yearRow))
	m = update(t, m, press(colG1, spineRow))
	m = update(t, m, release(colG1, spineRow))
	for _, k := range []string{"h", "l", "+", "-", "c"} {
		m = update(t, m, runes(k))
	}

	assert.Equal(t, before, m.Transform())
	assert.False(t, m.controller.Dragging())
	assert.Nil(t, m.detail)
	assert.Equal(t, []string{"g1", "o1", "m1"}, itemIDs(m))

	lock.Release()
	m = update(t, m, wheel(tea.MouseButtonWheelDown, 40, false))
	assert.InDelta(t, -config.DefaultWheelDelta, m.Transform().Offset, 1e-9)
}

func TestAppModel_Wheel(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, wheel(tea.MouseButtonWheelDown, 40, false))
	assert.InDelta(t, -config.DefaultWheelDelta, m.Transform().Offset, 1e-9)

	m = update(t, m, runes("0"))
	m = update(t, m, wheel(tea.MouseButtonWheelUp, 40, true))
	assert.InDelta(t, 1.04, m.Transform().Scale, 1e-9)
	assert.InDelta(t, 40-40*1.04, m.Transform().Offset, 1e-9)

	m = update(t, m, runes("0"))
	m = update(t, m, wheel(tea.MouseButtonWheelRight, 40, false))
	assert.InDelta(t, -config.DefaultWheelDelta, m.Transform().Offset, 1e-9)
}

func TestAppModel_Filters(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("c"))
	assert.Equal(t, dataset.Google, m.filter.Company)
	assert.Equal(t, []string{"g1"}, itemIDs(m))

	m = update(t, m, runes("x"))
	assert.Len(t, m.Items(), 3)

	m = update(t, m, runes("y"))
	assert.Equal(t, "2024", m.filter.Year)
	m = update(t, m, runes("y"))
	assert.Equal(t, "2023", m.filter.Year)
	assert.Equal(t, []string{"o1", "m1"}, itemIDs(m))
	m = update(t, m, runes("y"))
	assert.Empty(t, m.filter.Year)

	m = update(t, m, runes("a"))
	assert.Equal(t, dataset.Code, m.filter.Capability)
	assert.Equal(t, []string{"m1"}, itemIDs(m))
	m = update(t, m, runes("x"))

	m = update(t, m, runes("o"))
	assert.Equal(t, []string{"m1", "o1", "g1"}, itemIDs(m))
}

func TestAppModel_TransformSurvivesDataChange(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	before := m.Transform()

	m = update(t, m, runes("c"))
	m = update(t, m, runes("L"))
	assert.Equal(t, before, m.Transform())
}

func TestAppModel_Search(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("/"))
	assert.Equal(t, ViewStateSearch, m.State())

	m = update(t, m, runes("gem"))
	assert.Equal(t, []string{"g1"}, itemIDs(m))
	assert.Equal(t, "gem", m.filter.Search)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateTimeline, m.State())
	assert.Equal(t, []string{"g1"}, itemIDs(m))

	m = update(t, m, runes("/"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Empty(t, m.filter.Search)
	assert.Len(t, m.Items(), 3)
}

func TestAppModel_ClickDuringSearchBlursInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("/"))
	require.Equal(t, ViewStateSearch, m.State())
	require.True(t, m.search.Focused())

	m = update(t, m, press(colG1, spineRow))
	m = update(t, m, release(colG1, spineRow))
	require.Equal(t, ViewStateDetail, m.State())
	assert.False(t, m.search.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewStateTimeline, m.State())
	assert.False(t, m.search.Focused())
}

func TestAppModel_LanguageToggle(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, "Gemini X", m.Items()[0].Label)
	assert.Contains(t, m.View(), "AI CHRONOS")

	m = update(t, m, runes("L"))
	assert.Equal(t, "双子 X", m.Items()[0].Label)
	assert.Contains(t, m.View(), "AI 时序")
}

func TestAppModel_ThemeToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("T"))
	assert.Equal(t, config.ThemeLight, m.styles.Theme)
	assert.Contains(t, m.View(), "LIGHT")
}

func TestAppModel_FocusAndEnter(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateTimeline, m.State(), "enter without focus does nothing")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.InDelta(t, 40-colG1, m.Transform().Offset, 1e-9)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.InDelta(t, 40-colO1, m.Transform().Offset, 1e-9)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "o1", m.SelectedID())
	assert.Equal(t, ViewStateDetail, m.State())
}

func TestAppModel_CopySource(t *testing.T) {
	m, clip := newTestModel(t)
	m = update(t, m, press(colG1, spineRow))
	m = update(t, m, release(colG1, spineRow))

	m, cmd := updateCmd(t, m, runes("y"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.Equal(t, []string{"https://example.com/g1"}, clip.written)
	assert.Equal(t, i18n.Labels(i18n.English).Copied, m.status)

	clip.err = errors.New("no clipboard")
	m, cmd = updateCmd(t, m, runes("y"))
	m = update(t, m, cmd())
	assert.True(t, m.statusErr)
}

func TestAppModel_CopyWithoutSource(t *testing.T) {
	m, clip := newTestModel(t)
	m = update(t, m, press(colO1, spineRow))
	m = update(t, m, release(colO1, spineRow))
	require.Equal(t, "o1", m.SelectedID())

	m, cmd := updateCmd(t, m, runes("y"))
	m = update(t, m, cmd())
	assert.Empty(t, clip.written)
	assert.Equal(t, i18n.Labels(i18n.English).NoSource, m.status)
}

func TestAppModel_ReloadFailureKeepsData(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := updateCmd(t, m, DatasetReloadedMsg{Err: errors.New("boom")})
	assert.Len(t, m.Items(), 3)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "boom")
	require.NotNil(t, cmd)

	m = update(t, m, statusExpiredMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

func TestAppModel_View(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "NODES ACTIVE 3")
	assert.Contains(t, view, "ZOOM 100%")
	assert.Contains(t, view, "Gemini X")
	assert.Contains(t, view, "LATEST")
	assert.Contains(t, view, string(timeline.GlyphMilestone))

	m = update(t, m, runes("/"))
	m = update(t, m, runes("zzz"))
	assert.Contains(t, m.View(), "NO DATA FOUND")
}

func TestScrollLock(t *testing.T) {
	s := &Surface{}
	assert.False(t, s.Locked())

	a := s.Lock()
	b := s.Lock()
	assert.Same(t, a, b, "one owner at a time")
	assert.True(t, s.Locked())

	a.Release()
	assert.False(t, s.Locked())
	a.Release()
	b.Release()

	var nilLock *ScrollLock
	nilLock.Release()

	c := s.Lock()
	a.Release()
	assert.True(t, s.Locked(), "stale handle cannot release a newer lock")
	c.Release()
	assert.False(t, s.Locked())
}
