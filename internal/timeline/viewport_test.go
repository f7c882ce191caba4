package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *Controller {
	return NewController(Bounds{MinScale: 0.5, MaxScale: 3, InitialScale: 1}, nil)
}

func TestNewController_InitialTransform(t *testing.T) {
	c := newTestController()

	assert.Equal(t, Transform{Offset: 0, Scale: 1}, c.Transform())
	assert.False(t, c.Dragging())
	assert.Equal(t, 100, c.ZoomPercent())
}

func TestNewController_InvalidBoundsFallBack(t *testing.T) {
	c := NewController(Bounds{MinScale: 2, MaxScale: 1, InitialScale: 1}, nil)

	assert.Equal(t, DefaultBounds(), c.Bounds())
	assert.Equal(t, DefaultInitialScale, c.Transform().Scale)
}

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr bool
	}{
		{name: "defaults", bounds: DefaultBounds()},
		{name: "degenerate range", bounds: Bounds{MinScale: 1, MaxScale: 1, InitialScale: 1}},
		{name: "zero min", bounds: Bounds{MinScale: 0, MaxScale: 2, InitialScale: 1}, wantErr: true},
		{name: "negative min", bounds: Bounds{MinScale: -1, MaxScale: 2, InitialScale: 1}, wantErr: true},
		{name: "inverted", bounds: Bounds{MinScale: 3, MaxScale: 2, InitialScale: 2}, wantErr: true},
		{name: "initial below", bounds: Bounds{MinScale: 1, MaxScale: 2, InitialScale: 0.5}, wantErr: true},
		{name: "initial above", bounds: Bounds{MinScale: 1, MaxScale: 2, InitialScale: 2.5}, wantErr: true},
		{name: "nan", bounds: Bounds{MinScale: math.NaN(), MaxScale: 2, InitialScale: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidScale)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestZoomBy_AlwaysWithinBounds(t *testing.T) {
	c := newTestController()
	factors := []float64{2, 2, 2, 10, 0.1, 0.1, 0.01, 1.5, 0, -3, 1e9, 0.9, 1.1, math.Inf(1), math.NaN()}

	for _, f := range factors {
		c.ZoomBy(f)
		s := c.Transform().Scale
		assert.GreaterOrEqual(t, s, 0.5, "factor %v", f)
		assert.LessOrEqual(t, s, 3.0, "factor %v", f)
	}
}

func TestZoomAround_AlwaysWithinBounds(t *testing.T) {
	c := newTestController()

	for i := 0; i < 50; i++ {
		factor := 0.3
		if i%3 == 0 {
			factor = 4
		}
		c.ZoomAround(factor, float64(i*7))
		s := c.Transform().Scale
		require.GreaterOrEqual(t, s, 0.5)
		require.LessOrEqual(t, s, 3.0)
	}
}

func TestZoomBy_LeavesOffsetUnchanged(t *testing.T) {
	c := newTestController()
	c.PanBy(42)

	c.ZoomBy(2)

	assert.Equal(t, Transform{Offset: 42, Scale: 2}, c.Transform())
}

func TestZoomAround_KeepsPivotStationary(t *testing.T) {
	c := NewController(DefaultBounds(), nil)

	c.ZoomAround(2, 100)

	assert.InDelta(t, -100.0, c.Transform().Offset, 1e-9)
	assert.InDelta(t, 2.0, c.Transform().Scale, 1e-9)

	// The content column under x=100 before the zoom is still under it.
	content := (100 - 0) / 1.0
	after := content*c.Transform().Scale + c.Transform().Offset
	assert.InDelta(t, 100.0, after, 1e-9)
}

func TestZoomAround_AtClampDoesNotShift(t *testing.T) {
	c := newTestController()
	c.ZoomBy(3)
	c.PanBy(10)

	c.ZoomAround(2, 50)

	assert.Equal(t, Transform{Offset: 10, Scale: 3}, c.Transform())
}

func TestDrag_TranslatesOffsetOnly(t *testing.T) {
	c := newTestController()
	c.PanBy(5)
	c.ZoomBy(1.5)
	before := c.Transform()

	c.BeginDrag(10)
	assert.True(t, c.Dragging())
	c.ContinueDrag(37)
	c.EndDrag()

	after := c.Transform()
	assert.Equal(t, before.Offset+(37-10), after.Offset)
	assert.Equal(t, before.Scale, after.Scale)
	assert.False(t, c.Dragging())
}

func TestDrag_RelativeToSessionStart(t *testing.T) {
	c := newTestController()

	c.BeginDrag(0)
	c.ContinueDrag(10)
	c.ContinueDrag(4)

	assert.Equal(t, 4.0, c.Transform().Offset)
}

func TestContinueDrag_WithoutSessionIsNoop(t *testing.T) {
	c := newTestController()
	c.PanBy(3)
	before := c.Transform()

	c.ContinueDrag(100)
	c.EndDrag()
	c.CancelDrag()

	assert.Equal(t, before, c.Transform())
	assert.False(t, c.Dragging())
}

func TestBeginDrag_WhileDraggingIsNoop(t *testing.T) {
	c := newTestController()

	c.BeginDrag(10)
	c.BeginDrag(50)
	c.ContinueDrag(60)

	assert.Equal(t, 50.0, c.Transform().Offset)
}

func TestDrag_NewSessionDoesNotReuseOldStart(t *testing.T) {
	c := newTestController()

	c.BeginDrag(0)
	c.ContinueDrag(30)
	c.EndDrag()
	require.Equal(t, 30.0, c.Transform().Offset)

	c.BeginDrag(100)
	c.ContinueDrag(90)
	c.CancelDrag()

	assert.Equal(t, 20.0, c.Transform().Offset)
}

func TestDrag_NoInertiaAfterRelease(t *testing.T) {
	c := newTestController()

	c.BeginDrag(0)
	c.ContinueDrag(25)
	c.EndDrag()
	c.ContinueDrag(80)

	assert.Equal(t, 25.0, c.Transform().Offset)
}

func TestReset_RestoresInitialState(t *testing.T) {
	c := newTestController()
	c.PanBy(-300)
	c.ZoomAround(2.5, 17)
	c.BeginDrag(4)

	c.Reset()

	assert.Equal(t, Transform{Offset: 0, Scale: 1}, c.Transform())
	assert.False(t, c.Dragging())
}

func TestPanBy_Unbounded(t *testing.T) {
	c := newTestController()

	c.PanBy(-1e6)
	c.PanBy(math.NaN())

	assert.Equal(t, -1e6, c.Transform().Offset)
	assert.Equal(t, 1.0, c.Transform().Scale)
}

func TestSelectItem_ForwardsUnlessDragging(t *testing.T) {
	var got []string
	c := NewController(DefaultBounds(), func(item Item) { got = append(got, item.ID) })
	before := c.Transform()

	assert.True(t, c.SelectItem(Item{ID: "gpt-4"}))

	c.BeginDrag(0)
	assert.False(t, c.SelectItem(Item{ID: "claude"}))
	c.EndDrag()

	assert.Equal(t, []string{"gpt-4"}, got)
	assert.Equal(t, before, c.Transform())
}

func TestSelectItem_NilCollaborator(t *testing.T) {
	c := NewController(DefaultBounds(), nil)

	assert.True(t, c.SelectItem(Item{ID: "x"}))
}
