// Package timeline implements the pannable, zoomable horizontal timeline:
// the viewport controller that owns the view transform, the layout that
// places items along the pan axis, and a character canvas renderers share.
package timeline

import (
	"fmt"
	"math"
)

// Default scale bounds.
const (
	DefaultMinScale     = 0.25
	DefaultMaxScale     = 4.0
	DefaultInitialScale = 1.0
)

// Transform maps content columns to screen columns: screen = content*Scale + Offset.
type Transform struct {
	Offset float64
	Scale  float64
}

// Bounds holds the scale domain of a controller.
type Bounds struct {
	MinScale     float64
	MaxScale     float64
	InitialScale float64
}

// DefaultBounds returns the default scale domain.
func DefaultBounds() Bounds {
	return Bounds{
		MinScale:     DefaultMinScale,
		MaxScale:     DefaultMaxScale,
		InitialScale: DefaultInitialScale,
	}
}

// Validate reports whether b describes a non-empty positive scale range that
// contains the initial scale.
func (b Bounds) Validate() error {
	switch {
	case !finite(b.MinScale) || !finite(b.MaxScale) || !finite(b.InitialScale):
		return fmt.Errorf("%w: non-finite value", ErrInvalidScale)
	case b.MinScale <= 0:
		return fmt.Errorf("%w: min scale %g must be positive", ErrInvalidScale, b.MinScale)
	case b.MinScale > b.MaxScale:
		return fmt.Errorf("%w: min scale %g exceeds max scale %g", ErrInvalidScale, b.MinScale, b.MaxScale)
	case b.InitialScale < b.MinScale || b.InitialScale > b.MaxScale:
		return fmt.Errorf("%w: initial scale %g outside [%g, %g]",
			ErrInvalidScale, b.InitialScale, b.MinScale, b.MaxScale)
	}
	return nil
}

func (b Bounds) clamp(s float64) float64 {
	return math.Min(b.MaxScale, math.Max(b.MinScale, s))
}

// dragSession lives from pointer-down to pointer-up or pointer-leave.
type dragSession struct {
	pointerStart  float64
	offsetAtStart float64
}

// Controller owns the view transform and the drag session. It holds no item
// data. All methods are meant to be called from a single event loop.
type Controller struct {
	bounds    Bounds
	transform Transform
	drag      *dragSession
	onSelect  func(Item)
}

// NewController creates a controller at the initial transform. Invalid bounds
// fall back to DefaultBounds. onSelect may be nil.
func NewController(bounds Bounds, onSelect func(Item)) *Controller {
	if bounds.Validate() != nil {
		bounds = DefaultBounds()
	}
	return &Controller{
		bounds:    bounds,
		transform: Transform{Offset: 0, Scale: bounds.InitialScale},
		onSelect:  onSelect,
	}
}

// Transform returns the current transform.
func (c *Controller) Transform() Transform {
	return c.transform
}

// Bounds returns the scale domain.
func (c *Controller) Bounds() Bounds {
	return c.bounds
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// ZoomPercent returns the scale as a rounded percentage for readouts.
func (c *Controller) ZoomPercent() int {
	return int(math.Round(c.transform.Scale * 100)) //nolint:mnd // Percentage calculation.
}

// BeginDrag starts a drag session at pointer. It is a no-op while a session
// is already active.
func (c *Controller) BeginDrag(pointer float64) {
	if c.drag != nil || !finite(pointer) {
		return
	}
	c.drag = &dragSession{
		pointerStart:  pointer,
		offsetAtStart: c.transform.Offset,
	}
}

// ContinueDrag moves the offset by the pointer distance travelled since
// BeginDrag. Without an active session it does nothing.
func (c *Controller) ContinueDrag(pointer float64) {
	if c.drag == nil || !finite(pointer) {
		return
	}
	c.transform.Offset = c.drag.offsetAtStart + (pointer - c.drag.pointerStart)
}

// EndDrag discards the drag session. The transform stays where it is.
func (c *Controller) EndDrag() {
	c.drag = nil
}

// CancelDrag discards the drag session when the pointer leaves the surface.
func (c *Controller) CancelDrag() {
	c.drag = nil
}

// ZoomBy multiplies the scale by factor, anchored at the transform origin:
// the offset is left unchanged.
func (c *Controller) ZoomBy(factor float64) {
	if !finite(factor) {
		return
	}
	c.transform.Scale = c.bounds.clamp(c.transform.Scale * factor)
}

// ZoomAround multiplies the scale by factor while keeping the content under
// the screen column pivot fixed.
func (c *Controller) ZoomAround(factor, pivot float64) {
	if !finite(factor) || !finite(pivot) {
		return
	}
	prev := c.transform.Scale
	next := c.bounds.clamp(prev * factor)
	c.transform.Offset = pivot - (pivot-c.transform.Offset)*(next/prev)
	c.transform.Scale = next
}

// PanBy translates the offset by delta columns.
func (c *Controller) PanBy(delta float64) {
	if !finite(delta) {
		return
	}
	c.transform.Offset += delta
}

// Reset restores the initial transform and drops any drag session.
func (c *Controller) Reset() {
	c.transform = Transform{Offset: 0, Scale: c.bounds.InitialScale}
	c.drag = nil
}

// SelectItem forwards item to the selection collaborator. It reports false,
// without forwarding, while a drag is in progress.
func (c *Controller) SelectItem(item Item) bool {
	if c.drag != nil {
		return false
	}
	if c.onSelect != nil {
		c.onSelect(item)
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
