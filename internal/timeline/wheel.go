package timeline

import "math"

// Wheel zoom tuning: a delta of wheelZoomDivisor is a full step, and a single
// event never changes the scale by more than maxWheelZoomStep.
const (
	wheelZoomDivisor = 500.0
	maxWheelZoomStep = 0.5
)

// WheelEvent is a wheel input in screen columns. Negative DeltaY means the
// wheel moved up (away from the user).
type WheelEvent struct {
	DeltaX  float64
	DeltaY  float64
	Pointer float64
	Ctrl    bool
	Meta    bool
	Shift   bool
}

// zoomModifier reports whether the event asks for zoom instead of pan.
func (e WheelEvent) zoomModifier() bool {
	return e.Ctrl || e.Meta
}

// panDelta picks the axis that drives panning: horizontal when shift is held,
// vertical otherwise, falling back to the other axis when the chosen one is 0.
func (e WheelEvent) panDelta() float64 {
	primary, secondary := e.DeltaY, e.DeltaX
	if e.Shift {
		primary, secondary = e.DeltaX, e.DeltaY
	}
	if primary != 0 {
		return primary
	}
	return secondary
}

// WheelZoomFactor converts a vertical wheel delta into a multiplicative factor.
func WheelZoomFactor(deltaY float64) float64 {
	step := math.Max(-maxWheelZoomStep, math.Min(maxWheelZoomStep, deltaY/wheelZoomDivisor))
	return 1 - step
}

// HandleWheel zooms around the pointer when ctrl or meta is held and pans
// otherwise.
func (c *Controller) HandleWheel(e WheelEvent) {
	if e.zoomModifier() {
		if e.DeltaY == 0 {
			return
		}
		c.ZoomAround(WheelZoomFactor(e.DeltaY), e.Pointer)
		return
	}
	if d := e.panDelta(); d != 0 {
		c.PanBy(-d)
	}
}
