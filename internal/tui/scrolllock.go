package tui

// Surface is the scrollable timeline area. While a ScrollLock is held, wheel
// and drag input must not reach it.
type Surface struct {
	lock *ScrollLock
}

// ScrollLock is the single owned handle on a locked Surface.
type ScrollLock struct {
	surface *Surface
}

// Lock acquires the surface. If it is already locked the existing handle is
// returned, so there is never more than one owner.
func (s *Surface) Lock() *ScrollLock {
	if s.lock == nil {
		s.lock = &ScrollLock{surface: s}
	}
	return s.lock
}

// Locked reports whether a handle is outstanding.
func (s *Surface) Locked() bool {
	return s != nil && s.lock != nil
}

// Release unlocks the surface. Releasing twice, or releasing a nil handle,
// is a no-op.
func (l *ScrollLock) Release() {
	if l == nil || l.surface == nil {
		return
	}
	if l.surface.lock == l {
		l.surface.lock = nil
	}
	l.surface = nil
}
