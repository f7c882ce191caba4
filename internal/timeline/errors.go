package timeline

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidScale indicates scale bounds that cannot hold any valid transform.
// It is returned by Bounds.Validate and never by a transform mutation, which
// saturates instead.
const ErrInvalidScale = constError("invalid scale bounds")
