package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for configuration loading and validation.
var (
	// ErrInvalidConfig indicates a configuration value that fails validation.
	ErrInvalidConfig = constError("invalid configuration")

	// ErrUnknownTheme indicates a theme name outside the closed set.
	ErrUnknownTheme = constError("unknown theme")
)
