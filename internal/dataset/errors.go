package dataset

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for dataset loading and filtering.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidDataset indicates a dataset file that is not valid JSON of
	// the expected shape, or a record that fails validation.
	ErrInvalidDataset = constError("invalid dataset")

	// ErrUnsupportedVersion indicates a dataset schema version outside the
	// supported range.
	ErrUnsupportedVersion = constError("unsupported dataset version")

	// ErrUnknownCapability indicates a capability outside the closed set.
	ErrUnknownCapability = constError("unknown capability")

	// ErrUnknownCompany indicates a company filter outside the closed set.
	ErrUnknownCompany = constError("unknown company")

	// ErrUnknownFormat indicates an output format RenderModels cannot print.
	ErrUnknownFormat = constError("unknown output format")
)
