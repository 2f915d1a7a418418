package locale

import "errors"

var (
	// ErrInvalidTable indicates string table data could not be decoded.
	ErrInvalidTable = errors.New("locale: invalid string table")

	// ErrNilLookup indicates a nil Lookup was registered.
	ErrNilLookup = errors.New("locale: lookup is nil")

	// ErrDuplicateLanguage indicates a language was registered twice.
	ErrDuplicateLanguage = errors.New("locale: language already registered")
)
