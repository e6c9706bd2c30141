package ingestion

import "errors"

// Ingestion failures are recoverable at the upload boundary: the operation
// aborts, stored state is left untouched, and the message is surfaced to the
// caller. Per-field coercion failures are not errors; they degrade to a
// default value so messy spreadsheets still load.
var (
	// ErrEmptyUpload means the decoder produced zero data rows.
	ErrEmptyUpload = errors.New("upload contained no data rows")

	// ErrNoValidRows means every decoded row failed date/key validation.
	ErrNoValidRows = errors.New("no rows passed validation")

	// ErrMalformedSchema means rows were decoded but no column matched any
	// accepted header for the upload type.
	ErrMalformedSchema = errors.New("no columns matched any accepted header")
)
