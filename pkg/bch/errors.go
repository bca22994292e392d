package bch

import "github.com/fecforge/bchkit/pkg/engine"

// CorrectionFailed is the corrections count returned together with
// ErrUncorrectable when a codeword cannot be repaired.
const CorrectionFailed = engine.CorrectionFailed

// Errors
var (
	// ErrSizeMismatch reports a separately supplied parity buffer whose
	// length differs from ECCBytes. This is a caller bug and is never
	// coerced by truncating or padding.
	ErrSizeMismatch = &CodecError{"parity buffer length does not match ecc bytes"}

	// ErrPayloadTooLarge reports a payload that does not fit the codeword
	// together with its parity bits.
	ErrPayloadTooLarge = &CodecError{"payload does not fit the codeword"}

	// ErrUncorrectable reports a codeword with more bit errors than the
	// configuration can repair. Expected and recoverable; check it on
	// every decode.
	ErrUncorrectable error = engine.ErrUncorrectable

	// ErrClosed reports use of a codec after Close.
	ErrClosed error = engine.ErrClosed
)

// CodecError represents a codec adapter error.
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
