// Package api provides interfaces for dependency injection
package api

// Codec defines the codec surface the API server requires. *bch.Codec
// satisfies it.
type Codec interface {
	// EncodeSplit computes parity for data into a separate buffer.
	EncodeSplit(data []byte, parity *[]byte) (int, error)

	// DecodeSplit corrects data in place against a separate parity buffer.
	DecodeSplit(data, parity []byte, positions *[]int) (int, error)

	// Derived, read-only code properties.
	N() int
	T() int
	ECCBits() int
	ECCBytes() int
	MaxPayload() int

	// String renders the code for diagnostics.
	String() string
}
