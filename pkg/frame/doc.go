// Package frame provides a stable binary container for one BCH codeword,
// so encoded blocks can be persisted or transported together with the
// parameters needed to decode them.
//
// # Frame Format
//
// Frames are serialized in a binary format with the following structure:
//
//	[Magic(2)][Version(1)][FieldOrder(1)][Correction(1)][PayloadSize(4)][ParitySize(2)][Payload][Parity]
//
// Fields:
//   - Magic: the bytes "bK" identifying a bchkit frame (little-endian uint16)
//   - Version: format version, currently 1
//   - FieldOrder: Galois field exponent m the codeword was encoded with
//   - Correction: requested minimum correction strength t
//   - PayloadSize: 32-bit payload length in bytes (little-endian)
//   - ParitySize: 16-bit parity length in bytes (little-endian)
//   - Payload: variable-length payload data
//   - Parity: variable-length parity data
//
// The total frame size is: 11 bytes (header) + PayloadSize + ParitySize.
//
// Unmarshal validates the magic, version and both declared sizes against
// the supplied buffer before touching the body; corruption of the header
// surfaces as a descriptive error rather than a bad slice. Integrity of
// the payload itself is the codec's job, not the frame's.
//
// Frames are decoded zero-copy: Payload and Parity alias the input buffer.
package frame
