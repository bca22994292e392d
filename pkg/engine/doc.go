// Package engine implements the raw binary BCH codec: generator polynomial
// construction over GF(2^m), systematic parity generation, and syndrome-based
// error location and correction.
//
// An Engine is created for one (field order, correction strength, primitive
// polynomial) configuration and owns that configuration's tables and scratch
// state for its lifetime. It is the single mutable resource behind a codec:
// one Engine must not be shared between concurrent callers, and must not be
// copied. Close releases it exactly once.
//
// The engine works on whole codewords. Data and parity are bit streams,
// most-significant bit first within each byte; the codeword is the
// concatenation of data followed by parity, at most 2^m - 1 bits long. Shorter data is a
// shortened code with implicit leading zero bits.
//
// Correction is applied to the data region only. Errors located inside the
// parity bytes are counted and reported through the positions buffer but are
// not written back; callers that need pristine parity must re-encode.
package engine
