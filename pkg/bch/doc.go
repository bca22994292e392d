// Package bch provides BCH forward-error-correction codecs over byte
// buffers: appending parity data to a payload and later detecting and
// correcting bit errors in place.
//
// # Codec
//
// A Codec is built for one configuration: the Galois field order m
// (codeword length 2^m - 1 bits), a minimum correction strength, and an
// optional primitive polynomial override.
//
//	codec, err := bch.New(bch.Config{FieldOrder: 8, MinCorrection: 2})
//	if err != nil {
//	    return err
//	}
//	defer codec.Close()
//
// The engine may realize a stronger code than requested; the achieved
// strength, parity size and payload capacity are read-only properties
// (T, ECCBits, ECCBytes, N, MaxPayload) fixed for the codec's lifetime.
// Close releases the codec exactly once; a closed codec rejects all calls.
//
// # Buffer shapes
//
// Three buffer shapes are supported, all normalized to one (data, parity)
// view internally:
//
//   - Single growable buffer: Encode grows the buffer by ECCBytes and
//     writes the parity into the new tail; Decode treats the final
//     ECCBytes as parity and corrects the rest in place.
//   - Split pair: EncodeSplit fills a separate parity slice, resized to
//     exactly ECCBytes; DecodeSplit requires the parity slice to already
//     be exactly ECCBytes and fails with ErrSizeMismatch otherwise.
//   - Fixed buffer with a leading pad: EncodeFixed and DecodeFixed never
//     resize; the caller pre-allocates ECCBytes of trailing space and the
//     pad is skipped from the front.
//
// A separately supplied parity buffer of the wrong length is always
// ErrSizeMismatch, never truncated or zero-padded.
//
// # Decode results
//
// Decode operations return the number of corrected bit errors. An
// uncorrectable codeword is an expected, recoverable outcome: the call
// returns (CorrectionFailed, ErrUncorrectable) and callers are expected to
// check it on every decode (and drive any retry or retransmission logic
// themselves; the codec never retries). Passing a *[]int receives the
// corrected bit positions, indexes into the combined data+parity bit stream.
// Positions inside the parity region are reported but the parity bytes
// themselves are not repaired.
//
// # Convenience forms
//
// Encoded and Decoded transform a buffer by value and return nil on any
// failure. A nil result is indistinguishable from a legitimately empty
// one; callers that need the distinction must use the error-returning
// forms.
//
// # Typed codecs
//
// NewTyped binds an expected (N, LOAD, T) triple in bits and fails with a
// configuration error at construction, never at first use, when the
// engine's realized code differs. Its String form, for example
// "BCH( 255, 239,   2 )", is meant for logs and diagnostics.
//
// # Concurrency
//
// A Codec holds mutable scratch state: concurrent calls against the same
// instance must be serialized by the caller. Distinct instances are fully
// independent.
package bch
