package bch

import (
	"fmt"

	"github.com/fecforge/bchkit/pkg/engine"
	"github.com/fecforge/bchkit/pkg/galois"
)

// TypedCodec is a Codec bound to an exact (N, LOAD, T) triple, in bits:
// codeword length, payload length and correction strength. Construction
// verifies that the engine realized exactly that triple, so callers can
// assume the three capacities are fixed and checked; any drift is a fatal
// configuration error at construction, never at first use.
type TypedCodec struct {
	*Codec
	n    int
	load int
	t    int
}

// NewTyped builds a codec for the (n, load, t) triple and validates the
// realized configuration against it. n must be 2^m - 1 for a supported
// field order m; the parity must come out at exactly n - load bits and the
// achieved strength at exactly t.
func NewTyped(n, load, t int) (*TypedCodec, error) {
	m, ok := fieldOrderFor(n)
	if !ok {
		return nil, &engine.ConfigError{
			Correction: t,
			Reason:     fmt.Sprintf("codeword length %d is not 2^m - 1 for any supported m", n),
		}
	}

	codec, err := New(Config{FieldOrder: m, MinCorrection: t})
	if err != nil {
		return nil, err
	}
	if codec.T() != t || codec.N() != n || codec.N()-codec.ECCBits() != load {
		realized := codec.String()
		codec.Close()
		return nil, &engine.ConfigError{
			FieldOrder: m,
			Correction: t,
			Reason: fmt.Sprintf("engine realized %s, want BCH( %d, %d, %3d )",
				realized, n, load, t),
		}
	}
	return &TypedCodec{Codec: codec, n: n, load: load, t: t}, nil
}

// fieldOrderFor returns the m with 2^m - 1 == n, if one exists in the
// supported range.
func fieldOrderFor(n int) (uint, bool) {
	for m := uint(galois.MinOrder); m <= galois.MaxOrder; m++ {
		if (1<<m)-1 == n {
			return m, true
		}
	}
	return 0, false
}
