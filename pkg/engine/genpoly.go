package engine

import (
	"fmt"

	"github.com/fecforge/bchkit/pkg/galois"
)

// buildGenPoly computes the BCH generator polynomial
//
//	g(x) = lcm of the minimal polynomials of α^1 .. α^2t
//
// over GF(2), returned as a coefficient slice indexed by degree
// (gen[deg(g)] == 1). It also reports the achieved correction strength:
// the cyclotomic cosets pulled in for α^1..α^2t often cover further
// consecutive powers, in which case the code corrects more errors than
// requested.
func buildGenPoly(f *galois.Field, t int) (gen []byte, tActual int, err error) {
	n := f.Size()

	covered := make([]bool, n)
	g := []byte{1}
	for i := 1; i <= 2*t; i++ {
		if covered[i] {
			continue
		}

		// Cyclotomic coset of i under squaring mod 2^m - 1.
		var coset []int
		for j := i; !covered[j]; j = (2 * j) % n {
			covered[j] = true
			coset = append(coset, j)
		}

		// Minimal polynomial of α^i: the product of (x + α^j) over the
		// coset. Computed over GF(2^m), the coefficients collapse to GF(2).
		mp := []uint16{1}
		for _, r := range coset {
			next := make([]uint16, len(mp)+1)
			ar := f.AlphaPow(r)
			for d, c := range mp {
				next[d+1] ^= c
				next[d] ^= f.Mul(c, ar)
			}
			mp = next
		}

		mb := make([]byte, len(mp))
		for d, c := range mp {
			if c > 1 {
				return nil, 0, fmt.Errorf("minimal polynomial of α^%d has a coefficient outside GF(2)", i)
			}
			mb[d] = byte(c)
		}
		g = polyMulGF2(g, mb)
	}

	consecutive := 0
	for consecutive+1 < n && covered[consecutive+1] {
		consecutive++
	}
	return g, consecutive / 2, nil
}

// polyMulGF2 multiplies two polynomials over GF(2), coefficients indexed
// by degree.
func polyMulGF2(a, b []byte) []byte {
	out := make([]byte, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j] ^= ca & cb
		}
	}
	return out
}
