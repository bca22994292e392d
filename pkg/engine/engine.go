package engine

import (
	"fmt"

	"github.com/fecforge/bchkit/pkg/galois"
)

// Engine is a raw BCH codec bound to one configuration. It owns the field
// tables, the generator polynomial and the decode scratch buffers; see the
// package documentation for the sharing and copying rules.
type Engine struct {
	field *galois.Field
	n     int // codeword length in bits, 2^m - 1

	t        int // achieved correction strength, >= the requested minimum
	eccBits  int // deg g(x)
	eccBytes int

	gen []byte // g(x) coefficients indexed by degree

	// Decode scratch, reused across calls. This is what makes a single
	// engine unsafe for concurrent use.
	synd []uint16
	elp  []uint16
	prev []uint16
	temp []uint16

	closed bool
}

// New builds a BCH codec over GF(2^m) correcting at least t bit errors.
// A zero primPoly selects the default primitive polynomial for the field.
// The engine is free to realize a stronger code than requested; the achieved
// strength is reported by T.
func New(m uint, t int, primPoly uint32) (*Engine, error) {
	fail := func(reason string) (*Engine, error) {
		return nil, &ConfigError{FieldOrder: m, Correction: t, PrimitivePoly: primPoly, Reason: reason}
	}

	if t < 1 {
		return fail("correction strength must be at least 1")
	}
	field, err := galois.NewField(m, primPoly)
	if err != nil {
		return fail(err.Error())
	}
	n := field.Size()
	if 2*t >= n {
		return fail(fmt.Sprintf("2t = %d does not fit a %d-bit codeword", 2*t, n))
	}

	gen, tActual, err := buildGenPoly(field, t)
	if err != nil {
		return fail(err.Error())
	}
	eccBits := len(gen) - 1
	if n-eccBits < 8 {
		return fail(fmt.Sprintf("%d parity bits leave no room for data in a %d-bit codeword", eccBits, n))
	}

	return &Engine{
		field:    field,
		n:        n,
		t:        tActual,
		eccBits:  eccBits,
		eccBytes: (eccBits + 7) / 8,
		gen:      gen,
		synd:     make([]uint16, 2*tActual),
		elp:      make([]uint16, 2*tActual+2),
		prev:     make([]uint16, 2*tActual+2),
		temp:     make([]uint16, 2*tActual+2),
	}, nil
}

// Close releases the engine. It is idempotent; encode and correct calls
// after Close fail with ErrClosed.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.field = nil
	e.gen = nil
	e.synd = nil
	e.elp = nil
	e.prev = nil
	e.temp = nil
	return nil
}

// N returns the codeword length in bits, 2^m - 1.
func (e *Engine) N() int { return e.n }

// T returns the achieved correction strength in bit errors.
func (e *Engine) T() int { return e.t }

// ECCBits returns the number of parity bits the code appends.
func (e *Engine) ECCBits() int { return e.eccBits }

// ECCBytes returns the parity size in bytes, ceil(ECCBits/8).
func (e *Engine) ECCBytes() int { return e.eccBytes }

// MaxData returns the largest data length in bytes that still fits the
// codeword together with the parity bits.
func (e *Engine) MaxData() int { return (e.n - e.eccBits) / 8 }

// EncodeRaw computes the parity for data and XOR-accumulates it into
// parity, which must be exactly ECCBytes long and zero-initialized by the
// caller for a fresh codeword. It returns the number of parity bits
// produced, which always equals ECCBits.
func (e *Engine) EncodeRaw(data, parity []byte) (int, error) {
	if e.closed {
		return 0, ErrClosed
	}
	if len(parity) != e.eccBytes {
		return 0, ErrParityLength
	}
	if 8*len(data)+e.eccBits > e.n {
		return 0, ErrDataRange
	}

	// Systematic encoding: the parity bits are the remainder of
	// data(x) · x^eccBits divided by g(x), computed with the usual
	// shift-register division.
	rem := make([]byte, e.eccBits)
	for _, b := range data {
		for k := 7; k >= 0; k-- {
			fb := (b >> uint(k) & 1) ^ rem[e.eccBits-1]
			for j := e.eccBits - 1; j >= 1; j-- {
				rem[j] = rem[j-1] ^ (fb & e.gen[j])
			}
			rem[0] = fb & e.gen[0]
		}
	}

	// The remainder joins the bit stream highest degree first.
	for k := 0; k < e.eccBits; k++ {
		if rem[e.eccBits-1-k] != 0 {
			parity[k/8] ^= 0x80 >> uint(k%8)
		}
	}
	return e.eccBits, nil
}

// CorrectRaw locates and repairs bit errors in one codeword, in place.
// data and parity together form the received codeword; parity must be
// exactly ECCBytes long.
//
// On success it returns the number of located bit errors and writes their
// positions into positions, up to its length. Positions are indexes into
// the combined data+parity bit stream, MSB first within each byte. Errors
// located inside the
// parity region are reported but not repaired. When the codeword carries
// more errors than the configuration can resolve, it returns
// (CorrectionFailed, ErrUncorrectable) and leaves the buffers untouched.
func (e *Engine) CorrectRaw(data, parity []byte, positions []int) (int, error) {
	if e.closed {
		return 0, ErrClosed
	}
	if len(parity) != e.eccBytes {
		return 0, ErrParityLength
	}
	if 8*len(data)+e.eccBits > e.n {
		return 0, ErrDataRange
	}

	total := 8*len(data) + e.eccBits
	if !e.computeSyndromes(data, parity, total) {
		return 0, nil
	}

	elp, degree := e.errorLocator()
	if degree < 1 || degree > e.t {
		return CorrectionFailed, ErrUncorrectable
	}

	roots := e.chienSearch(elp, degree, total)
	if len(roots) != degree {
		return CorrectionFailed, ErrUncorrectable
	}

	for i, deg := range roots {
		pos := total - 1 - deg
		if pos < 8*len(data) {
			data[pos/8] ^= 0x80 >> uint(pos%8)
		}
		if i < len(positions) {
			positions[i] = pos
		}
	}
	return degree, nil
}

// computeSyndromes fills e.synd with S_1..S_2t for the received codeword
// and reports whether any syndrome is nonzero.
func (e *Engine) computeSyndromes(data, parity []byte, total int) bool {
	f := e.field
	synd := e.synd
	for j := range synd {
		synd[j] = 0
	}

	accumulate := func(deg int) {
		for j := range synd {
			synd[j] ^= f.AlphaPow((j + 1) * deg)
		}
	}

	for i, b := range data {
		if b == 0 {
			continue
		}
		for k := 0; k < 8; k++ {
			if b&(0x80>>uint(k)) != 0 {
				accumulate(total - 1 - (8*i + k))
			}
		}
	}
	for k := 0; k < e.eccBits; k++ {
		if parity[k/8]&(0x80>>uint(k%8)) != 0 {
			accumulate(e.eccBits - 1 - k)
		}
	}

	for _, s := range synd {
		if s != 0 {
			return true
		}
	}
	return false
}

// errorLocator runs the Berlekamp–Massey recurrence over the syndromes and
// returns the error locator polynomial σ(x) with its degree. A degree above
// T means the codeword is uncorrectable.
func (e *Engine) errorLocator() ([]uint16, int) {
	f := e.field
	synd := e.synd

	c, b, tmp := e.elp, e.prev, e.temp
	for i := range c {
		c[i], b[i] = 0, 0
	}
	c[0], b[0] = 1, 1

	length := 0
	shift := 1
	bd := uint16(1)

	for i := 0; i < len(synd); i++ {
		d := synd[i]
		for j := 1; j <= length; j++ {
			if c[j] != 0 && synd[i-j] != 0 {
				d ^= f.Mul(c[j], synd[i-j])
			}
		}

		if d == 0 {
			shift++
			continue
		}

		coef := f.Div(d, bd)
		if 2*length <= i {
			copy(tmp, c)
			for j := 0; j+shift < len(c); j++ {
				if b[j] != 0 {
					c[j+shift] ^= f.Mul(coef, b[j])
				}
			}
			length = i + 1 - length
			copy(b, tmp)
			bd = d
			shift = 1
		} else {
			for j := 0; j+shift < len(c); j++ {
				if b[j] != 0 {
					c[j+shift] ^= f.Mul(coef, b[j])
				}
			}
			shift++
		}
	}
	return c, length
}

// chienSearch returns the codeword polynomial degrees at which σ(x) has a
// root, i.e. the error locations. Only degrees inside the (possibly
// shortened) codeword count; a root beyond it points at a bit that does not
// exist and the caller treats the codeword as uncorrectable.
func (e *Engine) chienSearch(elp []uint16, degree, total int) []int {
	f := e.field
	n := f.Size()

	roots := make([]int, 0, degree)
	for deg := 0; deg < total; deg++ {
		// Evaluate σ(α^{-deg}).
		inv := (n - deg%n) % n
		v := elp[0]
		for i := 1; i <= degree; i++ {
			if elp[i] != 0 {
				v ^= f.Mul(elp[i], f.AlphaPow(i*inv))
			}
		}
		if v == 0 {
			roots = append(roots, deg)
			if len(roots) == degree {
				break
			}
		}
	}
	return roots
}
