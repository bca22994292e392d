package galois

import "fmt"

// Supported field orders. Below 5 the codes are degenerate, above 15 the
// log/antilog tables outgrow their uint16 element representation.
const (
	MinOrder = 5
	MaxOrder = 15
)

// defaultPolys maps a field order m to a primitive polynomial for GF(2^m),
// expressed with the x^m term included (so m=8 is 0x11d = x^8+x^4+x^3+x^2+1).
var defaultPolys = map[uint]uint32{
	5:  0x25,
	6:  0x43,
	7:  0x83,
	8:  0x11d,
	9:  0x211,
	10: 0x409,
	11: 0x805,
	12: 0x1053,
	13: 0x201b,
	14: 0x402b,
	15: 0x8003,
}

// DefaultPoly returns the default primitive polynomial for GF(2^m),
// or 0 if m is outside the supported range.
func DefaultPoly(m uint) uint32 {
	return defaultPolys[m]
}

// Field holds the arithmetic tables for one GF(2^m).
type Field struct {
	order uint   // m
	size  int    // number of nonzero elements, 2^m - 1
	poly  uint32 // primitive polynomial including the x^m term
	alpha []uint16
	logOf []int
}

// NewField builds the log/antilog tables for GF(2^m) from the given
// primitive polynomial. A zero poly selects the default for the order.
func NewField(m uint, poly uint32) (*Field, error) {
	if m < MinOrder || m > MaxOrder {
		return nil, fmt.Errorf("field order %d outside supported range [%d, %d]", m, MinOrder, MaxOrder)
	}
	if poly == 0 {
		poly = defaultPolys[m]
	}
	if poly>>m != 1 {
		return nil, fmt.Errorf("polynomial 0x%x does not have degree %d", poly, m)
	}

	size := (1 << m) - 1
	f := &Field{
		order: m,
		size:  size,
		poly:  poly,
		alpha: make([]uint16, size),
		logOf: make([]int, size+1),
	}

	// Generate successive powers of α. A primitive polynomial walks every
	// nonzero element exactly once; a repeat before 2^m - 1 steps means the
	// polynomial is not primitive.
	seen := make([]bool, size+1)
	x := uint32(1)
	for i := 0; i < size; i++ {
		if seen[x] {
			return nil, fmt.Errorf("polynomial 0x%x is not primitive over GF(2^%d)", poly, m)
		}
		seen[x] = true
		f.alpha[i] = uint16(x)
		f.logOf[x] = i

		x <<= 1
		if x&(1<<m) != 0 {
			x ^= poly
		}
	}
	return f, nil
}

// Order returns the field exponent m.
func (f *Field) Order() uint { return f.order }

// Size returns the number of nonzero field elements, 2^m - 1.
func (f *Field) Size() int { return f.size }

// Poly returns the primitive polynomial the field was built from.
func (f *Field) Poly() uint32 { return f.poly }

// AlphaPow returns α^i. The exponent may be any non-negative integer;
// it is reduced modulo 2^m - 1.
func (f *Field) AlphaPow(i int) uint16 {
	return f.alpha[i%f.size]
}

// Log returns the discrete logarithm of a nonzero element a, i.e. the i
// with α^i == a.
func (f *Field) Log(a uint16) int {
	return f.logOf[a]
}

// Mul multiplies two field elements.
func (f *Field) Mul(a, b uint16) uint16 {
	if a == 0 || b == 0 {
		return 0
	}
	return f.alpha[(f.logOf[a]+f.logOf[b])%f.size]
}

// Div divides a by b. b must be nonzero.
func (f *Field) Div(a, b uint16) uint16 {
	if a == 0 {
		return 0
	}
	return f.alpha[(f.logOf[a]-f.logOf[b]+f.size)%f.size]
}

// Inv returns the multiplicative inverse of a nonzero element.
func (f *Field) Inv(a uint16) uint16 {
	return f.alpha[(f.size-f.logOf[a])%f.size]
}
