package bch

import (
	"fmt"
	"sort"

	"github.com/fecforge/bchkit/pkg/engine"
)

// Config selects one codec configuration. It is fixed at construction.
type Config struct {
	FieldOrder    uint   // Galois field exponent m; codeword length is 2^m - 1 bits
	MinCorrection int    // minimum number of correctable bit errors
	PrimitivePoly uint32 // optional override; 0 selects the field's default
}

// Codec encodes and decodes BCH codewords over the buffer shapes described
// in the package documentation. It exclusively owns one engine for its
// lifetime and must not be copied.
type Codec struct {
	eng *engine.Engine
}

// New builds a codec for the given configuration. The engine may realize a
// stronger code than MinCorrection; inspect T for the achieved strength.
func New(cfg Config) (*Codec, error) {
	eng, err := engine.New(cfg.FieldOrder, cfg.MinCorrection, cfg.PrimitivePoly)
	if err != nil {
		return nil, err
	}
	return &Codec{eng: eng}, nil
}

// Close releases the codec's engine. It is idempotent.
func (c *Codec) Close() error {
	return c.eng.Close()
}

// N returns the codeword length in bits, 2^m - 1.
func (c *Codec) N() int { return c.eng.N() }

// T returns the achieved correction strength in bit errors.
func (c *Codec) T() int { return c.eng.T() }

// ECCBits returns the number of parity bits appended per codeword.
func (c *Codec) ECCBits() int { return c.eng.ECCBits() }

// ECCBytes returns the parity size in bytes, ceil(ECCBits/8).
func (c *Codec) ECCBytes() int { return c.eng.ECCBytes() }

// MaxPayload returns the largest payload, in bytes, one codeword can carry.
func (c *Codec) MaxPayload() int { return c.eng.MaxData() }

// String renders the codec for diagnostics, e.g. "BCH( 255, 239,   2 )".
func (c *Codec) String() string {
	return fmt.Sprintf("BCH( %d, %d, %3d )", c.N(), c.N()-c.ECCBits(), c.T())
}

// codewordView is the normalized, non-owning (data, parity) pair every
// buffer shape collapses to before reaching the engine.
type codewordView struct {
	data   []byte
	parity []byte
}

// normalize splits a combined buffer into its data and parity regions,
// skipping pad leading bytes. The buffer must hold at least pad+ECCBytes.
func (c *Codec) normalize(buf []byte, pad int) (codewordView, error) {
	ecc := c.eng.ECCBytes()
	if pad < 0 || len(buf) < pad+ecc {
		return codewordView{}, ErrSizeMismatch
	}
	body := buf[pad:]
	return codewordView{
		data:   body[:len(body)-ecc],
		parity: body[len(body)-ecc:],
	}, nil
}

// Encode appends parity to a growable buffer: *buf grows by ECCBytes and
// the parity is written into the new tail. Returns ECCBits on success.
func (c *Codec) Encode(buf *[]byte) (int, error) {
	data := *buf
	if len(data) > c.MaxPayload() {
		return 0, ErrPayloadTooLarge
	}
	grown := append(data, make([]byte, c.eng.ECCBytes())...)
	n, err := c.eng.EncodeRaw(grown[:len(data)], grown[len(data):])
	if err != nil {
		return 0, err
	}
	*buf = grown
	return n, nil
}

// Decode corrects a combined buffer in place, treating its final ECCBytes
// as parity. See correct for the positions contract.
func (c *Codec) Decode(buf []byte, positions *[]int) (int, error) {
	view, err := c.normalize(buf, 0)
	if err != nil {
		return 0, err
	}
	return c.correct(view, positions)
}

// EncodeSplit computes the parity for data into a separate buffer, which
// is resized to exactly ECCBytes. Returns ECCBits on success.
func (c *Codec) EncodeSplit(data []byte, parity *[]byte) (int, error) {
	if len(data) > c.MaxPayload() {
		return 0, ErrPayloadTooLarge
	}
	fresh := make([]byte, c.eng.ECCBytes())
	n, err := c.eng.EncodeRaw(data, fresh)
	if err != nil {
		return 0, err
	}
	*parity = fresh
	return n, nil
}

// DecodeSplit corrects data in place against a separately supplied parity
// buffer, which must already be exactly ECCBytes long.
func (c *Codec) DecodeSplit(data, parity []byte, positions *[]int) (int, error) {
	if len(parity) != c.eng.ECCBytes() {
		return 0, ErrSizeMismatch
	}
	return c.correct(codewordView{data: data, parity: parity}, positions)
}

// EncodeFixed writes parity into the existing tail of a fixed-capacity
// buffer, skipping pad leading bytes. The buffer is never resized; the
// caller must have pre-allocated ECCBytes of trailing space.
func (c *Codec) EncodeFixed(buf []byte, pad int) (int, error) {
	view, err := c.normalize(buf, pad)
	if err != nil {
		return 0, err
	}
	if len(view.data) > c.MaxPayload() {
		return 0, ErrPayloadTooLarge
	}
	for i := range view.parity {
		view.parity[i] = 0
	}
	return c.eng.EncodeRaw(view.data, view.parity)
}

// DecodeFixed corrects a fixed-capacity buffer in place, skipping pad
// leading bytes; the final ECCBytes are the parity.
func (c *Codec) DecodeFixed(buf []byte, pad int, positions *[]int) (int, error) {
	view, err := c.normalize(buf, pad)
	if err != nil {
		return 0, err
	}
	return c.correct(view, positions)
}

// correct delegates one normalized view to the engine. When the caller
// asked for positions, the buffer is pre-sized to 2t entries (the engine
// may report more errors than the nominal strength implies), shrunk to the
// actual count afterwards and sorted ascending. On failure *positions is
// left untouched.
func (c *Codec) correct(view codewordView, positions *[]int) (int, error) {
	var posBuf []int
	if positions != nil {
		posBuf = make([]int, 2*c.eng.T())
	}
	n, err := c.eng.CorrectRaw(view.data, view.parity, posBuf)
	if err != nil {
		return n, err
	}
	if positions != nil {
		out := posBuf[:n]
		sort.Ints(out)
		*positions = out
	}
	return n, nil
}

// Encoded returns a copy of buf with parity appended. It returns nil on
// any failure, which is indistinguishable from an empty result; use Encode
// when the distinction matters.
func (c *Codec) Encoded(buf []byte) []byte {
	out := append([]byte(nil), buf...)
	if _, err := c.Encode(&out); err != nil {
		return nil
	}
	return out
}

// Decoded corrects a copy of a combined buffer and returns the recovered
// payload without its parity. It returns nil on any failure, including an
// uncorrectable codeword; use Decode when the distinction matters.
func (c *Codec) Decoded(buf []byte) []byte {
	out := append([]byte(nil), buf...)
	if _, err := c.Decode(out, nil); err != nil {
		return nil
	}
	return out[:len(out)-c.eng.ECCBytes()]
}
