package frame

import (
	"encoding/binary"
	"fmt"
)

const (
	// Magic identifies a bchkit frame ("bK", little-endian).
	Magic uint16 = 0x4b62

	// Version is the current frame format version.
	Version uint8 = 1

	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 11
)

// Frame carries one codeword plus the parameters it was encoded with.
type Frame struct {
	FieldOrder uint8  // Galois field exponent m
	Correction uint8  // requested minimum correction strength t
	Payload    []byte // payload data
	Parity     []byte // parity data
}

// New builds a frame around a payload/parity pair.
func New(fieldOrder, correction uint8, payload, parity []byte) *Frame {
	return &Frame{
		FieldOrder: fieldOrder,
		Correction: correction,
		Payload:    payload,
		Parity:     parity,
	}
}

// Size returns the total size of the frame when marshalled.
func (f *Frame) Size() int {
	return HeaderSize + len(f.Payload) + len(f.Parity)
}

// Marshal serializes the frame into its binary form.
func (f *Frame) Marshal() ([]byte, error) {
	if len(f.Payload) > int(^uint32(0)) {
		return nil, fmt.Errorf("payload too large for frame: %d bytes", len(f.Payload))
	}
	if len(f.Parity) > int(^uint16(0)) {
		return nil, fmt.Errorf("parity too large for frame: %d bytes", len(f.Parity))
	}

	buf := make([]byte, f.Size())
	binary.LittleEndian.PutUint16(buf[0:], Magic)
	buf[2] = Version
	buf[3] = f.FieldOrder
	buf[4] = f.Correction
	binary.LittleEndian.PutUint32(buf[5:], uint32(len(f.Payload)))
	binary.LittleEndian.PutUint16(buf[9:], uint16(len(f.Parity)))
	copy(buf[HeaderSize:], f.Payload)
	copy(buf[HeaderSize+len(f.Payload):], f.Parity)
	return buf, nil
}

// Unmarshal deserializes one frame from the front of data. Payload and
// Parity alias data. It returns the frame and the number of bytes
// consumed, so callers can walk a sequence of frames.
func Unmarshal(data []byte) (*Frame, int, error) {
	if len(data) < HeaderSize {
		return nil, 0, fmt.Errorf("data too short for frame header: %d bytes", len(data))
	}
	if m := binary.LittleEndian.Uint16(data[0:2]); m != Magic {
		return nil, 0, fmt.Errorf("bad frame magic 0x%04x", m)
	}
	if v := data[2]; v != Version {
		return nil, 0, fmt.Errorf("unsupported frame version %d", v)
	}

	f := &Frame{FieldOrder: data[3], Correction: data[4]}
	payloadSize := int(binary.LittleEndian.Uint32(data[5:9]))
	paritySize := int(binary.LittleEndian.Uint16(data[9:11]))

	total := HeaderSize + payloadSize + paritySize
	if len(data) < total {
		return nil, 0, fmt.Errorf("data too short for declared sizes: %d < %d", len(data), total)
	}

	f.Payload = data[HeaderSize : HeaderSize+payloadSize]
	f.Parity = data[HeaderSize+payloadSize : total]
	return f, total, nil
}
