package engine

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func TestNew_KnownConfigurations(t *testing.T) {
	testCases := []struct {
		name        string
		m           uint
		t           int
		wantECCBits int
		wantT       int
	}{
		{name: "single error over GF(32)", m: 5, t: 1, wantECCBits: 5, wantT: 1},
		{name: "double error over GF(32)", m: 5, t: 2, wantECCBits: 10, wantT: 2},
		{name: "triple error over GF(32)", m: 5, t: 3, wantECCBits: 15, wantT: 3},
		{name: "double error over GF(256)", m: 8, t: 2, wantECCBits: 16, wantT: 2},
		{name: "overachieving code over GF(64)", m: 6, t: 8, wantECCBits: 45, wantT: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := New(tc.m, tc.t, 0)
			if err != nil {
				t.Fatalf("New(%d, %d, 0) failed: %v", tc.m, tc.t, err)
			}
			defer e.Close()

			if e.ECCBits() != tc.wantECCBits {
				t.Errorf("ECCBits() = %d, want %d", e.ECCBits(), tc.wantECCBits)
			}
			if e.ECCBytes() != (tc.wantECCBits+7)/8 {
				t.Errorf("ECCBytes() = %d, want %d", e.ECCBytes(), (tc.wantECCBits+7)/8)
			}
			if e.T() != tc.wantT {
				t.Errorf("T() = %d, want %d", e.T(), tc.wantT)
			}
			if e.T() < tc.t {
				t.Errorf("achieved t %d below requested %d", e.T(), tc.t)
			}
			if e.N() != (1<<tc.m)-1 {
				t.Errorf("N() = %d, want %d", e.N(), (1<<tc.m)-1)
			}
		})
	}
}

func TestNew_GeneratorMatchesPOCSAG(t *testing.T) {
	// BCH(31,21) as used by POCSAG pagers: g(x) = 0x769.
	e, err := New(5, 2, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	var g uint32
	for d, c := range e.gen {
		if c != 0 {
			g |= 1 << uint(d)
		}
	}
	if g != 0x769 {
		t.Errorf("generator polynomial = 0x%x, want 0x769", g)
	}
}

func TestNew_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		m    uint
		t    int
		poly uint32
	}{
		{name: "zero correction", m: 8, t: 0, poly: 0},
		{name: "order out of range", m: 3, t: 1, poly: 0},
		{name: "non-primitive polynomial", m: 8, t: 2, poly: 0x11b},
		{name: "correction exceeds codeword", m: 5, t: 16, poly: 0},
		{name: "parity crowds out data", m: 5, t: 6, poly: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.m, tc.t, tc.poly)
			if err == nil {
				t.Fatalf("New(%d, %d, 0x%x) succeeded, want error", tc.m, tc.t, tc.poly)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error %v is not a *ConfigError", err)
			}
		})
	}
}

// flipBit flips one bit of the combined data+parity stream, MSB first per byte.
func flipBit(data, parity []byte, pos int) {
	if pos < 8*len(data) {
		data[pos/8] ^= 0x80 >> uint(pos%8)
		return
	}
	pos -= 8 * len(data)
	parity[pos/8] ^= 0x80 >> uint(pos%8)
}

func TestEngine_RoundTripClean(t *testing.T) {
	e, err := New(8, 2, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 7, e.MaxData()} {
		data := make([]byte, size)
		rng.Read(data)
		original := append([]byte(nil), data...)

		parity := make([]byte, e.ECCBytes())
		n, err := e.EncodeRaw(data, parity)
		if err != nil {
			t.Fatalf("EncodeRaw failed: %v", err)
		}
		if n != e.ECCBits() {
			t.Errorf("EncodeRaw returned %d, want %d", n, e.ECCBits())
		}

		count, err := e.CorrectRaw(data, parity, nil)
		if err != nil {
			t.Fatalf("CorrectRaw failed: %v", err)
		}
		if count != 0 {
			t.Errorf("clean codeword reported %d corrections", count)
		}
		if !bytes.Equal(data, original) {
			t.Errorf("clean codeword modified the data")
		}
	}
}

func TestEngine_ZeroPayloadHasZeroParity(t *testing.T) {
	e, err := New(8, 2, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	data := make([]byte, e.MaxData())
	parity := make([]byte, e.ECCBytes())
	if _, err := e.EncodeRaw(data, parity); err != nil {
		t.Fatalf("EncodeRaw failed: %v", err)
	}
	for i, b := range parity {
		if b != 0 {
			t.Fatalf("parity[%d] = 0x%x for the all-zero payload, want 0", i, b)
		}
	}
}

func TestEngine_CorrectsUpToT(t *testing.T) {
	testCases := []struct {
		name string
		m    uint
		t    int
		size int
	}{
		{name: "GF(256) t=2", m: 8, t: 2, size: 20},
		{name: "GF(1024) t=5", m: 10, t: 5, size: 100},
		{name: "GF(64) overachieving t=10", m: 6, t: 8, size: 2},
	}

	rng := rand.New(rand.NewSource(7))
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := New(tc.m, tc.t, 0)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			defer e.Close()

			for trial := 0; trial < 20; trial++ {
				data := make([]byte, tc.size)
				rng.Read(data)
				original := append([]byte(nil), data...)
				parity := make([]byte, e.ECCBytes())
				if _, err := e.EncodeRaw(data, parity); err != nil {
					t.Fatalf("EncodeRaw failed: %v", err)
				}

				// e.T() distinct error positions in the data region.
				injected := map[int]bool{}
				for len(injected) < e.T() {
					injected[rng.Intn(8*tc.size)] = true
				}
				for pos := range injected {
					flipBit(data, parity, pos)
				}

				positions := make([]int, 2*e.T())
				count, err := e.CorrectRaw(data, parity, positions)
				if err != nil {
					t.Fatalf("CorrectRaw failed with %d injected errors: %v", len(injected), err)
				}
				if count != len(injected) {
					t.Fatalf("corrections = %d, want %d", count, len(injected))
				}
				if !bytes.Equal(data, original) {
					t.Fatalf("data not recovered")
				}

				got := append([]int(nil), positions[:count]...)
				sort.Ints(got)
				want := make([]int, 0, len(injected))
				for pos := range injected {
					want = append(want, pos)
				}
				sort.Ints(want)
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("reported positions %v, want %v", got, want)
					}
				}
			}
		})
	}
}

func TestEngine_ParityRegionErrorsReportedNotRepaired(t *testing.T) {
	e, err := New(8, 2, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	data := []byte{0x5a, 0xa5, 0x3c}
	original := append([]byte(nil), data...)
	parity := make([]byte, e.ECCBytes())
	if _, err := e.EncodeRaw(data, parity); err != nil {
		t.Fatalf("EncodeRaw failed: %v", err)
	}

	corrupted := append([]byte(nil), parity...)
	pos := 8*len(data) + 3
	flipBit(data, corrupted, pos)

	positions := make([]int, 2*e.T())
	count, err := e.CorrectRaw(data, corrupted, positions)
	if err != nil {
		t.Fatalf("CorrectRaw failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("corrections = %d, want 1", count)
	}
	if positions[0] != pos {
		t.Errorf("reported position %d, want %d", positions[0], pos)
	}
	if !bytes.Equal(data, original) {
		t.Errorf("data modified by a parity-region error")
	}
	if bytes.Equal(corrupted, parity) {
		t.Errorf("parity region was repaired; the engine only corrects data")
	}
}

func TestEngine_Uncorrectable(t *testing.T) {
	// Shortened BCH(31,26) over two data bytes. Flipping data stream bits
	// 14 and 15 produces the syndrome of a single error beyond the 21-bit
	// shortened codeword, so no correction can exist.
	e, err := New(5, 1, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	data := []byte{0xab, 0xcd}
	parity := make([]byte, e.ECCBytes())
	if _, err := e.EncodeRaw(data, parity); err != nil {
		t.Fatalf("EncodeRaw failed: %v", err)
	}

	received := append([]byte(nil), data...)
	flipBit(received, parity, 14)
	flipBit(received, parity, 15)
	corrupted := append([]byte(nil), received...)

	count, err := e.CorrectRaw(received, parity, nil)
	if !errors.Is(err, ErrUncorrectable) {
		t.Fatalf("CorrectRaw = (%d, %v), want ErrUncorrectable", count, err)
	}
	if count != CorrectionFailed {
		t.Errorf("count = %d, want CorrectionFailed", count)
	}
	if !bytes.Equal(received, corrupted) {
		t.Errorf("buffer modified on uncorrectable codeword")
	}
}

func TestEngine_BeyondCapacityNeverClaimsOriginal(t *testing.T) {
	e, err := New(8, 2, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		data := make([]byte, 20)
		rng.Read(data)
		original := append([]byte(nil), data...)
		parity := make([]byte, e.ECCBytes())
		if _, err := e.EncodeRaw(data, parity); err != nil {
			t.Fatalf("EncodeRaw failed: %v", err)
		}

		injected := map[int]bool{}
		for len(injected) < e.T()+2 {
			injected[rng.Intn(8*len(data))] = true
		}
		for pos := range injected {
			flipBit(data, parity, pos)
		}

		count, err := e.CorrectRaw(data, parity, nil)
		// Either the failure is detected, or the decoder settles on some
		// other nearby codeword. It must never present the original buffer
		// as recovered: that would require more flips than its capacity.
		if err == nil && bytes.Equal(data, original) {
			t.Fatalf("decoder claimed to fix %d errors with count %d", len(injected), count)
		}
		if err != nil && !errors.Is(err, ErrUncorrectable) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestEngine_ValidationAndLifecycle(t *testing.T) {
	e, err := New(8, 2, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	data := make([]byte, 10)
	short := make([]byte, e.ECCBytes()-1)
	if _, err := e.EncodeRaw(data, short); !errors.Is(err, ErrParityLength) {
		t.Errorf("EncodeRaw with short parity: %v, want ErrParityLength", err)
	}
	if _, err := e.CorrectRaw(data, short, nil); !errors.Is(err, ErrParityLength) {
		t.Errorf("CorrectRaw with short parity: %v, want ErrParityLength", err)
	}

	parity := make([]byte, e.ECCBytes())
	big := make([]byte, e.MaxData()+1)
	if _, err := e.EncodeRaw(big, parity); !errors.Is(err, ErrDataRange) {
		t.Errorf("EncodeRaw with oversized data: %v, want ErrDataRange", err)
	}

	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if _, err := e.EncodeRaw(data, parity); !errors.Is(err, ErrClosed) {
		t.Errorf("EncodeRaw after Close: %v, want ErrClosed", err)
	}
	if _, err := e.CorrectRaw(data, parity, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("CorrectRaw after Close: %v, want ErrClosed", err)
	}
}

func TestEngine_ECCBytesCeiling(t *testing.T) {
	for m := uint(5); m <= 10; m++ {
		for tt := 1; tt <= 3; tt++ {
			e, err := New(m, tt, 0)
			if err != nil {
				// Some small fields cannot host the larger strengths.
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("New(%d, %d): unexpected error type %v", m, tt, err)
				}
				continue
			}
			if e.ECCBytes() != (e.ECCBits()+7)/8 {
				t.Errorf("m=%d t=%d: ECCBytes %d, want ceil(%d/8)", m, tt, e.ECCBytes(), e.ECCBits())
			}
			if e.T() < tt {
				t.Errorf("m=%d t=%d: achieved t %d below request", m, tt, e.T())
			}
			e.Close()
		}
	}
}
