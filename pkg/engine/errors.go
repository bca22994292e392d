package engine

import "fmt"

// CorrectionFailed is the corrections count reported alongside
// ErrUncorrectable when a codeword is beyond the configuration's capacity.
const CorrectionFailed = -1

// Errors
var (
	ErrClosed        = &EngineError{"engine has been closed"}
	ErrUncorrectable = &EngineError{"codeword has more bit errors than the codec can repair"}
	ErrParityLength  = &EngineError{"parity buffer length does not match ecc bytes"}
	ErrDataRange     = &EngineError{"data does not fit the codeword"}
)

// EngineError represents a codec engine error.
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string {
	return e.Message
}

// ConfigError reports a (field order, correction strength, polynomial)
// combination with no valid realization, or a typed codec whose expected
// shape does not match what the engine produced. It is fatal: raised at
// construction and never retried.
type ConfigError struct {
	FieldOrder    uint
	Correction    int
	PrimitivePoly uint32
	Reason        string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bch: no valid codec for m=%d t=%d poly=0x%x: %s",
		e.FieldOrder, e.Correction, e.PrimitivePoly, e.Reason)
}
