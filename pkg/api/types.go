package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// EncodeRequest carries one payload to protect. JSON []byte fields are
// base64 on the wire.
type EncodeRequest struct {
	Payload []byte `json:"payload"`
}

// EncodeResponse returns the payload's parity and the frame form of the
// whole codeword.
type EncodeResponse struct {
	Payload []byte `json:"payload"`
	Parity  []byte `json:"parity"`
	ECCBits int    `json:"ecc_bits"`
	Frame   []byte `json:"frame"`
}

// DecodeRequest carries one received codeword as a payload/parity pair.
type DecodeRequest struct {
	Payload       []byte `json:"payload"`
	Parity        []byte `json:"parity"`
	WithPositions bool   `json:"with_positions,omitempty"`
}

// DecodeResponse returns the corrected payload and what the decoder did
// to obtain it.
type DecodeResponse struct {
	Payload     []byte `json:"payload"`
	Corrections int    `json:"corrections"`
	Positions   []int  `json:"positions,omitempty"`
}

// InfoResponse describes the codec the server is running.
type InfoResponse struct {
	Code       string `json:"code"` // e.g. "BCH( 255, 239,   2 )"
	N          int    `json:"n"`
	T          int    `json:"t"`
	ECCBits    int    `json:"ecc_bits"`
	ECCBytes   int    `json:"ecc_bytes"`
	MaxPayload int    `json:"max_payload"`
}
