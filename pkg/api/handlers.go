package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fecforge/bchkit/pkg/bch"
	"github.com/fecforge/bchkit/pkg/frame"
)

// Server holds the API server state
type Server struct {
	codec   Codec
	config  ServerConfig
	metrics *Metrics

	// A codec instance holds mutable scratch state; mu serializes the
	// concurrent handlers over it.
	mu sync.Mutex

	// Frame parameters echoed in encode responses.
	fieldOrder uint8
	correction uint8
}

// NewServer creates a new API server around one codec instance.
func NewServer(codec Codec, config ServerConfig, metrics *Metrics, fieldOrder uint, correction int) *Server {
	return &Server{
		codec:      codec,
		config:     config,
		metrics:    metrics,
		fieldOrder: uint8(fieldOrder),
		correction: uint8(correction),
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleInfo reports the running code's parameters.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, InfoResponse{
		Code:       s.codec.String(),
		N:          s.codec.N(),
		T:          s.codec.T(),
		ECCBits:    s.codec.ECCBits(),
		ECCBytes:   s.codec.ECCBytes(),
		MaxPayload: s.codec.MaxPayload(),
	})
}

// handleEncode computes parity for one payload.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordCodecOperation("encode", false, time.Since(start))
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if len(req.Payload) > s.codec.MaxPayload() {
		s.metrics.RecordCodecOperation("encode", false, time.Since(start))
		sendError(w, fmt.Sprintf("Payload exceeds codeword capacity of %d bytes", s.codec.MaxPayload()), http.StatusBadRequest)
		return
	}

	var parity []byte
	s.mu.Lock()
	eccBits, err := s.codec.EncodeSplit(req.Payload, &parity)
	s.mu.Unlock()
	if err != nil {
		s.metrics.RecordCodecOperation("encode", false, time.Since(start))
		sendError(w, fmt.Sprintf("Encode failed: %v", err), http.StatusInternalServerError)
		return
	}

	framed, err := frame.New(s.fieldOrder, s.correction, req.Payload, parity).Marshal()
	if err != nil {
		s.metrics.RecordCodecOperation("encode", false, time.Since(start))
		sendError(w, fmt.Sprintf("Framing failed: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordCodecOperation("encode", true, time.Since(start))
	sendSuccess(w, EncodeResponse{
		Payload: req.Payload,
		Parity:  parity,
		ECCBits: eccBits,
		Frame:   framed,
	})
}

// handleDecode corrects one received codeword. An uncorrectable codeword
// is the caller's data-quality problem, not a server fault: it surfaces as
// 422, never 5xx.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordCodecOperation("decode", false, time.Since(start))
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	var positions []int
	posArg := &positions
	if !req.WithPositions {
		posArg = nil
	}

	s.mu.Lock()
	corrections, err := s.codec.DecodeSplit(req.Payload, req.Parity, posArg)
	s.mu.Unlock()
	switch {
	case errors.Is(err, bch.ErrUncorrectable):
		s.metrics.RecordCodecOperation("decode", false, time.Since(start))
		s.metrics.RecordUncorrectable()
		sendError(w, "Codeword is uncorrectable", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, bch.ErrSizeMismatch):
		s.metrics.RecordCodecOperation("decode", false, time.Since(start))
		sendError(w, fmt.Sprintf("Parity must be exactly %d bytes", s.codec.ECCBytes()), http.StatusBadRequest)
		return
	case err != nil:
		s.metrics.RecordCodecOperation("decode", false, time.Since(start))
		sendError(w, fmt.Sprintf("Decode failed: %v", err), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("decode", true, time.Since(start))
	s.metrics.RecordCorrections(corrections)
	sendSuccess(w, DecodeResponse{
		Payload:     req.Payload,
		Corrections: corrections,
		Positions:   positions,
	})
}
