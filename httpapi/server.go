package httpapi

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/qrngsim/nist"
	"github.com/katalvlaran/qrngsim/pipeline"
	"github.com/katalvlaran/qrngsim/quantize"
)

// DefaultRequestBytes is used when /generate is called without an n parameter.
const DefaultRequestBytes = 1024

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server hosts the QRNG HTTP API.
type Server struct {
	cfg  Config
	pipe *pipeline.Pipeline
	log  *slog.Logger
	http *http.Server
}

// New creates a configured Server around an existing pipeline.
// A nil logger falls back to slog.Default().
func New(cfg Config, pipe *pipeline.Pipeline, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{cfg: cfg, pipe: pipe, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /generate", s.handleGenerate)
	mux.HandleFunc("POST /test", s.handleTest)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.http = &http.Server{Addr: cfg.Addr, Handler: mux}

	return s
}

// Handler returns the route handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Serve runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	s.log.Info("http server listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}

		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve http: %w", err)
	}
}

// generateResponse mirrors the /generate payload: the bit array, the hex
// encoding of the packed bytes, and the bit count.
type generateResponse struct {
	Bits       []int  `json:"bits"`
	Hex        string `json:"hex"`
	LengthBits int    `json:"length_bits"`
}

// testRequest is the /test body.
type testRequest struct {
	Bits []int `json:"bits"`
}

// testResult is one battery entry in the /test response.
type testResult struct {
	Name    string    `json:"name"`
	PValues []float64 `json:"p_values"`
	Pass    bool      `json:"pass"`
}

// errorResponse is the uniform error payload.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	n := DefaultRequestBytes
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "n must be an integer")

			return
		}
		n = parsed
	}
	if n <= 0 {
		s.writeError(w, http.StatusBadRequest, "n must be > 0")

		return
	}
	if n > s.cfg.MaxBytes {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("n exceeds limit of %d bytes", s.cfg.MaxBytes))

		return
	}

	bits, err := s.pipe.GenerateBits(n, s.cfg.Features)
	if err != nil {
		s.log.Error("generate failed", "bytes", n, "err", err)
		s.writeError(w, http.StatusInternalServerError, "generation failed")

		return
	}
	raw, err := quantize.PackBits(bits)
	if err != nil {
		s.log.Error("pack failed", "bytes", n, "err", err)
		s.writeError(w, http.StatusInternalServerError, "generation failed")

		return
	}

	resp := generateResponse{
		Bits:       make([]int, len(bits)),
		Hex:        hex.EncodeToString(raw),
		LengthBits: len(bits),
	}
	for i, b := range bits {
		resp.Bits[i] = int(b)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	var req testRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a bits array")

		return
	}
	if len(req.Bits) < nist.MinLength {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("bits must contain at least %d values", nist.MinLength))

		return
	}

	bits := make([]byte, len(req.Bits))
	for i, v := range req.Bits {
		if v != 0 && v != 1 {
			s.writeError(w, http.StatusBadRequest, "bits must contain only 0 or 1")

			return
		}
		bits[i] = byte(v)
	}

	results, err := nist.RunAll(bits)
	if err != nil {
		// Unreachable after the checks above; kept as a status mapping for
		// any future battery-level validation.
		s.writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	resp := make([]testResult, len(results))
	for i, res := range results {
		resp[i] = testResult{Name: res.Name, PValues: res.PValues, Pass: res.Pass}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "qrng-sim",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
