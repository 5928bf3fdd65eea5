package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"passforge/internal/domain"
	"passforge/internal/strength"
)

const (
	// MaxIterations caps client-supplied iteration counts so a request
	// cannot turn the KDF into a denial of service.
	MaxIterations = 1000000

	// maxBodyBytes bounds request bodies; derivation inputs are tiny.
	maxBodyBytes = 1 << 20
)

// Server exposes the hardening pipeline over JSON HTTP.
type Server struct {
	hardener domain.HardenService
}

// NewServer returns a Server deriving through hardener.
func NewServer(hardener domain.HardenService) *Server {
	return &Server{hardener: hardener}
}

// Routes returns the handler with all endpoints and access logging attached.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/harden", s.handleHarden)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/verify", s.handleVerify)
	return logRequests(mux)
}

type hardenRequest struct {
	Password string `json:"password"`
	domain.Metadata
	Iterations int `json:"iterations"`
}

type analysisPayload struct {
	Password string                  `json:"password,omitempty"`
	Analysis domain.StrengthAnalysis `json:"analysis"`
}

type hardenedPayload struct {
	Short         string                  `json:"short"`
	Medium        string                  `json:"medium"`
	Long          string                  `json:"long"`
	ShortEntropy  float64                 `json:"short_entropy"`
	MediumEntropy float64                 `json:"medium_entropy"`
	LongEntropy   float64                 `json:"long_entropy"`
	Analysis      domain.StrengthAnalysis `json:"analysis"`
}

type cryptoDetails struct {
	Algorithm  string `json:"algorithm"`
	Iterations int    `json:"iterations"`
	Salt       string `json:"salt"`
}

type hardenResponse struct {
	Success  bool            `json:"success"`
	Original analysisPayload `json:"original"`
	Hardened hardenedPayload `json:"hardened"`
	Crypto   cryptoDetails   `json:"crypto_details"`
}

func (s *Server) handleHarden(w http.ResponseWriter, r *http.Request) {
	var req hardenRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Password == "" {
		httpError(w, "password is required", http.StatusBadRequest)
		return
	}
	iterations, ok := clampIterations(w, req.Iterations)
	if !ok {
		return
	}

	// Inputs are validated above; a failure here means the derivation
	// itself broke (e.g. the salt source), which is the server's fault.
	result, err := s.hardener.Harden(req.Password, req.Metadata, iterations)
	if err != nil {
		httpError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := hardenResponse{
		Success: true,
		Original: analysisPayload{
			Password: req.Password,
			Analysis: strength.Analyze(req.Password),
		},
		Crypto: cryptoDetails{
			Algorithm:  result.Algorithm,
			Iterations: result.Iterations,
			Salt:       result.Salt,
		},
	}
	for _, v := range result.Variants {
		switch v.Label {
		case domain.VariantShort:
			resp.Hardened.Short = v.Password
			resp.Hardened.ShortEntropy = v.Entropy
		case domain.VariantMedium:
			resp.Hardened.Medium = v.Password
			resp.Hardened.MediumEntropy = v.Entropy
			resp.Hardened.Analysis = strength.Analyze(v.Password)
		case domain.VariantLong:
			resp.Hardened.Long = v.Password
			resp.Hardened.LongEntropy = v.Entropy
		}
	}
	writeJSON(w, resp)
}

type analyzeRequest struct {
	Password string `json:"password"`
}

type analyzeResponse struct {
	Success  bool                    `json:"success"`
	Analysis domain.StrengthAnalysis `json:"analysis"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Password == "" {
		httpError(w, "password is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, analyzeResponse{Success: true, Analysis: strength.Analyze(req.Password)})
}

type verifyRequest struct {
	Password string `json:"password"`
	domain.Metadata
	Salt       string `json:"salt"`
	Stored     string `json:"stored"`
	Iterations int    `json:"iterations"`
}

type verifyResponse struct {
	Success bool `json:"success"`
	Match   bool `json:"match"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !decode(w, r, &req) {
		return
	}
	iterations, ok := clampIterations(w, req.Iterations)
	if !ok {
		return
	}

	match, err := s.hardener.Verify(req.Password, req.Metadata, req.Salt, req.Stored, iterations)
	if err != nil {
		httpError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, verifyResponse{Success: true, Match: match})
}

// decode rejects non-POST and non-JSON requests and unmarshals the body
// into v.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		httpError(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		httpError(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return false
	}
	defer r.Body.Close()

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		httpError(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// clampIterations applies the default and rejects out-of-range requests.
func clampIterations(w http.ResponseWriter, requested int) (int, bool) {
	switch {
	case requested == 0:
		return domain.DefaultIterations, true
	case requested < 0 || requested > MaxIterations:
		httpError(w, fmt.Sprintf("iterations must be between 1 and %d", MaxIterations), http.StatusBadRequest)
		return 0, false
	}
	return requested, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
