package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passforge/internal/api"
	"passforge/internal/domain"
	"passforge/internal/services/harden"
)

func newHandler() http.Handler {
	return api.NewServer(harden.New()).Routes()
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHarden_OK(t *testing.T) {
	h := newHandler()

	rec := post(t, h, "/harden", map[string]any{
		"password":     "MySimplePass123",
		"house_name":   "Sunset Villa",
		"phone_suffix": "5847",
		"iterations":   2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Success  bool `json:"success"`
		Original struct {
			Analysis domain.StrengthAnalysis `json:"analysis"`
		} `json:"original"`
		Hardened struct {
			Short         string                  `json:"short"`
			Medium        string                  `json:"medium"`
			Long          string                  `json:"long"`
			MediumEntropy float64                 `json:"medium_entropy"`
			Analysis      domain.StrengthAnalysis `json:"analysis"`
		} `json:"hardened"`
		Crypto struct {
			Algorithm  string `json:"algorithm"`
			Iterations int    `json:"iterations"`
			Salt       string `json:"salt"`
		} `json:"crypto_details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !resp.Success {
		t.Fatal("success flag not set")
	}
	if len(resp.Hardened.Short) != 16 || len(resp.Hardened.Medium) != 24 || len(resp.Hardened.Long) != 32 {
		t.Fatalf("variant lengths: %d/%d/%d",
			len(resp.Hardened.Short), len(resp.Hardened.Medium), len(resp.Hardened.Long))
	}
	if resp.Crypto.Algorithm != domain.Algorithm || resp.Crypto.Iterations != 2 || resp.Crypto.Salt == "" {
		t.Fatalf("crypto details: %+v", resp.Crypto)
	}
	if resp.Original.Analysis.Entropy != 89.31 {
		t.Fatalf("original entropy: got %v", resp.Original.Analysis.Entropy)
	}
	if resp.Hardened.Analysis.Entropy != resp.Hardened.MediumEntropy {
		t.Fatalf("hardened analysis disagrees with medium entropy: %v vs %v",
			resp.Hardened.Analysis.Entropy, resp.Hardened.MediumEntropy)
	}
}

func TestHarden_MissingPassword(t *testing.T) {
	rec := post(t, newHandler(), "/harden", map[string]any{"house_name": "Sunset Villa"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp["error"] == "" {
		t.Fatal("error message missing")
	}
}

func TestHarden_IterationBounds(t *testing.T) {
	h := newHandler()

	for _, iters := range []int{-1, api.MaxIterations + 1} {
		rec := post(t, h, "/harden", map[string]any{"password": "x", "iterations": iters})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("iterations %d: got %d, want 400", iters, rec.Code)
		}
	}
}

func TestAnalyze_OK(t *testing.T) {
	rec := post(t, newHandler(), "/analyze", map[string]any{"password": "abc"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp struct {
		Success  bool                    `json:"success"`
		Analysis domain.StrengthAnalysis `json:"analysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Analysis.Entropy != 14.1 {
		t.Errorf("entropy: got %v, want 14.1", resp.Analysis.Entropy)
	}
	if resp.Analysis.Strength != domain.RatingVeryWeak || resp.Analysis.Color != "red" {
		t.Errorf("rating: got %s/%s", resp.Analysis.Strength, resp.Analysis.Color)
	}
	if !resp.Analysis.HasLowercase || resp.Analysis.HasUppercase {
		t.Errorf("class flags wrong: %+v", resp.Analysis)
	}
}

func TestVerify_MatchAndMismatch(t *testing.T) {
	h := newHandler()

	// Issue passwords directly through the service to get a salt.
	issued, err := harden.New().HardenWithSalt("MySimplePass123", domain.Metadata{HouseName: "Sunset Villa"}, "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6", 2)
	if err != nil {
		t.Fatalf("issue passwords: %v", err)
	}
	medium, _ := issued.Variant(domain.VariantMedium)

	body := map[string]any{
		"password":   "MySimplePass123",
		"house_name": "Sunset Villa",
		"salt":       issued.Salt,
		"stored":     medium.Password,
		"iterations": 2,
	}

	rec := post(t, h, "/verify", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Match bool `json:"match"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Match {
		t.Fatal("issued password did not match")
	}

	body["stored"] = medium.Password[:23] + "?"
	rec = post(t, h, "/verify", body)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Match {
		t.Fatal("altered password matched")
	}
}

func TestVerify_EmptyBase(t *testing.T) {
	rec := post(t, newHandler(), "/verify", map[string]any{
		"salt":   "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6",
		"stored": "LuX6Tt&o8n0n@oDt",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

// failingHardener simulates a broken derivation backend.
type failingHardener struct{}

func (failingHardener) Harden(string, domain.Metadata, int) (domain.HardenResult, error) {
	return domain.HardenResult{}, errors.New("entropy source unavailable")
}

func (failingHardener) HardenWithSalt(string, domain.Metadata, string, int) (domain.HardenResult, error) {
	return domain.HardenResult{}, errors.New("entropy source unavailable")
}

func (failingHardener) Verify(string, domain.Metadata, string, string, int) (bool, error) {
	return false, errors.New("entropy source unavailable")
}

func TestHarden_DerivationFailureIsServerError(t *testing.T) {
	h := api.NewServer(failingHardener{}).Routes()

	rec := post(t, h, "/harden", map[string]any{"password": "MySimplePass123"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp["error"] == "" {
		t.Fatal("error message missing")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newHandler()

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d, want 405", rec.Code)
	}
}

func TestUnsupportedContentType(t *testing.T) {
	h := newHandler()

	body := `{"password":"MySimplePass123","iterations":2}`

	req := httptest.NewRequest(http.MethodPost, "/harden", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("text/plain: got %d, want 415", rec.Code)
	}

	// A charset parameter on the JSON media type is fine.
	req = httptest.NewRequest(http.MethodPost, "/harden", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("json with charset: got %d, want 200", rec.Code)
	}
}

func TestInvalidJSON(t *testing.T) {
	h := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
