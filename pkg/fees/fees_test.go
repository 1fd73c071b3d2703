package fees

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TestNewEstimator_DefaultsApplied(t *testing.T) {
	est, err := NewEstimator(nil)
	if err != nil {
		t.Fatalf("NewEstimator() failed: %v", err)
	}

	got, err := est.ForNetwork("mainnet")
	if err != nil {
		t.Fatalf("ForNetwork(mainnet) failed: %v", err)
	}
	if got.CreationFee != "0.002" {
		t.Fatalf("expected creation fee 0.002, got %s", got.CreationFee)
	}
	if got.MetadataFee != "0.001" {
		t.Fatalf("expected metadata fee 0.001, got %s", got.MetadataFee)
	}
	if got.TotalFee != "0.003" {
		t.Fatalf("expected total fee 0.003, got %s", got.TotalFee)
	}
	if got.Currency != "SOL" {
		t.Fatalf("expected currency SOL, got %s", got.Currency)
	}
}

func TestNewEstimator_OverriddenSchedule(t *testing.T) {
	est, err := NewEstimator(&Schedule{
		MainnetCreationFee: "0.01",
		MainnetMetadataFee: "0.005",
	})
	if err != nil {
		t.Fatalf("NewEstimator() failed: %v", err)
	}

	got, err := est.ForNetwork("mainnet")
	if err != nil {
		t.Fatalf("ForNetwork(mainnet) failed: %v", err)
	}
	if got.TotalFee != "0.015" {
		t.Fatalf("expected total fee 0.015, got %s", got.TotalFee)
	}
}

func TestNewEstimator_RejectsNonDecimalFee(t *testing.T) {
	_, err := NewEstimator(&Schedule{
		MainnetCreationFee: "free",
		MainnetMetadataFee: "0.001",
	})
	if err == nil {
		t.Fatal("expected error for non-decimal fee, got nil")
	}
}

func TestEstimator_DevnetIsFree(t *testing.T) {
	est, err := NewEstimator(nil)
	if err != nil {
		t.Fatalf("NewEstimator() failed: %v", err)
	}

	got, err := est.ForNetwork("devnet")
	if err != nil {
		t.Fatalf("ForNetwork(devnet) failed: %v", err)
	}
	if got.CreationFee != "0" || got.MetadataFee != "0" || got.TotalFee != "0" {
		t.Fatalf("expected zero fees on devnet, got %+v", got)
	}
}

func TestEstimator_UnknownNetwork(t *testing.T) {
	est, err := NewEstimator(nil)
	if err != nil {
		t.Fatalf("NewEstimator() failed: %v", err)
	}

	if _, err := est.ForNetwork("testnet"); err == nil {
		t.Fatal("expected error for unknown network, got nil")
	}
}

func TestFeesHTTP_Estimate(t *testing.T) {
	est, err := NewEstimator(nil)
	if err != nil {
		t.Fatalf("NewEstimator() failed: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, est, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/fees?network=mainnet", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got Estimate
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Network != "mainnet" || got.TotalFee != "0.003" {
		t.Fatalf("unexpected estimate: %+v", got)
	}
}

func TestFeesHTTP_Estimate_MissingNetwork(t *testing.T) {
	est, err := NewEstimator(nil)
	if err != nil {
		t.Fatalf("NewEstimator() failed: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, est, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/fees", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
