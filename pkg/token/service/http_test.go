package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/memeforge/memeforge/pkg/token"
)

func newTokenTestServer(t *testing.T) (http.Handler, *fakeStore, *fakeControlStore) {
	t.Helper()

	store := newFakeStore()
	controls := &fakeControlStore{}
	gen := &fakeAddressGenerator{addr: "GeneratedMintAddr111111111111111"}
	svc := NewService(store, controls, gen, zap.NewNop())

	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r, store, controls
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) (string, int) {
	t.Helper()

	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got.Error, got.Code
}

func createTokenViaHTTP(t *testing.T, handler http.Handler, body string) token.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/tokens", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("create: expected status %d, got %d (body %s)", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp token.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	return resp
}

const validTokenJSON = `{
	"userId": "user-1",
	"name": "Doge Classic",
	"symbol": "DOGC",
	"decimals": 9,
	"supply": 1000000000,
	"network": "devnet"
}`

func TestTokenHTTP_Create_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/tokens", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	errMsg, code := decodeErrorResponse(t, rec)
	if errMsg != "invalid JSON" {
		t.Fatalf("expected error %q, got %q", "invalid JSON", errMsg)
	}
	if code != http.StatusBadRequest {
		t.Fatalf("expected code %d, got %d", http.StatusBadRequest, code)
	}
}

func TestTokenHTTP_Create_ValidationFailure_ReturnsBadRequest(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing userId", body: `{"name":"x","symbol":"X","supply":1,"network":"devnet"}`},
		{name: "symbol too long", body: `{"userId":"u","name":"x","symbol":"ELEVENCHARS","supply":1,"network":"devnet"}`},
		{name: "decimals out of range", body: `{"userId":"u","name":"x","symbol":"X","decimals":10,"supply":1,"network":"devnet"}`},
		{name: "zero supply", body: `{"userId":"u","name":"x","symbol":"X","supply":0,"network":"devnet"}`},
		{name: "unknown network", body: `{"userId":"u","name":"x","symbol":"X","supply":1,"network":"testnet"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/tokens", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d (body %s)", http.StatusBadRequest, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestTokenHTTP_CreateThenGet_Roundtrip(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)

	created := createTokenViaHTTP(t, handler, validTokenJSON)
	if created.MintAddress == "" {
		t.Fatal("expected placeholder mint address in create response")
	}

	req := httptest.NewRequest(http.MethodGet, "/tokens/"+created.ID, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got token.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode get response: %v", err)
	}
	if got.ID != created.ID || got.Symbol != "DOGC" || got.Network != "devnet" {
		t.Fatalf("unexpected token in get response: %+v", got)
	}
}

func TestTokenHTTP_Get_UnknownID_ReturnsNotFound(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/tokens/does-not-exist", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	errMsg, _ := decodeErrorResponse(t, rec)
	if errMsg != "Token not found" {
		t.Fatalf("expected error %q, got %q", "Token not found", errMsg)
	}
}

func TestTokenHTTP_List_RequiresUserID(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/tokens", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	errMsg, _ := decodeErrorResponse(t, rec)
	if errMsg != "userId is required" {
		t.Fatalf("expected error %q, got %q", "userId is required", errMsg)
	}
}

func TestTokenHTTP_List_RejectsUnknownNetwork(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/tokens?userId=user-1&network=testnet", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestTokenHTTP_List_FiltersByNetwork(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)

	createTokenViaHTTP(t, handler, validTokenJSON)
	createTokenViaHTTP(t, handler, `{
		"userId": "user-1",
		"name": "Moon Cat",
		"symbol": "MCAT",
		"decimals": 6,
		"supply": 500000,
		"network": "mainnet"
	}`)

	req := httptest.NewRequest(http.MethodGet, "/tokens?userId=user-1&network=mainnet", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got token.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(got.Tokens) != 1 {
		t.Fatalf("expected 1 mainnet token, got %d", len(got.Tokens))
	}
	if got.Tokens[0].Symbol != "MCAT" {
		t.Fatalf("expected MCAT, got %s", got.Tokens[0].Symbol)
	}
}

func TestTokenHTTP_Update_EmptyBody_ReturnsBadRequest(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)
	created := createTokenViaHTTP(t, handler, validTokenJSON)

	req := httptest.NewRequest(http.MethodPatch, "/tokens/"+created.ID, bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	errMsg, _ := decodeErrorResponse(t, rec)
	if errMsg != "No fields to update" {
		t.Fatalf("expected error %q, got %q", "No fields to update", errMsg)
	}
}

func TestTokenHTTP_Update_AppliesFields(t *testing.T) {
	handler, _, _ := newTokenTestServer(t)
	created := createTokenViaHTTP(t, handler, validTokenJSON)

	body := `{"mintAddress":"RealMint111111111111111111111111","freezeAuthorityRevoked":true}`
	req := httptest.NewRequest(http.MethodPatch, "/tokens/"+created.ID, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body %s)", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got token.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode update response: %v", err)
	}
	if got.MintAddress != "RealMint111111111111111111111111" {
		t.Fatalf("expected updated mint address, got %q", got.MintAddress)
	}
	if !got.FreezeAuthorityRevoked {
		t.Fatal("expected freezeAuthorityRevoked=true")
	}
}

func TestTokenHTTP_Delete_ReturnsNoContentAndCascades(t *testing.T) {
	handler, _, controls := newTokenTestServer(t)
	created := createTokenViaHTTP(t, handler, validTokenJSON)

	req := httptest.NewRequest(http.MethodDelete, "/tokens/"+created.ID, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if len(controls.deleted) != 1 || controls.deleted[0] != created.ID {
		t.Fatalf("expected cascade delete for %s, got %v", created.ID, controls.deleted)
	}

	// Deleting again still succeeds.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/tokens/"+created.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected idempotent delete status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
