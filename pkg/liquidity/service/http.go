package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/memeforge/memeforge/pkg/app/errors"
	apphttp "github.com/memeforge/memeforge/pkg/app/http"
	"github.com/memeforge/memeforge/pkg/liquidity"
)

// maxBodySize limits request bodies to 1MB
const maxBodySize = 1 << 20

var validate = validator.New()

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the liquidity service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/liquidity-controls", apphttp.HandleError(h.upsert))
	r.Get("/liquidity-controls", apphttp.HandleError(h.get))
}

func (h *HTTP) upsert(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req liquidity.UpsertRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	if err := validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, "invalid liquidity control request")
	}

	resp, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	tokenID := r.URL.Query().Get("tokenId")
	if tokenID == "" {
		return apperrors.BadRequestError(nil, "tokenId is required")
	}

	resp, err := h.service.Get(r.Context(), tokenID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
