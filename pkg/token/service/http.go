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
	"github.com/memeforge/memeforge/pkg/token"
)

// maxBodySize limits request bodies to 1MB
const maxBodySize = 1 << 20

var validate = validator.New()

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the token service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/tokens", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.create))
		r.Get("/", apphttp.HandleError(h.list))
		r.Get("/{id}", apphttp.HandleError(h.get))
		r.Patch("/{id}", apphttp.HandleError(h.update))
		r.Delete("/{id}", apphttp.HandleError(h.delete))
	})
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req token.CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	if err := validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, "invalid token request")
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		return apperrors.BadRequestError(nil, "userId is required")
	}

	network := r.URL.Query().Get("network")
	if network != "" && network != token.NetworkDevnet && network != token.NetworkMainnet {
		return apperrors.BadRequestError(nil, "network must be devnet or mainnet")
	}

	resp, err := h.service.List(r.Context(), userID, network)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) update(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req token.UpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) delete(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
