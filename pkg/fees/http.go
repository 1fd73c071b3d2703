package fees

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/memeforge/memeforge/pkg/app/http"
)

// HTTP wraps the Estimator to provide HTTP endpoints
type HTTP struct {
	estimator *Estimator
	logger    *zap.Logger
}

// RegisterRoutes registers the fee estimate endpoint on the given chi router
func RegisterRoutes(r chi.Router, estimator *Estimator, logger *zap.Logger) {
	h := &HTTP{
		estimator: estimator,
		logger:    logger,
	}

	r.Get("/fees", apphttp.HandleError(h.estimate))
}

func (h *HTTP) estimate(w http.ResponseWriter, r *http.Request) error {
	network := r.URL.Query().Get("network")

	resp, err := h.estimator.ForNetwork(network)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
