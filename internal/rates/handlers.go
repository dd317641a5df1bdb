package rates

import (
	"net/http"

	"github.com/noah-isme/backend-quotes/internal/common"
)

// Handler exposes the exchange-rate endpoint.
type Handler struct {
	Service *Service
}

// Get handles GET /api/rates.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "rates service not configured", nil)
		return
	}
	snapshot, err := h.Service.Get(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "exchange rates unavailable", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": snapshot})
}
