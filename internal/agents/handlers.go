package agents

import (
	"net/http"
	"strings"

	"github.com/noah-isme/backend-quotes/internal/common"
	"github.com/noah-isme/backend-quotes/internal/obs"
)

// Handler exposes the agent search proxy.
type Handler struct {
	Client *Client
}

// Search handles GET /api/agents/search?search=q.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "agent search not configured", nil)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("search"))
	if len(query) < MinQueryLength {
		if obs.AgentSearchTotal != nil {
			obs.AgentSearchTotal.WithLabelValues("short_circuit").Inc()
		}
		common.JSON(w, http.StatusOK, []Agent{})
		return
	}
	results, err := h.Client.Search(r.Context(), query)
	if err != nil {
		if obs.AgentSearchTotal != nil {
			obs.AgentSearchTotal.WithLabelValues("error").Inc()
		}
		common.JSONError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "agent search unavailable", nil)
		return
	}
	if obs.AgentSearchTotal != nil {
		obs.AgentSearchTotal.WithLabelValues("ok").Inc()
	}
	if results == nil {
		results = []Agent{}
	}
	common.JSON(w, http.StatusOK, results)
}
