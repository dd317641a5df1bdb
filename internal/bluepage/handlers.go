package bluepage

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/noah-isme/backend-quotes/internal/common"
	"github.com/noah-isme/backend-quotes/internal/obs"
)

// maxPayloadBytes bounds the preview body; quote documents are far smaller.
const maxPayloadBytes = 1 << 20

// Handler exposes the Blue Page preview endpoint.
type Handler struct {
	BaseURL string
}

// Preview handles POST /api/quotes/preview-blue-page.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	if h.BaseURL == "" {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "blue page base url not configured", nil)
		return
	}
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes+1))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unreadable request body", nil)
		return
	}
	if len(payload) > maxPayloadBytes {
		common.JSONError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "quote payload too large", nil)
		return
	}
	if !json.Valid(payload) {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request payload", nil)
		return
	}
	previewURL, err := BuildURL(h.BaseURL, payload)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to build preview url", nil)
		return
	}
	if obs.BluePagePreviewsTotal != nil {
		obs.BluePagePreviewsTotal.Inc()
	}
	common.JSON(w, http.StatusOK, map[string]string{"url": previewURL})
}
