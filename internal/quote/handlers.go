package quote

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-quotes/internal/common"
	"github.com/noah-isme/backend-quotes/internal/obs"
)

// Handler exposes REST endpoints for quote documents.
type Handler struct {
	Service *Service
}

// Create handles POST /api/quotes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	var req WireQuote
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request payload", nil)
		return
	}
	id, warnings, err := h.Service.Save(r.Context(), req)
	if err != nil {
		if obs.QuoteSavesTotal != nil {
			obs.QuoteSavesTotal.WithLabelValues("error").Inc()
		}
		h.writeError(w, err)
		return
	}
	if obs.QuoteSavesTotal != nil {
		obs.QuoteSavesTotal.WithLabelValues("ok").Inc()
	}
	common.JSON(w, http.StatusCreated, map[string]any{
		"id":       id.String(),
		"warnings": warnings,
	})
}

// Get handles GET /api/quotes/{quoteID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	quoteID := chi.URLParam(r, "quoteID")
	if strings.TrimSpace(quoteID) == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "quote id is required", nil)
		return
	}
	detail, err := h.Service.Get(r.Context(), quoteID)
	if err != nil {
		if obs.QuoteReadsTotal != nil {
			obs.QuoteReadsTotal.WithLabelValues("error").Inc()
		}
		h.writeError(w, err)
		return
	}
	if obs.QuoteReadsTotal != nil {
		obs.QuoteReadsTotal.WithLabelValues("ok").Inc()
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": detail})
}

// List handles GET /api/quotes.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	page, perPage := common.ParsePagination(r, 20)
	headers, total, err := h.Service.List(r.Context(), page, perPage)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data":       headers,
		"pagination": common.Pagination{Page: page, PerPage: perPage, TotalItems: int(total)},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = "INTERNAL"
		}
		message := appErr.Message
		if message == "" {
			message = "internal error"
		}
		common.JSONError(w, status, code, message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}
