// Package api exposes the storefront pricing and statutory reporting
// endpoints as JSON over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/middleware"
	"github.com/go-playground/validator/v10"
)

// Handler bundles the domain services behind the JSON API.
type Handler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalog  domain.CatalogService
	checkout domain.CheckoutService
	report   domain.ReportService
}

// NewHandler creates the API handler.
func NewHandler(
	logger *slog.Logger,
	catalog domain.CatalogService,
	checkout domain.CheckoutService,
	report domain.ReportService,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		catalog:  catalog,
		checkout: checkout,
		report:   report,
	}
}

// decodeAndValidate parses the JSON body into dst and runs struct
// validation. Errors are already written to the response; callers
// just return on false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, r, domain.Invalid("api.decode", "Invalid JSON body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondError(w, r, domain.Invalid("api.validate", err.Error()))
		return false
	}
	return true
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := errorCodeToHTTPStatus(code)

	logger := middleware.GetLogger(r.Context(), h.logger)
	if status >= 500 {
		logger.Error("request failed", "error", err, "code", code)
	} else {
		logger.Info("request rejected", "error", err, "code", code)
	}

	h.respondJSON(w, status, map[string]string{
		"error": domain.ErrorMessage(err),
		"code":  code,
	})
}

func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
