package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/gstr1"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/telemetry"
)

// GenerateGSTR1 handles GET /api/v1/reports/gstr1
//
// Query parameters:
//   - from, to: period bounds, YYYY-MM-DD (to is inclusive of the day)
//   - format:   json (default), csv or xlsx; non-JSON formats are
//     persisted as audit exports and served as downloads
func (h *Handler) GenerateGSTR1(w http.ResponseWriter, r *http.Request) {
	from, to, err := parsePeriod(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		report, err := h.report.GenerateGSTR1(r.Context(), from, to)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		h.respondJSON(w, http.StatusOK, report)

	case "csv":
		report, err := h.report.ExportGSTR1(r.Context(), from, to)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		data, err := gstr1.CSV(report.Invoices, report.Summary)
		if err != nil {
			h.respondError(w, r, domain.Internal(err, "api.gstr1_csv", "Failed to render CSV"))
			return
		}
		h.serveDownload(w, data, "text/csv", exportFilename(from, to, "csv"), "csv")

	case "xlsx":
		report, err := h.report.ExportGSTR1(r.Context(), from, to)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		data, err := gstr1.XLSX(report.Invoices, report.Summary)
		if err != nil {
			h.respondError(w, r, domain.Internal(err, "api.gstr1_xlsx", "Failed to render XLSX"))
			return
		}
		h.serveDownload(w, data,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			exportFilename(from, to, "xlsx"), "xlsx")

	default:
		h.respondError(w, r, domain.Invalid("api.gstr1", "Unknown format; expected json, csv or xlsx"))
	}
}

func (h *Handler) serveDownload(w http.ResponseWriter, data []byte, contentType, filename, format string) {
	if telemetry.Business != nil {
		telemetry.Business.ReportsGenerated.WithLabelValues(format).Inc()
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write export", "error", err)
	}
}

func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	const layout = "2006-01-02"

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, domain.Invalid("api.gstr1", "Both from and to are required (YYYY-MM-DD)")
	}

	from, err := time.Parse(layout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid("api.gstr1", "Invalid from date; expected YYYY-MM-DD")
	}
	to, err := time.Parse(layout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid("api.gstr1", "Invalid to date; expected YYYY-MM-DD")
	}

	// Make the end bound inclusive of the whole day.
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}

func exportFilename(from, to time.Time, ext string) string {
	return fmt.Sprintf("gstr1_%s_%s.%s", from.Format("20060102"), to.Format("20060102"), ext)
}
