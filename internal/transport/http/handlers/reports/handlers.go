package reportshandler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workforce/internal/analytics"
	"workforce/internal/export"
	"workforce/internal/platform/metrics"
	"workforce/internal/store"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
)

type Handler struct {
	Source  store.Source
	Metrics *metrics.Collector
	Timeout time.Duration
}

func NewHandler(source store.Source, collector *metrics.Collector, timeout time.Duration) *Handler {
	return &Handler{Source: source, Metrics: collector, Timeout: timeout}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/workforce", h.handleWorkforceJSON)
		r.Get("/workforce.csv", h.handleWorkforceCSV)
		r.Get("/workforce.pdf", h.handleWorkforcePDF)
	})
}

func (h *Handler) compute(r *http.Request) ([]analytics.ReportRow, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	snap, err := h.Source.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := analytics.Run(snap)
	if h.Metrics != nil {
		h.Metrics.RecordReport(len(rows))
	}
	return rows, nil
}

func (h *Handler) handleWorkforceJSON(w http.ResponseWriter, r *http.Request) {
	rows, err := h.compute(r)
	if err != nil {
		slog.Error("workforce report failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "could not load source tables", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleWorkforceCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.compute(r)
	if err != nil {
		slog.Error("workforce report failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "could not load source tables", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="workforce-report.csv"`)
	if err := export.WriteCSV(w, rows); err != nil {
		slog.Error("csv export failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleWorkforcePDF(w http.ResponseWriter, r *http.Request) {
	rows, err := h.compute(r)
	if err != nil {
		slog.Error("workforce report failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "could not load source tables", middleware.GetRequestID(r.Context()))
		return
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, rows); err != nil {
		slog.Error("pdf export failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "could not render report", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="workforce-report.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
