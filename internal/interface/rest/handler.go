package rest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/usecase"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/logger"
)

// ReportService is the slice of AuditService the handlers need.
type ReportService interface {
	Summarize(ctx context.Context, auditorID string) (entity.Summary, error)
	ListCompanies(ctx context.Context, auditorID, filter string) ([]entity.CompanyDetail, error)
	OverdueReport(ctx context.Context, auditorID string) ([]entity.OverdueRow, error)
	Settings(ctx context.Context) (usecase.SettingsView, error)
}

// Handler serves the read-only reporting endpoints. Tenancy is resolved
// upstream; callers identify the auditor scope with the auditor query
// parameter.
type Handler struct {
	service ReportService
	logger  logger.Logger
}

// NewHandler creates a new reporting handler
func NewHandler(service ReportService, logger logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the reporting routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/summary", h.handleSummary)
	mux.HandleFunc("/api/companies", h.handleCompanies)
	mux.HandleFunc("/api/overdue.csv", h.handleOverdueCSV)
	mux.HandleFunc("/api/overdue", h.handleOverdue)
	mux.HandleFunc("/api/settings", h.handleSettings)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	auditorID, ok := h.requireAuditor(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), auditorID)
	if err != nil {
		h.writeError(w, "summarize", err)
		return
	}
	h.writeJSON(w, summary)
}

func (h *Handler) handleCompanies(w http.ResponseWriter, r *http.Request) {
	auditorID, ok := h.requireAuditor(w, r)
	if !ok {
		return
	}

	details, err := h.service.ListCompanies(r.Context(), auditorID, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, "list companies", err)
		return
	}
	h.writeJSON(w, details)
}

func (h *Handler) handleOverdue(w http.ResponseWriter, r *http.Request) {
	auditorID, ok := h.requireAuditor(w, r)
	if !ok {
		return
	}

	report, err := h.service.OverdueReport(r.Context(), auditorID)
	if err != nil {
		h.writeError(w, "overdue report", err)
		return
	}
	h.writeJSON(w, report)
}

func (h *Handler) handleOverdueCSV(w http.ResponseWriter, r *http.Request) {
	auditorID, ok := h.requireAuditor(w, r)
	if !ok {
		return
	}

	report, err := h.service.OverdueReport(r.Context(), auditorID)
	if err != nil {
		h.writeError(w, "overdue report", err)
		return
	}

	filename := fmt.Sprintf("overdue_followups_%s.csv", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	cw := csv.NewWriter(w)
	cw.Write([]string{"UIF Ref", "Trade Name", "Email", "Last Sent", "Working Days Since"})
	for _, row := range report {
		cw.Write([]string{
			row.UIFRef,
			row.TradeName,
			row.Email,
			row.LastSentDate,
			strconv.Itoa(row.WorkingDaysSince),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("Failed to write overdue CSV", "error", err)
	}
}

func (h *Handler) handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	settings, err := h.service.Settings(r.Context())
	if err != nil {
		h.writeError(w, "settings", err)
		return
	}
	h.writeJSON(w, settings)
}

func (h *Handler) requireAuditor(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	auditorID := r.URL.Query().Get("auditor")
	if auditorID == "" {
		http.Error(w, "auditor query parameter is required", http.StatusBadRequest)
		return "", false
	}
	return auditorID, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, operation string, err error) {
	h.logger.Error("Request failed", "operation", operation, "error", err)
	status := http.StatusInternalServerError
	if errors.Is(err, entity.ErrMissingSetting) {
		// Misconfiguration, not a transient fault. Still a 5xx: the caller
		// cannot fix it, and a default-threshold answer would be wrong.
		status = http.StatusServiceUnavailable
	}
	http.Error(w, err.Error(), status)
}
