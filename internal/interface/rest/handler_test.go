package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/usecase"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/logger"
)

type fakeReportService struct {
	summary  entity.Summary
	details  []entity.CompanyDetail
	report   []entity.OverdueRow
	settings usecase.SettingsView
	err      error
}

func (f *fakeReportService) Summarize(ctx context.Context, auditorID string) (entity.Summary, error) {
	return f.summary, f.err
}

func (f *fakeReportService) ListCompanies(ctx context.Context, auditorID, filter string) ([]entity.CompanyDetail, error) {
	return f.details, f.err
}

func (f *fakeReportService) OverdueReport(ctx context.Context, auditorID string) ([]entity.OverdueRow, error) {
	return f.report, f.err
}

func (f *fakeReportService) Settings(ctx context.Context) (usecase.SettingsView, error) {
	return f.settings, f.err
}

func newTestMux(service *fakeReportService) *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(service, logger.NewLogger()).Register(mux)
	return mux
}

func TestSummaryEndpoint(t *testing.T) {
	service := &fakeReportService{
		summary: entity.Summary{TotalCompanies: 4, OverdueCount: 1, DueSoonCount: 1},
	}
	mux := newTestMux(service)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/summary?auditor=aud1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got entity.Summary
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got.TotalCompanies != 4 || got.OverdueCount != 1 {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestSummaryRequiresAuditor(t *testing.T) {
	mux := newTestMux(&fakeReportService{})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestSummaryRejectsPost(t *testing.T) {
	mux := newTestMux(&fakeReportService{})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/summary?auditor=aud1", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestMissingSettingMapsTo503(t *testing.T) {
	mux := newTestMux(&fakeReportService{err: entity.ErrMissingSetting})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/summary?auditor=aud1", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rr.Code)
	}
}

func TestCompaniesEndpointPassesFilter(t *testing.T) {
	service := &fakeReportService{
		details: []entity.CompanyDetail{{TradeName: "Acme Traders", Classification: entity.Overdue}},
	}
	mux := newTestMux(service)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/companies?auditor=aud1&q=acme", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got []entity.CompanyDetail
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(got) != 1 || got[0].TradeName != "Acme Traders" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestOverdueCSVEndpoint(t *testing.T) {
	service := &fakeReportService{
		report: []entity.OverdueRow{
			{UIFRef: "UIF123", TradeName: "Acme Traders", Email: "acme@example.com", LastSentDate: "2025-01-06", WorkingDaysSince: 4},
		},
	}
	mux := newTestMux(service)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/overdue.csv?auditor=aud1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename=overdue_followups_") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header plus one row", len(lines))
	}
	if lines[0] != "UIF Ref,Trade Name,Email,Last Sent,Working Days Since" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "UIF123,Acme Traders,acme@example.com,2025-01-06,4" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestSettingsEndpoint(t *testing.T) {
	service := &fakeReportService{
		settings: usecase.SettingsView{FollowupDays: 3, InternalDomains: []string{"@rbrgroup.co.za"}},
	}
	mux := newTestMux(service)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got usecase.SettingsView
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got.FollowupDays != 3 {
		t.Errorf("FollowupDays = %d, want 3", got.FollowupDays)
	}
}
