package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/repository"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/logger"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/metrics"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/workdays"
)

// AuditService runs follow-up aggregation for one auditor scope at a time.
// All reads happen up front into a Snapshot; the threshold is read once per
// pass and threaded through, never re-read mid-loop.
type AuditService struct {
	companyRepo  repository.CompanyRepository
	emailRepo    repository.EmailRepository
	settingsRepo repository.SettingsRepository
	calendar     *workdays.Calendar
	metrics      *metrics.Metrics
	logger       logger.Logger
	now          func() time.Time
}

// SettingsView is the read-only settings surface exposed to callers.
type SettingsView struct {
	FollowupDays    int      `json:"followup_days"`
	InternalDomains []string `json:"internal_domains"`
}

// NewAuditService creates a new audit service
func NewAuditService(
	companyRepo repository.CompanyRepository,
	emailRepo repository.EmailRepository,
	settingsRepo repository.SettingsRepository,
	calendar *workdays.Calendar,
	m *metrics.Metrics,
	logger logger.Logger,
) *AuditService {
	return &AuditService{
		companyRepo:  companyRepo,
		emailRepo:    emailRepo,
		settingsRepo: settingsRepo,
		calendar:     calendar,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *AuditService) snapshot(ctx context.Context, auditorID string) (Snapshot, error) {
	threshold, err := s.settingsRepo.FollowupDays(ctx)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("settings").Inc()
		return Snapshot{}, fmt.Errorf("read followup threshold: %w", err)
	}

	companies, err := s.companyRepo.FindByAuditor(ctx, auditorID)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("companies").Inc()
		return Snapshot{}, fmt.Errorf("read companies: %w", err)
	}

	emails, err := s.emailRepo.FindByAuditor(ctx, auditorID)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("emails").Inc()
		return Snapshot{}, fmt.Errorf("read emails: %w", err)
	}

	return Snapshot{
		Companies: companies,
		Emails:    emails,
		Threshold: threshold,
		Now:       s.now().UTC(),
	}, nil
}

// Summarize computes the dashboard stat block for one auditor.
func (s *AuditService) Summarize(ctx context.Context, auditorID string) (entity.Summary, error) {
	started := s.now()
	snap, err := s.snapshot(ctx, auditorID)
	if err != nil {
		return entity.Summary{}, err
	}

	summary := Summarize(snap, s.calendar)

	s.metrics.AggregationPasses.Inc()
	s.metrics.CompaniesEvaluated.Add(float64(len(snap.Companies)))
	s.metrics.RecordsSkipped.Add(float64(summary.SkippedRecords))
	s.metrics.OverdueCompanies.Set(float64(summary.OverdueCount))
	s.metrics.AggregationTime.Observe(s.now().Sub(started).Seconds())

	if summary.SkippedRecords > 0 {
		s.logger.Warn("Skipped email records with invalid timestamps",
			"auditorID", auditorID, "skipped", summary.SkippedRecords)
	}
	s.logger.Info("Summarized auditor snapshot",
		"auditorID", auditorID,
		"companies", summary.TotalCompanies,
		"overdue", summary.OverdueCount,
		"dueSoon", summary.DueSoonCount)

	return summary, nil
}

// ListCompanies computes the company activity rows for one auditor,
// optionally filtered by a search string.
func (s *AuditService) ListCompanies(ctx context.Context, auditorID, filter string) ([]entity.CompanyDetail, error) {
	started := s.now()
	snap, err := s.snapshot(ctx, auditorID)
	if err != nil {
		return nil, err
	}

	details := ListCompanies(snap, s.calendar, filter)

	s.metrics.AggregationPasses.Inc()
	s.metrics.CompaniesEvaluated.Add(float64(len(details)))
	s.metrics.AggregationTime.Observe(s.now().Sub(started).Seconds())

	return details, nil
}

// OverdueReport computes the exportable overdue rows for one auditor.
func (s *AuditService) OverdueReport(ctx context.Context, auditorID string) ([]entity.OverdueRow, error) {
	started := s.now()
	snap, err := s.snapshot(ctx, auditorID)
	if err != nil {
		return nil, err
	}

	report := OverdueReport(snap, s.calendar)

	s.metrics.AggregationPasses.Inc()
	s.metrics.CompaniesEvaluated.Add(float64(len(snap.Companies)))
	s.metrics.AggregationTime.Observe(s.now().Sub(started).Seconds())

	s.logger.Info("Built overdue report", "auditorID", auditorID, "rows", len(report))
	return report, nil
}

// Settings returns the current global settings.
func (s *AuditService) Settings(ctx context.Context) (SettingsView, error) {
	days, err := s.settingsRepo.FollowupDays(ctx)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("settings").Inc()
		return SettingsView{}, err
	}
	domains, err := s.settingsRepo.InternalDomains(ctx)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("settings").Inc()
		return SettingsView{}, err
	}
	return SettingsView{FollowupDays: days, InternalDomains: domains}, nil
}
