package repository

import (
	"context"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
)

// CompanyRepository is the read-only accessor for an auditor's company
// list. Creation and editing are owned by the company-list collaborator.
type CompanyRepository interface {
	FindByAuditor(ctx context.Context, auditorID string) ([]*entity.Company, error)
}
