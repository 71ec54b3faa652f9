package repository

import (
	"context"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
)

// EmailRepository is the read-only accessor for ingested email records.
// Ingestion and deduplication belong to the sync collaborator; this core
// only reads.
type EmailRepository interface {
	FindByAuditor(ctx context.Context, auditorID string) ([]*entity.EmailRecord, error)
	FindByCompany(ctx context.Context, auditorID, companyID string) ([]*entity.EmailRecord, error)
}
