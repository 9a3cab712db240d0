package repository

import (
	"context"

	"github.com/google/uuid"
)

// LeadsRepository is the persistence contract for lead records. Leads are
// immutable after creation; no update or delete operations exist.
type LeadsRepository interface {
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
}
