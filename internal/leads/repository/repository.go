package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

// ErrInvalidLead is returned when a caller tries to persist a lead that does
// not satisfy the schema, bypassing the handler's own validation.
var ErrInvalidLead = errors.New("invalid lead")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Lead is one persisted marketing inquiry.
type Lead struct {
	ID           uuid.UUID
	FullName     string
	Email        *string
	Phone        string
	City         string
	BrandName    string
	Website      string
	BusinessType string
	Services     []string
	Budget       string
	BestTime     string
	Notes        *string
	CreatedAt    time.Time
}

type CreateLeadParams struct {
	FullName     string
	Email        *string
	Phone        string
	City         string
	BrandName    string
	Website      string
	BusinessType string
	Services     []string
	Budget       string
	BestTime     string
	Notes        *string
}

// validate is a redundant schema check guarding against callers that bypass
// the submission handler.
func (p CreateLeadParams) validate() error {
	required := map[string]string{
		"fullName":     p.FullName,
		"phone":        p.Phone,
		"city":         p.City,
		"brandName":    p.BrandName,
		"website":      p.Website,
		"businessType": p.BusinessType,
		"budget":       p.Budget,
		"bestTime":     p.BestTime,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidLead, field)
		}
	}
	if len(p.Services) == 0 {
		return fmt.Errorf("%w: services must have at least one entry", ErrInvalidLead)
	}
	return nil
}

// Create writes one immutable lead record. The creation timestamp is assigned
// by the database.
func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	if err := params.validate(); err != nil {
		return Lead{}, err
	}

	var lead Lead
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			full_name, email, phone, city, brand_name, website,
			business_type, services, budget, best_time, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, full_name, email, phone, city, brand_name, website,
			business_type, services, budget, best_time, notes, created_at
	`,
		params.FullName, params.Email, params.Phone, params.City, params.BrandName, params.Website,
		params.BusinessType, params.Services, params.Budget, params.BestTime, params.Notes,
	).Scan(
		&lead.ID, &lead.FullName, &lead.Email, &lead.Phone, &lead.City, &lead.BrandName, &lead.Website,
		&lead.BusinessType, &lead.Services, &lead.Budget, &lead.BestTime, &lead.Notes,
		&lead.CreatedAt,
	)
	if err != nil {
		return Lead{}, err
	}

	return lead, nil
}

// GetByID returns a lead by its identifier. It exists for operability and
// testing; no HTTP route exposes it.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, phone, city, brand_name, website,
			business_type, services, budget, best_time, notes, created_at
		FROM leads WHERE id = $1
	`, id).Scan(
		&lead.ID, &lead.FullName, &lead.Email, &lead.Phone, &lead.City, &lead.BrandName, &lead.Website,
		&lead.BusinessType, &lead.Services, &lead.Budget, &lead.BestTime, &lead.Notes,
		&lead.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}
