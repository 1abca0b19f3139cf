package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// CompanySvc manages the company name printed on reports
type CompanySvc interface {
	// GetCompany returns the stored company, or an empty one if none was saved.
	GetCompany(ctx context.Context) (*domain.Company, error)

	// SetCompanyName stores the company name.
	SetCompanyName(ctx context.Context, name string, userID string) (*domain.Company, error)
}
