package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// CompanyRepository stores the name of the business the books belong to
type CompanyRepository interface {
	// GetCompany returns apperrors.ErrNotFound until a name has been saved.
	GetCompany(ctx context.Context) (*domain.Company, error)

	// SaveCompany creates or replaces the company record.
	SaveCompany(ctx context.Context, company domain.Company) error
}
