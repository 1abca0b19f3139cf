package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepository
	now         func() time.Time
}

// NewCompanyService creates a new company service
func NewCompanyService(repo portsrepo.CompanyRepository) portssvc.CompanySvc {
	return &companyService{companyRepo: repo, now: time.Now}
}

// GetCompany returns the stored company, or an unnamed one before a name is set.
func (s *companyService) GetCompany(ctx context.Context) (*domain.Company, error) {
	company, err := s.companyRepo.GetCompany(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.Company{}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load company")
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	return company, nil
}

// SetCompanyName stores the name printed on every report header.
func (s *companyService) SetCompanyName(ctx context.Context, name string, userID string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	company := domain.Company{
		Name:        name,
		AuditFields: domain.AuditFields{CreatedAt: s.now(), CreatedBy: userID},
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", name))
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	s.LogInfo(ctx, "Company name updated", slog.String("name", name))
	return &company, nil
}
