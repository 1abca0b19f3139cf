package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// companyRowID is the primary key of the only company row.
const companyRowID = 1

type PgxCompanyRepository struct {
	pool *pgxpool.Pool
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepository {
	return &PgxCompanyRepository{pool: pool}
}

var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

// GetCompany returns the company record.
func (r *PgxCompanyRepository) GetCompany(ctx context.Context) (*domain.Company, error) {
	query := `SELECT name, created_at, created_by FROM company WHERE company_id = $1;`

	rows, err := r.pool.Query(ctx, query, companyRowID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}

// SaveCompany creates the company row or replaces its name.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO company (company_id, name, created_at, created_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id) DO UPDATE SET name = EXCLUDED.name;
	`
	if _, err := r.pool.Exec(ctx, query, companyRowID, m.Name, m.CreatedAt, m.CreatedBy); err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}
