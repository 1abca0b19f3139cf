package services_test

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockMovementRepository is a mock type for the MovementRepositoryFacade interface
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, *string, error) {
	args := m.Called(ctx, filter)
	var movements []domain.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.Movement)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return movements, token, args.Error(2)
}

func (m *MockMovementRepository) NextEntryNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) OpeningEntryExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovementRepository) AppendEntry(ctx context.Context, header domain.EntryHeader, lines []domain.EntryLine, opening bool) ([]domain.Movement, error) {
	args := m.Called(ctx, header, lines, opening)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

// MockCompanyRepository is a mock type for the CompanyRepository interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) GetCompany(ctx context.Context) (*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// storedMovements mimics what the repository returns after AppendEntry.
func storedMovements(header domain.EntryHeader, lines []domain.EntryLine, entryNumber int64) []domain.Movement {
	out := make([]domain.Movement, len(lines))
	for i, l := range lines {
		out[i] = domain.Movement{
			MovementID:  int64(i + 1),
			AccountID:   l.AccountID,
			Date:        header.Date,
			Description: header.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			EntryNumber: entryNumber,
			AuditFields: header.AuditFields,
		}
	}
	return out
}
