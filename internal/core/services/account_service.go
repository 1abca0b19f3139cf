package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo, now: time.Now}
}

// CreateAccount validates the attribute combination and adds the account to the chart.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	account := domain.Account{
		Name:           strings.TrimSpace(req.Name),
		Class:          req.Class,
		Type:           req.Type,
		CashFlowBucket: req.CashFlowBucket,
		FixedAssetKey:  req.FixedAssetKey,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now(),
			CreatedBy: userID,
		},
	}

	if err := validateAccountAttributes(account); err != nil {
		s.LogWarn(ctx, "Rejected account", slog.String("name", account.Name), slog.String("reason", err.Error()))
		return nil, err
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("name", account.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.Int64("account_id", saved.AccountID), slog.String("class", string(saved.Class)))
	return saved, nil
}

// GetAccountByID retrieves an account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts retrieves the whole chart of accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// validateAccountAttributes rejects attribute combinations the statements cannot place.
func validateAccountAttributes(a domain.Account) error {
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !a.Class.IsValid() {
		return fmt.Errorf("%w: unknown account class '%s'", apperrors.ErrValidation, a.Class)
	}

	if a.Class == domain.Asset && a.Type != domain.TypeCurrent && a.Type != domain.TypeNonCurrent {
		return fmt.Errorf("%w: assets must be %s or %s", apperrors.ErrValidation, domain.TypeCurrent, domain.TypeNonCurrent)
	}

	switch a.Type {
	case domain.TypeNone:
	case domain.TypeCurrent, domain.TypeNonCurrent:
		if a.Class != domain.Asset && a.Class != domain.Liability {
			return fmt.Errorf("%w: type %s only applies to assets and liabilities", apperrors.ErrValidation, a.Type)
		}
	case domain.TypeInitialCapital:
		if a.Class != domain.Equity {
			return fmt.Errorf("%w: type %s only applies to equity", apperrors.ErrValidation, a.Type)
		}
	default:
		return fmt.Errorf("%w: unknown account type '%s'", apperrors.ErrValidation, a.Type)
	}

	if a.CashFlowBucket.IsCash() && a.Class != domain.Asset {
		return fmt.Errorf("%w: only assets can be cash or bank accounts", apperrors.ErrValidation)
	}
	if a.FixedAssetKey != domain.FixedAssetNone && (a.Class != domain.Asset || a.Type != domain.TypeNonCurrent) {
		return fmt.Errorf("%w: fixed asset keys only apply to non-current assets", apperrors.ErrValidation)
	}
	return nil
}
