package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const defaultMovementPageSize = 100

// movementService implements the MovementSvcFacade interface
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryFacade
	accountRepo  portsrepo.AccountReader
	companyRepo  portsrepo.CompanyRepository
	now          func() time.Time

	// mu serialises writes from this process; the repository serialises across processes.
	mu    sync.Mutex
	guard *accounting.OpeningEntryGuard
}

// MovementServiceOption is a functional option for configuring the movement service
type MovementServiceOption func(*movementService)

// WithCompanyRepository lets the opening entry store the company name it carries.
func WithCompanyRepository(repo portsrepo.CompanyRepository) MovementServiceOption {
	return func(s *movementService) {
		s.companyRepo = repo
	}
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) MovementServiceOption {
	return func(s *movementService) {
		s.now = now
	}
}

// NewMovementService creates a new movement service with the provided options
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, accountRepo portsrepo.AccountReader, options ...MovementServiceOption) portssvc.MovementSvcFacade {
	svc := &movementService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// PostEntry validates and stores a regular entry.
func (s *movementService) PostEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) ([]domain.Movement, error) {
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if description == domain.OpeningEntryDescription {
		return nil, fmt.Errorf("%w: description %q is reserved for the opening entry", apperrors.ErrValidation, description)
	}

	lines := make([]domain.EntryLine, len(req.Lines))
	accountIDs := make([]int64, len(req.Lines))
	for i, l := range req.Lines {
		line := domain.EntryLine{AccountID: l.AccountID, Debit: decimal.Zero, Credit: decimal.Zero}
		switch l.Side {
		case domain.Debit:
			line.Debit = l.Amount
		case domain.Credit:
			line.Credit = l.Amount
		default:
			return nil, fmt.Errorf("%w: line %d has unknown side '%s'", apperrors.ErrValidation, i+1, l.Side)
		}
		lines[i] = line
		accountIDs[i] = l.AccountID
	}

	if err := accounting.ValidateEntry(lines); err != nil {
		s.LogWarn(ctx, "Rejected entry", slog.String("description", description), slog.String("reason", err.Error()))
		return nil, err
	}
	if _, err := s.requireAccounts(ctx, accountIDs); err != nil {
		return nil, err
	}

	header := domain.EntryHeader{
		Date:        date,
		Description: description,
		AuditFields: domain.AuditFields{CreatedAt: s.now(), CreatedBy: userID},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	movements, err := s.movementRepo.AppendEntry(ctx, header, lines, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to store entry", slog.String("description", description))
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	s.LogInfo(ctx, "Entry posted", slog.Int64("entry_number", movements[0].EntryNumber), slog.Int("lines", len(movements)))
	return movements, nil
}

// PostOpeningEntry records the initial balances. Assets are debited; liabilities and equity are credited.
func (s *movementService) PostOpeningEntry(ctx context.Context, req dto.CreateOpeningEntryRequest, userID string) ([]domain.Movement, error) {
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	guard, err := s.openingGuard(ctx)
	if err != nil {
		return nil, err
	}
	if guard.State() == accounting.OpeningEntryRecorded {
		return nil, apperrors.ErrOpeningEntryExists
	}

	accountIDs := make([]int64, len(req.Items))
	for i, item := range req.Items {
		accountIDs[i] = item.AccountID
	}
	accounts, err := s.requireAccounts(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.EntryLine, len(req.Items))
	for i, item := range req.Items {
		line := domain.EntryLine{AccountID: item.AccountID, Debit: decimal.Zero, Credit: decimal.Zero}
		switch class := accounts[item.AccountID].Class; class {
		case domain.Asset:
			line.Debit = item.Amount
		case domain.Liability, domain.Equity:
			line.Credit = item.Amount
		default:
			return nil, fmt.Errorf("%w: %s account %d cannot carry an opening balance", apperrors.ErrValidation, class, item.AccountID)
		}
		lines[i] = line
	}

	if err := guard.Check(lines); err != nil {
		s.LogWarn(ctx, "Rejected opening entry", slog.String("reason", err.Error()), slog.String("state", guard.State().String()))
		return nil, err
	}

	header := domain.EntryHeader{
		Date:        date,
		Description: domain.OpeningEntryDescription,
		AuditFields: domain.AuditFields{CreatedAt: s.now(), CreatedBy: userID},
	}
	movements, err := s.movementRepo.AppendEntry(ctx, header, lines, true)
	if errors.Is(err, apperrors.ErrOpeningEntryExists) {
		// Another process recorded it first.
		s.guard = accounting.NewOpeningEntryGuard(true)
		return nil, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to store opening entry")
		return nil, fmt.Errorf("failed to store opening entry: %w", err)
	}
	if err := guard.Accept(lines); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Opening entry recorded", slog.Int("lines", len(movements)))

	if name := strings.TrimSpace(req.CompanyName); name != "" && s.companyRepo != nil {
		company := domain.Company{Name: name, AuditFields: header.AuditFields}
		if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
			// The entry is already committed; the name can be set again later.
			s.LogError(ctx, err, "Failed to save company name with opening entry", slog.String("name", name))
		}
	}

	return movements, nil
}

// ListMovements lists movements by description and/or period.
func (s *movementService) ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	filter := domain.MovementFilter{
		Description: strings.TrimSpace(params.Description),
		AccountID:   params.AccountID,
		Limit:       params.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultMovementPageSize
	}
	if params.NextToken != "" {
		filter.NextToken = &params.NextToken
	}

	switch {
	case params.FromDate != "" && params.ToDate != "":
		period, err := domain.ParsePeriod(params.FromDate, params.ToDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.Period = &period
	case params.FromDate != "" || params.ToDate != "":
		return nil, fmt.Errorf("%w: fromDate and toDate must be given together", apperrors.ErrValidation)
	}

	movements, nextToken, err := s.movementRepo.ListMovements(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements")
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	return &dto.ListMovementsResponse{
		Movements: dto.ToMovementResponses(movements),
		NextToken: nextToken,
	}, nil
}

// NextEntryNumber reports the number the next regular entry would receive.
func (s *movementService) NextEntryNumber(ctx context.Context) (int64, error) {
	next, err := s.movementRepo.NextEntryNumber(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute next entry number")
		return 0, fmt.Errorf("failed to compute next entry number: %w", err)
	}
	return next, nil
}

// OpeningEntryRecorded reports whether the opening entry exists.
func (s *movementService) OpeningEntryRecorded(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard, err := s.openingGuard(ctx)
	if err != nil {
		return false, err
	}
	return guard.State() == accounting.OpeningEntryRecorded, nil
}

// openingGuard lazily starts the guard from the stored ledger. Callers hold s.mu.
func (s *movementService) openingGuard(ctx context.Context) (*accounting.OpeningEntryGuard, error) {
	if s.guard != nil {
		return s.guard, nil
	}
	exists, err := s.movementRepo.OpeningEntryExists(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for the opening entry")
		return nil, fmt.Errorf("failed to check for the opening entry: %w", err)
	}
	s.guard = accounting.NewOpeningEntryGuard(exists)
	return s.guard, nil
}

// requireAccounts loads the referenced accounts and rejects unknown IDs.
func (s *movementService) requireAccounts(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entry accounts")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %d not found", apperrors.ErrValidation, id)
		}
	}
	return accounts, nil
}

func parseEntryDate(raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, raw)
	}
	return date, nil
}
