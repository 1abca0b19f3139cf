package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	movementRepo portsrepo.MovementReader
	cashFlowOpts statements.CashFlowOptions
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithCashFlowOptions sets the opening bank and cash balances used by the cash flow statements.
func WithCashFlowOptions(opts statements.CashFlowOptions) ReportingServiceOption {
	return func(s *reportingService) {
		s.cashFlowOpts = opts
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accountRepo portsrepo.AccountReader, movementRepo portsrepo.MovementReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		cashFlowOpts: statements.DefaultCashFlowOptions(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates the trial balance for a period
func (s *reportingService) TrialBalance(ctx context.Context, period domain.Period) (*domain.TrialBalanceReport, error) {
	accounts, movements, err := s.load(ctx, "trial_balance", period)
	if err != nil {
		return nil, err
	}
	report := statements.ComputeTrialBalance(accounts, movements, period)
	s.logGenerated(ctx, "trial_balance", period, report.Warnings, slog.Bool("balanced", report.Balanced))
	return report, nil
}

// BalanceSheet generates the balance sheet for a period.
// When the ledger does not balance, the uncorrected report is returned together with the error.
func (s *reportingService) BalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheetReport, error) {
	accounts, movements, err := s.load(ctx, "balance_sheet", period)
	if err != nil {
		return nil, err
	}

	report, err := statements.ComputeBalanceSheet(accounts, movements, period)
	var inconsistent *statements.ConsistencyError
	if errors.As(err, &inconsistent) {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("period", period.String()),
			slog.String("total_assets", inconsistent.TotalAssets.String()),
			slog.String("total_liabilities_and_equity", inconsistent.TotalLiabilitiesAndEquity.String()),
			slog.String("difference", inconsistent.Difference().String()))
		return report, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance sheet", slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to compute balance sheet: %w", err)
	}

	s.logGenerated(ctx, "balance_sheet", period, report.Warnings)
	return report, nil
}

// IncomeStatement generates the income statement for a period
func (s *reportingService) IncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatementReport, error) {
	accounts, movements, err := s.load(ctx, "income_statement", period)
	if err != nil {
		return nil, err
	}
	report := statements.ComputeIncomeStatement(accounts, movements, period)
	s.logGenerated(ctx, "income_statement", period, report.Warnings, slog.String("period_result", report.PeriodResult.String()))
	return report, nil
}

// EquityChanges generates the statement of changes in equity for a period
func (s *reportingService) EquityChanges(ctx context.Context, period domain.Period) (*domain.EquityChangesReport, error) {
	accounts, movements, err := s.load(ctx, "equity_changes", period)
	if err != nil {
		return nil, err
	}
	report := statements.ComputeEquityChanges(accounts, movements, period)
	s.logGenerated(ctx, "equity_changes", period, report.Warnings)
	return report, nil
}

// CashFlowIndirect generates the indirect-method cash flow statement for a period
func (s *reportingService) CashFlowIndirect(ctx context.Context, period domain.Period) (*domain.CashFlowIndirectReport, error) {
	accounts, movements, err := s.load(ctx, "cash_flow_indirect", period)
	if err != nil {
		return nil, err
	}
	report := statements.ComputeCashFlowIndirect(accounts, movements, period, s.cashFlowOpts)
	s.logGenerated(ctx, "cash_flow_indirect", period, report.Warnings, slog.String("net_cash_change", report.NetCashChange.String()))
	return report, nil
}

// CashFlowDirect generates the direct-method cash flow statement for a period
func (s *reportingService) CashFlowDirect(ctx context.Context, period domain.Period) (*domain.CashFlowDirectReport, error) {
	accounts, movements, err := s.load(ctx, "cash_flow_direct", period)
	if err != nil {
		return nil, err
	}
	report := statements.ComputeCashFlowDirect(accounts, movements, period, s.cashFlowOpts)
	s.logGenerated(ctx, "cash_flow_direct", period, report.Warnings, slog.String("net_cash_change", report.NetCashChange.String()))
	return report, nil
}

// JournalBook generates the journal book for a period
func (s *reportingService) JournalBook(ctx context.Context, period domain.Period) (*domain.JournalBookReport, error) {
	accounts, movements, err := s.load(ctx, "journal_book", period)
	if err != nil {
		return nil, err
	}
	report := statements.ComputeJournalBook(accounts, movements, period)
	s.logGenerated(ctx, "journal_book", period, report.Warnings, slog.Int("entries", len(report.Entries)))
	return report, nil
}

// GeneralLedger generates the general ledger for a period
func (s *reportingService) GeneralLedger(ctx context.Context, period domain.Period) (*domain.GeneralLedgerReport, error) {
	accounts, movements, err := s.load(ctx, "general_ledger", period)
	if err != nil {
		return nil, err
	}
	report := statements.ComputeGeneralLedger(accounts, movements, period)
	s.logGenerated(ctx, "general_ledger", period, report.Warnings, slog.Int("accounts", len(report.Accounts)))
	return report, nil
}

// load reads the chart and the period's movements, and logs integrity problems it notices on the way.
func (s *reportingService) load(ctx context.Context, report string, period domain.Period) ([]domain.Account, []domain.Movement, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts", slog.String("report", report))
		return nil, nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	movements, _, err := s.movementRepo.ListMovements(ctx, domain.MovementFilter{Period: &period})
	if err != nil {
		s.LogError(ctx, err, "Failed to load movements", slog.String("report", report), slog.String("period", period.String()))
		return nil, nil, fmt.Errorf("failed to load movements: %w", err)
	}

	if unbalanced := statements.UnbalancedEntries(movements); len(unbalanced) > 0 {
		s.LogWarn(ctx, "Ledger holds unbalanced entries", slog.String("report", report), slog.Any("entry_numbers", unbalanced))
	}
	if n := statements.DetectOpeningEntries(movements); n > 1 {
		s.LogWarn(ctx, "Ledger holds more than one opening entry", slog.String("report", report), slog.Int("count", n))
	}

	return accounts, movements, nil
}

func (s *reportingService) logGenerated(ctx context.Context, report string, period domain.Period, warnings []domain.Warning, extra ...any) {
	for _, w := range warnings {
		s.LogWarn(ctx, w.Message, slog.String("report", report), slog.Int64("account_id", w.AccountID))
	}
	args := append([]any{
		slog.String("report", report),
		slog.String("period", period.String()),
		slog.Int("warnings", len(warnings)),
	}, extra...)
	s.LogInfo(ctx, "Report generated successfully", args...)
}
