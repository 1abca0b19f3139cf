package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance lists raw debit and credit totals per account for the period.
	TrialBalance(ctx context.Context, period domain.Period) (*domain.TrialBalanceReport, error)

	// BalanceSheet classifies balances and checks assets against liabilities plus equity.
	// An inconsistent ledger yields an error matching apperrors.ErrLedgerInconsistent.
	BalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheetReport, error)

	// IncomeStatement derives gross profit and the period result.
	IncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatementReport, error)

	// EquityChanges builds the statement of changes in stockholders' equity.
	EquityChanges(ctx context.Context, period domain.Period) (*domain.EquityChangesReport, error)

	// CashFlowIndirect builds the indirect-method statement of cash flows.
	CashFlowIndirect(ctx context.Context, period domain.Period) (*domain.CashFlowIndirectReport, error)

	// CashFlowDirect builds the direct-method statement of cash flows.
	CashFlowDirect(ctx context.Context, period domain.Period) (*domain.CashFlowDirectReport, error)

	// JournalBook lists the period's entries in entry-number order.
	JournalBook(ctx context.Context, period domain.Period) (*domain.JournalBookReport, error)

	// GeneralLedger groups the period's movements by account.
	GeneralLedger(ctx context.Context, period domain.Period) (*domain.GeneralLedgerReport, error)
}
