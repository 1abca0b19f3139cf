package statements

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashFlowOptions carries the figures the ledger cannot derive on its own.
type CashFlowOptions struct {
	OpeningBank decimal.Decimal
	OpeningCash decimal.Decimal
}

// DefaultCashFlowOptions returns the opening balances used when none are configured.
func DefaultCashFlowOptions() CashFlowOptions {
	return CashFlowOptions{
		OpeningBank: decimal.NewFromInt(100000),
		OpeningCash: decimal.NewFromInt(50000),
	}
}

// ComputeCashFlowIndirect starts from the period result, adds back depreciation and
// financing, and subtracts cash applied. Bucket amounts use the raw Debit - Credit
// balance of each tagged account.
func ComputeCashFlowIndirect(accounts []domain.Account, movements []domain.Movement, period domain.Period, opts CashFlowOptions) *domain.CashFlowIndirectReport {
	return cashFlowIndirectFrom(AggregateBalances(NewCatalog(accounts), movements, period), opts)
}

// ComputeCashFlowDirect presents operations as receipts and payments. Every derived
// total matches ComputeCashFlowIndirect for the same inputs.
func ComputeCashFlowDirect(accounts []domain.Account, movements []domain.Movement, period domain.Period, opts CashFlowOptions) *domain.CashFlowDirectReport {
	return cashFlowDirectFrom(AggregateBalances(NewCatalog(accounts), movements, period), opts)
}

type operatingFlows struct {
	depreciation      []domain.CashFlowLine
	totalDepreciation decimal.Decimal
	fromOperations    decimal.Decimal
}

func operatingFrom(b *Balances, result decimal.Decimal) operatingFlows {
	rows := b.Bucket(domain.BucketDepreciation)
	lines := make([]domain.CashFlowLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, domain.CashFlowLine{AccountID: r.AccountID, Name: r.Name(), Amount: r.Raw().Neg()})
	}
	total := sumRaw(rows).Neg()
	return operatingFlows{
		depreciation:      lines,
		totalDepreciation: total,
		fromOperations:    total.Add(result),
	}
}

func summaryFrom(b *Balances, fromOperations decimal.Decimal, opts CashFlowOptions) domain.CashFlowSummary {
	financing := b.Bucket(domain.BucketFinancing)
	applications := b.Bucket(domain.BucketApplication)

	s := domain.CashFlowSummary{
		Financing:         make([]domain.CashFlowLine, 0, len(financing)),
		TotalFinancing:    sumRaw(financing).Neg(),
		Applications:      make([]domain.CashFlowLine, 0, len(applications)),
		TotalApplications: sumRaw(applications),
		OpeningBank:       opts.OpeningBank,
		EndingBank:        sumRaw(b.Bucket(domain.BucketCashBank)),
		OpeningCash:       opts.OpeningCash,
		EndingCash:        sumRaw(b.Bucket(domain.BucketCashOnHand)),
	}
	for _, r := range financing {
		s.Financing = append(s.Financing, domain.CashFlowLine{AccountID: r.AccountID, Name: r.Name(), Amount: r.Raw().Abs()})
	}
	for _, r := range applications {
		s.Applications = append(s.Applications, domain.CashFlowLine{AccountID: r.AccountID, Name: r.Name(), Amount: r.Raw()})
	}
	s.TotalSources = fromOperations.Add(s.TotalFinancing)
	s.NetCashChange = s.TotalSources.Sub(s.TotalApplications)
	s.EndingCashAndEquivalents = s.EndingBank.Add(s.EndingCash)
	return s
}

func cashFlowIndirectFrom(b *Balances, opts CashFlowOptions) *domain.CashFlowIndirectReport {
	result := incomeStatementFrom(b).PeriodResult
	ops := operatingFrom(b, result)
	return &domain.CashFlowIndirectReport{
		Period:                 b.Period,
		PeriodResult:           result,
		IncomeTaxProvision:     decimal.Zero,
		ProfitSharingProvision: decimal.Zero,
		Depreciation:           ops.depreciation,
		TotalDepreciation:      ops.totalDepreciation,
		CashFromOperations:     ops.fromOperations,
		CashFlowSummary:        summaryFrom(b, ops.fromOperations, opts),
		Warnings:               copyWarnings(b.Warnings),
	}
}

func cashFlowDirectFrom(b *Balances, opts CashFlowOptions) *domain.CashFlowDirectReport {
	income := incomeStatementFrom(b)
	ops := operatingFrom(b, income.PeriodResult)

	// Depreciation is expensed without paying cash.
	expensePayments := income.TotalOperatingExpense.Sub(ops.totalDepreciation)

	report := &domain.CashFlowDirectReport{
		Period:            b.Period,
		OperatingReceipts: income.TotalRevenue,
		CostPayments:      income.TotalCost,
		ExpensePayments:   expensePayments,
		TaxesPaid:         decimal.Zero,
		Warnings:          copyWarnings(b.Warnings),
	}
	report.CashFromOperations = report.OperatingReceipts.
		Sub(report.CostPayments).
		Sub(report.ExpensePayments).
		Sub(report.TaxesPaid)
	report.CashFlowSummary = summaryFrom(b, report.CashFromOperations, opts)
	return report
}
