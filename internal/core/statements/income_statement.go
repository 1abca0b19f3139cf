package statements

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// ComputeIncomeStatement derives revenue, cost, gross profit, operating expense and
// the period result. A negative result is kept negative and reported as a loss.
func ComputeIncomeStatement(accounts []domain.Account, movements []domain.Movement, period domain.Period) *domain.IncomeStatementReport {
	return incomeStatementFrom(AggregateBalances(NewCatalog(accounts), movements, period))
}

func incomeStatementFrom(b *Balances) *domain.IncomeStatementReport {
	revenue := b.Class(domain.Revenue)
	costs := b.Class(domain.Cost)
	expenses := b.Class(domain.Expense)

	report := &domain.IncomeStatementReport{
		Period:                b.Period,
		Revenue:               toAmounts(revenue),
		Costs:                 toAmounts(costs),
		Expenses:              toAmounts(expenses),
		TotalRevenue:          sumNet(revenue),
		TotalCost:             sumNet(costs),
		TotalOperatingExpense: sumNet(expenses),
		Warnings:              copyWarnings(b.Warnings),
	}
	report.GrossProfit = report.TotalRevenue.Sub(report.TotalCost)
	report.PeriodResult = report.GrossProfit.Sub(report.TotalOperatingExpense)
	report.IsProfit = !report.PeriodResult.IsNegative()
	return report
}
