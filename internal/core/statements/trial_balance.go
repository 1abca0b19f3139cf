package statements

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeTrialBalance lists raw debit and credit totals for every account moved in the period.
// Unknown accounts are included under domain.UnknownAccountName.
func ComputeTrialBalance(accounts []domain.Account, movements []domain.Movement, period domain.Period) *domain.TrialBalanceReport {
	return trialBalanceFrom(AggregateBalances(NewCatalog(accounts), movements, period))
}

func trialBalanceFrom(b *Balances) *domain.TrialBalanceReport {
	report := &domain.TrialBalanceReport{
		Period:       b.Period,
		Rows:         []domain.TrialBalanceRow{},
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		TotalBalance: decimal.Zero,
		Warnings:     copyWarnings(b.Warnings),
	}
	for _, r := range b.All() {
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:   r.AccountID,
			AccountName: r.Name(),
			Known:       r.Known,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Balance:     r.Raw(),
		})
		report.TotalDebit = report.TotalDebit.Add(r.Debit)
		report.TotalCredit = report.TotalCredit.Add(r.Credit)
	}
	report.TotalBalance = report.TotalDebit.Sub(report.TotalCredit)
	report.Balanced = report.TotalDebit.Equal(report.TotalCredit)
	return report
}
