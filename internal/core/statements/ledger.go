package statements

import (
	"fmt"
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeGeneralLedger groups the period's movements by account. The closing balance
// lands on the debit side when debits exceed credits and on the credit side otherwise.
func ComputeGeneralLedger(accounts []domain.Account, movements []domain.Movement, period domain.Period) *domain.GeneralLedgerReport {
	catalog := NewCatalog(accounts)
	lines := movementsIn(movements, period)
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.EntryNumber != b.EntryNumber {
			return a.EntryNumber < b.EntryNumber
		}
		return a.MovementID < b.MovementID
	})

	report := &domain.GeneralLedgerReport{
		Period:   period,
		Accounts: []domain.LedgerAccount{},
		Warnings: unknownAccountWarnings(catalog, lines),
	}
	for _, m := range lines {
		n := len(report.Accounts)
		if n == 0 || report.Accounts[n-1].AccountID != m.AccountID {
			acc, _ := catalog.Lookup(m.AccountID)
			report.Accounts = append(report.Accounts, domain.LedgerAccount{
				AccountID:   m.AccountID,
				AccountName: catalog.Name(m.AccountID),
				Class:       acc.Class,
				Lines:       []domain.LedgerLine{},
				TotalDebit:  decimal.Zero,
				TotalCredit: decimal.Zero,
			})
			n++
		}
		a := &report.Accounts[n-1]
		a.Lines = append(a.Lines, domain.LedgerLine{
			MovementID:  m.MovementID,
			Date:        m.Date,
			EntryNumber: m.EntryNumber,
			Description: m.Description,
			Debit:       m.Debit,
			Credit:      m.Credit,
		})
		a.TotalDebit = a.TotalDebit.Add(m.Debit)
		a.TotalCredit = a.TotalCredit.Add(m.Credit)
	}

	for i := range report.Accounts {
		a := &report.Accounts[i]
		diff := a.TotalDebit.Sub(a.TotalCredit)
		a.DebitBalance, a.CreditBalance = decimal.Zero, decimal.Zero
		if diff.IsPositive() {
			a.DebitBalance = diff
		} else {
			a.CreditBalance = diff.Neg()
		}
	}
	return report
}

func unknownAccountWarnings(catalog *Catalog, lines []domain.Movement) []domain.Warning {
	warned := make(map[int64]bool)
	out := []domain.Warning{}
	for _, m := range lines {
		if _, ok := catalog.Lookup(m.AccountID); ok || warned[m.AccountID] {
			continue
		}
		warned[m.AccountID] = true
		out = append(out, domain.Warning{
			AccountID: m.AccountID,
			Message:   fmt.Sprintf("movements reference account %d which is not in the catalog", m.AccountID),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}
