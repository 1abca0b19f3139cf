package statements

import (
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeJournalBook groups the period's movements into entries ordered by entry number.
// Entry date and description come from the entry's first line.
func ComputeJournalBook(accounts []domain.Account, movements []domain.Movement, period domain.Period) *domain.JournalBookReport {
	catalog := NewCatalog(accounts)
	lines := movementsIn(movements, period)
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].EntryNumber != lines[j].EntryNumber {
			return lines[i].EntryNumber < lines[j].EntryNumber
		}
		return lines[i].MovementID < lines[j].MovementID
	})

	report := &domain.JournalBookReport{
		Period:      period,
		Entries:     []domain.JournalEntry{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Warnings:    unknownAccountWarnings(catalog, lines),
	}
	for _, m := range lines {
		n := len(report.Entries)
		if n == 0 || report.Entries[n-1].EntryNumber != m.EntryNumber {
			report.Entries = append(report.Entries, domain.JournalEntry{
				EntryNumber: m.EntryNumber,
				Date:        m.Date,
				Description: m.Description,
				Lines:       []domain.JournalLine{},
				TotalDebit:  decimal.Zero,
				TotalCredit: decimal.Zero,
			})
			n++
		}
		e := &report.Entries[n-1]
		e.Lines = append(e.Lines, domain.JournalLine{
			AccountID:   m.AccountID,
			AccountName: catalog.Name(m.AccountID),
			Debit:       m.Debit,
			Credit:      m.Credit,
		})
		e.TotalDebit = e.TotalDebit.Add(m.Debit)
		e.TotalCredit = e.TotalCredit.Add(m.Credit)
		report.TotalDebit = report.TotalDebit.Add(m.Debit)
		report.TotalCredit = report.TotalCredit.Add(m.Credit)
	}
	return report
}

// UnbalancedEntries returns the entry numbers whose debits and credits differ.
func UnbalancedEntries(movements []domain.Movement) []int64 {
	type totals struct{ debit, credit decimal.Decimal }
	byEntry := make(map[int64]*totals)
	for _, m := range movements {
		t, ok := byEntry[m.EntryNumber]
		if !ok {
			t = &totals{decimal.Zero, decimal.Zero}
			byEntry[m.EntryNumber] = t
		}
		t.debit = t.debit.Add(m.Debit)
		t.credit = t.credit.Add(m.Credit)
	}
	var out []int64
	for n, t := range byEntry {
		if !t.debit.Equal(t.credit) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DetectOpeningEntries counts the distinct entries described as the opening entry.
// A healthy ledger has zero or one.
func DetectOpeningEntries(movements []domain.Movement) int {
	seen := make(map[int64]bool)
	for _, m := range movements {
		if m.IsOpening() {
			seen[m.EntryNumber] = true
		}
	}
	return len(seen)
}

func movementsIn(movements []domain.Movement, period domain.Period) []domain.Movement {
	out := make([]domain.Movement, 0, len(movements))
	for _, m := range movements {
		if period.Contains(m.Date) {
			out = append(out, m)
		}
	}
	return out
}
