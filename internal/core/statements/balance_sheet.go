package statements

import (
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
)

// ComputeBalanceSheet classifies period balances into current and non-current assets,
// liabilities and equity, and appends the period result to equity.
//
// When total assets and total liabilities plus equity differ by more than 0.01 the
// report is still returned, together with a *ConsistencyError. The figures are never
// adjusted to hide the difference.
func ComputeBalanceSheet(accounts []domain.Account, movements []domain.Movement, period domain.Period) (*domain.BalanceSheetReport, error) {
	return balanceSheetFrom(AggregateBalances(NewCatalog(accounts), movements, period))
}

func balanceSheetFrom(b *Balances) (*domain.BalanceSheetReport, error) {
	var current, nonCurrent []Balance
	for _, r := range b.Class(domain.Asset) {
		if r.Account.Type == domain.TypeNonCurrent {
			nonCurrent = append(nonCurrent, r)
		} else {
			current = append(current, r)
		}
	}
	liabilities := b.Class(domain.Liability)
	equity := b.Class(domain.Equity)
	result := incomeStatementFrom(b).PeriodResult

	report := &domain.BalanceSheetReport{
		Period:                b.Period,
		CurrentAssets:         toAmounts(current),
		NonCurrentAssets:      orderNonCurrent(nonCurrent),
		Liabilities:           toAmounts(liabilities),
		Equity:                toAmounts(equity),
		PeriodResult:          result,
		TotalCurrentAssets:    sumNet(current),
		TotalNonCurrentAssets: sumNet(nonCurrent),
		TotalLiabilities:      sumNet(liabilities),
		Warnings:              copyWarnings(b.Warnings),
	}
	report.Equity = append(report.Equity, domain.AccountAmount{Name: domain.PeriodResultLabel(result), NetAmount: result})
	report.TotalEquity = sumNet(equity).Add(result)
	report.TotalAssets = report.TotalCurrentAssets.Add(report.TotalNonCurrentAssets)
	report.TotalLiabilitiesAndEquity = report.TotalLiabilities.Add(report.TotalEquity)

	if !accounting.WithinTolerance(report.TotalAssets, report.TotalLiabilitiesAndEquity) {
		return report, &ConsistencyError{
			TotalAssets:               report.TotalAssets,
			TotalLiabilitiesAndEquity: report.TotalLiabilitiesAndEquity,
		}
	}
	return report, nil
}

// orderNonCurrent lists canonical fixed assets first, in canonical order and only when
// their balance reaches 0.01 in absolute value, followed by every other non-current
// asset in account id order. Suppressed canonical accounts still count in the totals.
func orderNonCurrent(rows []Balance) []domain.AccountAmount {
	byKey := make(map[domain.FixedAssetKey][]Balance)
	var others []Balance
	for _, r := range rows {
		if r.Account.FixedAssetKey == domain.FixedAssetNone {
			others = append(others, r)
			continue
		}
		byKey[r.Account.FixedAssetKey] = append(byKey[r.Account.FixedAssetKey], r)
	}

	out := make([]domain.AccountAmount, 0, len(rows))
	seen := make(map[domain.FixedAssetKey]bool, len(domain.CanonicalFixedAssetOrder))
	for _, key := range domain.CanonicalFixedAssetOrder {
		seen[key] = true
		for _, r := range byKey[key] {
			if r.Net.Abs().LessThan(accounting.Tolerance()) {
				continue
			}
			out = append(out, domain.AccountAmount{AccountID: r.AccountID, Name: r.Name(), NetAmount: r.Net})
		}
	}
	// Keys outside the canonical list are treated like untagged accounts.
	for key, rs := range byKey {
		if !seen[key] {
			others = append(others, rs...)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].AccountID < others[j].AccountID })
	return append(out, toAmounts(others)...)
}
