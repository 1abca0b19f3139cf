package statements

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Row concepts of the statement of changes in equity.
const (
	ConceptOpeningBalance = "Saldo inicial"
	ConceptCapitalStock   = "Capital social"
	ConceptLegalReserve   = "Reserva legal"
	ConceptShareIssuance  = "Emisión de acciones"
	ConceptSharePremium   = "Primas de acciones"
	ConceptPeriodResult   = "Resultado del ejercicio"
	ConceptDividends      = "Decreto de dividendos"
	ConceptPartnerRefunds = "Reembolso a socios"
	ConceptIncreasesTotal = "Total de aumentos"
	ConceptDecreasesTotal = "Saldo final"
)

var (
	legalReserveRate   = decimal.NewFromFloat(0.05)
	legalReserveMonths = decimal.NewFromInt(12)
)

// LegalReserve is periodResult x 0.05 / 12, kept at full precision.
func LegalReserve(periodResult decimal.Decimal) decimal.Decimal {
	return periodResult.Mul(legalReserveRate).Div(legalReserveMonths)
}

// ComputeEquityChanges builds the statement of changes in stockholders' equity with
// contributed, earned and total columns.
func ComputeEquityChanges(accounts []domain.Account, movements []domain.Movement, period domain.Period) *domain.EquityChangesReport {
	return equityChangesFrom(AggregateBalances(NewCatalog(accounts), movements, period))
}

func equityChangesFrom(b *Balances) *domain.EquityChangesReport {
	opening, other := decimal.Zero, decimal.Zero
	var openingRows []domain.EquityChangesRow
	for _, r := range b.Class(domain.Equity) {
		if r.Account.Type == domain.TypeInitialCapital {
			opening = opening.Add(r.Net)
			openingRows = append(openingRows, flatRow(r.Name(), r.Net))
			continue
		}
		other = other.Add(r.Net)
	}
	openingRows = append(openingRows, flatRow(ConceptOpeningBalance, opening))

	result := incomeStatementFrom(b).PeriodResult
	reserve := LegalReserve(result)
	zero := decimal.Zero

	contributed := opening.Add(other)
	earned := opening.Add(reserve).Add(result)
	total := opening.Add(other).Add(reserve).Add(result)

	return &domain.EquityChangesReport{
		Period:      b.Period,
		OpeningRows: openingRows,
		Increases: []domain.EquityChangesRow{
			{Concept: ConceptCapitalStock, Contributed: other, Earned: zero, Total: other},
			{Concept: ConceptLegalReserve, Contributed: zero, Earned: reserve, Total: reserve},
			flatRow(ConceptShareIssuance, zero),
			flatRow(ConceptSharePremium, zero),
			{Concept: ConceptPeriodResult, Contributed: zero, Earned: result, Total: result},
		},
		IncreasesTotal: domain.EquityChangesRow{Concept: ConceptIncreasesTotal, Contributed: contributed, Earned: earned, Total: total},
		Decreases: []domain.EquityChangesRow{
			flatRow(ConceptDividends, zero),
			{Concept: ConceptLegalReserve, Contributed: zero, Earned: reserve, Total: reserve},
			flatRow(ConceptPartnerRefunds, zero),
		},
		DecreasesTotal: domain.EquityChangesRow{
			Concept:     ConceptDecreasesTotal,
			Contributed: contributed,
			Earned:      earned.Sub(reserve),
			Total:       total.Sub(reserve),
		},
		OpeningCapital: opening,
		TotalCapital:   other,
		LegalReserve:   reserve,
		PeriodResult:   result,
		Warnings:       copyWarnings(b.Warnings),
	}
}

func flatRow(concept string, v decimal.Decimal) domain.EquityChangesRow {
	return domain.EquityChangesRow{Concept: concept, Contributed: v, Earned: v, Total: v}
}
