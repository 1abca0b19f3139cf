package statements_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBalanceSheet_OpeningEntry(t *testing.T) {
	report, err := statements.ComputeBalanceSheet(chart(), openingOnly(), january())
	require.NoError(t, err)

	want := []domain.AccountAmount{{AccountID: bancos, Name: "Bancos", NetAmount: dec("100000")}}
	assert.Empty(t, cmp.Diff(want, report.CurrentAssets, decimalComparer))

	wantEquity := []domain.AccountAmount{
		{AccountID: capitalSocial, Name: "Capital social", NetAmount: dec("100000")},
		{Name: domain.ProfitLabel, NetAmount: dec("0")},
	}
	assert.Empty(t, cmp.Diff(wantEquity, report.Equity, decimalComparer))
	assert.True(t, report.TotalAssets.Equal(dec("100000")))
	assert.True(t, report.TotalLiabilitiesAndEquity.Equal(dec("100000")))
}

func TestComputeBalanceSheet_AccountingEquationHolds(t *testing.T) {
	for name, movements := range map[string][]domain.Movement{
		"opening":   openingOnly(),
		"trading":   tradingMonth(),
		"investing": investingMonth(),
	} {
		t.Run(name, func(t *testing.T) {
			report, err := statements.ComputeBalanceSheet(chart(), movements, january())
			require.NoError(t, err)
			diff := report.TotalAssets.Sub(report.TotalLiabilitiesAndEquity).Abs()
			assert.True(t, diff.LessThan(dec("0.01")), "difference %s", diff)
		})
	}
}

func TestComputeBalanceSheet_TradingMonth(t *testing.T) {
	report, err := statements.ComputeBalanceSheet(chart(), tradingMonth(), january())
	require.NoError(t, err)

	assert.True(t, report.TotalCurrentAssets.Equal(dec("102000")))
	assert.True(t, report.PeriodResult.Equal(dec("2000")))
	assert.True(t, report.TotalEquity.Equal(dec("102000")))
	last := report.Equity[len(report.Equity)-1]
	assert.Equal(t, domain.ProfitLabel, last.Name)
	assert.Equal(t, int64(0), last.AccountID)
}

func TestComputeBalanceSheet_NonCurrentOrdering(t *testing.T) {
	l := &ledgerBuilder{}
	l.post(day(1), domain.OpeningEntryDescription, bancos, capitalSocial, "500000").
		post(day(2), "Marca registrada", marcas, bancos, "7000").
		post(day(3), "Compra de equipo", equipoComputo, bancos, "30000").
		post(day(4), "Compra de terreno", terrenos, bancos, "80000").
		post(day(5), "Compra de edificio", edificios, bancos, "200000").
		// Moved but netting to zero: must not be listed.
		post(day(6), "Ajuste", depAcumEdif, bancos, "100").
		post(day(7), "Reverso de ajuste", bancos, depAcumEdif, "100")

	report, err := statements.ComputeBalanceSheet(chart(), l.movements, january())
	require.NoError(t, err)

	var names []string
	for _, a := range report.NonCurrentAssets {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Terrenos", "Edificios", "Equipo de computo", "Marcas"}, names)
	assert.True(t, report.TotalNonCurrentAssets.Equal(dec("317000")))
}

func TestComputeBalanceSheet_ZeroDepreciationAbsent(t *testing.T) {
	report, err := statements.ComputeBalanceSheet(chart(), tradingMonth(), january())
	require.NoError(t, err)
	for _, a := range report.NonCurrentAssets {
		assert.NotEqual(t, "Depreciación acumulada (edificios)", a.Name)
	}
}

func TestComputeBalanceSheet_InconsistencyIsReported(t *testing.T) {
	l := &ledgerBuilder{}
	l.post(day(1), domain.OpeningEntryDescription, bancos, capitalSocial, "1000").
		post(day(2), "orphan", missingAccount, bancos, "10")

	report, err := statements.ComputeBalanceSheet(chart(), l.movements, january())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrLedgerInconsistent))
	var ce *statements.ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.True(t, ce.Difference().Equal(dec("-10")))

	require.NotNil(t, report)
	assert.True(t, report.TotalAssets.Equal(dec("990")), "totals must not be corrected")
	assert.True(t, report.TotalLiabilitiesAndEquity.Equal(dec("1000")))
	assert.Len(t, report.Warnings, 1)
}

func TestComputeBalanceSheet_ToleranceBoundary(t *testing.T) {
	tests := []struct {
		orphan  string
		wantErr bool
	}{
		{"0.01", false},
		{"0.011", true},
		{"0.02", true},
	}
	for _, tt := range tests {
		t.Run(tt.orphan, func(t *testing.T) {
			l := &ledgerBuilder{}
			l.post(day(1), domain.OpeningEntryDescription, bancos, capitalSocial, "1000").
				post(day(2), "orphan", missingAccount, bancos, tt.orphan)

			report, err := statements.ComputeBalanceSheet(chart(), l.movements, january())
			require.NotNil(t, report)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrLedgerInconsistent)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestComputeBalanceSheet_Idempotent(t *testing.T) {
	accounts := chart()
	movements := investingMonth()
	accountsBefore := append([]domain.Account(nil), accounts...)
	movementsBefore := append([]domain.Movement(nil), movements...)

	first, err := statements.ComputeBalanceSheet(accounts, movements, january())
	require.NoError(t, err)
	second, err := statements.ComputeBalanceSheet(accounts, movements, january())
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second, decimalComparer))
	assert.Empty(t, cmp.Diff(accountsBefore, accounts))
	assert.Empty(t, cmp.Diff(movementsBefore, movements, decimalComparer))
}
