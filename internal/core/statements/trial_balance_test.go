package statements_test

import (
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrialBalance_OpeningEntry(t *testing.T) {
	report := statements.ComputeTrialBalance(chart(), openingOnly(), january())

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Bancos", report.Rows[0].AccountName)
	assert.True(t, report.Rows[0].Balance.Equal(dec("100000")))
	assert.Equal(t, "Capital social", report.Rows[1].AccountName)
	assert.True(t, report.Rows[1].Balance.Equal(dec("-100000")))
	assert.True(t, report.TotalDebit.Equal(dec("100000")))
	assert.True(t, report.TotalCredit.Equal(dec("100000")))
	assert.True(t, report.TotalBalance.IsZero())
	assert.True(t, report.Balanced)
}

func TestComputeTrialBalance_DebitsEqualCredits(t *testing.T) {
	for name, movements := range map[string][]domain.Movement{
		"trading":   tradingMonth(),
		"investing": investingMonth(),
	} {
		t.Run(name, func(t *testing.T) {
			report := statements.ComputeTrialBalance(chart(), movements, january())
			assert.True(t, report.TotalDebit.Equal(report.TotalCredit))
			assert.True(t, report.Balanced)
		})
	}
}

func TestComputeTrialBalance_IncludesUnknownAccounts(t *testing.T) {
	l := &ledgerBuilder{}
	l.post(day(2), "orphan", missingAccount, bancos, "10")

	report := statements.ComputeTrialBalance(chart(), l.movements, january())

	require.Len(t, report.Rows, 2)
	orphan := report.Rows[1]
	assert.Equal(t, missingAccount, orphan.AccountID)
	assert.Equal(t, domain.UnknownAccountName, orphan.AccountName)
	assert.False(t, orphan.Known)
	assert.True(t, orphan.Debit.Equal(dec("10")))
	assert.True(t, report.Balanced)
	assert.Len(t, report.Warnings, 1)
}

func TestComputeTrialBalance_EmptyPeriod(t *testing.T) {
	report := statements.ComputeTrialBalance(chart(), nil, january())
	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
	assert.True(t, report.Balanced)
}
