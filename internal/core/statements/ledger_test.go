package statements_test

import (
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGeneralLedger(t *testing.T) {
	report := statements.ComputeGeneralLedger(chart(), tradingMonth(), january())

	require.Len(t, report.Accounts, 6)
	byID := make(map[int64]domain.LedgerAccount)
	for _, a := range report.Accounts {
		byID[a.AccountID] = a
	}

	b := byID[bancos]
	assert.Len(t, b.Lines, 3)
	assert.True(t, b.TotalDebit.Equal(dec("105000")))
	assert.True(t, b.TotalCredit.Equal(dec("1000")))
	assert.True(t, b.DebitBalance.Equal(dec("104000")))
	assert.True(t, b.CreditBalance.IsZero())

	c := byID[capitalSocial]
	assert.Equal(t, domain.Equity, c.Class)
	assert.True(t, c.DebitBalance.IsZero())
	assert.True(t, c.CreditBalance.Equal(dec("100000")))

	for i := 1; i < len(b.Lines); i++ {
		assert.False(t, b.Lines[i].Date.Before(b.Lines[i-1].Date))
	}
}

func TestComputeGeneralLedger_UnknownAccount(t *testing.T) {
	l := &ledgerBuilder{}
	l.post(day(2), "orphan", missingAccount, bancos, "10")

	report := statements.ComputeGeneralLedger(chart(), l.movements, january())
	require.Len(t, report.Accounts, 2)
	assert.Equal(t, domain.UnknownAccountName, report.Accounts[1].AccountName)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, missingAccount, report.Warnings[0].AccountID)
}
