package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAccounts(t *testing.T) {
	input := `account_id,name,class,type,cash_flow_bucket,fixed_asset_key
1,Bancos,ASSET,CURRENT,CASH_BANK,
10,Edificios,asset,non_current,APPLICATION,BUILDINGS
23,Ventas,REVENUE,,,
`
	accounts, err := ReadAccounts(strings.NewReader(input))
	require.NoError(t, err)

	want := []domain.Account{
		{AccountID: 1, Name: "Bancos", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketCashBank},
		{AccountID: 10, Name: "Edificios", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketApplication, FixedAssetKey: domain.FixedAssetBuildings},
		{AccountID: 23, Name: "Ventas", Class: domain.Revenue},
	}
	if diff := cmp.Diff(want, accounts); diff != "" {
		t.Errorf("ReadAccounts() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAccounts_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown class", "h1,h2,h3,h4,h5,h6\n1,Bancos,CASH,,,\n", "accounts row 2: unknown class"},
		{"bad id", "h1,h2,h3,h4,h5,h6\nx,Bancos,ASSET,,,\n", "accounts row 2: parsing account_id"},
		{"asset without type", "h1,h2,h3,h4,h5,h6\n1,Bancos,ASSET,,,\n", `accounts row 2: asset type "" must be CURRENT or NON_CURRENT`},
		{"asset with capital type", "h1,h2,h3,h4,h5,h6\n1,Bancos,ASSET,INITIAL_CAPITAL,,\n", "accounts row 2: asset type"},
		{"wrong field count", "h1,h2,h3,h4,h5,h6\n1,Bancos,ASSET\n", "reading accounts CSV"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadAccounts(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestReadAccounts_Windows1252(t *testing.T) {
	input := "account_id,name,class,type,cash_flow_bucket,fixed_asset_key\n" +
		"26,Gastos de administraci\xf3n,EXPENSE,,,\n"

	accounts, err := ReadAccounts(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Gastos de administración", accounts[0].Name)
}

func TestReadAccounts_UTF8BOM(t *testing.T) {
	input := "\xEF\xBB\xBFaccount_id,name,class,type,cash_flow_bucket,fixed_asset_key\n1,Bancos,ASSET,CURRENT,,\n"

	accounts, err := ReadAccounts(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, int64(1), accounts[0].AccountID)
}

func TestReadMovements(t *testing.T) {
	input := `movement_id,account_id,date,description,debit,credit,entry_number
1,1,2024-01-01,Asiento de Apertura,100000,,1
2,21,2024-01-01,Asiento de Apertura,,100000.50,1
`
	movements, err := ReadMovements(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, movements, 2)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), movements[0].Date)
	assert.True(t, movements[0].IsOpening())
	assert.True(t, movements[0].Debit.Equal(decimal.NewFromInt(100000)))
	assert.True(t, movements[0].Credit.IsZero())
	assert.True(t, movements[1].Credit.Equal(decimal.RequireFromString("100000.50")))
	assert.Equal(t, int64(1), movements[1].EntryNumber)
}

func TestReadMovements_Errors(t *testing.T) {
	header := "movement_id,account_id,date,description,debit,credit,entry_number\n"
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad date", "1,1,01/01/2024,x,1,,1\n", "parsing date"},
		{"bad debit", "1,1,2024-01-01,x,abc,,1\n", "parsing debit"},
		{"bad entry number", "1,1,2024-01-01,x,1,,one\n", "parsing entry_number"},
		{"negative debit", "1,1,2024-01-01,x,-100,,2\n", "movements row 2: parsing debit: negative amount -100"},
		{"negative credit", "2,21,2024-01-01,x,,-100,2\n", "movements row 2: parsing credit: negative amount -100"},
		{"both sides", "3,1,2024-01-01,x,50,50,3\n", "movements row 2: debit and credit are both set"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadMovements(strings.NewReader(header + tc.row))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestReadMovements_Empty(t *testing.T) {
	movements, err := ReadMovements(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, movements)
}
