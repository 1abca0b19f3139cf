package accounting

import (
	"errors"
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSignedNet(t *testing.T) {
	tests := []struct {
		class domain.AccountClass
		want  string
	}{
		{domain.Asset, "70"},
		{domain.Cost, "70"},
		{domain.Expense, "70"},
		{domain.Liability, "-70"},
		{domain.Equity, "-70"},
		{domain.Revenue, "-70"},
	}
	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			got, err := SignedNet(tt.class, d("100"), d("30"))
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s", got)
		})
	}

	_, err := SignedNet("INCOME", d("1"), d("0"))
	assert.Error(t, err)
}

func TestNormalSide(t *testing.T) {
	side, err := NormalSide(domain.Asset)
	require.NoError(t, err)
	assert.Equal(t, domain.Debit, side)

	side, err = NormalSide(domain.Equity)
	require.NoError(t, err)
	assert.Equal(t, domain.Credit, side)

	_, err = NormalSide("")
	assert.Error(t, err)
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance(d("100.004"), d("100")))
	assert.True(t, WithinTolerance(d("100.01"), d("100")))
	assert.True(t, WithinTolerance(d("99.99"), d("100")))
	assert.False(t, WithinTolerance(d("100.011"), d("100")))
	assert.True(t, Tolerance().Equal(d("0.01")))
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.EntryLine
		wantErr error
	}{
		{
			name: "balanced",
			lines: []domain.EntryLine{
				{AccountID: 1, Debit: d("100000")},
				{AccountID: 21, Credit: d("100000")},
			},
		},
		{
			name:    "single line",
			lines:   []domain.EntryLine{{AccountID: 1, Debit: d("1")}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "missing account",
			lines: []domain.EntryLine{
				{Debit: d("10")},
				{AccountID: 21, Credit: d("10")},
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "both sides on one line",
			lines: []domain.EntryLine{
				{AccountID: 1, Debit: d("10"), Credit: d("10")},
				{AccountID: 21, Credit: d("10")},
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "zero amount",
			lines: []domain.EntryLine{
				{AccountID: 1},
				{AccountID: 21, Credit: d("10")},
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "negative amount",
			lines: []domain.EntryLine{
				{AccountID: 1, Debit: d("-10")},
				{AccountID: 21, Credit: d("10")},
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "unbalanced",
			lines: []domain.EntryLine{
				{AccountID: 1, Debit: d("100")},
				{AccountID: 21, Credit: d("99.99")},
			},
			wantErr: apperrors.ErrEntryUnbalanced,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.lines)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart()
	names := make(map[string]bool, len(chart))
	ids := make(map[int64]bool, len(chart))
	keys := make(map[domain.FixedAssetKey]bool)
	for _, a := range chart {
		assert.True(t, a.Class.IsValid(), a.Name)
		assert.False(t, names[a.Name], "duplicate name %s", a.Name)
		assert.False(t, ids[a.AccountID], "duplicate id %d", a.AccountID)
		names[a.Name] = true
		ids[a.AccountID] = true
		if a.FixedAssetKey != domain.FixedAssetNone {
			assert.Equal(t, domain.TypeNonCurrent, a.Type, a.Name)
			keys[a.FixedAssetKey] = true
		}
	}
	for _, k := range domain.CanonicalFixedAssetOrder {
		assert.True(t, keys[k], "no account for %s", k)
	}
}
