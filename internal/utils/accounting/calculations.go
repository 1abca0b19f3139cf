package accounting

import (
	"fmt"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance returns the largest difference treated as equal when comparing report totals.
func Tolerance() decimal.Decimal {
	return decimal.New(1, -2)
}

// SignedNet applies the class sign convention to raw debit and credit totals.
// ASSET, COST and EXPENSE are debit-normal; LIABILITY, EQUITY and REVENUE are credit-normal.
func SignedNet(class domain.AccountClass, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch class {
	case domain.Asset, domain.Cost, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account class '%s'", class)
	}
}

// NormalSide is the side that increases an account of the given class.
func NormalSide(class domain.AccountClass) (domain.EntrySide, error) {
	switch class {
	case domain.Asset, domain.Cost, domain.Expense:
		return domain.Debit, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return domain.Credit, nil
	default:
		return "", fmt.Errorf("unknown account class '%s'", class)
	}
}

// WithinTolerance reports whether a and b differ by at most Tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance())
}

// EntryTotals sums the debit and credit columns of the lines.
func EntryTotals(lines []domain.EntryLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateEntry checks the shape of an entry before it is stored: at least two lines,
// every line on exactly one side with a positive amount, and equal debit and credit totals.
func ValidateEntry(lines []domain.EntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
	}

	for i, l := range lines {
		if l.AccountID <= 0 {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		if l.Debit.IsPositive() == l.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d must carry a positive amount on exactly one side", apperrors.ErrValidation, i+1)
		}
	}

	debit, credit := EntryTotals(lines)
	if !debit.Equal(credit) {
		return fmt.Errorf("%w: debit %s, credit %s", apperrors.ErrEntryUnbalanced, debit.String(), credit.String())
	}
	return nil
}
