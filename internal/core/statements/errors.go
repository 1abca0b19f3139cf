package statements

import (
	"fmt"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ConsistencyError reports a balance sheet whose two sides disagree.
// It matches apperrors.ErrLedgerInconsistent with errors.Is.
type ConsistencyError struct {
	TotalAssets               decimal.Decimal
	TotalLiabilitiesAndEquity decimal.Decimal
}

// Difference is TotalAssets - TotalLiabilitiesAndEquity.
func (e *ConsistencyError) Difference() decimal.Decimal {
	return e.TotalAssets.Sub(e.TotalLiabilitiesAndEquity)
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s (assets %s, liabilities and equity %s, difference %s)",
		apperrors.ErrLedgerInconsistent.Error(),
		e.TotalAssets.String(), e.TotalLiabilitiesAndEquity.String(), e.Difference().String())
}

func (e *ConsistencyError) Unwrap() error {
	return apperrors.ErrLedgerInconsistent
}
