package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement represents one stored line of an entry.
type Movement struct {
	MovementID   int64           `db:"movement_id"`
	AccountID    int64           `db:"account_id"`
	MovementDate time.Time       `db:"movement_date"`
	Description  string          `db:"description"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	EntryNumber  int64           `db:"entry_number"`
	AuditFields
}
