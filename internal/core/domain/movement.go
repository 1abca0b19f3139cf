package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningEntryDescription marks the lines of the opening entry.
const OpeningEntryDescription = "Asiento de Apertura"

// OpeningEntryNumber is reserved for the opening entry.
const OpeningEntryNumber int64 = 1

// EntrySide indicates whether a line is posted to the debit or the credit column.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// Movement is one line of a double-entry entry.
// Lines sharing an EntryNumber form one entry whose debits equal its credits.
type Movement struct {
	MovementID  int64           `json:"movementID"`
	AccountID   int64           `json:"accountID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	EntryNumber int64           `json:"entryNumber"`
	AuditFields
}

// IsOpening reports whether the line belongs to the opening entry.
func (m Movement) IsOpening() bool {
	return m.Description == OpeningEntryDescription
}

// EntryLine is a line of an entry before it is stored.
type EntryLine struct {
	AccountID int64
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// EntryHeader carries what every line of an entry shares.
type EntryHeader struct {
	Date        time.Time
	Description string
	AuditFields
}

// MovementFilter narrows a movement listing. Zero values mean "no restriction".
type MovementFilter struct {
	Period      *Period
	Description string
	AccountID   int64
	Limit       int
	NextToken   *string
}
