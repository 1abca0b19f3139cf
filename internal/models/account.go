package models

// AccountClass is the stored form of domain.AccountClass.
type AccountClass string

const (
	Asset     AccountClass = "ASSET"
	Liability AccountClass = "LIABILITY"
	Equity    AccountClass = "EQUITY"
	Revenue   AccountClass = "REVENUE"
	Cost      AccountClass = "COST"
	Expense   AccountClass = "EXPENSE"
)

// Account represents a row of the chart of accounts.
// Type, CashFlowBucket and FixedAssetKey are stored as empty strings when unset.
type Account struct {
	AccountID      int64        `db:"account_id"`
	Name           string       `db:"name"`
	Class          AccountClass `db:"class"`
	Type           string       `db:"account_type"`
	CashFlowBucket string       `db:"cash_flow_bucket"`
	FixedAssetKey  string       `db:"fixed_asset_key"`
	AuditFields
}
