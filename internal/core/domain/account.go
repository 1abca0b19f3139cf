package domain

// AccountClass defines the fundamental accounting class of an account.
type AccountClass string

const (
	Asset     AccountClass = "ASSET"
	Liability AccountClass = "LIABILITY"
	Equity    AccountClass = "EQUITY"
	Revenue   AccountClass = "REVENUE"
	Cost      AccountClass = "COST"
	Expense   AccountClass = "EXPENSE"
)

// IsValid reports whether c is one of the known classes.
func (c AccountClass) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Cost, Expense:
		return true
	}
	return false
}

// AccountType refines the class: current/non-current for assets, initial capital for equity.
type AccountType string

const (
	TypeNone           AccountType = ""
	TypeCurrent        AccountType = "CURRENT"
	TypeNonCurrent     AccountType = "NON_CURRENT"
	TypeInitialCapital AccountType = "INITIAL_CAPITAL"
)

// CashFlowBucket tags an account for the statement of cash flows.
type CashFlowBucket string

const (
	BucketNone         CashFlowBucket = ""
	BucketApplication  CashFlowBucket = "APPLICATION"
	BucketFinancing    CashFlowBucket = "FINANCING"
	BucketDepreciation CashFlowBucket = "DEPRECIATION"
	BucketCashBank     CashFlowBucket = "CASH_BANK"
	BucketCashOnHand   CashFlowBucket = "CASH_ON_HAND"
)

// IsCash reports whether the bucket belongs to cash and equivalents.
func (b CashFlowBucket) IsCash() bool {
	return b == BucketCashBank || b == BucketCashOnHand
}

// FixedAssetKey identifies the fixed assets that the balance sheet lists in a canonical order.
type FixedAssetKey string

const (
	FixedAssetNone              FixedAssetKey = ""
	FixedAssetLand              FixedAssetKey = "LAND"
	FixedAssetBuildings         FixedAssetKey = "BUILDINGS"
	FixedAssetAccumDepBuildings FixedAssetKey = "ACCUM_DEP_BUILDINGS"
	FixedAssetFurniture         FixedAssetKey = "FURNITURE"
	FixedAssetAccumDepFurniture FixedAssetKey = "ACCUM_DEP_FURNITURE"
	FixedAssetComputers         FixedAssetKey = "COMPUTERS"
	FixedAssetAccumDepComputers FixedAssetKey = "ACCUM_DEP_COMPUTERS"
)

// CanonicalFixedAssetOrder is the order non-current assets appear in on the balance sheet.
var CanonicalFixedAssetOrder = []FixedAssetKey{
	FixedAssetLand,
	FixedAssetBuildings,
	FixedAssetAccumDepBuildings,
	FixedAssetFurniture,
	FixedAssetAccumDepFurniture,
	FixedAssetComputers,
	FixedAssetAccumDepComputers,
}

// Account is an entry of the chart of accounts.
type Account struct {
	AccountID      int64          `json:"accountID"`
	Name           string         `json:"name"` // Unique within the chart
	Class          AccountClass   `json:"class"`
	Type           AccountType    `json:"type"`
	CashFlowBucket CashFlowBucket `json:"cashFlowBucket"`
	FixedAssetKey  FixedAssetKey  `json:"fixedAssetKey"`
	AuditFields
}
