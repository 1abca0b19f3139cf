package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownAccountName is shown for movements whose account is missing from the chart.
const UnknownAccountName = "Cuenta no encontrada"

const (
	ProfitLabel = "Utilidad del periodo"
	LossLabel   = "Pérdida del periodo"
)

// PeriodResultLabel names a period result by its sign.
func PeriodResultLabel(result decimal.Decimal) string {
	if result.IsNegative() {
		return LossLabel
	}
	return ProfitLabel
}

// Warning is a non-fatal finding attached to a report.
type Warning struct {
	AccountID int64  `json:"accountID,omitempty"`
	Message   string `json:"message"`
}

// TrialBalanceRow represents a single row in a trial balance report.
// Balance is always Debit - Credit regardless of class.
type TrialBalanceRow struct {
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName"`
	Known       bool            `json:"known"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceReport lists raw debit and credit totals per account.
type TrialBalanceReport struct {
	Period       Period            `json:"period"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebit   decimal.Decimal   `json:"totalDebit"`
	TotalCredit  decimal.Decimal   `json:"totalCredit"`
	TotalBalance decimal.Decimal   `json:"totalBalance"`
	Balanced     bool              `json:"balanced"`
	Warnings     []Warning         `json:"warnings"`
}

// AccountAmount represents an account with its net amount for financial reports.
// Synthetic lines carry AccountID 0.
type AccountAmount struct {
	AccountID int64           `json:"accountID"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// BalanceSheetReport represents a balance sheet for a period.
// The last Equity line is the period result.
type BalanceSheetReport struct {
	Period                    Period          `json:"period"`
	CurrentAssets             []AccountAmount `json:"currentAssets"`
	NonCurrentAssets          []AccountAmount `json:"nonCurrentAssets"`
	Liabilities               []AccountAmount `json:"liabilities"`
	Equity                    []AccountAmount `json:"equity"`
	PeriodResult              decimal.Decimal `json:"periodResult"`
	TotalCurrentAssets        decimal.Decimal `json:"totalCurrentAssets"`
	TotalNonCurrentAssets     decimal.Decimal `json:"totalNonCurrentAssets"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	Warnings                  []Warning       `json:"warnings"`
}

// IncomeStatementReport represents revenue, cost and expenses for a period.
type IncomeStatementReport struct {
	Period                Period          `json:"period"`
	Revenue               []AccountAmount `json:"revenue"`
	Costs                 []AccountAmount `json:"costs"`
	Expenses              []AccountAmount `json:"expenses"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	GrossProfit           decimal.Decimal `json:"grossProfit"`
	TotalOperatingExpense decimal.Decimal `json:"totalOperatingExpense"`
	PeriodResult          decimal.Decimal `json:"periodResult"`
	IsProfit              bool            `json:"isProfit"`
	Warnings              []Warning       `json:"warnings"`
}

// EquityChangesRow is one concept of the statement of changes in equity.
type EquityChangesRow struct {
	Concept     string          `json:"concept"`
	Contributed decimal.Decimal `json:"contributed"`
	Earned      decimal.Decimal `json:"earned"`
	Total       decimal.Decimal `json:"total"`
}

// EquityChangesReport is the statement of changes in stockholders' equity.
type EquityChangesReport struct {
	Period         Period             `json:"period"`
	OpeningRows    []EquityChangesRow `json:"openingRows"`
	Increases      []EquityChangesRow `json:"increases"`
	IncreasesTotal EquityChangesRow   `json:"increasesTotal"`
	Decreases      []EquityChangesRow `json:"decreases"`
	DecreasesTotal EquityChangesRow   `json:"decreasesTotal"`
	OpeningCapital decimal.Decimal    `json:"openingCapital"`
	TotalCapital   decimal.Decimal    `json:"totalCapital"`
	LegalReserve   decimal.Decimal    `json:"legalReserve"`
	PeriodResult   decimal.Decimal    `json:"periodResult"`
	Warnings       []Warning          `json:"warnings"`
}

// CashFlowLine is an account contribution to a cash flow section.
type CashFlowLine struct {
	AccountID int64           `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// CashFlowSummary holds the sections shared by the indirect and direct presentations.
type CashFlowSummary struct {
	Financing                []CashFlowLine  `json:"financing"`
	TotalFinancing           decimal.Decimal `json:"totalFinancing"`
	TotalSources             decimal.Decimal `json:"totalSources"`
	Applications             []CashFlowLine  `json:"applications"`
	TotalApplications        decimal.Decimal `json:"totalApplications"`
	NetCashChange            decimal.Decimal `json:"netCashChange"`
	OpeningBank              decimal.Decimal `json:"openingBank"`
	EndingBank               decimal.Decimal `json:"endingBank"`
	OpeningCash              decimal.Decimal `json:"openingCash"`
	EndingCash               decimal.Decimal `json:"endingCash"`
	EndingCashAndEquivalents decimal.Decimal `json:"endingCashAndEquivalents"`
}

// CashFlowIndirectReport starts operations from the period result and adds back depreciation.
type CashFlowIndirectReport struct {
	Period                 Period          `json:"period"`
	PeriodResult           decimal.Decimal `json:"periodResult"`
	IncomeTaxProvision     decimal.Decimal `json:"incomeTaxProvision"`
	ProfitSharingProvision decimal.Decimal `json:"profitSharingProvision"`
	Depreciation           []CashFlowLine  `json:"depreciation"`
	TotalDepreciation      decimal.Decimal `json:"totalDepreciation"`
	CashFromOperations     decimal.Decimal `json:"cashFromOperations"`
	CashFlowSummary
	Warnings []Warning `json:"warnings"`
}

// CashFlowDirectReport presents operations as receipts and payments.
type CashFlowDirectReport struct {
	Period             Period          `json:"period"`
	OperatingReceipts  decimal.Decimal `json:"operatingReceipts"`
	CostPayments       decimal.Decimal `json:"costPayments"`
	ExpensePayments    decimal.Decimal `json:"expensePayments"`
	TaxesPaid          decimal.Decimal `json:"taxesPaid"`
	CashFromOperations decimal.Decimal `json:"cashFromOperations"`
	CashFlowSummary
	Warnings []Warning `json:"warnings"`
}

// JournalLine is a line of a journal book entry.
type JournalLine struct {
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntry groups the lines that share an entry number.
type JournalEntry struct {
	EntryNumber int64           `json:"entryNumber"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Lines       []JournalLine   `json:"lines"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// JournalBookReport is the chronological register of entries (libro diario).
type JournalBookReport struct {
	Period      Period          `json:"period"`
	Entries     []JournalEntry  `json:"entries"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Warnings    []Warning       `json:"warnings"`
}

// LedgerLine is a movement as shown on a ledger account.
type LedgerLine struct {
	MovementID  int64           `json:"movementID"`
	Date        time.Time       `json:"date"`
	EntryNumber int64           `json:"entryNumber"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// LedgerAccount is one T-account of the general ledger.
// Exactly one of DebitBalance and CreditBalance is non-zero unless the account is settled.
type LedgerAccount struct {
	AccountID     int64           `json:"accountID"`
	AccountName   string          `json:"accountName"`
	Class         AccountClass    `json:"class"`
	Lines         []LedgerLine    `json:"lines"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// GeneralLedgerReport groups the period's movements by account (libro mayor).
type GeneralLedgerReport struct {
	Period   Period          `json:"period"`
	Accounts []LedgerAccount `json:"accounts"`
	Warnings []Warning       `json:"warnings"`
}
