package dto

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams are the query parameters shared by every report.
type ReportPeriodParams struct {
	FromDate string `form:"fromDate" binding:"required,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"required,datetime=2006-01-02"`
}

// ReportHeader identifies the company and period a report covers.
type ReportHeader struct {
	CompanyName string `json:"companyName"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
}

// WarningResponse is a non-fatal finding attached to a report.
type WarningResponse struct {
	AccountID int64  `json:"accountID,omitempty"`
	Message   string `json:"message"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID int64           `json:"accountID,omitempty"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	ReportHeader
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit   decimal.Decimal `json:"debit"`
		Credit  decimal.Decimal `json:"credit"`
		Balance decimal.Decimal `json:"balance"`
	} `json:"totals"`
	Balanced bool              `json:"balanced"`
	Warnings []WarningResponse `json:"warnings"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	ReportHeader
	CurrentAssets    []AccountAmountResponse `json:"currentAssets"`
	NonCurrentAssets []AccountAmountResponse `json:"nonCurrentAssets"`
	Liabilities      []AccountAmountResponse `json:"liabilities"`
	Equity           []AccountAmountResponse `json:"equity"`
	Summary          struct {
		TotalCurrentAssets        decimal.Decimal `json:"totalCurrentAssets"`
		TotalNonCurrentAssets     decimal.Decimal `json:"totalNonCurrentAssets"`
		TotalAssets               decimal.Decimal `json:"totalAssets"`
		TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
		TotalEquity               decimal.Decimal `json:"totalEquity"`
		TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	} `json:"summary"`
	Warnings []WarningResponse `json:"warnings"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	ReportHeader
	Revenue  []AccountAmountResponse `json:"revenue"`
	Costs    []AccountAmountResponse `json:"costs"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue          decimal.Decimal `json:"totalRevenue"`
		TotalCost             decimal.Decimal `json:"totalCost"`
		GrossProfit           decimal.Decimal `json:"grossProfit"`
		TotalOperatingExpense decimal.Decimal `json:"totalOperatingExpense"`
		PeriodResult          decimal.Decimal `json:"periodResult"`
		ResultLabel           string          `json:"resultLabel"`
	} `json:"summary"`
	Warnings []WarningResponse `json:"warnings"`
}

// EquityChangesRowResponse is one concept of the statement of changes in equity.
type EquityChangesRowResponse struct {
	Concept     string          `json:"concept"`
	Contributed decimal.Decimal `json:"contributed"`
	Earned      decimal.Decimal `json:"earned"`
	Total       decimal.Decimal `json:"total"`
}

// EquityChangesResponse represents the statement of changes in equity response
type EquityChangesResponse struct {
	ReportHeader
	OpeningRows    []EquityChangesRowResponse `json:"openingRows"`
	Increases      []EquityChangesRowResponse `json:"increases"`
	IncreasesTotal EquityChangesRowResponse   `json:"increasesTotal"`
	Decreases      []EquityChangesRowResponse `json:"decreases"`
	DecreasesTotal EquityChangesRowResponse   `json:"decreasesTotal"`
	Summary        struct {
		OpeningCapital decimal.Decimal `json:"openingCapital"`
		LegalReserve   decimal.Decimal `json:"legalReserve"`
		PeriodResult   decimal.Decimal `json:"periodResult"`
		TotalCapital   decimal.Decimal `json:"totalCapital"`
	} `json:"summary"`
	Warnings []WarningResponse `json:"warnings"`
}

// CashFlowSummaryResponse holds the sections both cash flow presentations share.
type CashFlowSummaryResponse struct {
	Financing                []AccountAmountResponse `json:"financing"`
	TotalFinancing           decimal.Decimal         `json:"totalFinancing"`
	TotalSources             decimal.Decimal         `json:"totalSources"`
	Applications             []AccountAmountResponse `json:"applications"`
	TotalApplications        decimal.Decimal         `json:"totalApplications"`
	NetCashChange            decimal.Decimal         `json:"netCashChange"`
	OpeningBank              decimal.Decimal         `json:"openingBank"`
	EndingBank               decimal.Decimal         `json:"endingBank"`
	OpeningCash              decimal.Decimal         `json:"openingCash"`
	EndingCash               decimal.Decimal         `json:"endingCash"`
	EndingCashAndEquivalents decimal.Decimal         `json:"endingCashAndEquivalents"`
}

// CashFlowIndirectResponse represents the indirect-method cash flow statement
type CashFlowIndirectResponse struct {
	ReportHeader
	Operations struct {
		PeriodResult           decimal.Decimal         `json:"periodResult"`
		IncomeTaxProvision     decimal.Decimal         `json:"incomeTaxProvision"`
		ProfitSharingProvision decimal.Decimal         `json:"profitSharingProvision"`
		Depreciation           []AccountAmountResponse `json:"depreciation"`
		TotalDepreciation      decimal.Decimal         `json:"totalDepreciation"`
		CashFromOperations     decimal.Decimal         `json:"cashFromOperations"`
	} `json:"operations"`
	CashFlowSummaryResponse
	Warnings []WarningResponse `json:"warnings"`
}

// CashFlowDirectResponse represents the direct-method cash flow statement
type CashFlowDirectResponse struct {
	ReportHeader
	Operations struct {
		OperatingReceipts  decimal.Decimal `json:"operatingReceipts"`
		CostPayments       decimal.Decimal `json:"costPayments"`
		ExpensePayments    decimal.Decimal `json:"expensePayments"`
		TaxesPaid          decimal.Decimal `json:"taxesPaid"`
		CashFromOperations decimal.Decimal `json:"cashFromOperations"`
	} `json:"operations"`
	CashFlowSummaryResponse
	Warnings []WarningResponse `json:"warnings"`
}

// JournalLineResponse is a line of a journal entry.
type JournalLineResponse struct {
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntryResponse is one entry of the journal book.
type JournalEntryResponse struct {
	EntryNumber int64                 `json:"entryNumber"`
	Date        string                `json:"date"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines"`
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
}

// JournalBookResponse represents the journal book report response
type JournalBookResponse struct {
	ReportHeader
	Entries     []JournalEntryResponse `json:"entries"`
	TotalDebit  decimal.Decimal        `json:"totalDebit"`
	TotalCredit decimal.Decimal        `json:"totalCredit"`
	Warnings    []WarningResponse      `json:"warnings"`
}

// LedgerLineResponse is a movement posted to a ledger account.
type LedgerLineResponse struct {
	MovementID  int64           `json:"movementID"`
	Date        string          `json:"date"`
	EntryNumber int64           `json:"entryNumber"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// LedgerAccountResponse is one account of the general ledger.
type LedgerAccountResponse struct {
	AccountID     int64                `json:"accountID"`
	AccountName   string               `json:"accountName"`
	Class         domain.AccountClass  `json:"class"`
	Lines         []LedgerLineResponse `json:"lines"`
	TotalDebit    decimal.Decimal      `json:"totalDebit"`
	TotalCredit   decimal.Decimal      `json:"totalCredit"`
	DebitBalance  decimal.Decimal      `json:"debitBalance"`
	CreditBalance decimal.Decimal      `json:"creditBalance"`
}

// GeneralLedgerResponse represents the general ledger report response
type GeneralLedgerResponse struct {
	ReportHeader
	Accounts []LedgerAccountResponse `json:"accounts"`
	Warnings []WarningResponse       `json:"warnings"`
}

// LedgerInconsistentResponse is returned when a balance sheet does not balance.
type LedgerInconsistentResponse struct {
	Message                   string               `json:"message"`
	TotalAssets               decimal.Decimal      `json:"totalAssets"`
	TotalLiabilitiesAndEquity decimal.Decimal      `json:"totalLiabilitiesAndEquity"`
	Difference                decimal.Decimal      `json:"difference"`
	Report                    BalanceSheetResponse `json:"report"`
}

func newReportHeader(companyName string, period domain.Period) ReportHeader {
	return ReportHeader{
		CompanyName: companyName,
		FromDate:    period.Start.Format(domain.DateLayout),
		ToDate:      period.End.Format(domain.DateLayout),
	}
}

func toWarningResponses(warnings []domain.Warning) []WarningResponse {
	out := make([]WarningResponse, len(warnings))
	for i, w := range warnings {
		out[i] = WarningResponse{AccountID: w.AccountID, Message: w.Message}
	}
	return out
}

func toAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		out[i] = AccountAmountResponse{AccountID: a.AccountID, Name: a.Name, Amount: utils.RoundMoney(a.NetAmount)}
	}
	return out
}

func toCashFlowLineResponses(lines []domain.CashFlowLine) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(lines))
	for i, l := range lines {
		out[i] = AccountAmountResponse{AccountID: l.AccountID, Name: l.Name, Amount: utils.RoundMoney(l.Amount)}
	}
	return out
}

func toEquityRowResponse(row domain.EquityChangesRow) EquityChangesRowResponse {
	return EquityChangesRowResponse{
		Concept:     row.Concept,
		Contributed: utils.RoundMoney(row.Contributed),
		Earned:      utils.RoundMoney(row.Earned),
		Total:       utils.RoundMoney(row.Total),
	}
}

func toEquityRowResponses(rows []domain.EquityChangesRow) []EquityChangesRowResponse {
	out := make([]EquityChangesRowResponse, len(rows))
	for i, r := range rows {
		out[i] = toEquityRowResponse(r)
	}
	return out
}

func toCashFlowSummaryResponse(s domain.CashFlowSummary) CashFlowSummaryResponse {
	return CashFlowSummaryResponse{
		Financing:                toCashFlowLineResponses(s.Financing),
		TotalFinancing:           utils.RoundMoney(s.TotalFinancing),
		TotalSources:             utils.RoundMoney(s.TotalSources),
		Applications:             toCashFlowLineResponses(s.Applications),
		TotalApplications:        utils.RoundMoney(s.TotalApplications),
		NetCashChange:            utils.RoundMoney(s.NetCashChange),
		OpeningBank:              utils.RoundMoney(s.OpeningBank),
		EndingBank:               utils.RoundMoney(s.EndingBank),
		OpeningCash:              utils.RoundMoney(s.OpeningCash),
		EndingCash:               utils.RoundMoney(s.EndingCash),
		EndingCashAndEquivalents: utils.RoundMoney(s.EndingCashAndEquivalents),
	}
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(companyName string, report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		ReportHeader: newReportHeader(companyName, report.Period),
		Rows:         make([]TrialBalanceRowResponse, len(report.Rows)),
		Balanced:     report.Balanced,
		Warnings:     toWarningResponses(report.Warnings),
	}
	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			Debit:       utils.RoundMoney(row.Debit),
			Credit:      utils.RoundMoney(row.Credit),
			Balance:     utils.RoundMoney(row.Balance),
		}
	}
	response.Totals.Debit = utils.RoundMoney(report.TotalDebit)
	response.Totals.Credit = utils.RoundMoney(report.TotalCredit)
	response.Totals.Balance = utils.RoundMoney(report.TotalBalance)
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(companyName string, report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		ReportHeader:     newReportHeader(companyName, report.Period),
		CurrentAssets:    toAmountResponses(report.CurrentAssets),
		NonCurrentAssets: toAmountResponses(report.NonCurrentAssets),
		Liabilities:      toAmountResponses(report.Liabilities),
		Equity:           toAmountResponses(report.Equity),
		Warnings:         toWarningResponses(report.Warnings),
	}
	response.Summary.TotalCurrentAssets = utils.RoundMoney(report.TotalCurrentAssets)
	response.Summary.TotalNonCurrentAssets = utils.RoundMoney(report.TotalNonCurrentAssets)
	response.Summary.TotalAssets = utils.RoundMoney(report.TotalAssets)
	response.Summary.TotalLiabilities = utils.RoundMoney(report.TotalLiabilities)
	response.Summary.TotalEquity = utils.RoundMoney(report.TotalEquity)
	response.Summary.TotalLiabilitiesAndEquity = utils.RoundMoney(report.TotalLiabilitiesAndEquity)
	return response
}

// ToLedgerInconsistentResponse reports an unbalanced sheet without adjusting its figures.
func ToLedgerInconsistentResponse(companyName string, report *domain.BalanceSheetReport, difference decimal.Decimal) LedgerInconsistentResponse {
	return LedgerInconsistentResponse{
		Message:                   "Ledger inconsistent: total assets differ from total liabilities and equity",
		TotalAssets:               utils.RoundMoney(report.TotalAssets),
		TotalLiabilitiesAndEquity: utils.RoundMoney(report.TotalLiabilitiesAndEquity),
		Difference:                utils.RoundMoney(difference),
		Report:                    ToBalanceSheetResponse(companyName, report),
	}
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(companyName string, report *domain.IncomeStatementReport) IncomeStatementResponse {
	response := IncomeStatementResponse{
		ReportHeader: newReportHeader(companyName, report.Period),
		Revenue:      toAmountResponses(report.Revenue),
		Costs:        toAmountResponses(report.Costs),
		Expenses:     toAmountResponses(report.Expenses),
		Warnings:     toWarningResponses(report.Warnings),
	}
	response.Summary.TotalRevenue = utils.RoundMoney(report.TotalRevenue)
	response.Summary.TotalCost = utils.RoundMoney(report.TotalCost)
	response.Summary.GrossProfit = utils.RoundMoney(report.GrossProfit)
	response.Summary.TotalOperatingExpense = utils.RoundMoney(report.TotalOperatingExpense)
	response.Summary.PeriodResult = utils.RoundMoney(report.PeriodResult)
	response.Summary.ResultLabel = domain.PeriodResultLabel(report.PeriodResult)
	return response
}

// ToEquityChangesResponse converts a domain statement of changes in equity to a DTO response
func ToEquityChangesResponse(companyName string, report *domain.EquityChangesReport) EquityChangesResponse {
	response := EquityChangesResponse{
		ReportHeader:   newReportHeader(companyName, report.Period),
		OpeningRows:    toEquityRowResponses(report.OpeningRows),
		Increases:      toEquityRowResponses(report.Increases),
		IncreasesTotal: toEquityRowResponse(report.IncreasesTotal),
		Decreases:      toEquityRowResponses(report.Decreases),
		DecreasesTotal: toEquityRowResponse(report.DecreasesTotal),
		Warnings:       toWarningResponses(report.Warnings),
	}
	response.Summary.OpeningCapital = utils.RoundMoney(report.OpeningCapital)
	response.Summary.LegalReserve = utils.RoundMoney(report.LegalReserve)
	response.Summary.PeriodResult = utils.RoundMoney(report.PeriodResult)
	response.Summary.TotalCapital = utils.RoundMoney(report.TotalCapital)
	return response
}

// ToCashFlowIndirectResponse converts an indirect-method cash flow to a DTO response
func ToCashFlowIndirectResponse(companyName string, report *domain.CashFlowIndirectReport) CashFlowIndirectResponse {
	response := CashFlowIndirectResponse{
		ReportHeader:            newReportHeader(companyName, report.Period),
		CashFlowSummaryResponse: toCashFlowSummaryResponse(report.CashFlowSummary),
		Warnings:                toWarningResponses(report.Warnings),
	}
	response.Operations.PeriodResult = utils.RoundMoney(report.PeriodResult)
	response.Operations.IncomeTaxProvision = utils.RoundMoney(report.IncomeTaxProvision)
	response.Operations.ProfitSharingProvision = utils.RoundMoney(report.ProfitSharingProvision)
	response.Operations.Depreciation = toCashFlowLineResponses(report.Depreciation)
	response.Operations.TotalDepreciation = utils.RoundMoney(report.TotalDepreciation)
	response.Operations.CashFromOperations = utils.RoundMoney(report.CashFromOperations)
	return response
}

// ToCashFlowDirectResponse converts a direct-method cash flow to a DTO response
func ToCashFlowDirectResponse(companyName string, report *domain.CashFlowDirectReport) CashFlowDirectResponse {
	response := CashFlowDirectResponse{
		ReportHeader:            newReportHeader(companyName, report.Period),
		CashFlowSummaryResponse: toCashFlowSummaryResponse(report.CashFlowSummary),
		Warnings:                toWarningResponses(report.Warnings),
	}
	response.Operations.OperatingReceipts = utils.RoundMoney(report.OperatingReceipts)
	response.Operations.CostPayments = utils.RoundMoney(report.CostPayments)
	response.Operations.ExpensePayments = utils.RoundMoney(report.ExpensePayments)
	response.Operations.TaxesPaid = utils.RoundMoney(report.TaxesPaid)
	response.Operations.CashFromOperations = utils.RoundMoney(report.CashFromOperations)
	return response
}

// ToJournalBookResponse converts a domain journal book to a DTO response
func ToJournalBookResponse(companyName string, report *domain.JournalBookReport) JournalBookResponse {
	response := JournalBookResponse{
		ReportHeader: newReportHeader(companyName, report.Period),
		Entries:      make([]JournalEntryResponse, len(report.Entries)),
		TotalDebit:   utils.RoundMoney(report.TotalDebit),
		TotalCredit:  utils.RoundMoney(report.TotalCredit),
		Warnings:     toWarningResponses(report.Warnings),
	}
	for i, e := range report.Entries {
		lines := make([]JournalLineResponse, len(e.Lines))
		for j, l := range e.Lines {
			lines[j] = JournalLineResponse{
				AccountID:   l.AccountID,
				AccountName: l.AccountName,
				Debit:       utils.RoundMoney(l.Debit),
				Credit:      utils.RoundMoney(l.Credit),
			}
		}
		response.Entries[i] = JournalEntryResponse{
			EntryNumber: e.EntryNumber,
			Date:        e.Date.Format(domain.DateLayout),
			Description: e.Description,
			Lines:       lines,
			TotalDebit:  utils.RoundMoney(e.TotalDebit),
			TotalCredit: utils.RoundMoney(e.TotalCredit),
		}
	}
	return response
}

// ToGeneralLedgerResponse converts a domain general ledger to a DTO response
func ToGeneralLedgerResponse(companyName string, report *domain.GeneralLedgerReport) GeneralLedgerResponse {
	response := GeneralLedgerResponse{
		ReportHeader: newReportHeader(companyName, report.Period),
		Accounts:     make([]LedgerAccountResponse, len(report.Accounts)),
		Warnings:     toWarningResponses(report.Warnings),
	}
	for i, a := range report.Accounts {
		lines := make([]LedgerLineResponse, len(a.Lines))
		for j, l := range a.Lines {
			lines[j] = LedgerLineResponse{
				MovementID:  l.MovementID,
				Date:        l.Date.Format(domain.DateLayout),
				EntryNumber: l.EntryNumber,
				Description: l.Description,
				Debit:       utils.RoundMoney(l.Debit),
				Credit:      utils.RoundMoney(l.Credit),
			}
		}
		response.Accounts[i] = LedgerAccountResponse{
			AccountID:     a.AccountID,
			AccountName:   a.AccountName,
			Class:         a.Class,
			Lines:         lines,
			TotalDebit:    utils.RoundMoney(a.TotalDebit),
			TotalCredit:   utils.RoundMoney(a.TotalCredit),
			DebitBalance:  utils.RoundMoney(a.DebitBalance),
			CreditBalance: utils.RoundMoney(a.CreditBalance),
		}
	}
	return response
}
