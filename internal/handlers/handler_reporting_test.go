package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	reportingService *MockReportingService
	companyService   *MockCompanyService
	january          domain.Period
}

func (s *ReportingHandlerTestSuite) SetupTest() {
	s.reportingService = new(MockReportingService)
	s.companyService = new(MockCompanyService)
	s.companyService.On("GetCompany", mock.Anything).Return(&domain.Company{Name: "Papeleria SA"}, nil).Maybe()

	router, v1 := newTestRouter()
	handlers.RegisterReportingRoutes(v1, s.reportingService, s.companyService)
	s.router = router

	period, err := domain.NewPeriod(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.january = period
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}

const januaryQuery = "?fromDate=2024-01-01&toDate=2024-01-31"

func (s *ReportingHandlerTestSuite) TestTrialBalance() {
	s.reportingService.On("TrialBalance", mock.Anything, s.january).Return(&domain.TrialBalanceReport{
		Period: s.january,
		Rows: []domain.TrialBalanceRow{
			{AccountID: 1, AccountName: "Bancos", Known: true, Debit: decimal.NewFromInt(105000), Credit: decimal.Zero, Balance: decimal.NewFromInt(105000)},
			{AccountID: 21, AccountName: "Capital social", Known: true, Debit: decimal.Zero, Credit: decimal.NewFromInt(105000), Balance: decimal.NewFromInt(-105000)},
		},
		TotalDebit:   decimal.NewFromInt(105000),
		TotalCredit:  decimal.NewFromInt(105000),
		TotalBalance: decimal.Zero,
		Balanced:     true,
	}, nil).Once()

	w := performRequest(s.T(), s.router, http.MethodGet, "/api/v1/reports/trial-balance"+januaryQuery, "")

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.TrialBalanceResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Papeleria SA", resp.CompanyName)
	s.Equal("2024-01-01", resp.FromDate)
	s.Equal("2024-01-31", resp.ToDate)
	s.True(resp.Balanced)
	s.Len(resp.Rows, 2)
}

func (s *ReportingHandlerTestSuite) TestInvalidPeriod() {
	tests := map[string]string{
		"missing toDate": "?fromDate=2024-01-01",
		"bad format":     "?fromDate=01-01-2024&toDate=2024-01-31",
		"inverted":       "?fromDate=2024-02-01&toDate=2024-01-31",
	}
	for name, query := range tests {
		s.Run(name, func() {
			w := performRequest(s.T(), s.router, http.MethodGet, "/api/v1/reports/income-statement"+query, "")
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.reportingService.AssertNotCalled(s.T(), "IncomeStatement", mock.Anything, mock.Anything)
}

func (s *ReportingHandlerTestSuite) TestBalanceSheet_Inconsistent() {
	report := &domain.BalanceSheetReport{
		Period:                    s.january,
		TotalAssets:               decimal.NewFromInt(100010),
		TotalLiabilitiesAndEquity: decimal.NewFromInt(100000),
	}
	consistency := &statements.ConsistencyError{
		TotalAssets:               report.TotalAssets,
		TotalLiabilitiesAndEquity: report.TotalLiabilitiesAndEquity,
	}
	s.reportingService.On("BalanceSheet", mock.Anything, s.january).Return(report, consistency).Once()

	w := performRequest(s.T(), s.router, http.MethodGet, "/api/v1/reports/balance-sheet"+januaryQuery, "")

	s.Require().Equal(http.StatusConflict, w.Code, w.Body.String())
	var resp dto.LedgerInconsistentResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("10", resp.Difference.String())
	s.Equal("100010", resp.Report.Summary.TotalAssets.String(), "figures are reported unadjusted")
}

func (s *ReportingHandlerTestSuite) TestBalanceSheet_Consistent() {
	s.reportingService.On("BalanceSheet", mock.Anything, s.january).Return(&domain.BalanceSheetReport{
		Period:                    s.january,
		TotalAssets:               decimal.NewFromInt(100000),
		TotalLiabilitiesAndEquity: decimal.NewFromInt(100000),
	}, nil).Once()

	w := performRequest(s.T(), s.router, http.MethodGet, "/api/v1/reports/balance-sheet"+januaryQuery, "")

	s.Equal(http.StatusOK, w.Code)
}

func (s *ReportingHandlerTestSuite) TestReportFailure() {
	s.reportingService.On("CashFlowDirect", mock.Anything, s.january).Return(nil, assert.AnError).Once()

	w := performRequest(s.T(), s.router, http.MethodGet, "/api/v1/reports/cash-flow/direct"+januaryQuery, "")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), assert.AnError.Error())
}

func (s *ReportingHandlerTestSuite) TestCompanyNameMissing() {
	s.companyService = new(MockCompanyService)
	s.companyService.On("GetCompany", mock.Anything).Return(nil, assert.AnError).Once()
	router, v1 := newTestRouter()
	handlers.RegisterReportingRoutes(v1, s.reportingService, s.companyService)

	s.reportingService.On("JournalBook", mock.Anything, s.january).
		Return(&domain.JournalBookReport{Period: s.january}, nil).Once()

	w := performRequest(s.T(), router, http.MethodGet, "/api/v1/reports/journal"+januaryQuery, "")

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.JournalBookResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	s.Empty(resp.CompanyName)
}
