package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	companyService   portssvc.CompanySvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, cs portssvc.CompanySvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		companyService:   cs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, companyService portssvc.CompanySvc) {
	h := newReportingHandler(reportingService, companyService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/equity-changes", h.getEquityChanges)
		reports.GET("/cash-flow/indirect", h.getCashFlowIndirect)
		reports.GET("/cash-flow/direct", h.getCashFlowDirect)
		reports.GET("/journal", h.getJournalBook)
		reports.GET("/ledger", h.getGeneralLedger)
	}
}

// bindPeriod reads fromDate and toDate. It writes the 400 response itself.
func bindPeriod(c *gin.Context, logger *slog.Logger) (domain.Period, bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return domain.Period{}, false
	}
	period, err := domain.ParsePeriod(params.FromDate, params.ToDate)
	if err != nil {
		logger.Warn("Invalid report period", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Period{}, false
	}
	return period, true
}

// companyName never fails a report; a missing name is printed blank.
func (h *reportingHandler) companyName(ctx context.Context, logger *slog.Logger) string {
	company, err := h.companyService.GetCompany(ctx)
	if err != nil {
		logger.Warn("Failed to load company name for report", slog.String("error", err.Error()))
		return ""
	}
	if company == nil {
		return ""
	}
	return company.Name
}

// serveReport runs the shared period parsing, generation and conversion steps.
func serveReport[R any, T any](
	h *reportingHandler,
	c *gin.Context,
	name string,
	generate func(context.Context, domain.Period) (*R, error),
	convert func(string, *R) T,
) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period, ok := bindPeriod(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("report", name), slog.String("period", period.String()))

	report, err := generate(c.Request.Context(), period)
	if err != nil {
		respondError(c, logger, err, "Failed to generate "+name)
		return
	}
	c.JSON(http.StatusOK, convert(h.companyName(c.Request.Context(), logger), report))
}

// getTrialBalance godoc
// @Summary Generate the trial balance
// @Description Lists debit and credit totals per account for the period, with the class-signed balance.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	serveReport(h, c, "trial balance", h.reportingService.TrialBalance, dto.ToTrialBalanceResponse)
}

// getBalanceSheet godoc
// @Summary Generate the balance sheet
// @Description Classifies balances and checks assets against liabilities plus equity.
// @Description An inconsistent ledger answers 409 with the computed figures and the difference.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} dto.LedgerInconsistentResponse "Ledger inconsistent"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period, ok := bindPeriod(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("report", "balance sheet"), slog.String("period", period.String()))

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), period)
	var inconsistent *statements.ConsistencyError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(h.companyName(c.Request.Context(), logger), report))
	case errors.As(err, &inconsistent) && report != nil:
		logger.Warn("Balance sheet does not balance", slog.String("difference", inconsistent.Difference().String()))
		c.JSON(http.StatusConflict, dto.ToLedgerInconsistentResponse(
			h.companyName(c.Request.Context(), logger), report, inconsistent.Difference()))
	case errors.Is(err, apperrors.ErrLedgerInconsistent):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		respondError(c, logger, err, "Failed to generate balance sheet")
	}
}

// getIncomeStatement godoc
// @Summary Generate the income statement
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	serveReport(h, c, "income statement", h.reportingService.IncomeStatement, dto.ToIncomeStatementResponse)
}

// getEquityChanges godoc
// @Summary Generate the statement of changes in stockholders' equity
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.EquityChangesResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/equity-changes [get]
func (h *reportingHandler) getEquityChanges(c *gin.Context) {
	serveReport(h, c, "equity changes", h.reportingService.EquityChanges, dto.ToEquityChangesResponse)
}

// getCashFlowIndirect godoc
// @Summary Generate the statement of cash flows (indirect method)
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowIndirectResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash-flow/indirect [get]
func (h *reportingHandler) getCashFlowIndirect(c *gin.Context) {
	serveReport(h, c, "indirect cash flow", h.reportingService.CashFlowIndirect, dto.ToCashFlowIndirectResponse)
}

// getCashFlowDirect godoc
// @Summary Generate the statement of cash flows (direct method)
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowDirectResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash-flow/direct [get]
func (h *reportingHandler) getCashFlowDirect(c *gin.Context) {
	serveReport(h, c, "direct cash flow", h.reportingService.CashFlowDirect, dto.ToCashFlowDirectResponse)
}

// getJournalBook godoc
// @Summary Generate the journal book
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.JournalBookResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/journal [get]
func (h *reportingHandler) getJournalBook(c *gin.Context) {
	serveReport(h, c, "journal book", h.reportingService.JournalBook, dto.ToJournalBookResponse)
}

// getGeneralLedger godoc
// @Summary Generate the general ledger
// @Tags reports
// @Produce json
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	serveReport(h, c, "general ledger", h.reportingService.GeneralLedger, dto.ToGeneralLedgerResponse)
}
