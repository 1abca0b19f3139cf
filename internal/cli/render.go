package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	nameWidth   = 48
	amountWidth = 16
)

// textRenderer prints reports as aligned plain text with locale-aware amounts.
type textRenderer struct {
	w       io.Writer
	p       *message.Printer
	company string
}

func newTextRenderer(w io.Writer, locale language.Tag, company string) *textRenderer {
	return &textRenderer{w: w, p: message.NewPrinter(locale), company: company}
}

// amount rounds for presentation only; the figure is exact to the cent after RoundMoney.
func (r *textRenderer) amount(d decimal.Decimal) string {
	return r.p.Sprintf("%.2f", utils.RoundMoney(d).InexactFloat64())
}

func (r *textRenderer) header(title string, period domain.Period) {
	if r.company != "" {
		fmt.Fprintln(r.w, r.company)
	}
	fmt.Fprintln(r.w, title)
	fmt.Fprintf(r.w, "Del %s al %s\n\n", period.Start.Format(domain.DateLayout), period.End.Format(domain.DateLayout))
}

func (r *textRenderer) line(name string, amounts ...decimal.Decimal) {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s", nameWidth, name)
	for _, a := range amounts {
		fmt.Fprintf(&b, " %*s", amountWidth, r.amount(a))
	}
	fmt.Fprintln(r.w, strings.TrimRight(b.String(), " "))
}

func (r *textRenderer) columns(names ...string) {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s", nameWidth, "")
	for _, n := range names {
		fmt.Fprintf(&b, " %*s", amountWidth, n)
	}
	fmt.Fprintln(r.w, strings.TrimRight(b.String(), " "))
}

func (r *textRenderer) section(title string, rows []domain.AccountAmount, totalLabel string, total decimal.Decimal) {
	fmt.Fprintln(r.w, title)
	for _, row := range rows {
		r.line(row.Name, row.NetAmount)
	}
	r.line(totalLabel, total)
	fmt.Fprintln(r.w)
}

func (r *textRenderer) cashLines(title string, rows []domain.CashFlowLine, totalLabel string, total decimal.Decimal) {
	fmt.Fprintln(r.w, title)
	for _, row := range rows {
		r.line(row.Name, row.Amount)
	}
	r.line(totalLabel, total)
	fmt.Fprintln(r.w)
}

func (r *textRenderer) warnings(warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(r.w, "Advertencias:")
	for _, w := range warnings {
		fmt.Fprintf(r.w, "  - %s\n", w.Message)
	}
}

func (r *textRenderer) trialBalance(report *domain.TrialBalanceReport) {
	r.header("Balanza de comprobación", report.Period)
	r.columns("Debe", "Haber", "Saldo")
	for _, row := range report.Rows {
		r.line(row.AccountName, row.Debit, row.Credit, row.Balance)
	}
	r.line("Totales", report.TotalDebit, report.TotalCredit, report.TotalBalance)
	if report.Balanced {
		fmt.Fprintln(r.w, "\nLa balanza está cuadrada.")
	} else {
		fmt.Fprintln(r.w, "\nLa balanza NO está cuadrada.")
	}
	r.warnings(report.Warnings)
}

func (r *textRenderer) balanceSheet(report *domain.BalanceSheetReport) {
	r.header("Balance general", report.Period)
	r.section("Activo circulante", report.CurrentAssets, "Total activo circulante", report.TotalCurrentAssets)
	r.section("Activo no circulante", report.NonCurrentAssets, "Total activo no circulante", report.TotalNonCurrentAssets)
	r.line("TOTAL ACTIVO", report.TotalAssets)
	fmt.Fprintln(r.w)
	r.section("Pasivo", report.Liabilities, "Total pasivo", report.TotalLiabilities)
	r.section("Capital contable", report.Equity, "Total capital contable", report.TotalEquity)
	r.line("TOTAL PASIVO Y CAPITAL", report.TotalLiabilitiesAndEquity)
	r.warnings(report.Warnings)
}

func (r *textRenderer) incomeStatement(report *domain.IncomeStatementReport) {
	r.header("Estado de resultados", report.Period)
	r.section("Ingresos", report.Revenue, "Total ingresos", report.TotalRevenue)
	r.section("Costos", report.Costs, "Total costos", report.TotalCost)
	r.line("Utilidad bruta", report.GrossProfit)
	fmt.Fprintln(r.w)
	r.section("Gastos de operación", report.Expenses, "Total gastos de operación", report.TotalOperatingExpense)
	r.line(domain.PeriodResultLabel(report.PeriodResult), report.PeriodResult.Abs())
	r.warnings(report.Warnings)
}

func (r *textRenderer) equityRows(rows []domain.EquityChangesRow) {
	for _, row := range rows {
		r.line(row.Concept, row.Contributed, row.Earned, row.Total)
	}
}

func (r *textRenderer) equityChanges(report *domain.EquityChangesReport) {
	r.header("Estado de cambios en el capital contable", report.Period)
	r.columns("Contribuido", "Ganado", "Total")
	r.equityRows(report.OpeningRows)
	fmt.Fprintln(r.w, "Aumentos")
	r.equityRows(report.Increases)
	r.equityRows([]domain.EquityChangesRow{report.IncreasesTotal})
	fmt.Fprintln(r.w, "Disminuciones")
	r.equityRows(report.Decreases)
	r.equityRows([]domain.EquityChangesRow{report.DecreasesTotal})
	fmt.Fprintln(r.w)
	r.line("Reserva legal", report.LegalReserve)
	r.line("Capital contable al cierre", report.TotalCapital)
	r.warnings(report.Warnings)
}

func (r *textRenderer) cashSummary(s domain.CashFlowSummary) {
	r.cashLines("Financiamiento", s.Financing, "Total financiamiento", s.TotalFinancing)
	r.line("Total de fuentes", s.TotalSources)
	fmt.Fprintln(r.w)
	r.cashLines("Aplicaciones", s.Applications, "Total aplicaciones", s.TotalApplications)
	r.line("Aumento (disminución) de efectivo", s.NetCashChange)
	r.line("Bancos al inicio", s.OpeningBank)
	r.line("Bancos al cierre", s.EndingBank)
	r.line("Caja al inicio", s.OpeningCash)
	r.line("Caja al cierre", s.EndingCash)
	r.line("Efectivo y equivalentes al cierre", s.EndingCashAndEquivalents)
}

func (r *textRenderer) cashFlowIndirect(report *domain.CashFlowIndirectReport) {
	r.header("Estado de flujos de efectivo (método indirecto)", report.Period)
	fmt.Fprintln(r.w, "Operación")
	r.line(domain.PeriodResultLabel(report.PeriodResult), report.PeriodResult)
	r.line("Provisión de ISR", report.IncomeTaxProvision)
	r.line("Provisión de PTU", report.ProfitSharingProvision)
	r.cashLines("Partidas que no afectan el efectivo", report.Depreciation, "Total depreciación", report.TotalDepreciation)
	r.line("Flujo de operación", report.CashFromOperations)
	fmt.Fprintln(r.w)
	r.cashSummary(report.CashFlowSummary)
	r.warnings(report.Warnings)
}

func (r *textRenderer) cashFlowDirect(report *domain.CashFlowDirectReport) {
	r.header("Estado de flujos de efectivo (método directo)", report.Period)
	fmt.Fprintln(r.w, "Operación")
	r.line("Cobros de clientes", report.OperatingReceipts)
	r.line("Pagos de costos", report.CostPayments)
	r.line("Pagos de gastos", report.ExpensePayments)
	r.line("Impuestos pagados", report.TaxesPaid)
	r.line("Flujo de operación", report.CashFromOperations)
	fmt.Fprintln(r.w)
	r.cashSummary(report.CashFlowSummary)
	r.warnings(report.Warnings)
}

func (r *textRenderer) journalBook(report *domain.JournalBookReport) {
	r.header("Libro diario", report.Period)
	r.columns("Debe", "Haber")
	for _, e := range report.Entries {
		fmt.Fprintf(r.w, "Asiento %d  %s  %s\n", e.EntryNumber, e.Date.Format(domain.DateLayout), e.Description)
		for _, l := range e.Lines {
			r.line(l.AccountName, l.Debit, l.Credit)
		}
		r.line("Suma", e.TotalDebit, e.TotalCredit)
	}
	fmt.Fprintln(r.w)
	r.line("Totales", report.TotalDebit, report.TotalCredit)
	r.warnings(report.Warnings)
}

func (r *textRenderer) generalLedger(report *domain.GeneralLedgerReport) {
	r.header("Libro mayor", report.Period)
	for _, acc := range report.Accounts {
		fmt.Fprintf(r.w, "%d %s\n", acc.AccountID, acc.AccountName)
		r.columns("Debe", "Haber")
		for _, l := range acc.Lines {
			r.line(fmt.Sprintf("%s #%d %s", l.Date.Format(domain.DateLayout), l.EntryNumber, l.Description), l.Debit, l.Credit)
		}
		r.line("Movimientos", acc.TotalDebit, acc.TotalCredit)
		r.line("Saldo", acc.DebitBalance, acc.CreditBalance)
		fmt.Fprintln(r.w)
	}
	r.warnings(report.Warnings)
}
