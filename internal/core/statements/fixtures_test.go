package statements_test

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// Account ids of the default chart used across the tests.
const (
	bancos         int64 = 1
	caja           int64 = 2
	mercancias     int64 = 4
	terrenos       int64 = 9
	edificios      int64 = 10
	depAcumEdif    int64 = 11
	equipoComputo  int64 = 14
	docsPorPagar   int64 = 18
	capitalSocial  int64 = 21
	aportaciones   int64 = 22
	ventas         int64 = 23
	costoVentas    int64 = 24
	renta          int64 = 25
	depEjercicio   int64 = 28
	marcas         int64 = 100
	missingAccount int64 = 999
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func january() domain.Period {
	p, err := domain.NewPeriod(day(1), day(31))
	if err != nil {
		panic(err)
	}
	return p
}

func chart() []domain.Account {
	return append(accounting.DefaultChart(), domain.Account{
		AccountID: marcas, Name: "Marcas", Class: domain.Asset, Type: domain.TypeNonCurrent,
	})
}

// ledgerBuilder appends balanced two-line entries with increasing entry numbers.
type ledgerBuilder struct {
	movements []domain.Movement
	entry     int64
}

func (l *ledgerBuilder) post(date time.Time, desc string, debitAcc, creditAcc int64, amount string) *ledgerBuilder {
	l.entry++
	a := dec(amount)
	id := int64(len(l.movements))
	l.movements = append(l.movements,
		domain.Movement{MovementID: id + 1, AccountID: debitAcc, Date: date, Description: desc, Debit: a, Credit: decimal.Zero, EntryNumber: l.entry},
		domain.Movement{MovementID: id + 2, AccountID: creditAcc, Date: date, Description: desc, Debit: decimal.Zero, Credit: a, EntryNumber: l.entry},
	)
	return l
}

func openingOnly() []domain.Movement {
	l := &ledgerBuilder{}
	l.post(day(1), domain.OpeningEntryDescription, bancos, capitalSocial, "100000")
	return l.movements
}

// tradingMonth is the opening entry plus a sale, its cost and the rent.
func tradingMonth() []domain.Movement {
	l := &ledgerBuilder{}
	l.post(day(1), domain.OpeningEntryDescription, bancos, capitalSocial, "100000").
		post(day(5), "Venta de contado", bancos, ventas, "5000").
		post(day(5), "Costo de la venta", costoVentas, mercancias, "2000").
		post(day(10), "Pago de renta", renta, bancos, "1000")
	return l.movements
}

// investingMonth buys a building, depreciates it, borrows and sells.
func investingMonth() []domain.Movement {
	l := &ledgerBuilder{}
	l.post(day(1), domain.OpeningEntryDescription, bancos, capitalSocial, "100000").
		post(day(3), "Compra de edificio", edificios, bancos, "50000").
		post(day(28), "Depreciación", depEjercicio, depAcumEdif, "1000").
		post(day(15), "Préstamo", bancos, docsPorPagar, "20000").
		post(day(20), "Venta de contado", bancos, ventas, "5000")
	return l.movements
}
