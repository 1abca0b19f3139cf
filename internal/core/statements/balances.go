package statements

import (
	"fmt"
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Balance holds the period totals of one account.
// Net follows the class sign convention and is zero for unknown accounts.
type Balance struct {
	AccountID int64
	Account   domain.Account
	Known     bool
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Net       decimal.Decimal
}

// Raw is Debit - Credit, independent of class.
func (b Balance) Raw() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}

// Name returns the account name, or domain.UnknownAccountName.
func (b Balance) Name() string {
	if !b.Known {
		return domain.UnknownAccountName
	}
	return b.Account.Name
}

// Balances is the output of the aggregator and the only input the builders read.
type Balances struct {
	Period   domain.Period
	rows     []Balance
	Warnings []domain.Warning
}

// AggregateBalances accumulates debit and credit per account for every movement
// dated inside period. Accounts without movements in the period are absent.
// Movements on accounts missing from the catalog stay in the raw totals and produce
// a warning, but never contribute to class-based results.
func AggregateBalances(catalog *Catalog, movements []domain.Movement, period domain.Period) *Balances {
	totals := make(map[int64]*Balance)
	for _, m := range movements {
		if !period.Contains(m.Date) {
			continue
		}
		b, ok := totals[m.AccountID]
		if !ok {
			b = &Balance{AccountID: m.AccountID, Debit: decimal.Zero, Credit: decimal.Zero, Net: decimal.Zero}
			b.Account, b.Known = catalog.Lookup(m.AccountID)
			totals[m.AccountID] = b
		}
		b.Debit = b.Debit.Add(m.Debit)
		b.Credit = b.Credit.Add(m.Credit)
	}

	out := &Balances{Period: period, rows: make([]Balance, 0, len(totals)), Warnings: []domain.Warning{}}
	for _, b := range totals {
		out.rows = append(out.rows, *b)
	}
	sort.Slice(out.rows, func(i, j int) bool { return out.rows[i].AccountID < out.rows[j].AccountID })

	for i := range out.rows {
		b := &out.rows[i]
		if !b.Known {
			out.Warnings = append(out.Warnings, domain.Warning{
				AccountID: b.AccountID,
				Message:   fmt.Sprintf("movements reference account %d which is not in the catalog", b.AccountID),
			})
			continue
		}
		net, err := accounting.SignedNet(b.Account.Class, b.Debit, b.Credit)
		if err != nil {
			b.Known = false
			out.Warnings = append(out.Warnings, domain.Warning{
				AccountID: b.AccountID,
				Message:   fmt.Sprintf("account %d excluded: %v", b.AccountID, err),
			})
			continue
		}
		b.Net = net
	}
	return out
}

// All returns every aggregated account, known or not, ordered by account id.
func (b *Balances) All() []Balance {
	out := make([]Balance, len(b.rows))
	copy(out, b.rows)
	return out
}

// Class returns the known accounts of a class, ordered by account id.
func (b *Balances) Class(class domain.AccountClass) []Balance {
	var out []Balance
	for _, r := range b.rows {
		if r.Known && r.Account.Class == class {
			out = append(out, r)
		}
	}
	return out
}

// Bucket returns the known accounts tagged with a cash flow bucket.
func (b *Balances) Bucket(bucket domain.CashFlowBucket) []Balance {
	var out []Balance
	for _, r := range b.rows {
		if r.Known && r.Account.CashFlowBucket == bucket {
			out = append(out, r)
		}
	}
	return out
}

// TotalNet sums the Net of every known account of a class.
func (b *Balances) TotalNet(class domain.AccountClass) decimal.Decimal {
	return sumNet(b.Class(class))
}

func sumNet(rows []Balance) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Net)
	}
	return total
}

func sumRaw(rows []Balance) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Raw())
	}
	return total
}

func toAmounts(rows []Balance) []domain.AccountAmount {
	out := make([]domain.AccountAmount, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.AccountAmount{AccountID: r.AccountID, Name: r.Name(), NetAmount: r.Net})
	}
	return out
}

func copyWarnings(w []domain.Warning) []domain.Warning {
	out := make([]domain.Warning, len(w))
	copy(out, w)
	return out
}
