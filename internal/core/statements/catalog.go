// Package statements derives financial statements from a chart of accounts and a
// set of double-entry movements. Every function is pure: inputs are never modified
// and the same inputs always produce the same report.
package statements

import (
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// Catalog is a read-only lookup over the chart of accounts.
type Catalog struct {
	byID map[int64]domain.Account
	ids  []int64
}

// NewCatalog indexes accounts by id. Later duplicates of an id replace earlier ones.
func NewCatalog(accounts []domain.Account) *Catalog {
	c := &Catalog{byID: make(map[int64]domain.Account, len(accounts))}
	for _, a := range accounts {
		if _, seen := c.byID[a.AccountID]; !seen {
			c.ids = append(c.ids, a.AccountID)
		}
		c.byID[a.AccountID] = a
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })
	return c
}

// Lookup returns the account with the given id.
func (c *Catalog) Lookup(accountID int64) (domain.Account, bool) {
	a, ok := c.byID[accountID]
	return a, ok
}

// Accounts returns the catalog ordered by account id.
func (c *Catalog) Accounts() []domain.Account {
	out := make([]domain.Account, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.byID[id])
	}
	return out
}

// Len is the number of accounts in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Name returns the account name, or domain.UnknownAccountName.
func (c *Catalog) Name(accountID int64) string {
	if a, ok := c.byID[accountID]; ok {
		return a.Name
	}
	return domain.UnknownAccountName
}
