package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	accountFields   = 6
	colAccountID    = 0
	colAccountName  = 1
	colClass        = 2
	colType         = 3
	colBucket       = 4
	colFixedAsset   = 5
	movementFields  = 7
	colMovementID   = 0
	colMovAccountID = 1
	colDate         = 2
	colDescription  = 3
	colDebit        = 4
	colCredit       = 5
	colEntryNumber  = 6
)

// ReadAccounts reads a chart of accounts with the header
// account_id,name,class,type,cash_flow_bucket,fixed_asset_key.
func ReadAccounts(r io.Reader) ([]domain.Account, error) {
	records, err := readRecords(r, accountFields)
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	accounts := make([]domain.Account, 0, len(records))
	for i, rec := range records {
		acc, err := unmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("accounts row %d: %w", i+2, err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// ReadMovements reads movements with the header
// movement_id,account_id,date,description,debit,credit,entry_number.
// An empty debit or credit cell is zero. Negative amounts and lines carrying both
// a debit and a credit are rejected.
func ReadMovements(r io.Reader) ([]domain.Movement, error) {
	records, err := readRecords(r, movementFields)
	if err != nil {
		return nil, fmt.Errorf("reading movements CSV: %w", err)
	}

	movements := make([]domain.Movement, 0, len(records))
	for i, rec := range records {
		m, err := unmarshalMovement(rec)
		if err != nil {
			return nil, fmt.Errorf("movements row %d: %w", i+2, err)
		}
		movements = append(movements, m)
	}
	return movements, nil
}

// readRecords returns every row after the header.
func readRecords(r io.Reader, fields int) ([][]string, error) {
	decoded, err := newUTF8Reader(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func unmarshalAccount(rec []string) (domain.Account, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rec[colAccountID]), 10, 64)
	if err != nil {
		return domain.Account{}, fmt.Errorf("parsing account_id %q: %w", rec[colAccountID], err)
	}
	class := domain.AccountClass(strings.ToUpper(strings.TrimSpace(rec[colClass])))
	if !class.IsValid() {
		return domain.Account{}, fmt.Errorf("unknown class %q", rec[colClass])
	}
	accountType := domain.AccountType(strings.ToUpper(strings.TrimSpace(rec[colType])))
	if class == domain.Asset && accountType != domain.TypeCurrent && accountType != domain.TypeNonCurrent {
		return domain.Account{}, fmt.Errorf("asset type %q must be %s or %s", rec[colType], domain.TypeCurrent, domain.TypeNonCurrent)
	}
	return domain.Account{
		AccountID:      id,
		Name:           strings.TrimSpace(rec[colAccountName]),
		Class:          class,
		Type:           accountType,
		CashFlowBucket: domain.CashFlowBucket(strings.ToUpper(strings.TrimSpace(rec[colBucket]))),
		FixedAssetKey:  domain.FixedAssetKey(strings.ToUpper(strings.TrimSpace(rec[colFixedAsset]))),
	}, nil
}

func unmarshalMovement(rec []string) (domain.Movement, error) {
	var m domain.Movement
	var err error

	if m.MovementID, err = strconv.ParseInt(strings.TrimSpace(rec[colMovementID]), 10, 64); err != nil {
		return m, fmt.Errorf("parsing movement_id %q: %w", rec[colMovementID], err)
	}
	if m.AccountID, err = strconv.ParseInt(strings.TrimSpace(rec[colMovAccountID]), 10, 64); err != nil {
		return m, fmt.Errorf("parsing account_id %q: %w", rec[colMovAccountID], err)
	}
	if m.Date, err = time.Parse(domain.DateLayout, strings.TrimSpace(rec[colDate])); err != nil {
		return m, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}
	m.Description = strings.TrimSpace(rec[colDescription])
	if m.Debit, err = parseAmount(rec[colDebit]); err != nil {
		return m, fmt.Errorf("parsing debit: %w", err)
	}
	if m.Credit, err = parseAmount(rec[colCredit]); err != nil {
		return m, fmt.Errorf("parsing credit: %w", err)
	}
	if m.Debit.IsPositive() && m.Credit.IsPositive() {
		return m, errors.New("debit and credit are both set")
	}
	if m.EntryNumber, err = strconv.ParseInt(strings.TrimSpace(rec[colEntryNumber]), 10, 64); err != nil {
		return m, fmt.Errorf("parsing entry_number %q: %w", rec[colEntryNumber], err)
	}
	return m, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %s", s)
	}
	return amount, nil
}
