package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/utils"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// ErrChecksFailed is returned by the check command when the ledger has problems.
var ErrChecksFailed = errors.New("ledger checks failed")

// options are the flags shared by every subcommand.
type options struct {
	accountsPath  string
	movementsPath string
	company       string
	locale        string
	settings      *viper.Viper
}

// ledger is what the CSV inputs load into.
type ledger struct {
	accounts  []domain.Account
	movements []domain.Movement
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{settings: viper.New()}
	opts.settings.SetDefault("OPENING_BANK_BALANCE", "100000")
	opts.settings.SetDefault("OPENING_CASH_BALANCE", "50000")
	opts.settings.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "contabilidad",
		Short: "Financial statements from a double-entry ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newTokenCommand(opts))

	return rootCmd
}

// addLedgerFlags registers the inputs of the commands that read a ledger.
func (o *options) addLedgerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.accountsPath, "accounts", "", "chart of accounts CSV (account_id,name,class,type,cash_flow_bucket,fixed_asset_key)")
	flags.StringVar(&o.movementsPath, "movements", "", "movements CSV (movement_id,account_id,date,description,debit,credit,entry_number)")
	_ = cmd.MarkFlagRequired("accounts")
	_ = cmd.MarkFlagRequired("movements")
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

func (o *options) load() (*ledger, error) {
	accounts, err := readFile(o.accountsPath, ReadAccounts)
	if err != nil {
		return nil, err
	}
	movements, err := readFile(o.movementsPath, ReadMovements)
	if err != nil {
		return nil, err
	}
	return &ledger{accounts: accounts, movements: movements}, nil
}

func (o *options) cashFlowOptions() (statements.CashFlowOptions, error) {
	bank, err := decimal.NewFromString(o.settings.GetString("OPENING_BANK_BALANCE"))
	if err != nil {
		return statements.CashFlowOptions{}, fmt.Errorf("invalid opening bank balance: %w", err)
	}
	cash, err := decimal.NewFromString(o.settings.GetString("OPENING_CASH_BALANCE"))
	if err != nil {
		return statements.CashFlowOptions{}, fmt.Errorf("invalid opening cash balance: %w", err)
	}
	return statements.CashFlowOptions{OpeningBank: bank, OpeningCash: cash}, nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

// reportKinds maps each report name to the code that computes and prints it.
// Text output goes through r; JSON output uses the same DTOs as the HTTP API.
var reportKinds = map[string]func(l *ledger, p domain.Period, cf statements.CashFlowOptions, company string, r *textRenderer) (any, error){
	"trial-balance": func(l *ledger, p domain.Period, _ statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report := statements.ComputeTrialBalance(l.accounts, l.movements, p)
		if r != nil {
			r.trialBalance(report)
		}
		return dto.ToTrialBalanceResponse(company, report), nil
	},
	"balance-sheet": func(l *ledger, p domain.Period, _ statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report, err := statements.ComputeBalanceSheet(l.accounts, l.movements, p)
		if r != nil {
			r.balanceSheet(report)
		}
		var inconsistent *statements.ConsistencyError
		if errors.As(err, &inconsistent) {
			return dto.ToLedgerInconsistentResponse(company, report, inconsistent.Difference()), err
		}
		return dto.ToBalanceSheetResponse(company, report), err
	},
	"income-statement": func(l *ledger, p domain.Period, _ statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report := statements.ComputeIncomeStatement(l.accounts, l.movements, p)
		if r != nil {
			r.incomeStatement(report)
		}
		return dto.ToIncomeStatementResponse(company, report), nil
	},
	"equity-changes": func(l *ledger, p domain.Period, _ statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report := statements.ComputeEquityChanges(l.accounts, l.movements, p)
		if r != nil {
			r.equityChanges(report)
		}
		return dto.ToEquityChangesResponse(company, report), nil
	},
	"cash-flow-indirect": func(l *ledger, p domain.Period, cf statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report := statements.ComputeCashFlowIndirect(l.accounts, l.movements, p, cf)
		if r != nil {
			r.cashFlowIndirect(report)
		}
		return dto.ToCashFlowIndirectResponse(company, report), nil
	},
	"cash-flow-direct": func(l *ledger, p domain.Period, cf statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report := statements.ComputeCashFlowDirect(l.accounts, l.movements, p, cf)
		if r != nil {
			r.cashFlowDirect(report)
		}
		return dto.ToCashFlowDirectResponse(company, report), nil
	},
	"journal": func(l *ledger, p domain.Period, _ statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report := statements.ComputeJournalBook(l.accounts, l.movements, p)
		if r != nil {
			r.journalBook(report)
		}
		return dto.ToJournalBookResponse(company, report), nil
	},
	"ledger": func(l *ledger, p domain.Period, _ statements.CashFlowOptions, company string, r *textRenderer) (any, error) {
		report := statements.ComputeGeneralLedger(l.accounts, l.movements, p)
		if r != nil {
			r.generalLedger(report)
		}
		return dto.ToGeneralLedgerResponse(company, report), nil
	},
}

func reportKindNames() []string {
	names := make([]string, 0, len(reportKinds))
	for name := range reportKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newReportCommand(opts *options) *cobra.Command {
	var from, to string
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "report <kind>",
		Short:     "Print a financial report for a period",
		Long:      "Print a financial report for a period. Kinds: " + strings.Join(reportKindNames(), ", "),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: reportKindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := domain.ParsePeriod(from, to)
			if err != nil {
				return err
			}
			locale, err := language.Parse(opts.locale)
			if err != nil {
				return fmt.Errorf("invalid locale %q: %w", opts.locale, err)
			}
			cashFlow, err := opts.cashFlowOptions()
			if err != nil {
				return err
			}
			l, err := opts.load()
			if err != nil {
				return err
			}

			var renderer *textRenderer
			if !asJSON {
				renderer = newTextRenderer(cmd.OutOrStdout(), locale, opts.company)
			}
			payload, reportErr := reportKinds[args[0]](l, period, cashFlow, opts.company, renderer)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(payload); err != nil {
					return err
				}
			}

			logger := opts.logger(cmd)
			if n := statements.DetectOpeningEntries(l.movements); n > 1 {
				logger.Warn("More than one opening entry found", slog.Int("entries", n))
			}
			if reportErr != nil {
				logger.Error("Report generated with errors", slog.String("report", args[0]), slog.String("error", reportErr.Error()))
			}
			return reportErr
		},
	}

	opts.addLedgerFlags(cmd)
	flags := cmd.Flags()
	flags.StringVar(&opts.company, "company", "", "company name printed on reports")
	flags.StringVar(&opts.locale, "locale", "es-MX", "locale used to format amounts")
	flags.String("opening-bank", "", "bank balance at the start of the cash flow period")
	flags.String("opening-cash", "", "cash on hand at the start of the cash flow period")
	_ = opts.settings.BindPFlag("OPENING_BANK_BALANCE", flags.Lookup("opening-bank"))
	_ = opts.settings.BindPFlag("OPENING_CASH_BALANCE", flags.Lookup("opening-cash"))
	cmd.Flags().StringVar(&from, "from", "", "period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "period end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newCheckCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check entry balance, opening entry uniqueness and the trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.load()
			if err != nil {
				return err
			}
			findings := CheckLedger(l.accounts, l.movements)
			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				fmt.Fprintln(out, "OK")
				return nil
			}
			for _, f := range findings {
				fmt.Fprintln(out, f)
			}
			return ErrChecksFailed
		},
	}
	opts.addLedgerFlags(cmd)
	return cmd
}

func newTokenCommand(opts *options) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API access token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := opts.settings.GetString("JWT_SECRET")
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			token, err := utils.IssueAccessToken(subject, secret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "user recorded as the author of entries")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().String("secret", "", "signing secret (defaults to JWT_SECRET)")
	_ = opts.settings.BindPFlag("JWT_SECRET", cmd.Flags().Lookup("secret"))
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

// checkEntries validates every entry as a group of lines, in entry number order.
func checkEntries(movements []domain.Movement) []string {
	entries := make(map[int64][]domain.EntryLine)
	for _, m := range movements {
		entries[m.EntryNumber] = append(entries[m.EntryNumber], domain.EntryLine{
			AccountID: m.AccountID,
			Debit:     m.Debit,
			Credit:    m.Credit,
		})
	}
	numbers := make([]int64, 0, len(entries))
	for n := range entries {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	var findings []string
	for _, n := range numbers {
		if n <= 0 {
			findings = append(findings, fmt.Sprintf("entry %d: entry number must be positive", n))
			continue
		}
		if debit, credit := accounting.EntryTotals(entries[n]); !debit.Equal(credit) {
			findings = append(findings, fmt.Sprintf("entry %d: debits and credits differ", n))
		}
		if err := accounting.ValidateEntry(entries[n]); err != nil && !errors.Is(err, apperrors.ErrEntryUnbalanced) {
			findings = append(findings, fmt.Sprintf("entry %d: %v", n, err))
		}
	}
	return findings
}

// CheckLedger lists every integrity problem found in the movements.
func CheckLedger(accounts []domain.Account, movements []domain.Movement) []string {
	findings := checkEntries(movements)
	if n := statements.DetectOpeningEntries(movements); n > 1 {
		findings = append(findings, fmt.Sprintf("%d opening entries found, expected at most one", n))
	}
	if len(movements) == 0 {
		return findings
	}

	first, last := movements[0].Date, movements[0].Date
	for _, m := range movements[1:] {
		if m.Date.Before(first) {
			first = m.Date
		}
		if m.Date.After(last) {
			last = m.Date
		}
	}
	period, err := domain.NewPeriod(first, last)
	if err != nil {
		return append(findings, err.Error())
	}
	trial := statements.ComputeTrialBalance(accounts, movements, period)
	if !trial.Balanced {
		findings = append(findings, fmt.Sprintf("trial balance does not balance: debit %s, credit %s",
			trial.TotalDebit.String(), trial.TotalCredit.String()))
	}
	for _, w := range trial.Warnings {
		findings = append(findings, w.Message)
	}
	return findings
}
