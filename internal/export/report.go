package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/accrue-dev/accrue/internal/casefile"
	"github.com/accrue-dev/accrue/internal/ledger"
)

// WriteReport renders the printable statement: case header, schedule, totals,
// and the methodology the numbers were computed under. The layout is fixed so
// two runs over the same case diff cleanly.
func WriteReport(w io.Writer, cfg *casefile.Config, sched ledger.Schedule) error {
	fmt.Fprintln(w, "SIMPLE INTEREST AMORTIZATION STATEMENT")
	fmt.Fprintln(w, "======================================")
	fmt.Fprintln(w)

	basis := cfg.Ledger.Basis
	if basis == 0 {
		basis = ledger.Basis365
	}

	hw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(hw, "Case:\t%s\n", cfg.Case.Name)
	fmt.Fprintf(hw, "Debtor:\t%s\n", cfg.Case.Debtor)
	fmt.Fprintf(hw, "Starting principal:\t%s\n", cfg.Ledger.Principal)
	fmt.Fprintf(hw, "Start date:\t%s\n", cfg.Ledger.StartDate)
	fmt.Fprintf(hw, "Annual rate:\t%s%%\n", cfg.Ledger.AnnualRatePct)
	fmt.Fprintf(hw, "Day-count basis:\t%d\n", basis)
	if cfg.Ledger.AsOfDate != "" {
		fmt.Fprintf(hw, "As-of date:\t%s\n", cfg.Ledger.AsOfDate)
	}
	if err := hw.Flush(); err != nil {
		return fmt.Errorf("flushing header: %w", err)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DATE\tTYPE\tDAYS\tACCRUED\tPAYMENT\tEXPENSE\tTO INTEREST\tTO PRINCIPAL\tPRINCIPAL AFTER\tUNPAID INTEREST\t")
	for _, row := range sched.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Date.Format(dateFormat),
			row.Type,
			row.Days,
			cents(row.Accrued),
			cents(row.Payment),
			cents(row.Expense),
			cents(row.AppliedToInterest),
			cents(row.AppliedToPrincipal),
			cents(row.PrincipalAfter),
			cents(row.CarryInterest),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing schedule: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Principal outstanding: %s\n", cents(sched.Totals.Principal))
	fmt.Fprintf(w, "Unpaid interest:       %s\n", cents(sched.Totals.CarryInterest))
	fmt.Fprintf(w, "Total due:             %s\n", cents(sched.Totals.Balance))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Methodology:")
	fmt.Fprintf(w, "  1. Daily rate = annual rate / %d. Interest accrued between entries = principal x daily rate x days.\n", basis)
	fmt.Fprintln(w, "  2. Payments apply to accrued unpaid interest first; the remainder reduces principal.")
	fmt.Fprintln(w, "  3. Expenses increase principal on their effective date; interest is simple (no compounding).")
	return nil
}

func cents(d decimal.Decimal) string {
	return d.StringFixed(2)
}
