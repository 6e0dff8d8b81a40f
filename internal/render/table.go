// Package render draws the computed schedule for a terminal. Rounding to
// cents happens here and nowhere earlier; the engine keeps full precision.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/accrue-dev/accrue/internal/ledger"
)

const dateFormat = "2006-01-02"

// blank stands in for zero-valued optional amounts so the dense columns stay
// scannable.
const blank = "—"

// Table writes the schedule rows and totals as an aligned text table. Rows
// are treated as read-only. asOf labels the total-due line; pass the zero
// time when no as-of date was requested.
func Table(w io.Writer, sched ledger.Schedule, asOf time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "DATE\tTYPE\tDAYS\tACCRUED\tPAYMENT\tEXPENSE\t→INTEREST\t→PRINCIPAL\tPRINCIPAL\tUNPAID INT\tSOURCE\tNOTE")
	for _, row := range sched.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s → %s\t%s\t%s\t%s\n",
			row.Date.Format(dateFormat),
			row.Type,
			row.Days,
			money(row.Accrued),
			moneyOrBlank(row.Payment),
			moneyOrBlank(row.Expense),
			moneyOrBlank(row.AppliedToInterest),
			moneyOrBlank(row.AppliedToPrincipal),
			money(row.PrincipalBefore),
			money(row.PrincipalAfter),
			money(row.CarryInterest),
			row.Source,
			row.Note,
		)
	}
	if len(sched.Rows) == 0 {
		fmt.Fprintln(tw, "(no computable entries)")
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	dueLabel := "Total due (latest entry)"
	if !asOf.IsZero() {
		dueLabel = fmt.Sprintf("Total due (as of %s)", asOf.Format(dateFormat))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Principal (current):   %s\n", money(sched.Totals.Principal))
	fmt.Fprintf(w, "Unpaid interest:       %s\n", money(sched.Totals.CarryInterest))
	fmt.Fprintf(w, "%s: %s\n", dueLabel, money(sched.Totals.Balance))
	return nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func moneyOrBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return blank
	}
	return money(d)
}
