// Package ledger computes simple-interest amortization schedules for a debt:
// day-count accrual between events, interest-first payment allocation, and
// running principal/interest balances. Everything here is pure; callers
// re-invoke Compute from scratch on every input change.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/accrue-dev/accrue/internal/model"
)

// Day-count conventions supported by DailyRate.
const (
	Basis360 = 360
	Basis365 = 365
)

var hundred = decimal.NewFromInt(100)

// State is the accumulator threaded through the accrual walk. Principal and
// CarryInterest never go negative by construction; LastDate is the left edge
// of the next day-count interval.
type State struct {
	Principal     decimal.Decimal
	CarryInterest decimal.Decimal
	LastDate      time.Time
}

// Input is the engine's boundary: header values plus raw entries. Zero values
// for Principal or StartDate mean "not ready yet", not an error.
type Input struct {
	Principal     decimal.Decimal
	StartDate     time.Time
	AnnualRatePct decimal.Decimal
	Basis         int       // Basis360 or Basis365; 0 defaults to 365
	AsOf          time.Time // zero = no as-of projection
	Entries       []model.LedgerEntry
}

// Schedule is the engine's output: ordered rows plus summary totals.
type Schedule struct {
	Rows   []model.ScheduleRow
	Totals model.Totals
}

// DailyRate converts an annual percentage into a per-day rate for the given
// day-count basis.
func DailyRate(annualPct decimal.Decimal, basis int) decimal.Decimal {
	if basis == 0 {
		basis = Basis365
	}
	return annualPct.Div(hundred).Div(decimal.NewFromInt(int64(basis)))
}

// Compute runs the full pipeline: normalize, walk, project, total. It is pure
// and idempotent; identical inputs yield identical schedules. Insufficient
// input short-circuits to an empty schedule with zero totals.
func Compute(in Input) Schedule {
	if !Ready(in.Principal, in.StartDate) {
		return Schedule{Totals: TotalsOf(State{})}
	}

	rate := DailyRate(in.AnnualRatePct, in.Basis)
	st := State{Principal: in.Principal, LastDate: in.StartDate}

	rows, st := Walk(Normalize(in.Entries), st, rate)
	rows, st = Project(rows, st, in.AsOf, rate)

	return Schedule{Rows: rows, Totals: TotalsOf(st)}
}

// Walk folds sorted events over st, emitting one row per event. Interest
// accrues on the principal held since the previous event; a payment applies
// to carried interest first and principal second, each portion capped so
// neither balance goes negative. Expenses raise principal on their date.
func Walk(events []model.AccrualEvent, st State, dailyRate decimal.Decimal) ([]model.ScheduleRow, State) {
	var rows []model.ScheduleRow
	for _, ev := range events {
		days := DaysBetween(st.LastDate, ev.Date)
		if days < 0 {
			// Unreachable after the sort; clamped so a negative gap can
			// never reach row construction.
			days = 0
		}
		accrued := Accrue(st.Principal, dailyRate, days)
		st.CarryInterest = st.CarryInterest.Add(accrued)

		row := model.ScheduleRow{
			Date:            ev.Date,
			Type:            ev.Type,
			Source:          ev.Source,
			Note:            ev.Note,
			Days:            days,
			Accrued:         accrued,
			PrincipalBefore: st.Principal,
		}

		switch ev.Type {
		case model.TypeExpense:
			st.Principal = st.Principal.Add(ev.Amount)
			row.Expense = ev.Amount
		case model.TypePayment:
			toInterest := decimal.Min(ev.Amount, st.CarryInterest)
			st.CarryInterest = st.CarryInterest.Sub(toInterest)
			toPrincipal := decimal.Max(decimal.Zero, ev.Amount.Sub(toInterest))
			st.Principal = decimal.Max(decimal.Zero, st.Principal.Sub(toPrincipal))
			row.Payment = ev.Amount
			row.AppliedToInterest = toInterest
			row.AppliedToPrincipal = toPrincipal
		}

		row.PrincipalAfter = st.Principal
		row.CarryInterest = st.CarryInterest
		rows = append(rows, row)
		st.LastDate = ev.Date
	}
	return rows, st
}

// Accrue returns principal × dailyRate × days. Zero rate or a non-positive
// gap accrues nothing.
func Accrue(principal, dailyRate decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return principal.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days)))
}

// DaysBetween returns the whole-day difference between two calendar dates,
// comparing UTC year/month/day only so time of day and zone never shift the
// count. Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)) / (24 * time.Hour))
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
