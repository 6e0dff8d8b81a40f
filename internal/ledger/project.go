package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/accrue-dev/accrue/internal/model"
)

// AsOfNote is the note carried by the synthetic projection row.
const AsOfNote = "As-of accrual"

// Project extends the walked state to an optional as-of date. When asOf is
// strictly later (by whole days) than the last processed date, the gap's
// accrual lands in carried interest and one synthetic asof row records it.
// Principal is never touched by a projection. Otherwise rows and state come
// back unchanged.
func Project(rows []model.ScheduleRow, st State, asOf time.Time, dailyRate decimal.Decimal) ([]model.ScheduleRow, State) {
	if asOf.IsZero() || st.LastDate.IsZero() {
		return rows, st
	}
	days := DaysBetween(st.LastDate, asOf)
	if days <= 0 {
		return rows, st
	}

	accrued := Accrue(st.Principal, dailyRate, days)
	st.CarryInterest = st.CarryInterest.Add(accrued)
	st.LastDate = asOf

	rows = append(rows, model.ScheduleRow{
		Date:            asOf,
		Type:            model.TypeAsOf,
		Note:            AsOfNote,
		Days:            days,
		Accrued:         accrued,
		PrincipalBefore: st.Principal,
		PrincipalAfter:  st.Principal,
		CarryInterest:   st.CarryInterest,
	})
	return rows, st
}

// TotalsOf derives summary totals from a final state. Balance is always the
// arithmetic sum of the parts so it cannot drift from them.
func TotalsOf(st State) model.Totals {
	return model.Totals{
		Principal:     st.Principal,
		CarryInterest: st.CarryInterest,
		Balance:       st.Principal.Add(st.CarryInterest),
	}
}
