package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accrue-dev/accrue/internal/model"
)

// As-of with no entries: one synthetic row carrying ten days of accrual on an
// untouched principal.
func TestProject_AsOfWithNoEvents(t *testing.T) {
	in := Input{
		Principal:     dec("5000"),
		StartDate:     date(2025, 6, 1),
		AnnualRatePct: dec("9"),
		Basis:         Basis365,
		AsOf:          date(2025, 6, 11),
	}

	sched := Compute(in)
	require.Len(t, sched.Rows, 1)
	row := sched.Rows[0]

	assert.Equal(t, model.TypeAsOf, row.Type)
	assert.Equal(t, AsOfNote, row.Note)
	assert.Equal(t, 10, row.Days)
	assert.True(t, row.PrincipalBefore.Equal(dec("5000")))
	assert.True(t, row.PrincipalAfter.Equal(dec("5000")))
	assert.True(t, row.CarryInterest.Equal(row.Accrued))
	assert.True(t, row.Payment.IsZero())
	assert.True(t, row.Expense.IsZero())
	assert.True(t, row.AppliedToInterest.IsZero())
	assert.True(t, row.AppliedToPrincipal.IsZero())

	want := dec("5000").Mul(DailyRate(dec("9"), Basis365)).Mul(dec("10"))
	assert.True(t, row.Accrued.Equal(want))
	assert.True(t, sched.Totals.Balance.Equal(dec("5000").Add(want)))
}

func TestProject_AsOfAfterLastEvent(t *testing.T) {
	in := Input{
		Principal:     dec("10000"),
		StartDate:     date(2025, 1, 1),
		AnnualRatePct: dec("9"),
		Basis:         Basis365,
		AsOf:          date(2025, 3, 1),
		Entries: []model.LedgerEntry{
			entry(date(2025, 1, 31), model.TypePayment, "100"),
		},
	}

	sched := Compute(in)
	require.Len(t, sched.Rows, 2)

	last := sched.Rows[1]
	assert.Equal(t, model.TypeAsOf, last.Type)
	assert.Equal(t, 29, last.Days, "Jan 31 to Mar 1")
	assert.True(t, last.PrincipalBefore.Equal(last.PrincipalAfter))
	// The projection only advances carried interest.
	assert.True(t, last.CarryInterest.Equal(last.Accrued))
}

func TestProject_NoRowWhenAsOfNotLater(t *testing.T) {
	base := Input{
		Principal:     dec("1000"),
		StartDate:     date(2025, 1, 1),
		AnnualRatePct: dec("9"),
		Basis:         Basis365,
		Entries: []model.LedgerEntry{
			entry(date(2025, 2, 1), model.TypePayment, "50"),
		},
	}

	for _, asOf := range []time.Time{
		{},                // absent
		date(2025, 2, 1),  // equal to last event
		date(2025, 1, 15), // earlier than last event
	} {
		in := base
		in.AsOf = asOf
		sched := Compute(in)
		require.Len(t, sched.Rows, 1, "as-of %v", asOf)
		assert.NotEqual(t, model.TypeAsOf, sched.Rows[0].Type)
	}
}

func TestTotalsOf(t *testing.T) {
	st := State{Principal: dec("900.10"), CarryInterest: dec("12.34")}
	totals := TotalsOf(st)
	assert.True(t, totals.Principal.Equal(dec("900.10")))
	assert.True(t, totals.CarryInterest.Equal(dec("12.34")))
	assert.True(t, totals.Balance.Equal(dec("912.44")))

	zero := TotalsOf(State{})
	assert.True(t, zero.Balance.IsZero())
}
