package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleRow is one line of the computed amortization schedule: a processed
// event plus before/after snapshots of the running balances. Exactly one of
// Payment/Expense carries the event amount; the other stays zero. An asof row
// carries neither.
type ScheduleRow struct {
	Date   time.Time
	Type   EntryType
	Source Source
	Note   string

	// Days is the whole-day gap since the previous event (or the ledger
	// start date for the first row). Never negative.
	Days int

	// Accrued is the interest earned over Days at the principal balance
	// held during that interval.
	Accrued decimal.Decimal

	Payment decimal.Decimal
	Expense decimal.Decimal

	// How a payment was split. Always zero for expense and asof rows, and
	// AppliedToInterest + AppliedToPrincipal == Payment for payment rows.
	AppliedToInterest  decimal.Decimal
	AppliedToPrincipal decimal.Decimal

	PrincipalBefore decimal.Decimal
	PrincipalAfter  decimal.Decimal

	// CarryInterest is the unpaid interest balance after this row.
	CarryInterest decimal.Decimal
}

// Totals summarizes the ledger as of the last row. Balance is always
// Principal + CarryInterest, never computed independently.
type Totals struct {
	Principal     decimal.Decimal
	CarryInterest decimal.Decimal
	Balance       decimal.Decimal
}
