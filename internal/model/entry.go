package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies ledger events.
type EntryType string

const (
	TypePayment EntryType = "payment"
	TypeExpense EntryType = "expense"
	// TypeAsOf marks the synthetic projection row appended after the last
	// real event when an as-of date is requested. It never appears in input.
	TypeAsOf EntryType = "asof"
)

// Source tags where a payment came from. It is carried through the schedule
// but never consulted by the accrual math; the form filler subtotals on it.
type Source string

const (
	SourceDirect    Source = "direct"
	SourceGarnishee Source = "garnishee"
)

// LedgerEntry is a raw row from entries.csv. Amount stays free text
// ("$1,200.50") until the normalizer parses it; a zero Date marks a draft row
// that is kept in the file but excluded from calculation.
type LedgerEntry struct {
	ID     string
	Date   time.Time
	Type   EntryType
	Amount string
	Note   string
	Source Source
}

// IsDraft reports whether the entry is still being edited (no date yet).
func (e LedgerEntry) IsDraft() bool {
	return e.Date.IsZero()
}

// AccrualEvent is a validated LedgerEntry: dated, with the amount coerced to
// a finite non-zero decimal. Immutable once produced by the normalizer.
type AccrualEvent struct {
	Date   time.Time
	Type   EntryType
	Amount decimal.Decimal
	Note   string
	Source Source
}
