package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/accrue-dev/accrue/internal/model"
)

// Normalize filters raw entries down to computable events and sorts them.
// Rows missing a date, with an unparseable amount, or with a zero amount are
// drafts mid-edit and are silently dropped, never rejected.
//
// Sort is by calendar date ascending. Two events on the same date place the
// expense before the payment: a same-day expense raises principal before the
// payment is allocated. That is a deliberate policy, not an artifact.
func Normalize(entries []model.LedgerEntry) []model.AccrualEvent {
	var events []model.AccrualEvent
	for _, e := range entries {
		if e.IsDraft() {
			continue
		}
		amt, ok := ParseMoney(e.Amount)
		if !ok || amt.IsZero() {
			continue
		}
		events = append(events, model.AccrualEvent{
			Date:   e.Date,
			Type:   e.Type,
			Amount: amt,
			Note:   e.Note,
			Source: e.Source,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		di, dj := dateOnly(events[i].Date), dateOnly(events[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return events[i].Type == model.TypeExpense && events[j].Type == model.TypePayment
	})
	return events
}

// Ready reports whether the ledger has enough input to compute anything: a
// starting principal strictly greater than zero and a start date. When not
// ready the engine returns an empty schedule rather than an error; the caller
// is usually a half-filled form.
func Ready(principal decimal.Decimal, startDate time.Time) bool {
	return principal.IsPositive() && !startDate.IsZero()
}
