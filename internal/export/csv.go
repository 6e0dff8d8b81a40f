// Package export serializes a computed schedule for consumers outside the
// terminal: delimited text for spreadsheets and a fixed-layout printable
// statement. Currency is rounded to cents here, at the edge, never upstream.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/accrue-dev/accrue/internal/model"
)

// Header is the CSV header for an exported schedule.
const Header = "date,type,source,note,days,accrued,payment,expense,applied_to_interest,applied_to_principal,principal_before,principal_after,carry_interest"

const (
	numFields    = 13
	dateFormat   = "2006-01-02"
	colDate      = 0
	colType      = 1
	colSource    = 2
	colNote      = 3
	colDays      = 4
	colAccrued   = 5
	colPayment   = 6
	colExpense   = 7
	colToInt     = 8
	colToPrin    = 9
	colPrinBefor = 10
	colPrinAfter = 11
	colCarry     = 12
)

// WriteCSV serializes schedule rows as delimited text, header first.
// encoding/csv applies the quoting consumers expect: a field containing the
// delimiter, a quote, or a newline is wrapped in quotes with embedded quotes
// doubled.
func WriteCSV(w io.Writer, rows []model.ScheduleRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a ScheduleRow to a CSV row ([]string) with dates as
// YYYY-MM-DD and money at two decimal places.
func MarshalRow(row model.ScheduleRow) []string {
	rec := make([]string, numFields)
	rec[colDate] = row.Date.Format(dateFormat)
	rec[colType] = string(row.Type)
	rec[colSource] = string(row.Source)
	rec[colNote] = row.Note
	rec[colDays] = strconv.Itoa(row.Days)
	rec[colAccrued] = row.Accrued.StringFixed(2)
	rec[colPayment] = row.Payment.StringFixed(2)
	rec[colExpense] = row.Expense.StringFixed(2)
	rec[colToInt] = row.AppliedToInterest.StringFixed(2)
	rec[colToPrin] = row.AppliedToPrincipal.StringFixed(2)
	rec[colPrinBefor] = row.PrincipalBefore.StringFixed(2)
	rec[colPrinAfter] = row.PrincipalAfter.StringFixed(2)
	rec[colCarry] = row.CarryInterest.StringFixed(2)
	return rec
}
