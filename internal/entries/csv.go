package entries

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/accrue-dev/accrue/internal/model"
)

// Header is the CSV header for entries.csv.
const Header = "id,date,type,amount,note,source"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colID      = 0
	colDate    = 1
	colType    = 2
	colAmount  = 3
	colNote    = 4
	colSource  = 5
)

// ReadEntries reads all ledger entries from an entries.csv reader. Draft rows
// (empty date or amount) are kept; the calculation layer decides what counts.
func ReadEntries(r io.Reader) ([]model.LedgerEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading entries CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var ents []model.LedgerEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ents = append(ents, e)
	}
	return ents, nil
}

// WriteEntries writes entries to an entries.csv writer (including header).
func WriteEntries(w io.Writer, ents []model.LedgerEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range ents {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendEntries appends entries to an existing entries.csv writer (no header).
func AppendEntries(w io.Writer, ents []model.LedgerEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range ents {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a LedgerEntry to a CSV row ([]string). Amount is
// stored verbatim as the user typed it.
func MarshalEntry(e model.LedgerEntry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	if !e.Date.IsZero() {
		row[colDate] = e.Date.Format(dateFormat)
	}
	row[colType] = string(e.Type)
	row[colAmount] = e.Amount
	row[colNote] = e.Note
	row[colSource] = string(e.Source)
	return row
}

// UnmarshalEntry converts a CSV row to a LedgerEntry. An empty date marks a
// draft row and is not an error; a garbled date or an unknown type is file
// corruption and is.
func UnmarshalEntry(record []string) (model.LedgerEntry, error) {
	if len(record) != numFields {
		return model.LedgerEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var entryDate time.Time
	if record[colDate] != "" {
		var err error
		entryDate, err = time.Parse(dateFormat, record[colDate])
		if err != nil {
			return model.LedgerEntry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}

	typ := model.EntryType(record[colType])
	switch typ {
	case model.TypePayment, model.TypeExpense:
	case "":
		typ = model.TypePayment
	default:
		return model.LedgerEntry{}, fmt.Errorf("unknown entry type %q", record[colType])
	}

	src := model.Source(record[colSource])
	switch src {
	case model.SourceDirect, model.SourceGarnishee:
	case "":
		src = model.SourceDirect
	default:
		return model.LedgerEntry{}, fmt.Errorf("unknown source %q", record[colSource])
	}

	return model.LedgerEntry{
		ID:     record[colID],
		Date:   entryDate,
		Type:   typ,
		Amount: record[colAmount],
		Note:   record[colNote],
		Source: src,
	}, nil
}
