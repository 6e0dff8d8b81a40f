package entries

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accrue-dev/accrue/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleEntries() []model.LedgerEntry {
	return []model.LedgerEntry{
		{
			ID:     "a1",
			Date:   date(2025, 1, 15),
			Type:   model.TypePayment,
			Amount: "$250.00",
			Note:   "wage garnishment",
			Source: model.SourceGarnishee,
		},
		{
			ID:     "a2",
			Date:   date(2025, 2, 1),
			Type:   model.TypeExpense,
			Amount: "45.50",
			Note:   "filing fee",
			Source: model.SourceDirect,
		},
		{
			// Draft row: no date, amount still being typed.
			ID:     "a3",
			Type:   model.TypePayment,
			Amount: "",
			Source: model.SourceDirect,
		},
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, sampleEntries()))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), got)
}

func TestWriteEntries_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}

func TestMarshalEntry_RawAmountPreserved(t *testing.T) {
	row := MarshalEntry(model.LedgerEntry{
		ID:     "x",
		Date:   date(2025, 3, 1),
		Type:   model.TypePayment,
		Amount: "$1,200.50 (partial)",
		Source: model.SourceDirect,
	})
	assert.Equal(t, "$1,200.50 (partial)", row[colAmount])
	assert.Equal(t, "2025-03-01", row[colDate])
}

func TestRoundTrip_QuotedFields(t *testing.T) {
	ents := []model.LedgerEntry{{
		ID:     "q1",
		Date:   date(2025, 4, 2),
		Type:   model.TypePayment,
		Amount: "100",
		Note:   `debtor said "paid, in full"` + "\nsee letter",
		Source: model.SourceDirect,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, ents))
	assert.Contains(t, buf.String(), `"debtor said ""paid, in full""`)

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	assert.Equal(t, ents, got)
}

func TestUnmarshalEntry_Defaults(t *testing.T) {
	e, err := UnmarshalEntry([]string{"", "", "", "", "", ""})
	require.NoError(t, err)
	assert.True(t, e.IsDraft())
	assert.Equal(t, model.TypePayment, e.Type)
	assert.Equal(t, model.SourceDirect, e.Source)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"bad field count", []string{"a", "b"}},
		{"garbled date", []string{"a", "01/15/2025", "payment", "10", "", "direct"}},
		{"unknown type", []string{"a", "2025-01-15", "refund", "10", "", "direct"}},
		{"unknown source", []string{"a", "2025-01-15", "payment", "10", "", "sheriff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalEntry(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestReadEntries_RowErrorIncludesLine(t *testing.T) {
	in := Header + "\na,2025-01-15,payment,10,,direct\nb,garbled,payment,10,,direct\n"
	_, err := ReadEntries(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadEntries_Empty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
