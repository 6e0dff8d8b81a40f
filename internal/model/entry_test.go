package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerEntryIsDraft(t *testing.T) {
	assert.True(t, LedgerEntry{Amount: "100"}.IsDraft(), "no date yet")

	dated := LedgerEntry{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.False(t, dated.IsDraft())
}
