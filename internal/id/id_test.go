package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsUniqueAndValid(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got := New()
		assert.True(t, Valid(got))
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("9f3b2c1a-0d4e-4f6a-8b7c-1d2e3f4a5b6c"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("row-1"))
}
