// Package id generates opaque entry identifiers. The calculation engine never
// interprets them; they only key rows in entries.csv so edits can target a row.
package id

import "github.com/google/uuid"

// New returns a fresh entry identifier.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an identifier New produced.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
