// Package id generates unique record identifiers.
package id

import "github.com/google/uuid"

// New returns a fresh unique ID for a newly created record.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a well-formed record ID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
