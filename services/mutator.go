package services

import (
	"time"

	"github.com/google/uuid"
)

// Mutator applies structural edits to project trees and supplier lists.
// Every operation is copy-on-write: the input is never modified, and a
// failed operation returns the input untouched alongside the error.
type Mutator struct {
	NewID func() string
	Now   func() time.Time
}

// NewMutator creates a Mutator that issues random UUIDs and wall-clock timestamps
func NewMutator() *Mutator {
	return &Mutator{
		NewID: uuid.NewString,
		Now:   time.Now,
	}
}

// replaceAt returns a copy of items with index i set to item
func replaceAt[T any](items []T, i int, item T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out
}

// appendCopy returns a new slice holding items followed by extra
func appendCopy[T any](items []T, extra ...T) []T {
	out := make([]T, 0, len(items)+len(extra))
	out = append(out, items...)
	return append(out, extra...)
}

// removeAt returns a copy of items without index i
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
