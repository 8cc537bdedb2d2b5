// Package transform provides the generic record transformer the
// corrections are built on: a predicate-guarded, in-place field
// mutation over an ordered sequence of records.
package transform

import "strings"

// Predicate reports whether a record should be mutated.
type Predicate[R any] func(*R) bool

// Mutation changes a single field of a record. It must leave every
// other field alone.
type Mutation[R any] func(*R)

// Apply mutates every record matching the predicate, in document
// order, and returns the number of records changed. Records that do
// not match are left untouched. Re-running Apply is a no-op whenever
// the mutation makes the predicate false, which is how the shipped
// corrections are constructed.
func Apply[R any](records []R, match Predicate[R], mutate Mutation[R]) int {
	changed := 0
	for i := range records {
		if match(&records[i]) {
			mutate(&records[i])
			changed++
		}
	}
	return changed
}

// StripPhrase removes every occurrence of the literal phrase from s
// and trims leading and trailing whitespace from the result. Interior
// whitespace is left as-is. An empty phrase returns s unchanged.
func StripPhrase(s, phrase string) string {
	if phrase == "" {
		return s
	}
	return strings.TrimSpace(strings.ReplaceAll(s, phrase, ""))
}
