// Package query composes catalog filters out of small predicates.
package query

import "strings"

// Predicate reports whether an item matches one filter.
type Predicate[T any] func(T) bool

// All matches when every predicate matches. Nil predicates are skipped, so
// callers can pass optional filters straight through.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one predicate matches.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && p(item) {
				return true
			}
		}
		return false
	}
}

// Filter returns the matching items after skipping offset matches, capped at limit.
// A limit <= 0 means no cap.
func Filter[T any](items []T, pred Predicate[T], offset, limit int) []T {
	out := make([]T, 0)
	skipped := 0
	for _, item := range items {
		if pred != nil && !pred(item) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
