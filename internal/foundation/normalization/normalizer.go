// Package normalization canonicalizes user-supplied enumeration strings from fragment files.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer maps case-insensitive spellings (including aliases) onto canonical enum values.
type Normalizer[T ~string] struct {
	validValues map[string]T
	validKeys   []string
	canonical   []T
	clean       Func
}

// Func allows custom normalization behavior.
type Func func(string) string

// NewNormalizer creates a normalizer with a map of accepted spelling -> canonical value.
// Keys are cleaned with defaultNormalization (trim + lowercase).
func NewNormalizer[T ~string](values map[string]T) *Normalizer[T] {
	return WithCustomNormalizer(values, defaultNormalization)
}

// WithCustomNormalizer creates a normalizer with custom string cleaning.
func WithCustomNormalizer[T ~string](values map[string]T, clean Func) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))
	seen := make(map[T]bool, len(values))
	canonical := make([]T, 0, len(values))

	for k, v := range values {
		key := clean(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
		if !seen[v] {
			seen[v] = true
			canonical = append(canonical, v)
		}
	}

	sort.Strings(validKeys)
	sort.Slice(canonical, func(i, j int) bool { return canonical[i] < canonical[j] })

	return &Normalizer[T]{
		validValues: normalized,
		validKeys:   validKeys,
		canonical:   canonical,
		clean:       clean,
	}
}

// Normalize returns the canonical value for raw and whether raw was recognized.
// Unrecognized input is returned unchanged so validation can report it verbatim.
func (n *Normalizer[T]) Normalize(raw string) (T, bool) {
	if value, exists := n.validValues[n.clean(raw)]; exists {
		return value, true
	}
	return T(raw), false
}

// NormalizeWithError converts raw to its canonical value or returns an error listing valid options.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	value, ok := n.Normalize(raw)
	if !ok {
		var zero T
		return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.validKeys)
	}
	return value, nil
}

// IsCanonical reports whether value is one of the canonical enum values.
func (n *Normalizer[T]) IsCanonical(value T) bool {
	for _, v := range n.canonical {
		if v == value {
			return true
		}
	}
	return false
}

// ValidKeys returns every accepted spelling, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	result := make([]string, len(n.validKeys))
	copy(result, n.validKeys)
	return result
}

// Canonical returns the distinct canonical values, sorted.
func (n *Normalizer[T]) Canonical() []T {
	result := make([]T, len(n.canonical))
	copy(result, n.canonical)
	return result
}

func defaultNormalization(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
