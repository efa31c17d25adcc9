package normalization

import (
	"fmt"
	"strings"
)

// EnumNormalizer wraps Normalizer with a descriptive enum name for messages.
type EnumNormalizer[T ~string] struct {
	normalizer *Normalizer[T]
	enumName   string
}

// NewEnumNormalizer creates an enum normalizer with descriptive error messages.
func NewEnumNormalizer[T ~string](enumName string, values map[string]T) *EnumNormalizer[T] {
	return &EnumNormalizer[T]{
		normalizer: NewNormalizer(values),
		enumName:   enumName,
	}
}

// Normalize converts raw to its canonical value; unknown input is returned unchanged.
func (e *EnumNormalizer[T]) Normalize(raw string) (T, bool) {
	return e.normalizer.Normalize(raw)
}

// NormalizeWithValidation converts raw to its canonical value or fails with the enum name.
func (e *EnumNormalizer[T]) NormalizeWithValidation(raw string) (T, error) {
	result, err := e.normalizer.NormalizeWithError(raw)
	if err != nil {
		return result, fmt.Errorf("invalid %s: %w", e.enumName, err)
	}
	return result, nil
}

// IsValid reports whether raw normalizes to a known value.
func (e *EnumNormalizer[T]) IsValid(raw string) bool {
	_, ok := e.normalizer.Normalize(raw)
	return ok
}

// Canonical returns the canonical enum values for help text and validators.
func (e *EnumNormalizer[T]) Canonical() []T {
	return e.normalizer.Canonical()
}

// ValidValues returns all accepted spellings, including aliases.
func (e *EnumNormalizer[T]) ValidValues() []string {
	return e.normalizer.ValidKeys()
}

// NormalizationResult represents the outcome of normalizing one field.
type NormalizationResult[T ~string] struct {
	Value   T
	Known   bool
	Changed bool
	Warning string
}

// NormalizeWithWarning normalizes raw and describes any change for the user.
// Empty input is left empty so defaulting can apply later.
func (e *EnumNormalizer[T]) NormalizeWithWarning(fieldName, raw string) NormalizationResult[T] {
	if strings.TrimSpace(raw) == "" {
		return NormalizationResult[T]{Value: "", Known: true, Changed: raw != ""}
	}
	value, known := e.normalizer.Normalize(raw)
	res := NormalizationResult[T]{Value: value, Known: known}
	switch {
	case !known:
		res.Warning = fmt.Sprintf("unknown %s '%s' for %s (valid: %v)", e.enumName, raw, fieldName, e.Canonical())
	case string(value) != raw:
		res.Changed = true
		res.Warning = fmt.Sprintf("normalized %s from '%s' to '%s'", fieldName, raw, value)
	}
	return res
}
