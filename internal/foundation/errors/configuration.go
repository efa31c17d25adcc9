package errors

// ContextKeyFields holds the per-field violations attached to a configuration error.
const ContextKeyFields = "fields"

// IsConfigurationError reports whether err (or any error it wraps) is a configuration error.
// Composition failures are always configuration errors and must abort the build.
func IsConfigurationError(err error) bool {
	return HasCategory(err, CategoryConfig)
}
