// Package errors provides foundational, type-safe error primitives used across sitecompose.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, validation, git, filesystem, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior (never, immediate, backoff, user action)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter mapping categories to process exit codes
//
// A failed composition surfaces as a configuration error:
//
//	err := errors.ConfigError("default locale not in supported locales").
//		WithContext(errors.ContextKeyFields, fieldErrors).
//		Build()
//	errors.IsConfigurationError(err) // true
package errors
