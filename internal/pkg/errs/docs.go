// Package errs provides the standardized error types used throughout the
// tableside application.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsInvalid) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() formatting and Unwrap() to the sentinel
//
// The taxonomy maps directly onto how failures are surfaced to callers:
// required/invalid/out-of-range values are validation failures, ObjectNotFound
// covers unknown entities, Conflict covers operations that contradict current
// state (adding items to a cancelled order, duplicate table labels), and
// Unauthorized covers missing or mismatched identity.
package errs
