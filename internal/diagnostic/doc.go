// Package diagnostic provides structured diagnostic events for mapping
// builds.
//
// Resolution code never logs directly. It reports Diagnostic events to an
// injected Observer, which keeps builds deterministic and lets tests assert
// on exactly what was reported.
//
// Key capabilities:
//   - Severity levels from trace to error
//   - Diagnostics collector for validation results and tests
//   - Fan-out to several observers
//   - Bridge to log/slog for the command line
package diagnostic
