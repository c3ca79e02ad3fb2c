// Package report provides the console audit trail for sanitizer stages.
//
// The tool persists no structured log; the one-line-per-action console
// output is the only record of what was moved, deleted, converted, or
// redacted. Stages accept a [Reporter] so tests can capture output with a
// bytes.Buffer instead of stdout.
package report
