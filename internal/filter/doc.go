// Package filter reduces attachment noise in an export tree.
//
// The pass is filename-based only, never content-based: known metadata
// files are always deleted, files with document-like extensions are kept
// (moved into the holding folder) when their name contains the subject's
// name and deleted otherwise, and everything else is left alone. The
// holding folder is excluded from traversal so reruns never reprocess
// already-kept attachments.
//
// Deletes and moves are irreversible; run against a copy when the
// original export must be preserved.
package filter
