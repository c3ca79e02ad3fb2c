// Package redact blanks personally identifying content in extracted
// message text files.
//
// Two redactors operate over the same tree, always writing the same
// placeholder token. [HeaderRedactor] targets recognized header-field
// lines (including folded continuations) and bare email addresses;
// [WordRedactor] targets an operator-maintained list of literal words and
// phrases, matched whole-word and case-insensitively.
//
// Both detection mechanisms are regex heuristics with known false-negative
// risk: an address wrapped across lines, or a header under a field name
// outside the configured list, will survive. They are not a substitute for
// review of the output.
//
// Files are rewritten only when a line actually changed, via a temporary
// file and an atomic rename, so reruns are cheap and an interrupted run
// never corrupts an original.
package redact
