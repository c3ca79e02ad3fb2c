// Package tree provides the directory traversal shared by every sanitizer
// stage, plus small path-placement helpers.
//
// The walker yields regular files only and carries no filtering logic of its
// own; each stage applies its own extension and filename checks. Directories
// can be excluded from descent, which the attachment stage uses to keep the
// holding folder out of its own candidate set.
package tree
