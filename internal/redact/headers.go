package redact

import (
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/sarscrub/sarscrub/internal/report"
	"github.com/sarscrub/sarscrub/internal/tree"
)

// DefaultHeaderFields are the header-field prefixes recognized by the
// header redactor. Matching is against a lowercased, whitespace-collapsed
// line, so "Sender   Name: x" still matches "sender name:".
var DefaultHeaderFields = []string{
	"sender name:",
	"sender email address:",
	"sent representing name:",
	"sent representing email address:",
	"from:",
	"to:",
	"cc:",
	"return-path:",
}

var wsRun = regexp.MustCompile(`\s+`)

// HeaderRedactor blanks the values of recognized header lines, their
// folded continuation lines, and any bare email address elsewhere in the
// text. Detection is a line-level heuristic, not a message-format parser;
// headers using field names outside the configured list pass through.
type HeaderRedactor struct {
	placeholder string
	prefixes    []string
}

// NewHeaderRedactor builds a redactor for the given header-field prefixes.
// Empty placeholder or fields fall back to the defaults.
func NewHeaderRedactor(placeholder string, fields []string) *HeaderRedactor {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	if len(fields) == 0 {
		fields = DefaultHeaderFields
	}
	prefixes := make([]string, len(fields))
	for i, f := range fields {
		prefixes[i] = strings.ToLower(f)
	}
	return &HeaderRedactor{placeholder: placeholder, prefixes: prefixes}
}

// Lines redacts one file's worth of lines and reports whether anything
// changed. State is a single flag: whether the previous line opened a
// header whose folded continuations are still being consumed.
func (h *HeaderRedactor) Lines(lines []string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	inContinuation := false
	changed := false

	for _, line := range lines {
		if inContinuation {
			if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
				nl := h.scrubEmails(h.redactContinuation(line))
				changed = changed || nl != line
				out = append(out, nl)
				continue
			}
			inContinuation = false
		}

		if h.isHeader(line) {
			nl := h.scrubEmails(h.redactHeader(line))
			changed = changed || nl != line
			out = append(out, nl)
			inContinuation = true
			continue
		}

		nl := h.scrubEmails(line)
		changed = changed || nl != line
		out = append(out, nl)
	}
	return out, changed
}

// File redacts a single text file in place, rewriting it only when at
// least one line changed. Reports whether the file was rewritten.
func (h *HeaderRedactor) File(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	lines, changed := h.Lines(splitLines(string(data)))
	if !changed {
		return false, nil
	}
	if err := rewrite(path, lines); err != nil {
		return false, err
	}
	return true, nil
}

// Run redacts every .txt file under root. Per-file failures are reported
// and skipped; a missing root is an error.
func (h *HeaderRedactor) Run(root string, rep *report.Reporter) error {
	if !tree.IsDir(root) {
		return fmt.Errorf("folder %q not found", root)
	}
	err := tree.Files(root, func(path string, d fs.DirEntry) error {
		if !isTxt(d.Name()) {
			return nil
		}
		changed, err := h.File(path)
		if err != nil {
			rep.Warnf("Failed to redact %q: %v", path, err)
			return nil
		}
		if changed {
			rep.Actionf("[Headers redacted] %s", path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	return nil
}

func (h *HeaderRedactor) isHeader(line string) bool {
	if !strings.Contains(line, ":") {
		return false
	}
	collapsed := wsRun.ReplaceAllString(strings.ToLower(line), " ")
	for _, p := range h.prefixes {
		if strings.HasPrefix(collapsed, p) {
			return true
		}
	}
	return false
}

// redactHeader keeps the field name through its colon, preserves the
// whitespace that immediately follows, and replaces the value.
func (h *HeaderRedactor) redactHeader(line string) string {
	body, eol := splitEOL(line)
	name, value, _ := strings.Cut(body, ":")
	return name + ":" + leadingWS(value) + h.placeholder + eol
}

// redactContinuation replaces a folded line's payload, keeping the
// indentation that marks it as a continuation.
func (h *HeaderRedactor) redactContinuation(line string) string {
	body, eol := splitEOL(line)
	return leadingWS(body) + h.placeholder + eol
}

func (h *HeaderRedactor) scrubEmails(line string) string {
	return emailPattern.ReplaceAllString(line, h.placeholder)
}
