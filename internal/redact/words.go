package redact

import (
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/sarscrub/sarscrub/internal/report"
	"github.com/sarscrub/sarscrub/internal/tree"
)

// WordRedactor replaces operator-supplied words and phrases with the
// placeholder token. Terms are matched as literal text, case-insensitively,
// anchored at word boundaries on both ends.
type WordRedactor struct {
	placeholder string
	pattern     *regexp.Regexp
}

// LoadTerms reads the term list file: one term per line, blank lines
// ignored. A missing file is not an error and yields an empty list.
func LoadTerms(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading term list %s: %w", path, err)
	}
	var terms []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			terms = append(terms, line)
		}
	}
	return terms, nil
}

// NewWordRedactor compiles the term list into a single alternation.
// Terms that would match inside the placeholder token are dropped and
// returned, so rerunning over already-redacted text can never re-redact a
// placeholder. Returns a nil redactor when no usable terms remain.
func NewWordRedactor(placeholder string, terms []string) (*WordRedactor, []string) {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	var quoted, dropped []string
	for _, term := range terms {
		single := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if single.MatchString(placeholder) || strings.Contains(strings.ToLower(term), strings.ToLower(placeholder)) {
			dropped = append(dropped, term)
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	if len(quoted) == 0 {
		return nil, dropped
	}

	pattern := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	return &WordRedactor{placeholder: placeholder, pattern: pattern}, dropped
}

// File redacts a single text file in place and returns the distinct
// matched strings, sorted. Returns nil when nothing matched; the file is
// rewritten only when a substitution occurred.
func (w *WordRedactor) File(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	hits := make(map[string]bool)
	text := w.pattern.ReplaceAllStringFunc(string(data), func(m string) string {
		hits[m] = true
		return w.placeholder
	})
	if len(hits) == 0 {
		return nil, nil
	}

	if err := rewrite(path, []string{text}); err != nil {
		return nil, err
	}

	matched := make([]string, 0, len(hits))
	for m := range hits {
		matched = append(matched, m)
	}
	sort.Strings(matched)
	return matched, nil
}

// Run redacts every .txt file under root, reporting one summary line per
// changed file listing the terms that fired. Per-file failures are
// reported and skipped; a missing root is an error.
func (w *WordRedactor) Run(root string, rep *report.Reporter) error {
	if !tree.IsDir(root) {
		return fmt.Errorf("folder %q not found", root)
	}
	err := tree.Files(root, func(path string, d fs.DirEntry) error {
		if !isTxt(d.Name()) {
			return nil
		}
		matched, err := w.File(path)
		if err != nil {
			rep.Warnf("Failed to redact %q: %v", path, err)
			return nil
		}
		if len(matched) > 0 {
			rep.Actionf("[Words redacted] %s -> %s", path, strings.Join(matched, ", "))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	return nil
}
