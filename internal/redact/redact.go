package redact

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultPlaceholder is the replacement token written over redacted
// content. The same token is used for headers, addresses, and keywords so
// redacted output reads uniformly.
const DefaultPlaceholder = "<redacted>"

// emailPattern is a heuristic, not an RFC 5322 parser. Addresses split
// across a line wrap will not match.
var emailPattern = regexp.MustCompile(
	"[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		"[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)+")

// splitLines splits s after every newline, keeping the terminator on each
// line so redaction can preserve original line endings exactly.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// splitEOL separates a line from its terminator ("\n", "\r\n", or none).
func splitEOL(line string) (body, eol string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

// leadingWS returns the run of spaces and tabs at the start of s.
func leadingWS(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}

// rewrite replaces the file at path with the given lines via a sibling
// temporary file and an atomic rename, so an interruption mid-write leaves
// the original intact.
func rewrite(path string, lines []string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func isTxt(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".txt")
}
