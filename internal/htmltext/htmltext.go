package htmltext

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/sarscrub/sarscrub/internal/report"
	"github.com/sarscrub/sarscrub/internal/tree"
)

var htmlExts = map[string]bool{".html": true, ".htm": true}

// Run converts every .html/.htm file under root into a sibling .txt file
// holding its visible text, then deletes the HTML source. The conversion is
// one-way; the source is removed only after the text file has been written.
// Read or parse failures on one file are reported and that file is skipped.
func Run(root string, rep *report.Reporter) error {
	if !tree.IsDir(root) {
		return fmt.Errorf("folder %q not found", root)
	}

	err := tree.Files(root, func(path string, d fs.DirEntry) error {
		if !htmlExts[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			rep.Warnf("Cannot read %q: %v", path, err)
			return nil
		}

		lines, err := ExtractLines(strings.ToValidUTF8(string(data), "�"))
		if err != nil {
			rep.Warnf("Error converting %q: %v", path, err)
			return nil
		}
		lines = mergeHeaderLines(lines)

		base := strings.TrimSuffix(path, filepath.Ext(path))
		txtPath := tree.NextFree(base + ".txt")
		if err := os.WriteFile(txtPath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
			rep.Warnf("Error writing %q: %v", txtPath, err)
			return nil
		}
		rep.Actionf("Converted HTML -> %s", txtPath)

		if err := os.Remove(path); err != nil {
			rep.Warnf("Failed to delete %q: %v", path, err)
			return nil
		}
		rep.Actionf("Deleted: %s", path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	return nil
}

// ExtractLines parses src as HTML and returns its visible text as trimmed,
// non-blank lines. Content inside script, style, and noscript elements is
// dropped entirely.
func ExtractLines(src string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// mergeHeaderLines joins a line ending in ":" with the following line when
// that line does not itself end in ":". The extraction step tends to split
// headers like "To:" from their value; this folds them back together.
// Single left-to-right pass; a merged pair is never re-examined.
func mergeHeaderLines(lines []string) []string {
	var merged []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.HasSuffix(line, ":") && i+1 < len(lines) && !strings.HasSuffix(lines[i+1], ":") {
			merged = append(merged, line+" "+lines[i+1])
			i++
			continue
		}
		merged = append(merged, line)
	}
	return merged
}
