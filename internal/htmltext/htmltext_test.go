package htmltext

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestExtractLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"br splits lines",
			"<html><body>Hello<br>World</body></html>",
			[]string{"Hello", "World"},
		},
		{
			"script dropped",
			"<html><head><script>var x = 'secret';</script></head><body>Visible</body></html>",
			[]string{"Visible"},
		},
		{
			"style and noscript dropped",
			"<body><style>p{color:red}</style><noscript>enable js</noscript><p>Text</p></body>",
			[]string{"Text"},
		},
		{
			"blank lines removed",
			"<body><p>  a  </p>\n\n<p></p><p>b</p></body>",
			[]string{"a", "b"},
		},
		{
			"nested elements",
			"<body><div>From:<span> alice</span></div></body>",
			[]string{"From:", "alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractLines(tt.src)
			if err != nil {
				t.Fatalf("ExtractLines error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLines = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeHeaderLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			"header joined with value",
			[]string{"To:", "bob@example.com", "body"},
			[]string{"To: bob@example.com", "body"},
		},
		{
			"two headers not joined",
			[]string{"From:", "To:", "bob"},
			[]string{"From:", "To: bob"},
		},
		{
			"no colon no merge",
			[]string{"hello", "world"},
			[]string{"hello", "world"},
		},
		{
			"trailing header unchanged",
			[]string{"body", "Cc:"},
			[]string{"body", "Cc:"},
		},
		{
			"merged pair not reused",
			[]string{"Subject:", "Re: meeting", "tomorrow"},
			[]string{"Subject: Re: meeting", "tomorrow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeHeaderLines(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergeHeaderLines(%v) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestRun_ConvertsAndDeletes(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "msg", "Message.html")
	if err := os.MkdirAll(filepath.Dir(src), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "<html><head><script>alert('x')</script></head><body>Hello<br>World</body></html>"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Run(root, nil); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(root, "msg", "Message.txt"))
	if err != nil {
		t.Fatalf("derived text file missing: %v", err)
	}
	text := string(out)
	if text != "Hello\nWorld" {
		t.Errorf("derived text = %q, want %q", text, "Hello\nWorld")
	}
	if strings.Contains(text, "alert") {
		t.Error("script content leaked into derived text")
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("HTML source still exists after conversion")
	}
}

func TestRun_CollisionSafeOutput(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "Message.txt")
	if err := os.WriteFile(existing, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(root, "Message.html")
	if err := os.WriteFile(src, []byte("<body>converted</body>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Run(root, nil); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	orig, err := os.ReadFile(existing)
	if err != nil || string(orig) != "original" {
		t.Errorf("pre-existing text file was overwritten: %q, %v", orig, err)
	}
	derived, err := os.ReadFile(filepath.Join(root, "Message (1).txt"))
	if err != nil {
		t.Fatalf("collision-renamed output missing: %v", err)
	}
	if string(derived) != "converted" {
		t.Errorf("derived text = %q, want %q", derived, "converted")
	}
}

func TestRun_InvalidUTF8NotFatal(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "bad.html")
	if err := os.WriteFile(src, []byte("<body>ok \xff\xfe bytes</body>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Run(root, nil); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	out, err := os.ReadFile(filepath.Join(root, "bad.txt"))
	if err != nil {
		t.Fatalf("derived text file missing: %v", err)
	}
	if !strings.Contains(string(out), "ok") {
		t.Errorf("derived text = %q, want it to contain %q", out, "ok")
	}
}

func TestRun_MissingRoot(t *testing.T) {
	if err := Run(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Fatal("expected error for missing root")
	}
}
