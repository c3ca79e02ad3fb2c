package cli

import (
	"bytes"
	"strings"
	"testing"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagRoot = ""
	flagName = ""
	flagList = ""
	flagPlaceholder = ""
}

func TestBuildOverrides(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		want  map[string]string
	}{
		{
			"no flags",
			func() {},
			map[string]string{},
		},
		{
			"root only",
			func() { flagRoot = "/srv/export" },
			map[string]string{"root": "/srv/export"},
		},
		{
			"all flags",
			func() {
				flagRoot = "x"
				flagList = "terms.txt"
				flagPlaceholder = "[gone]"
			},
			map[string]string{"root": "x", "termsFile": "terms.txt", "placeholder": "[gone]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			tt.setup()
			got := buildOverrides()
			if len(got) != len(tt.want) {
				t.Fatalf("buildOverrides = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("overrides[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestPromptName(t *testing.T) {
	var out bytes.Buffer
	name, err := promptName(strings.NewReader("Jane Doe\n"), &out)
	if err != nil {
		t.Fatalf("promptName error: %v", err)
	}
	if name != "Jane Doe" {
		t.Errorf("name = %q, want %q", name, "Jane Doe")
	}
	if !strings.Contains(out.String(), "Enter the name to keep") {
		t.Errorf("prompt text missing, got %q", out.String())
	}
}

func TestPromptName_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := promptName(strings.NewReader(""), &out)
	if err == nil {
		t.Fatal("expected error on empty input")
	}
}
