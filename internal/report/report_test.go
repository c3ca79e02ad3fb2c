package report

import (
	"bytes"
	"testing"
)

func TestActionfAndWarnf(t *testing.T) {
	var out, errOut bytes.Buffer
	r := &Reporter{Out: &out, Err: &errOut}

	r.Actionf("Kept & moved: %s", "attachments/report.pdf")
	r.Warnf("Cannot read %q: %v", "bad.html", "permission denied")

	if got, want := out.String(), "Kept & moved: attachments/report.pdf\n"; got != want {
		t.Errorf("Out = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "Cannot read \"bad.html\": permission denied\n"; got != want {
		t.Errorf("Err = %q, want %q", got, want)
	}
}

func TestNilReporterIsSafe(t *testing.T) {
	var r *Reporter
	r.Actionf("ignored")
	r.Warnf("ignored")

	r = &Reporter{}
	r.Actionf("ignored")
	r.Warnf("ignored")
}
