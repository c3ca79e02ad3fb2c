package report

import (
	"fmt"
	"io"
	"os"
)

// Reporter writes per-action audit lines and per-item failure notices.
// Actions go to Out (one line per move, delete, conversion, or redaction);
// warnings go to Err. A nil Reporter discards everything, which keeps
// library code usable without wiring up output.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Reporter bound to stdout and stderr.
func New() *Reporter {
	return &Reporter{Out: os.Stdout, Err: os.Stderr}
}

// Actionf records one significant action, e.g. a file move or redaction.
func (r *Reporter) Actionf(format string, args ...any) {
	if r == nil || r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Warnf records a per-item failure that was skipped rather than escalated.
func (r *Reporter) Warnf(format string, args ...any) {
	if r == nil || r.Err == nil {
		return
	}
	fmt.Fprintf(r.Err, format+"\n", args...)
}
