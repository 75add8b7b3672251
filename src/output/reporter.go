package output

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Reporter prints progress, warnings, errors and the final success line.
// Warnings with identical text are printed once per Reporter.
type Reporter struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
	// Folds wraps external tool output in GitLab collapsible sections.
	Folds bool

	warned map[string]bool
}

// NewReporter creates a reporter on stdout/stderr with color auto-detection.
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stdout, Err: os.Stderr, Color: UseColor(), Folds: IsGitLabCI()}
}

// Stepf announces the start of a stage.
func (r *Reporter) Stepf(format string, args ...any) {
	fmt.Fprintf(r.Out, "%s %s\n", colorize("==>", colorCyan, r.Color), colorize(fmt.Sprintf(format, args...), colorBold, r.Color))
}

// Infof prints a plain progress line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.Out, "    %s\n", fmt.Sprintf(format, args...))
}

// Warnf prints a non-fatal finding. Repeats of the same text are dropped.
func (r *Reporter) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.warned == nil {
		r.warned = map[string]bool{}
	}
	if r.warned[msg] {
		return
	}
	r.warned[msg] = true
	fmt.Fprintf(r.Err, "%s %s\n", colorize("warning:", colorYellow, r.Color), msg)
}

// Errorf prints a single-line diagnostic.
func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintf(r.Err, "%s %s\n", colorize("error:", colorRed, r.Color), fmt.Sprintf(format, args...))
}

// Successf prints a success line with a check mark.
func (r *Reporter) Successf(format string, args ...any) {
	fmt.Fprintf(r.Out, "%s %s\n", StatusIcon("success", r.Color), fmt.Sprintf(format, args...))
}

// Section opens a framed section on the output stream.
func (r *Reporter) Section(name string, elapsed time.Duration) *Section {
	return NewSection(r.Out, name, elapsed, r.Color)
}

// Context prints a key/value header block.
func (r *Reporter) Context(kv []KV) {
	ContextBlock(r.Out, kv)
}
