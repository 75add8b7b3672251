package output

import (
	"fmt"
	"io"
	"os"
	"time"
)

// IsGitLabCI reports whether we run inside a GitLab CI job.
func IsGitLabCI() bool {
	return os.Getenv("GITLAB_CI") == "true"
}

// GitLab collapsible section helpers.

func sectionStart(w io.Writer, id, name string, now time.Time) {
	fmt.Fprintf(w, "\033[0Ksection_start:%d:%s[collapsed=true]\r\033[0K%s\n", now.Unix(), id, name)
}

func sectionEnd(w io.Writer, id string, now time.Time) {
	fmt.Fprintf(w, "\033[0Ksection_end:%d:%s\r\033[0K\n", now.Unix(), id)
}

// Fold opens a collapsed log section around noisy tool output. It writes
// nothing unless Folds is set.
func (r *Reporter) Fold(id, name string) {
	if r.Folds {
		sectionStart(r.Out, id, name, time.Now())
	}
}

// Unfold closes the section opened by Fold.
func (r *Reporter) Unfold(id string) {
	if r.Folds {
		sectionEnd(r.Out, id, time.Now())
	}
}
