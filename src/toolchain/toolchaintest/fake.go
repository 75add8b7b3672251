// Package toolchaintest provides a scripted toolchain.Runner for tests.
package toolchaintest

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/sofmeright/flipfreight/src/toolchain"
)

// Result is the scripted outcome of one command.
type Result struct {
	Code   int
	Err    error
	Stdout string
	// Do runs before the result is returned, e.g. to create the binary a
	// real build would have produced.
	Do func(c toolchain.Command)
}

// Fake records every command and answers from a script keyed by command
// line prefix. Unscripted commands exit 0.
type Fake struct {
	mu sync.Mutex

	// Paths maps executable names to resolved paths. Absent = not found.
	Paths map[string]string
	// Script maps a command line prefix ("cargo build") to its result.
	// The longest matching prefix wins.
	Script map[string]Result
	// Calls holds every command line that was run.
	Calls []string
}

// New creates a Fake with the given executables on PATH.
func New(present ...string) *Fake {
	f := &Fake{Paths: map[string]string{}, Script: map[string]Result{}}
	for _, name := range present {
		f.Paths[name] = "/usr/bin/" + name
	}
	return f
}

// On scripts the result for a command line prefix.
func (f *Fake) On(prefix string, r Result) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Script[prefix] = r
	return f
}

// LookPath implements toolchain.Runner.
func (f *Fake) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Run implements toolchain.Runner.
func (f *Fake) Run(_ context.Context, c toolchain.Command) (int, error) {
	line := c.String()

	f.mu.Lock()
	f.Calls = append(f.Calls, line)
	var (
		res  Result
		best = -1
	)
	for prefix, r := range f.Script {
		if strings.HasPrefix(line, prefix) && len(prefix) > best {
			res, best = r, len(prefix)
		}
	}
	f.mu.Unlock()

	if res.Do != nil {
		res.Do(c)
	}
	if res.Stdout != "" && c.Stdout != nil {
		io.WriteString(c.Stdout, res.Stdout)
	}
	return res.Code, res.Err
}

// Ran reports whether a command line starting with prefix was run.
func (f *Fake) Ran(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// String lists the recorded calls, for test failure messages.
func (f *Fake) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("%q", f.Calls)
}

var _ toolchain.Runner = (*Fake)(nil)
