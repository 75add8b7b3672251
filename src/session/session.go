// Package session runs the select → build → package → report cycle, either
// once for a named target or repeatedly from an interactive menu.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sofmeright/flipfreight/src/build"
	"github.com/sofmeright/flipfreight/src/output"
	"github.com/sofmeright/flipfreight/src/pack"
	"github.com/sofmeright/flipfreight/src/target"
)

// State is a step of the session state machine.
type State int

const (
	Selecting State = iota
	Building
	Packaging
	Reporting
	Done
)

func (s State) String() string {
	switch s {
	case Selecting:
		return "selecting"
	case Building:
		return "building"
	case Packaging:
		return "packaging"
	case Reporting:
		return "reporting"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Builder runs the external build for one target.
type Builder interface {
	Build(ctx context.Context, t target.Target) *build.Result
}

// Packager stages a successful release build.
type Packager interface {
	Package(res *build.Result) (*pack.Artifact, error)
}

// Session wires the stages together. In and Out are only used by the
// interactive menu.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Catalog  target.Catalog
	Builder  Builder
	Packager Packager
	Report   *output.Reporter

	// Prepare runs before each build, e.g. to install the cross helper.
	// An error from it is fatal.
	Prepare func(ctx context.Context, t target.Target) error

	state   State
	lines   *bufio.Scanner
	current *Outcome
}

// Outcome is what one pass through the cycle produced.
type Outcome struct {
	Target   target.Target
	Result   *build.Result
	Artifact *pack.Artifact
	// Err is the build failure or fatal packaging error, nil on success.
	Err error
}

// State returns the current state, for tests and diagnostics.
func (s *Session) State() State { return s.state }

// Execute runs one target through build, package and report without a
// menu. The returned error is the build's *build.ExternalError or a fatal
// error; the outcome is always non-nil.
func (s *Session) Execute(ctx context.Context, t target.Target) (*Outcome, error) {
	s.current = &Outcome{Target: t}
	s.state = Building
	if err := s.loop(ctx, true); err != nil {
		return s.current, err
	}
	return s.current, s.current.Err
}

// Run presents the menu until the operator exits or input ends. Build
// failures and invalid selections return to the menu; only fatal errors
// end the session early.
func (s *Session) Run(ctx context.Context) error {
	s.lines = bufio.NewScanner(s.In)
	s.state = Selecting
	return s.loop(ctx, false)
}

// loop drives the state machine. once stops after the first Reporting.
func (s *Session) loop(ctx context.Context, once bool) error {
	for s.state != Done {
		var err error
		switch s.state {
		case Selecting:
			s.state, err = s.selecting()
		case Building:
			s.state, err = s.building(ctx)
		case Packaging:
			s.state, err = s.packaging()
		case Reporting:
			s.reporting(once)
			if once {
				s.state = Done
			} else {
				s.state = Selecting
			}
		}
		if err != nil {
			s.state = Done
			return err
		}
	}
	return nil
}

func (s *Session) selecting() (State, error) {
	for {
		s.printMenu()
		if !s.lines.Scan() {
			if err := s.lines.Err(); err != nil {
				return Done, fmt.Errorf("reading selection: %w", err)
			}
			fmt.Fprintln(s.Out)
			return Done, nil
		}

		sel, err := parseSelection(s.lines.Text(), s.Catalog)
		switch {
		case errors.Is(err, errEmpty):
			continue
		case err != nil:
			s.Report.Errorf("%v", err)
			continue
		case sel.exit:
			return Done, nil
		}
		s.current = &Outcome{Target: sel.target}
		return Building, nil
	}
}

func (s *Session) building(ctx context.Context) (State, error) {
	t := s.current.Target
	if s.Prepare != nil {
		if err := s.Prepare(ctx, t); err != nil {
			s.current.Err = err
			return Done, err
		}
	}

	if t.IsRelease() {
		s.Report.Stepf("Building %s (%s)", t.Platform.Title(), t.Triple)
	} else {
		s.Report.Stepf("Running on host")
	}

	fold := "build_" + t.Name
	s.Report.Fold(fold, "build output")
	res := s.Builder.Build(ctx, t)
	s.Report.Unfold(fold)
	s.current.Result = res
	if !res.Succeeded {
		s.current.Err = res.Error()
		return Reporting, nil
	}
	if t.IsRelease() {
		return Packaging, nil
	}
	return Reporting, nil
}

func (s *Session) packaging() (State, error) {
	art, err := s.Packager.Package(s.current.Result)
	if err != nil {
		s.current.Err = err
		return Done, err
	}
	s.current.Artifact = art
	return Reporting, nil
}

func (s *Session) reporting(once bool) {
	o := s.current
	res := o.Result

	sec := s.Report.Section("Build", res.Duration)
	sec.KeyValue("target", res.Target.Name)
	sec.KeyValue("command", res.Command)
	if res.Succeeded {
		sec.Status("status", "", res.Status())
	} else {
		sec.Status("status", fmt.Sprintf("exit %d", res.ExitCode), res.Status())
	}
	sec.Close()

	switch {
	case o.Err != nil:
		s.Report.Errorf("%v", o.Err)
		if !once {
			s.Report.Infof("returning to the menu")
		}
	case o.Artifact != nil:
		a := o.Artifact
		sec := s.Report.Section("Package", 0)
		sec.KeyValue("binary", a.Binary)
		if a.Font != "" {
			sec.KeyValue("font", a.Font)
		} else {
			sec.Status("font", "not found, skipped", "skipped")
		}
		if a.Checksums != "" {
			sec.KeyValue("checksums", a.Checksums)
		}
		sec.Close()
		s.Report.Successf("Artifact ready in %s", a.Dir)
		s.Report.Infof("Next: %s", a.Hint)
	default:
		s.Report.Successf("%s finished", res.Target.Name)
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, "Select an action:")
	for i, t := range s.Catalog {
		fmt.Fprintf(s.Out, "  %d) %s\n", i+1, t.Label())
	}
	fmt.Fprintln(s.Out, "  q) Exit")
	fmt.Fprint(s.Out, "> ")
}
