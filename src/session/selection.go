package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sofmeright/flipfreight/src/target"
)

// ErrInvalidSelection is reported when menu input matches nothing. The
// menu is shown again.
var ErrInvalidSelection = errors.New("invalid selection")

var errEmpty = errors.New("empty selection")

type selection struct {
	target target.Target
	exit   bool
}

// parseSelection accepts a menu number, "q"/"exit"/"quit", "run",
// "build <name>" or a bare target name.
func parseSelection(line string, cat target.Catalog) (selection, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return selection{}, errEmpty
	}

	switch fields[0] {
	case "q", "exit", "quit":
		if len(fields) == 1 {
			return selection{exit: true}, nil
		}
	case "build":
		if len(fields) == 2 {
			t, err := cat.Resolve(fields[1])
			if err != nil || !t.IsRelease() {
				return selection{}, fmt.Errorf("%w: no release target %q (choose from %s)",
					ErrInvalidSelection, fields[1], strings.Join(cat.ReleaseNames(), ", "))
			}
			return selection{target: t}, nil
		}
	}

	if len(fields) == 1 {
		if isDigits(fields[0]) {
			if n, err := strconv.Atoi(fields[0]); err == nil && n >= 1 && n <= len(cat) && fields[0][0] != '0' {
				return selection{target: cat[n-1]}, nil
			}
		} else if t, err := cat.Resolve(fields[0]); err == nil {
			return selection{target: t}, nil
		}
	}

	return selection{}, fmt.Errorf("%w %q: enter 1-%d, a target name, or q to exit", ErrInvalidSelection, strings.TrimSpace(line), len(cat))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
