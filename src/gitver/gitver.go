// Package gitver reads the state of the project's git checkout so a run can
// show which commit it is building.
package gitver

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Info holds the checkout state of the project being built.
type Info struct {
	SHA    string // abbreviated HEAD commit
	Branch string // empty when HEAD is detached
	Tag    string // tag pointing at HEAD, if any
	Dirty  bool   // uncommitted changes in the worktree
}

// ErrNotRepository is returned when dir is not inside a git checkout.
var ErrNotRepository = errors.New("not a git repository")

// Describe opens the repository containing dir and reports HEAD.
func Describe(dir string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	info := &Info{SHA: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	info.Tag = tagAt(repo, head.Hash())

	if wt, err := repo.Worktree(); err == nil {
		if st, err := wt.Status(); err == nil {
			info.Dirty = !st.IsClean()
		}
	}
	return info, nil
}

// tagAt returns the first tag (lightweight or annotated) pointing at hash.
func tagAt(repo *git.Repository, hash plumbing.Hash) string {
	tags, err := repo.Tags()
	if err != nil {
		return ""
	}
	defer tags.Close()

	var found string
	_ = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if obj, err := repo.TagObject(target); err == nil {
			target = obj.Target
		}
		if target == hash {
			found = ref.Name().Short()
			return storer.ErrStop
		}
		return nil
	})
	return found
}

// String renders "abc1234 (main, v1.2.0, dirty)".
func (i *Info) String() string {
	if i == nil {
		return "unknown"
	}
	s := i.SHA
	var extra []string
	if i.Branch != "" {
		extra = append(extra, i.Branch)
	}
	if i.Tag != "" {
		extra = append(extra, i.Tag)
	}
	if i.Dirty {
		extra = append(extra, "dirty")
	}
	for n, e := range extra {
		if n == 0 {
			s += " (" + e
		} else {
			s += ", " + e
		}
	}
	if len(extra) > 0 {
		s += ")"
	}
	return s
}
