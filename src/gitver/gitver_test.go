package gitver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"clock\"\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("Cargo.toml"); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Unix(1700000000, 0)},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return dir, repo
}

func TestDescribeCleanCheckout(t *testing.T) {
	dir, repo := initRepo(t)
	head, _ := repo.Head()

	info, err := Describe(dir)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if info.SHA != head.Hash().String()[:7] {
		t.Errorf("SHA = %q", info.SHA)
	}
	if info.Branch != "master" {
		t.Errorf("Branch = %q", info.Branch)
	}
	if info.Dirty || info.Tag != "" {
		t.Errorf("info = %+v", info)
	}
}

func TestDescribeFromSubdirectoryWithTagAndDirt(t *testing.T) {
	dir, repo := initRepo(t)
	head, _ := repo.Head()
	if _, err := repo.CreateTag("v0.3.0", head.Hash(), nil); err != nil {
		t.Fatalf("tag: %v", err)
	}
	sub := filepath.Join(dir, "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("changed"), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := Describe(sub)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if info.Tag != "v0.3.0" || !info.Dirty {
		t.Errorf("info = %+v", info)
	}
	if s := info.String(); !strings.HasSuffix(s, "(master, v0.3.0, dirty)") {
		t.Errorf("String = %q", s)
	}
}

func TestDescribeNotARepository(t *testing.T) {
	if _, err := Describe(t.TempDir()); !errors.Is(err, ErrNotRepository) {
		t.Errorf("err = %v, want ErrNotRepository", err)
	}
}

func TestInfoStringNil(t *testing.T) {
	var info *Info
	if info.String() != "unknown" {
		t.Errorf("nil String = %q", info.String())
	}
	if (&Info{SHA: "abc1234"}).String() != "abc1234" {
		t.Error("bare SHA should render without parentheses")
	}
}
