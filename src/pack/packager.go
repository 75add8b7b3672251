// Package pack stages a successful release build as an installable
// artifact directory.
package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sofmeright/flipfreight/src/build"
	"github.com/sofmeright/flipfreight/src/config"
	"github.com/sofmeright/flipfreight/src/toolchain"
)

// Artifact is the durable output of a run.
type Artifact struct {
	Dir    string
	Binary string
	// Font is empty when no companion font was found.
	Font string
	// Checksums is empty unless build.checksums is enabled.
	Checksums string
	// Hint tells the operator how to install the artifact.
	Hint string
}

// Packager copies the built binary and the companion font into the
// staging directory.
type Packager struct {
	BaseDir    string
	StagingDir string
	AppName    string
	Font       string
	Checksums  bool
	Warn       toolchain.Warner
}

// NewPackager creates a Packager from the resolved configuration.
func NewPackager(cfg *config.Config, appName string, w toolchain.Warner) *Packager {
	return &Packager{
		BaseDir:    cfg.BaseDir,
		StagingDir: cfg.StagingPath(),
		AppName:    appName,
		Font:       cfg.Font,
		Checksums:  cfg.Build.Checksums,
		Warn:       w,
	}
}

// Package stages res. Every step is a hard gate except the font, whose
// absence is skipped silently. Nothing in the staging directory is
// touched unless the source binary exists.
func (p *Packager) Package(res *build.Result) (*Artifact, error) {
	if res == nil || !res.Succeeded || !res.Target.IsRelease() || res.ArtifactPath == "" {
		return nil, ErrNotPackageable
	}

	src := res.ArtifactPath
	if !filepath.IsAbs(src) {
		src = filepath.Join(p.BaseDir, src)
	}
	st, err := os.Stat(src)
	if err != nil || !st.Mode().IsRegular() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking build output %s: %w", src, err)
		}
		return nil, &MissingArtifactError{Target: res.Target.Name, Path: src}
	}

	if err := ensureDir(p.StagingDir); err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}

	art := &Artifact{Dir: p.StagingDir}
	art.Binary = filepath.Join(p.StagingDir, res.Target.ArtifactName(p.AppName))
	if err := copyFile(art.Binary, src, 0o755); err != nil {
		return nil, err
	}

	if fontSrc, ok := findFont(p.BaseDir, p.Font); ok {
		if _, err := checkFont(fontSrc); err != nil {
			p.warnf("%v; copying it anyway", err)
		}
		art.Font = filepath.Join(p.StagingDir, filepath.Base(fontSrc))
		if err := copyFile(art.Font, fontSrc, 0o644); err != nil {
			return nil, err
		}
	} else if p.Font != "" {
		if err := removeStale(filepath.Join(p.StagingDir, p.Font)); err != nil {
			return nil, err
		}
	}

	if !p.Checksums {
		if err := removeStale(filepath.Join(p.StagingDir, ChecksumFile)); err != nil {
			return nil, err
		}
	} else {
		files := []string{art.Binary}
		if art.Font != "" {
			files = append(files, art.Font)
		}
		sums, err := writeChecksums(p.StagingDir, files)
		if err != nil {
			return nil, err
		}
		art.Checksums = sums
	}

	art.Hint = res.Target.InstallHint(art.Binary)
	return art, nil
}

func (p *Packager) warnf(format string, args ...any) {
	if p.Warn != nil {
		p.Warn.Warnf(format, args...)
	}
}
