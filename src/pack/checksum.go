package pack

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ChecksumFile is the name of the manifest written next to the artifact.
const ChecksumFile = "SHA256SUMS"

// writeChecksums hashes files concurrently and writes a sha256sum-compatible
// manifest into dir. Entries are sorted by file name.
func writeChecksums(dir string, files []string) (string, error) {
	sums := make([]string, len(files))

	var g errgroup.Group
	for i, f := range files {
		g.Go(func() error {
			sum, err := sha256File(f)
			if err != nil {
				return err
			}
			sums[i] = fmt.Sprintf("%s  %s\n", sum, filepath.Base(f))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("hashing staged files: %w", err)
	}

	sort.Slice(sums, func(i, j int) bool {
		return sums[i][66:] < sums[j][66:]
	})

	out := filepath.Join(dir, ChecksumFile)
	if err := os.WriteFile(out, []byte(strings.Join(sums, "")), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", ChecksumFile, err)
	}
	return out, nil
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
