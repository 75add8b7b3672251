package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/sfnt"
)

// fontCandidates lists where the companion font is searched, in order:
// the base directory, then its parent.
func fontCandidates(baseDir, name string) []string {
	return []string{
		filepath.Join(baseDir, name),
		filepath.Join(baseDir, "..", name),
	}
}

// findFont returns the first candidate that is a regular file. The
// second return is false when none exists.
func findFont(baseDir, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, p := range fontCandidates(baseDir, name) {
		st, err := os.Stat(p)
		if err == nil && st.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// checkFont parses the file as TrueType/OpenType and returns its family
// name, or an error if it does not parse.
func checkFont(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parsing font %s: %w", filepath.Base(path), err)
	}
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return "", nil
	}
	return family, nil
}
