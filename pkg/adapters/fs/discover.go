package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/fitbook/pkg/core"
)

// Discover returns the data files under root matching a doublestar
// pattern such as "**/*.csv". Files in an unsupported format are skipped.
func Discover(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	matches, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}

	supported := DefaultSerializers()
	var files []string
	for _, m := range matches {
		if _, ok := supported[strings.ToLower(filepath.Ext(m))]; !ok {
			continue
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile decodes a standalone data file, choosing the format from its
// extension.
func ReadFile(path string) (*core.AddressBook, error) {
	s, err := SerializerFor(path, "")
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ab, err := s.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ab, nil
}
