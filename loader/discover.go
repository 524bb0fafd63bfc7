package loader

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Discover enumerates regular files directly under root, sorted by name for
// deterministic batch ordering.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("loader: Discover(%q): %w", root, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("loader: Discover(%q): %w", root, ErrEmptyDirectory)
	}
	sort.Strings(files)
	return files, nil
}

// densityPattern matches the first "." followed by a single digit and an
// underscore, e.g. "graph.8_0012.clq" -> "8".
var densityPattern = regexp.MustCompile(`\.(\d)_`)

// ParseDensity extracts the density digit from a benchmark filename of the
// form "<name>.<digit>_<index>.<ext>", mirroring the original benchmark
// driver's sscanf(file, "%*[^.].%d_", &digit) pattern.
func ParseDensity(filename string) (digit byte, ok bool) {
	m := densityPattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, false
	}
	return m[1][0], true
}
