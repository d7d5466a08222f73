package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadList reads a plain text file with one element per line, skipping
// blank lines. An empty path or a missing file yields an empty list
// (these inputs are optional).
func ReadList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: open list %q: %w", path, err)
	}
	defer f.Close()

	var items []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read list %q: %w", path, err)
	}
	return items, nil
}
