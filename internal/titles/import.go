package titles

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadTitleList parses one title per line. Blank lines and lines starting
// with '#' are skipped.
func ReadTitleList(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read title list: %w", err)
	}
	return out, nil
}
