package migrate

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Files lists the files in dir matching pattern, in lexical order.
func Files(dir, pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	slices.Sort(files)
	return files, nil
}

// SplitStatements drops comment and blank lines and splits the rest on
// semicolons. Spanner's admin API takes one statement per entry.
func SplitStatements(content string) []string {
	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}
