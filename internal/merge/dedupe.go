package merge

import (
	"bytes"
	"os"
	"strings"
)

const (
	// markerSubstring is matched anywhere in a line, not as a full line.
	markerSubstring = "* text=auto"

	duplicateComment = "# Commented because this line appears before in the file."
)

// Deduplicate rewrites the file at path into a sibling temp file, keeping
// the first line containing the marker and commenting out every later one.
// All other lines pass through unchanged, in order, and the presence or
// absence of a trailing newline is preserved. Returns the temp path; the
// caller replaces the original.
func Deduplicate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	lines := strings.Split(string(data), "\n")

	var buf bytes.Buffer
	found := false
	for i, line := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}

		if !strings.Contains(line, markerSubstring) {
			buf.WriteString(line)
			continue
		}

		if !found {
			found = true
			buf.WriteString(line)
			continue
		}

		buf.WriteString(duplicateComment)
		buf.WriteByte('\n')
		buf.WriteString("# " + line)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return tmpPath, nil
}
