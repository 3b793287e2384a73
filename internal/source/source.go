// Package source turns free text, uploaded files and stdin into flat lists of
// raw entry tokens.
package source

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single line of an entry file.
const maxLineBytes = 64 * 1024

// SplitText splits comma-separated free text into trimmed, non-empty tokens.
func SplitText(s string) []string {
	tokens := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// ReadLines reads one token per line, trimming whitespace and skipping
// blank lines. CRLF line endings are accepted.
func ReadLines(r io.Reader) ([]string, error) {
	tokens := []string{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			tokens = append(tokens, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading entries")
	}
	return tokens, nil
}

// LoadFile reads entry tokens from the file at path, or from stdin when
// path is "-".
func LoadFile(path string) ([]string, error) {
	if path == "-" {
		return ReadLines(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening entry file %s", path)
	}
	defer f.Close()

	tokens, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "entry file %s", path)
	}
	return tokens, nil
}

// Select picks the token source for a request. Entries from a file take
// precedence over free text; free text is only used when no file was given.
func Select(fileTokens []string, hasFile bool, text string) []string {
	if hasFile {
		return fileTokens
	}
	return SplitText(text)
}
