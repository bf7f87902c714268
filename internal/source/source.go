// Package source loads the raw text of a log file for analysis.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrUnreadable is the umbrella for every failure to obtain log text.
	ErrUnreadable = errors.New("source unreadable")

	ErrNotFound  = fmt.Errorf("%w: not found", ErrUnreadable)
	ErrNotAFile  = fmt.Errorf("%w: not a file", ErrUnreadable)
	ErrAmbiguous = fmt.Errorf("%w: pattern matches more than one file", ErrUnreadable)
)

// Resolve maps a user-supplied path to a single regular file. A path that does
// not exist but contains glob metacharacters is expanded (recursive "**"
// supported) and must match exactly one file.
func Resolve(path string) (string, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.Mode().IsRegular() {
			return "", fmt.Errorf("%w: %s", ErrNotAFile, path)
		}
		return path, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	if !hasMeta(path) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s (%d matches)", ErrAmbiguous, path, len(matches))
	}
}

// Read resolves path and returns its full content. CRLF line endings are
// normalized to LF so that messages never carry a trailing carriage return.
func Read(path string) (string, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, resolved, err)
	}
	return strings.ReplaceAll(string(raw), "\r\n", "\n"), nil
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
