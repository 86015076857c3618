// Package resource loads text resources as a whole.
package resource

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"
)

// ReadWhole returns the text of the named resource with its lines joined by "\n".
// Lookup and read failures yield an empty string.
func ReadWhole(fsys fs.FS, name string) string {
	text, err := read(fsys, name)
	if err != nil {
		return ""
	}
	return text
}

func read(fsys fs.FS, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", errors.Errorf("invalid resource name %q", name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", errors.Wrapf(err, "reading resource %q failed", name)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSuffix(text, "\n"), nil
}
