package pdfreader

import (
	"strings"
)

// TitleFromFilename derives a candidate thesis title from an archive
// filename. Archive files are named like
// "123456789_Some Thesis Title (translated from Danish).pdf"; the numeric
// identifier prefix and the translation annotation are stripped. A filename
// without an identifier prefix passes through unchanged, minus the extension.
func TitleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".pdf")

	if id, rest, found := strings.Cut(name, "_"); found && isDigits(id) {
		name = rest
	}

	if title, _, found := strings.Cut(name, " (translated "); found {
		name = title
	}

	return strings.TrimSpace(name)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
