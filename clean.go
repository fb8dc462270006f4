package pdfreader

import (
	"strings"
)

// CollapseWhitespace folds every run of whitespace, newlines included, into a
// single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CSVCell prepares a field value for a CSV cell. Extracted text carries
// newlines and carriage returns that break spreadsheet rows.
func CSVCell(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
