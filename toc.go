package pdfreader

import (
	"regexp"
	"strconv"
	"strings"
)

// TOCEntry is one parsed table-of-contents line.
type TOCEntry struct {
	Title string
	Page  int
}

var (
	contentsHeadingRE = regexp.MustCompile(`(?im)^\s*contents\b`)
	tocDotLeaderRE    = regexp.MustCompile(`^(.+?)\s*\.{2,}\s*(\d{1,4})$`)
	tocPlainRE        = regexp.MustCompile(`^(.+?)\s+(\d{1,4})$`)
	appendixRE        = regexp.MustCompile(`(?i)^appendi`)
)

// tocSnippetLimit bounds how much text after the Contents heading is parsed.
const tocSnippetLimit = 20000

// ExtractTOC parses a table of contents out of early page text. It looks for
// a "Contents" heading and then collects lines ending in a page number,
// either with dot leaders ("1. Introduction ..... 1") or plain
// ("1 Introduction 1"). Parsing stops at the first appendix entry since
// appendix listings drown the real chapters.
func ExtractTOC(pages []string) []TOCEntry {
	combined := strings.Join(pages, "\n\n")

	start := 0
	if loc := contentsHeadingRE.FindStringIndex(combined); loc != nil {
		start = loc[0]
	}
	snippet := combined[start:]
	if len(snippet) > tocSnippetLimit {
		snippet = snippet[:tocSnippetLimit]
	}

	var entries []TOCEntry
	for _, line := range strings.Split(snippet, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := tocDotLeaderRE.FindStringSubmatch(line)
		if m == nil {
			m = tocPlainRE.FindStringSubmatch(line)
		}
		if m == nil {
			continue
		}
		title := strings.TrimRight(strings.TrimSpace(m[1]), ".")
		page, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if appendixRE.MatchString(StripLeadingNumber(title)) {
			break
		}
		entries = append(entries, TOCEntry{Title: title, Page: page})
	}
	return entries
}
