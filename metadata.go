package pdfreader

import (
	"regexp"
	"strings"
)

var (
	namePartRE = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)
	nameLikeRE = regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`)

	authorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:by|authors?)\s*:?\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`(?m)^([A-Z][a-z]+\s+[A-Z][a-z]+)$`),
		regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)\s*\n`),
	}
)

// AuthorFromInfo extracts a person name from the embedded Author field.
// Universities routinely stamp their own name into the Info dictionary, so
// institutional values are filtered out and composite values are split into
// parts until a name-like one is found. Empty when nothing survives.
func AuthorFromInfo(info DocumentInfo) string {
	author := strings.TrimSpace(info.Author)
	if author == "" || isInstitutionalTerm(author) {
		return ""
	}

	if strings.ContainsAny(author, ",(") || nameLikeRE.MatchString(author) {
		for _, part := range strings.FieldsFunc(author, func(r rune) bool {
			return r == ',' || r == '(' || r == ')' || r == '&'
		}) {
			part = strings.TrimSpace(part)
			if namePartRE.MatchString(part) && !containsInstitutionalTerm(part) {
				return part
			}
		}
		return ""
	}

	if containsInstitutionalTerm(author) {
		return ""
	}
	return author
}

// AuthorFromPages scans the head of the first page for author name patterns
// such as "by John Smith" or a name standing on its own line.
func AuthorFromPages(pages []string) string {
	if len(pages) == 0 {
		return ""
	}
	head := pages[0]
	if len(head) > 1000 {
		head = head[:1000]
	}

	for _, pattern := range authorPatterns {
		m := pattern.FindStringSubmatch(head)
		if m == nil {
			continue
		}
		author := strings.TrimSpace(m[1])
		if !containsInstitutionalTerm(author) {
			return author
		}
	}
	return ""
}

// Pages shorter than this many words that mention an abstract are assumed to
// be the abstract page itself.
const abstractPageMaxWords = 300

var abstractTailRE = regexp.MustCompile(`(?is)abstract\s*:?\s*(.*)`)

// AbstractFromPages locates the abstract of an academic paper. Theses
// typically put the abstract on a page of its own, opening with an "Abstract"
// heading; failing that, any short page mentioning an abstract is harvested.
// An empty result is not an error, not every document has one.
func AbstractFromPages(pages []string) string {
	for _, page := range pages {
		text := strings.TrimSpace(page)
		if text == "" {
			continue
		}

		first, rest, _ := strings.Cut(text, "\n")
		if strings.EqualFold(strings.TrimSpace(first), "abstract") {
			return strings.TrimSpace(rest)
		}

		if strings.Contains(strings.ToLower(text), "abstract") &&
			len(strings.Fields(text)) < abstractPageMaxWords {
			if m := abstractTailRE.FindStringSubmatch(text); m != nil {
				return CollapseWhitespace(m[1])
			}
		}
	}
	return ""
}
