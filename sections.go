package pdfreader

import (
	"regexp"
	"strings"
)

// SectionOrder is the fixed output order for extracted key sections.
var SectionOrder = []string{
	"Introduction",
	"Methods",
	"Results",
	"Discussion",
	"Conclusion",
}

// sectionKeywords maps each canonical section to heading variations seen in
// theses, compared without numbering.
var sectionKeywords = map[string][]string{
	"Introduction": {"introduction", "background"},
	"Methods":      {"methods", "methodology", "material", "materials and methods"},
	"Results":      {"results", "findings"},
	"Discussion":   {"discussion", "interpretation"},
	"Conclusion":   {"conclusion", "conclusions", "concluding remarks"},
}

var leadingNumberRE = regexp.MustCompile(`^[\d.\s]+`)

// StripLeadingNumber removes section numbering from a heading, turning
// "3.2.1 Results" into "Results".
func StripLeadingNumber(title string) string {
	return strings.TrimSpace(leadingNumberRE.ReplaceAllString(title, ""))
}

// Heading lines longer than this are treated as body text.
const sectionHeadingMaxLen = 60

// canonicalSection maps a text line to one of the fixed section names, or ""
// when the line is not a recognized heading.
func canonicalSection(line string) string {
	if len(line) > sectionHeadingMaxLen {
		return ""
	}
	stripped := strings.ToLower(StripLeadingNumber(line))
	if stripped == "" {
		return ""
	}
	for _, section := range SectionOrder {
		for _, keyword := range sectionKeywords[section] {
			if stripped == keyword {
				return section
			}
		}
	}
	return ""
}

// ExtractSections walks the full page text and captures the body of each key
// section up to the next recognized heading. Only the first occurrence of a
// section is kept; later matches of the same name (typically the TOC echo or
// a summary chapter) are ignored.
func ExtractSections(pages []string) map[string]string {
	sections := make(map[string]string)
	var current string
	var body []string

	flush := func() {
		if current == "" {
			return
		}
		if _, seen := sections[current]; !seen {
			sections[current] = strings.TrimSpace(strings.Join(body, "\n"))
		}
		current = ""
		body = nil
	}

	for _, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			if section := canonicalSection(line); section != "" {
				flush()
				current = section
				continue
			}
			if current != "" && line != "" {
				body = append(body, line)
			}
		}
	}
	flush()
	return sections
}
