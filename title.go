package pdfreader

import (
	"regexp"
	"strings"
)

// Terms that identify institutional boilerplate rather than a person or a
// thesis title.
var institutionalTerms = []string{
	"Technical University of Denmark",
	"Technical University of Denmark (DTU)",
	"DTU Compute",
	"DTU",
	"Master Thesis",
	"MSc Thesis",
	"Thesis",
	"MSc",
	"University",
	"Department",
	"Faculty",
}

func containsInstitutionalTerm(s string) bool {
	lower := strings.ToLower(s)
	for _, term := range institutionalTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func isInstitutionalTerm(s string) bool {
	for _, term := range institutionalTerms {
		if strings.EqualFold(s, term) {
			return true
		}
	}
	return false
}

// SearchTitle reports whether title occurs within pages. The comparison is
// case-insensitive with whitespace runs collapsed, so titles broken across
// lines in the extracted text still match. The first page containing the
// title decides; there is no scoring.
func SearchTitle(pages []string, title string) bool {
	needle := foldSpace(title)
	if needle == "" {
		return false
	}
	for _, page := range pages {
		if strings.Contains(foldSpace(page), needle) {
			return true
		}
	}
	return false
}

// foldSpace lowers s and collapses whitespace, making line breaks inside a
// title irrelevant to containment.
func foldSpace(s string) string {
	return strings.ToLower(CollapseWhitespace(s))
}

var (
	titleSkipRE  = regexp.MustCompile(`(?i)^(by|author|university|department)`)
	titleNoiseRE = regexp.MustCompile(`(?i)@|\d{4}|email`)
)

// TitleFromPages picks a fallback title straight from early page content when
// the filename-derived title cannot be located in the document. The first of
// the leading ten lines that looks like a title wins: neither too short nor
// too long, and not an author, institutional or contact line.
func TitleFromPages(pages []string) string {
	var lines []string
	for _, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	if len(lines) > 10 {
		lines = lines[:10]
	}

	for _, line := range lines {
		if len(line) <= 10 || len(line) >= 200 {
			continue
		}
		if titleSkipRE.MatchString(line) || titleNoiseRE.MatchString(line) {
			continue
		}
		if containsInstitutionalTerm(line) {
			continue
		}
		return line
	}
	return ""
}
