package pdfreader

import (
	"io"
	"strings"

	dpdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/cli"
	"github.com/pkg/errors"
)

// ErrNoText is returned when a PDF yields no extractable text on any page,
// usually because it is scanned or image-based.
var ErrNoText = errors.New("no text could be extracted")

// DocumentInfo holds the fields of the PDF's embedded Info dictionary.
type DocumentInfo struct {
	Title   string
	Author  string
	Subject string
}

// Document gives ordered access to the page texts of one PDF file. It wraps
// the underlying PDF library so the extraction heuristics only ever see plain
// strings.
type Document interface {
	NumPages() int
	// PageText returns the plain text of the 1-based page n. Pages that
	// cannot be decoded yield an empty string.
	PageText(n int) string
	Close() error
}

type ledongthucDocument struct {
	f io.Closer
	r *lpdf.Reader
}

func (d *ledongthucDocument) NumPages() int { return d.r.NumPage() }

func (d *ledongthucDocument) PageText(n int) string {
	page := d.r.Page(n)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func (d *ledongthucDocument) Close() error { return d.f.Close() }

type dslipakDocument struct {
	r *dpdf.Reader
}

func (d *dslipakDocument) NumPages() int { return d.r.NumPage() }

func (d *dslipakDocument) PageText(n int) string {
	page := d.r.Page(n)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func (d *dslipakDocument) Close() error { return nil }

// OpenDocument opens a PDF for text extraction. ledongthuc/pdf is tried
// first; dslipak/pdf handles a few files the former rejects.
func OpenDocument(path string) (Document, error) {
	f, r, err := lpdf.Open(path)
	if err == nil {
		return &ledongthucDocument{f: f, r: r}, nil
	}
	dr, derr := dpdf.Open(path)
	if derr != nil {
		return nil, errors.Wrap(err, "open document failed")
	}
	return &dslipakDocument{r: dr}, nil
}

// PageTexts extracts the texts of the first maxPages pages of doc, or of all
// pages when maxPages <= 0.
func PageTexts(doc Document, maxPages int) []string {
	n := doc.NumPages()
	if maxPages > 0 && maxPages < n {
		n = maxPages
	}
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, doc.PageText(i))
	}
	return pages
}

// ReadText returns the page texts of the PDF at path, limited to maxPages
// when maxPages > 0.
func ReadText(path string, maxPages int) ([]string, error) {
	doc, err := OpenDocument(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := PageTexts(doc, maxPages)
	if !hasText(pages) {
		return nil, ErrNoText
	}
	return pages, nil
}

func hasText(pages []string) bool {
	for _, page := range pages {
		if strings.TrimSpace(page) != "" {
			return true
		}
	}
	return false
}

// ReadInfo reads the embedded Info dictionary via pdfcpu. Theses without an
// Info dictionary report empty fields.
func ReadInfo(path string) (DocumentInfo, error) {
	lines, err := pdfcpu.ListInfoFile(path, nil, false, nil)
	if err != nil {
		return DocumentInfo{}, errors.Wrap(err, "read info failed")
	}
	return parseInfo(lines), nil
}

func parseInfo(lines []string) DocumentInfo {
	var info DocumentInfo
	for _, line := range lines {
		cleaned := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(cleaned, "Title: "):
			info.Title = strings.TrimSpace(strings.TrimPrefix(cleaned, "Title: "))
		case strings.HasPrefix(cleaned, "Author: "):
			info.Author = strings.TrimSpace(strings.TrimPrefix(cleaned, "Author: "))
		case strings.HasPrefix(cleaned, "Subject: "):
			info.Subject = strings.TrimSpace(strings.TrimPrefix(cleaned, "Subject: "))
		}
	}
	return info
}

func IsPDF(filePath string) bool {
	filePath = strings.ToLower(filePath)
	return strings.HasSuffix(filePath, ".pdf")
}
