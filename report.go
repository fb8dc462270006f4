package pdfreader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Record holds everything extracted from one thesis PDF. It is built once
// per file, then printed or written to CSV and discarded.
type Record struct {
	Filename          string
	TitleFromFilename string
	TitleFromPDF      string
	TitleMatch        bool
	Author            string
	Abstract          string
	FilePath          string
}

var csvHeader = []string{
	"Filename",
	"Title_From_Filename",
	"Title_From_PDF",
	"Title_Match",
	"Author",
	"Abstract",
	"File_Path",
}

func (r *Record) csvRow() []string {
	match := "No"
	if r.TitleMatch {
		match = "Yes"
	}
	return []string{
		r.Filename,
		CSVCell(r.TitleFromFilename),
		CSVCell(r.TitleFromPDF),
		match,
		CSVCell(r.Author),
		CSVCell(r.Abstract),
		r.FilePath,
	}
}

// RecordExtractor builds a Record from a PDF file on disk.
type RecordExtractor interface {
	ProcessFile(path string) (*Record, error)
}

// Extractor implements RecordExtractor with the filename/title/metadata
// heuristics.
type Extractor struct {
	cfg ReaderConfig
	log *logrus.Logger
}

func NewExtractor(cfg ReaderConfig, log *logrus.Logger) *Extractor {
	return &Extractor{
		cfg: cfg,
		log: log,
	}
}

// ProcessFile extracts a complete Record from one PDF. The filename-derived
// title is searched within the early pages; when absent, a fallback title is
// read off the front matter and both titles are reported.
func (ex *Extractor) ProcessFile(path string) (*Record, error) {
	doc, err := OpenDocument(path)
	if err != nil {
		return nil, errors.Wrap(err, "process file failed")
	}
	defer func() {
		if err := doc.Close(); err != nil {
			ex.log.WithError(err).Error("cannot close document")
		}
	}()

	pages := PageTexts(doc, 0)
	if !hasText(pages) {
		return nil, errors.Wrapf(ErrNoText, "process file %s failed", filepath.Base(path))
	}

	rec := &Record{
		Filename:          filepath.Base(path),
		FilePath:          path,
		TitleFromFilename: TitleFromFilename(filepath.Base(path)),
	}

	rec.TitleMatch = SearchTitle(headPages(pages, ex.cfg.TitleSearchPages), rec.TitleFromFilename)
	if !rec.TitleMatch {
		rec.TitleFromPDF = TitleFromPages(headPages(pages, ex.cfg.FallbackTitlePages))
	}

	info, err := ReadInfo(path)
	if err != nil {
		ex.log.WithError(err).WithField("File", rec.Filename).Debug("No embedded metadata.")
	}
	rec.Author = AuthorFromInfo(info)
	if rec.Author == "" {
		rec.Author = AuthorFromPages(pages)
	}
	rec.Abstract = AbstractFromPages(pages)

	return rec, nil
}

func headPages(pages []string, n int) []string {
	if n > 0 && n < len(pages) {
		return pages[:n]
	}
	return pages
}

// ListPDFs returns the sorted PDF filenames directly inside dir. Sorting
// keeps batch exports deterministic across runs.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read input directory %s", dir)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsPDF(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// BatchResult summarizes one batch export run.
type BatchResult struct {
	Rows     int
	Failed   int
	Failures error
}

// Exporter batch-processes every PDF in the input folder into one CSV file.
type Exporter struct {
	ex  RecordExtractor
	cfg ReaderConfig
	log *logrus.Logger
}

func NewExporter(ex RecordExtractor, cfg ReaderConfig, log *logrus.Logger) *Exporter {
	return &Exporter{
		ex:  ex,
		cfg: cfg,
		log: log,
	}
}

// ExportFolder writes one CSV row per PDF in the input directory. A file
// that cannot be read still gets a row, with blank metadata fields, so one
// corrupt file never blocks the rest of the batch. The returned error covers
// only batch-level failures; per-file failures are accumulated in the
// result.
func (e *Exporter) ExportFolder() (*BatchResult, error) {
	files, err := ListPDFs(e.cfg.InputDir)
	if err != nil {
		return nil, errors.Wrap(err, "export folder failed")
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no PDF files found in %s", e.cfg.InputDir)
	}

	res := &BatchResult{}
	records := make([]*Record, 0, len(files))
	for _, name := range files {
		path := filepath.Join(e.cfg.InputDir, name)
		rec, err := e.ex.ProcessFile(path)
		if err != nil {
			e.log.WithError(err).WithField("File", name).Error("Extraction failed.")
			res.Failed++
			res.Failures = multierr.Append(res.Failures, err)
			rec = &Record{
				Filename:          name,
				FilePath:          path,
				TitleFromFilename: TitleFromFilename(name),
			}
		} else {
			e.log.WithFields(logrus.Fields{
				"File":       name,
				"TitleMatch": rec.TitleMatch,
			}).Info("Record extracted.")
		}
		records = append(records, rec)
	}

	if err := WriteCSV(e.cfg.OutputCSV, records); err != nil {
		return nil, errors.Wrap(err, "export folder failed")
	}
	res.Rows = len(records)
	e.log.WithFields(logrus.Fields{
		"Rows":   res.Rows,
		"Output": e.cfg.OutputCSV,
	}).Info("CSV written.")
	return res, nil
}

// WriteCSV writes records to path with the fixed column order, creating
// parent directories as needed. An existing file is overwritten.
func WriteCSV(path string, records []*Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "write csv failed")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "write csv failed")
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return errors.Wrap(err, "write csv failed")
	}
	for _, rec := range records {
		if err := w.Write(rec.csvRow()); err != nil {
			f.Close()
			return errors.Wrap(err, "write csv failed")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrap(err, "write csv failed")
	}
	return errors.Wrap(f.Close(), "write csv failed")
}
