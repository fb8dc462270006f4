package pdfreader

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRecordCSVRow(t *testing.T) {
	rec := &Record{
		Filename:          "1_Thesis.pdf",
		TitleFromFilename: "Thesis",
		TitleMatch:        true,
		Author:            "Jane\nDoe",
		Abstract:          "Line one.\r\nLine two.",
		FilePath:          "data/raw/1_Thesis.pdf",
	}

	row := rec.csvRow()
	require.Equal(t, []string{
		"1_Thesis.pdf", "Thesis", "", "Yes", "Jane Doe", "Line one.  Line two.", "data/raw/1_Thesis.pdf",
	}, row)

	rec.TitleMatch = false
	require.Equal(t, "No", rec.csvRow()[3])
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "notes.txt", "C.PDF"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))

	files, err := ListPDFs(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"C.PDF", "a.pdf", "b.pdf"}, files)
}

func TestListPDFsMissingDir(t *testing.T) {
	_, err := ListPDFs(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

type stubExtractor struct {
	fail map[string]bool
}

func (s *stubExtractor) ProcessFile(path string) (*Record, error) {
	name := filepath.Base(path)
	if s.fail[name] {
		return nil, errors.New("corrupt file")
	}
	return &Record{
		Filename:          name,
		FilePath:          path,
		TitleFromFilename: TitleFromFilename(name),
		TitleMatch:        true,
		Author:            "Jane Doe",
		Abstract:          "An abstract.",
	}, nil
}

func TestExportFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1_Alpha.pdf", "2_Beta.pdf", "3_Gamma.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	cfg := ReaderConfig{
		InputDir:  dir,
		OutputCSV: filepath.Join(t.TempDir(), "processed", "out.csv"),
	}
	ex := &stubExtractor{fail: map[string]bool{"2_Beta.pdf": true}}
	exporter := NewExporter(ex, cfg, quietLogger())

	res, err := exporter.ExportFolder()
	require.NoError(t, err)
	require.Equal(t, 3, res.Rows)
	require.Equal(t, 1, res.Failed)
	require.Error(t, res.Failures)

	data, err := os.ReadFile(cfg.OutputCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, strings.Join(csvHeader, ","), lines[0])

	// The corrupt file still produces a row, with blank metadata fields.
	require.Contains(t, lines[2], "2_Beta.pdf")
	require.Contains(t, lines[2], ",Beta,,No,,,")
}

func TestExportFolderDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1_Alpha.pdf", "2_Beta.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	cfg := ReaderConfig{
		InputDir:  dir,
		OutputCSV: filepath.Join(t.TempDir(), "out.csv"),
	}
	exporter := NewExporter(&stubExtractor{}, cfg, quietLogger())

	_, err := exporter.ExportFolder()
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.OutputCSV)
	require.NoError(t, err)

	_, err = exporter.ExportFolder()
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.OutputCSV)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestExportFolderEmptyDir(t *testing.T) {
	cfg := ReaderConfig{
		InputDir:  t.TempDir(),
		OutputCSV: filepath.Join(t.TempDir(), "out.csv"),
	}
	exporter := NewExporter(&stubExtractor{}, cfg, quietLogger())

	_, err := exporter.ExportFolder()
	require.Error(t, err)
}
