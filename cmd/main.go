package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/thesisarchive/pdfreader"
)

const usage = `Usage:
  pdfreader                          list PDF files in the input folder
  pdfreader <filename.pdf> [--first5|--full]
                                     print extracted text
  pdfreader --info <filename.pdf>    print title, author and abstract
  pdfreader --export                 export all PDFs to CSV
  pdfreader --toc <filename.pdf>     print the table of contents
  pdfreader --sections <filename.pdf>
                                     print key sections`

func main() {
	log := logrus.New()

	config, err := pdfreader.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	cfg := config.Reader

	if _, err := os.Stat(cfg.InputDir); err != nil {
		log.Fatalf("Directory not found: %s", cfg.InputDir)
	}

	ex := pdfreader.NewExtractor(cfg, log)

	args := os.Args[1:]
	if len(args) == 0 {
		listFiles(cfg, log)
		return
	}

	switch strings.ToLower(args[0]) {
	case "--export", "--csv", "--excel":
		runExport(ex, cfg, log)
	case "--info", "--meta":
		runInfo(ex, cfg, log, args[1:])
	case "--toc":
		runTOC(cfg, log, args[1:])
	case "--sections":
		runSections(cfg, log, args[1:])
	default:
		runRead(cfg, log, args)
	}
}

func listFiles(cfg pdfreader.ReaderConfig, log *logrus.Logger) {
	files := mustListPDFs(cfg, log)
	fmt.Printf("Found %d PDF files\n", len(files))
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Available PDF files:")
	for i, name := range files {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
	fmt.Println()
	fmt.Println(usage)
}

func runExport(ex pdfreader.RecordExtractor, cfg pdfreader.ReaderConfig, log *logrus.Logger) {
	mustListPDFs(cfg, log)
	exporter := pdfreader.NewExporter(ex, cfg, log)
	res, err := exporter.ExportFolder()
	if err != nil {
		log.Fatal(err)
	}
	if res.Failures != nil {
		log.WithField("Failed", res.Failed).Warn("Some files could not be extracted.")
	}
	fmt.Printf("Results saved to: %s\n", cfg.OutputCSV)
	fmt.Printf("Processed %d files\n", res.Rows)
}

func runInfo(ex pdfreader.RecordExtractor, cfg pdfreader.ReaderConfig, log *logrus.Logger, args []string) {
	if len(args) < 1 {
		log.Fatal("Please specify a filename for --info")
	}
	path := resolveFile(cfg, log, args[0])

	rec, err := ex.ProcessFile(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Analyzing: %s\n", rec.Filename)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("TITLE (from filename): %s\n", rec.TitleFromFilename)
	fmt.Printf("Found in PDF: %v\n", rec.TitleMatch)
	if rec.TitleFromPDF != "" {
		fmt.Printf("TITLE (from PDF): %s\n", rec.TitleFromPDF)
	}
	fmt.Println()
	fmt.Printf("AUTHOR: %s\n", rec.Author)
	fmt.Println()
	fmt.Println("ABSTRACT:")
	fmt.Println(rec.Abstract)
}

func runRead(cfg pdfreader.ReaderConfig, log *logrus.Logger, args []string) {
	path := resolveFile(cfg, log, args[0])

	maxPages := 0
	if len(args) > 1 {
		switch strings.ToLower(args[1]) {
		case "--first5", "--5":
			maxPages = 5
		case "--full", "--all":
			maxPages = 0
		default:
			log.Fatalf("Unknown option %q, valid options: --first5, --full", args[1])
		}
	}

	pages, err := pdfreader.ReadText(path, maxPages)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Reading PDF: %s\n", filepath.Base(path))
	fmt.Printf("Reading pages: %d\n", len(pages))
	fmt.Println(strings.Repeat("=", 50))
	for i, text := range pages {
		fmt.Printf("\n--- PAGE %d ---\n", i+1)
		fmt.Println(text)
	}
}

func runTOC(cfg pdfreader.ReaderConfig, log *logrus.Logger, args []string) {
	if len(args) < 1 {
		log.Fatal("Please specify a filename for --toc")
	}
	path := resolveFile(cfg, log, args[0])

	pages, err := pdfreader.ReadText(path, cfg.TOCScanPages)
	if err != nil {
		log.Fatal(err)
	}

	entries := pdfreader.ExtractTOC(pages)
	if len(entries) == 0 {
		fmt.Println("No table of contents found")
		return
	}
	for _, entry := range entries {
		fmt.Printf("%-60s %d\n", entry.Title, entry.Page)
	}
}

func runSections(cfg pdfreader.ReaderConfig, log *logrus.Logger, args []string) {
	if len(args) < 1 {
		log.Fatal("Please specify a filename for --sections")
	}
	path := resolveFile(cfg, log, args[0])

	pages, err := pdfreader.ReadText(path, 0)
	if err != nil {
		log.Fatal(err)
	}

	sections := pdfreader.ExtractSections(pages)
	for _, name := range pdfreader.SectionOrder {
		body, ok := sections[name]
		if !ok {
			continue
		}
		fmt.Printf("%s\n%s\n", strings.ToUpper(name), strings.Repeat("=", 50))
		fmt.Println(body)
		fmt.Println()
	}
}

func resolveFile(cfg pdfreader.ReaderConfig, log *logrus.Logger, filename string) string {
	path := filepath.Join(cfg.InputDir, filename)
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("ERROR: File not found: %s\n", filename)
		fmt.Println("Available files:")
		if files, err := pdfreader.ListPDFs(cfg.InputDir); err == nil {
			for _, name := range files {
				fmt.Printf("  - %s\n", name)
			}
		}
		os.Exit(1)
	}
	return path
}

func mustListPDFs(cfg pdfreader.ReaderConfig, log *logrus.Logger) []string {
	files, err := pdfreader.ListPDFs(cfg.InputDir)
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("No PDF files found in %s", cfg.InputDir)
	}
	return files
}
