package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// Runs the analysis pipeline against two local files and prints the report.
// Usage: go run scripts/analyze_files.go <resume.(pdf|docx|txt)> <jd.(pdf|docx|txt)>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: analyze_files <resume file> <job description file>")
		os.Exit(1)
	}

	cfg := config.Load()

	analyzer := services.NewAnalyzerService(
		services.NewExtractorService(),
		services.NewNormalizerService(),
		services.NewKeywordService(cfg.Analyzer),
		services.NewGapService(cfg.Analyzer),
		services.NewScorerService(cfg.Scoring),
		services.NewSuggestionService(cfg.Analyzer),
		services.NewProfileService(),
		cfg.Analyzer,
	)

	resumeDoc, err := readDocument(os.Args[1])
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	jdDoc, err := readDocument(os.Args[2])
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}

	result, err := analyzer.Analyze(services.AnalyzeInput{
		ResumeDocument: resumeDoc,
		JDDocument:     jdDoc,
	})
	if err != nil {
		log.Fatalf("❌ Analysis failed: %v", err)
	}

	report := services.NewReportService().BuildReport(result, time.Now())
	fmt.Print(report)
}

func readDocument(path string) (*models.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &models.RawDocument{Data: data, Filename: path}, nil
}
