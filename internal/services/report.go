package services

import (
	"fmt"
	"strings"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const reportPreviewLength = 1500

type ReportService interface {
	BuildReport(result *models.AnalysisResult, generatedAt time.Time) string
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

// BuildReport renders the downloadable plain-text summary: header, UTC
// timestamp, score line, then Matched / Missing / Suggestions as bullet
// sections with an em-dash placeholder when a section is empty, closed by
// previews of both cleaned texts.
func (r *reportService) BuildReport(result *models.AnalysisResult, generatedAt time.Time) string {
	ts := generatedAt.UTC().Format("2006-01-02 15:04 UTC")

	var b strings.Builder
	b.WriteString("AI Resume Analyzer Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", ts)
	fmt.Fprintf(&b, "Overall Match Score: %.1f / 100\n\n", result.Score)

	b.WriteString("=== Matched Keywords ===\n")
	b.WriteString(bulletLines(result.Matched))
	b.WriteString("\n\n=== Missing / Low-Coverage Keywords ===\n")
	b.WriteString(bulletLines(result.Missing))
	b.WriteString("\n\n=== Suggestions ===\n")
	b.WriteString(bulletLines(result.Suggestions))
	b.WriteString("\n\n=== Cleaned Resume Text (preview) ===\n")
	b.WriteString(preview(result.NormalizedResume))
	b.WriteString("\n\n=== Cleaned JD Text (preview) ===\n")
	b.WriteString(preview(result.NormalizedJD))
	b.WriteString("\n")

	return b.String()
}

func bulletLines(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= reportPreviewLength {
		return text
	}
	return string(runes[:reportPreviewLength])
}
