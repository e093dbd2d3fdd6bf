package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/services"
)

type ReportHandler struct {
	analyze       *AnalyzeHandler
	reportService services.ReportService
}

func NewReportHandler(analyze *AnalyzeHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		analyze:       analyze,
		reportService: reportService,
	}
}

// HandleReport handles POST /report. It accepts the same multipart inputs as
// /analyze and returns the plain-text analysis report as a download.
func (h *ReportHandler) HandleReport(c *fiber.Ctx) error {
	input, err := h.analyze.readAnalyzeInput(c)
	if err != nil {
		return err
	}

	result, err := h.analyze.analyzer.Analyze(*input)
	if err != nil {
		return respondAnalysisError(c, err)
	}

	report := h.reportService.BuildReport(result, time.Now())

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume_analysis.txt"`)
	return c.SendString(report)
}
