package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
	maxFileSize    int64
	archiveUploads bool
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
	maxFileSize int64,
	archiveUploads bool,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		archiveUploads: archiveUploads,
	}
}

// HandleAnalyze handles POST /analyze. The resume arrives as an uploaded
// file ("resume") or pasted text ("resume_text"); the job description as a
// file ("job_description") or pasted text ("jd_text"). The analysis runs
// synchronously and the full result bundle is returned.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	input, err := h.readAnalyzeInput(c)
	if err != nil {
		return err
	}

	result, err := h.analyzer.Analyze(*input)
	if err != nil {
		return respondAnalysisError(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		Message: "Analysis complete",
		Result:  result,
	})
}

func (h *AnalyzeHandler) readAnalyzeInput(c *fiber.Ctx) (*services.AnalyzeInput, error) {
	input := services.AnalyzeInput{
		ResumeText: c.FormValue("resume_text"),
		JDText:     c.FormValue("jd_text"),
	}

	resumeDoc, err := h.readDocument(c, "resume")
	if err != nil {
		return nil, err
	}
	input.ResumeDocument = resumeDoc

	jdDoc, err := h.readDocument(c, "job_description")
	if err != nil {
		return nil, err
	}
	input.JDDocument = jdDoc

	return &input, nil
}

// readDocument pulls one uploaded file out of the multipart form. A missing
// file is not an error here; the analyzer decides whether the source was
// required.
func (h *AnalyzeHandler) readDocument(c *fiber.Ctx, field string) (*models.RawDocument, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	if fileHeader.Size > h.maxFileSize {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("%s file too large. Max size: %d bytes", field, h.maxFileSize))
	}

	data, err := readFileBytes(fileHeader)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("failed to read %s file", field))
	}

	if h.archiveUploads {
		if _, _, err := h.storageService.SaveDocument(fileHeader.Filename, data); err != nil {
			// Archiving is best effort; the analysis still runs.
			log.Printf("Failed to archive %s upload: %v", field, err)
		}
	}

	return &models.RawDocument{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

func readFileBytes(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}

// respondAnalysisError maps the pipeline's error taxonomy onto HTTP statuses:
// a missing input is a bad request, an unsupported upload is 415. No partial
// result accompanies either.
func respondAnalysisError(c *fiber.Ctx, err error) error {
	var missing *services.MissingInputError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missing.Error(),
		})
	}

	var unsupported *services.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error": unsupported.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fmt.Sprintf("analysis failed: %v", err),
	})
}
