package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type KeywordsHandler struct {
	extractor      services.ExtractorService
	normalizer     services.NormalizerService
	keywordService services.KeywordService
	maxFileSize    int64
	topKeywords    int
}

func NewKeywordsHandler(
	extractor services.ExtractorService,
	normalizer services.NormalizerService,
	keywordService services.KeywordService,
	maxFileSize int64,
	topKeywords int,
) *KeywordsHandler {
	return &KeywordsHandler{
		extractor:      extractor,
		normalizer:     normalizer,
		keywordService: keywordService,
		maxFileSize:    maxFileSize,
		topKeywords:    topKeywords,
	}
}

// HandleKeywords handles POST /keywords: extracts the ranked keyword list
// from a job description without running a full analysis. The description
// arrives as a JSON body ("jd_text"), a form value ("jd_text"), or an
// uploaded "job_description" file.
func (h *KeywordsHandler) HandleKeywords(c *fiber.Ctx) error {
	req, err := h.readKeywordsRequest(c)
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return err
		}
		return respondAnalysisError(c, err)
	}

	if strings.TrimSpace(req.JDText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_text or a job_description file is required",
		})
	}

	topN := req.TopN
	if topN <= 0 || topN > h.topKeywords {
		topN = h.topKeywords
	}

	keywords := h.keywordService.ExtractKeywords(h.normalizer.Normalize(req.JDText), topN)

	return c.JSON(models.KeywordsResponse{
		Keywords: keywords,
		Count:    len(keywords),
	})
}

// readKeywordsRequest resolves the job description from the JSON body, the
// "jd_text" form value, or an uploaded "job_description" file, in that order.
func (h *KeywordsHandler) readKeywordsRequest(c *fiber.Ctx) (*models.KeywordsRequest, error) {
	if strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var req models.KeywordsRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
		}
		return &req, nil
	}

	req := models.KeywordsRequest{JDText: c.FormValue("jd_text")}
	if topN, err := strconv.Atoi(c.FormValue("top_n")); err == nil {
		req.TopN = topN
	}

	if strings.TrimSpace(req.JDText) != "" {
		return &req, nil
	}

	fileHeader, err := c.FormFile("job_description")
	if err != nil {
		// No file either; the required-input check above reports it.
		return &req, nil
	}

	if fileHeader.Size > h.maxFileSize {
		return nil, fiber.NewError(fiber.StatusBadRequest, "job_description file too large")
	}

	data, err := readFileBytes(fileHeader)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to read job_description file")
	}

	text, err := h.extractor.ExtractText(models.RawDocument{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return nil, err
	}

	req.JDText = text
	return &req, nil
}
