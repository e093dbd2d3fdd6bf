package services

import (
	"bytes"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type ExtractorService interface {
	ExtractText(doc models.RawDocument) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText turns raw uploaded bytes into a single text string. Dispatch is
// by declared content type first, then by file extension. Absence of
// extractable text is not an error; only an unknown format is.
func (e *extractorService) ExtractText(doc models.RawDocument) (string, error) {
	mime := strings.ToLower(doc.ContentType)
	ext := strings.ToLower(filepath.Ext(doc.Filename))

	switch {
	case strings.Contains(mime, "pdf") || ext == ".pdf":
		return e.extractPDF(doc.Data)
	// "word" covers the OOXML wordprocessingml MIME without also catching
	// its spreadsheet and presentation siblings.
	case strings.Contains(mime, "word") || ext == ".docx":
		return e.extractDOCX(doc.Data)
	case strings.HasPrefix(mime, "text/") || ext == ".txt":
		return e.extractPlainText(doc.Data), nil
	}

	return "", &UnsupportedFormatError{Filename: doc.Filename, ContentType: doc.ContentType}
}

// extractPDF concatenates the plain text of every page in document order.
// Pages that yield no text contribute an empty string rather than failing
// the whole document.
func (e *extractorService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Unreadable PDFs yield empty text, not a failed analysis.
		return "", nil
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

// extractDOCX reads paragraph-level text in document order. GetContent
// returns the raw document.xml, so paragraph closes become newlines and the
// remaining markup is stripped before the text goes any further.
func (e *extractorService) extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

var docxTagPattern = regexp.MustCompile(`<[^>]*>`)

// extractPlainText decodes bytes as UTF-8, falling back to Latin-1 when the
// input is not valid UTF-8. Undecodable bytes are replaced, never fatal:
// garbled text beats an aborted analysis.
func (e *extractorService) extractPlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}

	return string(decoded)
}
