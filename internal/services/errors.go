package services

import "fmt"

// UnsupportedFormatError is returned when an uploaded document is neither
// PDF, DOCX nor plain text. It is the only error the extractor raises.
type UnsupportedFormatError struct {
	Filename    string
	ContentType string
}

func (e *UnsupportedFormatError) Error() string {
	if e.ContentType != "" {
		return fmt.Sprintf("unsupported file format: %s (%s). Please use PDF, DOCX, or TXT", e.Filename, e.ContentType)
	}
	return fmt.Sprintf("unsupported file format: %s. Please use PDF, DOCX, or TXT", e.Filename)
}

// MissingInputError is returned when a required text source (resume or job
// description) is absent. Analysis does not proceed past this check.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}
