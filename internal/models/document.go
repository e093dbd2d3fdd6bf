package models

// RawDocument carries the raw bytes of an uploaded resume or job description
// together with what the upload boundary declared about it. It is consumed
// once by the extractor and not retained.
type RawDocument struct {
	Data        []byte
	Filename    string
	ContentType string
}
