package models

// AnalysisResult is the bundle produced by one analysis run. Every field is
// recomputed per invocation; nothing is persisted or shared across requests.
type AnalysisResult struct {
	Score            float64        `json:"score"`
	Matched          []string       `json:"matched"`
	Missing          []string       `json:"missing"`
	Suggestions      []string       `json:"suggestions"`
	NormalizedResume string         `json:"normalized_resume_text"`
	NormalizedJD     string         `json:"normalized_jd_text"`
	Profile          *ResumeProfile `json:"profile,omitempty"`
}

// ResumeProfile holds the line-level sections heuristically pulled out of the
// resume text. Best effort only; empty slices are normal.
type ResumeProfile struct {
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Certifications []string `json:"certifications"`
}
