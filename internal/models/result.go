package models

type AnalyzeResponse struct {
	Message string          `json:"message"`
	Result  *AnalysisResult `json:"result"`
}

type KeywordsRequest struct {
	JDText string `json:"jd_text"`
	TopN   int    `json:"top_n,omitempty"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}
