package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/config"
)

type SuggestionService interface {
	Suggest(matched, missing []string) []string
}

type suggestionService struct {
	keywordLimit     int
	matchedThreshold int
}

func NewSuggestionService(cfg config.AnalyzerConfig) SuggestionService {
	return &suggestionService{
		keywordLimit:     cfg.SuggestionKeywordLimit,
		matchedThreshold: cfg.MinMatchedThreshold,
	}
}

// Suggest derives improvement tips from the gap analysis. Output order is
// fixed and the list is never empty: the two generic best-practice tips
// always close it, even on a perfect match.
func (s *suggestionService) Suggest(matched, missing []string) []string {
	suggestions := []string{}

	if len(missing) > 0 {
		shown := missing
		if len(shown) > s.keywordLimit {
			shown = shown[:s.keywordLimit]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Add context for missing keywords: %s", strings.Join(shown, ", ")))
	}

	if len(matched) < s.matchedThreshold {
		suggestions = append(suggestions, "Highlight outcomes with metrics (%, $, time saved).")
	}

	suggestions = append(suggestions,
		"Mirror key phrases from the JD in your bullet points where true.",
		"Place the most relevant skills in the top 1/3 of your resume.",
	)

	return suggestions
}
