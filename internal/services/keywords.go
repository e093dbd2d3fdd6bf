package services

import (
	"sort"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/config"
)

type KeywordService interface {
	ExtractKeywords(normalizedText string, topN int) []string
}

type keywordService struct {
	stopwords      map[string]struct{}
	domainKeywords map[string]struct{}
	minTokenLength int
}

// NewKeywordService builds its stopword and domain tables once at
// construction; they are read-only afterwards, so a single instance is safe
// to share.
func NewKeywordService(cfg config.AnalyzerConfig) KeywordService {
	return &keywordService{
		stopwords:      buildWordSet(englishStopwords, customStopwords),
		domainKeywords: buildWordSet(domainKeywords),
		minTokenLength: cfg.MinTokenLength,
	}
}

// ExtractKeywords derives a ranked, de-duplicated keyword list from a
// normalized job description. Tokens shorter than the configured minimum
// (3 by default, so "sql" survives) and stopwords are dropped. Ranking is
// deterministic: domain allow-list members first, then descending frequency,
// then lexical order to break ties.
func (k *keywordService) ExtractKeywords(normalizedText string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	for _, token := range strings.Fields(normalizedText) {
		if len(token) < k.minTokenLength {
			continue
		}
		if _, stop := k.stopwords[token]; stop {
			continue
		}
		counts[token]++
	}

	ranked := make([]string, 0, len(counts))
	for token := range counts {
		ranked = append(ranked, token)
	}

	sort.Slice(ranked, func(i, j int) bool {
		_, iDomain := k.domainKeywords[ranked[i]]
		_, jDomain := k.domainKeywords[ranked[j]]
		if iDomain != jDomain {
			return iDomain
		}
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
