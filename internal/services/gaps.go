package services

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/config"
)

// Match policies. Substring containment over-matches ("java" matches inside
// "javascript") but tolerates inflections; token membership is stricter.
// Whichever is configured applies consistently to the whole analysis.
const (
	MatchPolicySubstring = "substring"
	MatchPolicyToken     = "token"
)

type GapService interface {
	FindGaps(normalizedResume string, keywords []string) (matched, missing []string)
}

type gapService struct {
	policy  string
	maxGaps int
}

func NewGapService(cfg config.AnalyzerConfig) GapService {
	policy := cfg.MatchPolicy
	if policy != MatchPolicyToken {
		policy = MatchPolicySubstring
	}
	return &gapService{
		policy:  policy,
		maxGaps: cfg.MaxKeywordGaps,
	}
}

// FindGaps partitions keywords into those present in the resume and those
// absent. Input order is preserved within each list, duplicates keep their
// first occurrence, and both lists are capped to keep output bounded. An
// empty keyword list yields two empty lists.
func (g *gapService) FindGaps(normalizedResume string, keywords []string) ([]string, []string) {
	matched := []string{}
	missing := []string{}
	seen := make(map[string]struct{}, len(keywords))

	var resumeTokens map[string]struct{}
	if g.policy == MatchPolicyToken {
		resumeTokens = make(map[string]struct{})
		for _, token := range strings.Fields(normalizedResume) {
			resumeTokens[token] = struct{}{}
		}
	}

	for _, keyword := range keywords {
		if _, dup := seen[keyword]; dup {
			continue
		}
		seen[keyword] = struct{}{}

		var present bool
		if g.policy == MatchPolicyToken {
			_, present = resumeTokens[keyword]
		} else {
			present = strings.Contains(normalizedResume, keyword)
		}

		if present {
			if len(matched) < g.maxGaps {
				matched = append(matched, keyword)
			}
		} else {
			if len(missing) < g.maxGaps {
				missing = append(missing, keyword)
			}
		}
	}

	return matched, missing
}
