package services

import (
	"math"

	"alfredoptarigan/resume-analyzer/internal/config"
)

// Scoring policies. Coverage alone tracks keyword overlap; blended mixes in
// the TF-IDF cosine similarity of the two full texts with fixed weights.
const (
	ScoringPolicyCoverage = "coverage"
	ScoringPolicyBlended  = "blended"
)

type ScorerService interface {
	Score(normalizedResume, normalizedJD string, matched, missing []string) float64
}

type scorerService struct {
	policy           string
	coverageWeight   float64
	similarityWeight float64
}

func NewScorerService(cfg config.ScoringConfig) ScorerService {
	policy := cfg.Policy
	if policy != ScoringPolicyCoverage {
		policy = ScoringPolicyBlended
	}
	return &scorerService{
		policy:           policy,
		coverageWeight:   cfg.CoverageWeight,
		similarityWeight: cfg.SimilarityWeight,
	}
}

// Score computes the 0-100 match score. Pure and deterministic: identical
// inputs always yield the identical value. Coverage is
// |matched| / (|matched| + |missing|), 0 when both lists are empty; the
// blended policy weighs it against TF-IDF cosine similarity (defaults 0.6
// and 0.4). Output is clamped to [0, 100] and rounded to one decimal.
func (s *scorerService) Score(normalizedResume, normalizedJD string, matched, missing []string) float64 {
	coverage := 0.0
	if total := len(matched) + len(missing); total > 0 {
		coverage = float64(len(matched)) / float64(total)
	}

	raw := coverage
	if s.policy == ScoringPolicyBlended {
		similarity := tfidfCosine(normalizedResume, normalizedJD)
		raw = s.coverageWeight*coverage + s.similarityWeight*similarity
	}

	score := raw * 100
	score = math.Max(0, math.Min(100, score))

	return math.Round(score*10) / 10
}
