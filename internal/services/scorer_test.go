package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-analyzer/internal/config"
)

func coverageConfig() config.ScoringConfig {
	return config.ScoringConfig{Policy: ScoringPolicyCoverage}
}

func blendedConfig() config.ScoringConfig {
	return config.ScoringConfig{
		Policy:           ScoringPolicyBlended,
		CoverageWeight:   0.6,
		SimilarityWeight: 0.4,
	}
}

func TestScoreCoveragePolicy(t *testing.T) {
	s := NewScorerService(coverageConfig())

	t.Run("score is the matched fraction scaled to 100", func(t *testing.T) {
		score := s.Score("resume", "jd", []string{"a", "b", "c"}, []string{"d"})
		assert.Equal(t, 75.0, score)
	})

	t.Run("empty gap lists score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, s.Score("resume", "jd", nil, nil))
	})

	t.Run("all keywords missing scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, s.Score("", "jd", nil, []string{"python", "docker"}))
	})

	t.Run("full coverage scores 100", func(t *testing.T) {
		assert.Equal(t, 100.0, s.Score("resume", "jd", []string{"python"}, nil))
	})
}

func TestScoreBlendedPolicy(t *testing.T) {
	s := NewScorerService(blendedConfig())

	t.Run("identical texts with full coverage score 100", func(t *testing.T) {
		text := "python developer docker kubernetes"
		score := s.Score(text, text, []string{"python", "docker"}, nil)
		assert.Equal(t, 100.0, score)
	})

	t.Run("disjoint texts fall back to weighted coverage", func(t *testing.T) {
		score := s.Score("alpha beta", "gamma delta", []string{"x"}, []string{"y"})
		// similarity 0, coverage 0.5 -> 0.6*0.5*100
		assert.Equal(t, 30.0, score)
	})

	t.Run("empty resume against non-empty jd scores zero", func(t *testing.T) {
		score := s.Score("", "python docker", nil, []string{"python", "docker"})
		assert.Equal(t, 0.0, score)
	})
}

func TestScoreIsBounded(t *testing.T) {
	for _, s := range []ScorerService{NewScorerService(coverageConfig()), NewScorerService(blendedConfig())} {
		cases := []struct {
			resume, jd       string
			matched, missing []string
		}{
			{"", "", nil, nil},
			{"a b c", "a b c", []string{"a", "b", "c"}, nil},
			{"x", "y", nil, []string{"y"}},
			{"shared words here", "shared words there", []string{"shared"}, []string{"there"}},
		}
		for _, c := range cases {
			score := s.Score(c.resume, c.jd, c.matched, c.missing)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestScoreMonotonicInMatched(t *testing.T) {
	s := NewScorerService(blendedConfig())

	resume := "python developer with docker experience"
	jd := "python developer docker sql airflow"
	missing := []string{"sql", "airflow"}

	prev := -1.0
	matched := []string{}
	for _, kw := range []string{"python", "developer", "docker"} {
		matched = append(matched, kw)
		score := s.Score(resume, jd, matched, missing)
		assert.GreaterOrEqual(t, score, prev,
			"adding a matched keyword must not decrease the score")
		prev = score
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	s := NewScorerService(blendedConfig())

	resume := "experienced python developer built apis with docker"
	jd := "looking for a python developer with sql and docker skills"
	matched := []string{"developer", "docker", "python"}
	missing := []string{"sql", "skills"}

	first := s.Score(resume, jd, matched, missing)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, s.Score(resume, jd, matched, missing))
	}
}

func TestTfidfCosine(t *testing.T) {
	t.Run("identical documents have similarity 1", func(t *testing.T) {
		sim := tfidfCosine("go developer kubernetes", "go developer kubernetes")
		assert.InDelta(t, 1.0, sim, 1e-9)
	})

	t.Run("disjoint documents have similarity 0", func(t *testing.T) {
		assert.Equal(t, 0.0, tfidfCosine("alpha beta", "gamma delta"))
	})

	t.Run("empty documents have similarity 0", func(t *testing.T) {
		assert.Equal(t, 0.0, tfidfCosine("", "anything"))
		assert.Equal(t, 0.0, tfidfCosine("", ""))
	})

	t.Run("partial overlap lands strictly between 0 and 1", func(t *testing.T) {
		sim := tfidfCosine("python sql docker", "python docker terraform")
		assert.Greater(t, sim, 0.0)
		assert.Less(t, sim, 1.0)
	})
}
