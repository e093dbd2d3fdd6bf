package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindGapsSubstringPolicy(t *testing.T) {
	g := NewGapService(testAnalyzerConfig())

	t.Run("partitions keywords into matched and missing", func(t *testing.T) {
		resume := "experienced python developer built apis with docker"
		keywords := []string{"developer", "docker", "python", "sql", "skills"}

		matched, missing := g.FindGaps(resume, keywords)

		assert.Equal(t, []string{"developer", "docker", "python"}, matched)
		assert.Equal(t, []string{"sql", "skills"}, missing)
	})

	t.Run("matched and missing are disjoint and cover the keyword set", func(t *testing.T) {
		resume := "go engineer terraform kubernetes aws"
		keywords := []string{"terraform", "python", "aws", "docker", "kubernetes"}

		matched, missing := g.FindGaps(resume, keywords)

		union := map[string]struct{}{}
		for _, kw := range matched {
			union[kw] = struct{}{}
		}
		for _, kw := range missing {
			_, overlap := union[kw]
			assert.False(t, overlap, "keyword %q is in both lists", kw)
			union[kw] = struct{}{}
		}
		assert.Len(t, union, len(keywords))
	})

	t.Run("substring containment over-matches prefixes", func(t *testing.T) {
		resume := "senior javascript engineer"
		matched, missing := g.FindGaps(resume, []string{"java", "javascript"})

		// "java" sits inside "javascript"; that is the documented trade-off
		// of the substring policy.
		assert.Equal(t, []string{"java", "javascript"}, matched)
		assert.Empty(t, missing)
	})

	t.Run("de-duplicates while preserving first-seen order", func(t *testing.T) {
		resume := "python"
		matched, missing := g.FindGaps(resume, []string{"python", "sql", "python", "sql"})

		assert.Equal(t, []string{"python"}, matched)
		assert.Equal(t, []string{"sql"}, missing)
	})

	t.Run("empty keyword list yields two empty lists", func(t *testing.T) {
		matched, missing := g.FindGaps("any resume text", []string{})

		assert.Empty(t, matched)
		assert.Empty(t, missing)
	})

	t.Run("empty resume sends every keyword to missing", func(t *testing.T) {
		matched, missing := g.FindGaps("", []string{"python", "docker"})

		assert.Empty(t, matched)
		assert.Equal(t, []string{"python", "docker"}, missing)
	})
}

func TestFindGapsTokenPolicy(t *testing.T) {
	cfg := testAnalyzerConfig()
	cfg.MatchPolicy = MatchPolicyToken
	g := NewGapService(cfg)

	t.Run("whole-token membership does not over-match", func(t *testing.T) {
		resume := "senior javascript engineer"
		matched, missing := g.FindGaps(resume, []string{"java", "javascript"})

		assert.Equal(t, []string{"javascript"}, matched)
		assert.Equal(t, []string{"java"}, missing)
	})
}

func TestFindGapsCapsOutput(t *testing.T) {
	cfg := testAnalyzerConfig()
	cfg.MaxKeywordGaps = 2
	g := NewGapService(cfg)

	matched, missing := g.FindGaps("", []string{"one", "two", "three", "four"})

	assert.Empty(t, matched)
	assert.Equal(t, []string{"one", "two"}, missing)
}
