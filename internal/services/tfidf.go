package services

import (
	"math"
	"sort"
	"strings"
)

// tfidfCosine computes the cosine similarity of two documents under TF-IDF
// weighting over unigrams and bigrams. Smoothed IDF matches the usual
// formulation: ln((1+n)/(1+df)) + 1 with n = 2 documents. The vocabulary is
// iterated in sorted order so float accumulation is reproducible.
func tfidfCosine(docA, docB string) float64 {
	termsA := ngramCounts(docA)
	termsB := ngramCounts(docB)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0
	}

	vocab := make(map[string]struct{}, len(termsA)+len(termsB))
	for term := range termsA {
		vocab[term] = struct{}{}
	}
	for term := range termsB {
		vocab[term] = struct{}{}
	}

	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var dot, normA, normB float64
	for _, term := range terms {
		df := 0
		if termsA[term] > 0 {
			df++
		}
		if termsB[term] > 0 {
			df++
		}
		idf := math.Log(3.0/(1.0+float64(df))) + 1.0

		wA := float64(termsA[term]) * idf
		wB := float64(termsB[term]) * idf
		dot += wA * wB
		normA += wA * wA
		normB += wB * wB
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ngramCounts counts unigrams and bigrams of an already-normalized text.
func ngramCounts(text string) map[string]int {
	tokens := strings.Fields(text)
	counts := make(map[string]int, len(tokens)*2)

	for i, token := range tokens {
		counts[token]++
		if i+1 < len(tokens) {
			counts[token+" "+tokens[i+1]]++
		}
	}

	return counts
}
