package services

import "strings"

type NormalizerService interface {
	Normalize(text string) string
}

type normalizerService struct{}

func NewNormalizerService() NormalizerService {
	return &normalizerService{}
}

// Normalize canonicalizes text for comparison: control characters become
// spaces, everything is lowercased, and only lowercase letters, digits, '+'
// and '#' survive ('+' and '#' keep technical terms like c++ and c# intact —
// this whitelist is stable and relied on by the keyword extractor). Runs of
// whitespace collapse to a single space. Total function: empty in, empty out.
// Idempotent: normalizing twice equals normalizing once.
func (n *normalizerService) Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	lastWasSpace := true

	for _, r := range lowered {
		keep := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#'
		if keep {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		// Everything else, control characters included, separates tokens.
		if !lastWasSpace {
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}
