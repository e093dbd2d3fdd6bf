package services

import (
	"log"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(input AnalyzeInput) (*models.AnalysisResult, error)
}

// AnalyzeInput carries the two text sources of one analysis. Each source is
// either an uploaded document or already-decoded text; pasted text wins when
// both are present.
type AnalyzeInput struct {
	ResumeDocument *models.RawDocument
	ResumeText     string
	JDDocument     *models.RawDocument
	JDText         string
}

type analyzerService struct {
	extractor   ExtractorService
	normalizer  NormalizerService
	keywords    KeywordService
	gaps        GapService
	scorer      ScorerService
	suggestions SuggestionService
	profile     ProfileService
	topKeywords int
}

func NewAnalyzerService(
	extractor ExtractorService,
	normalizer NormalizerService,
	keywords KeywordService,
	gaps GapService,
	scorer ScorerService,
	suggestions SuggestionService,
	profile ProfileService,
	cfg config.AnalyzerConfig,
) AnalyzerService {
	return &analyzerService{
		extractor:   extractor,
		normalizer:  normalizer,
		keywords:    keywords,
		gaps:        gaps,
		scorer:      scorer,
		suggestions: suggestions,
		profile:     profile,
		topKeywords: cfg.TopKeywords,
	}
}

// Analyze runs the full pipeline synchronously: extract both texts,
// normalize, pull keywords from the JD, partition them against the resume,
// score, and derive suggestions. Deterministic for identical inputs, and no
// partial result is produced on failure.
func (a *analyzerService) Analyze(input AnalyzeInput) (*models.AnalysisResult, error) {
	rawResume, err := a.resolveText(input.ResumeText, input.ResumeDocument, "resume")
	if err != nil {
		return nil, err
	}

	rawJD, err := a.resolveText(input.JDText, input.JDDocument, "job description")
	if err != nil {
		return nil, err
	}

	resumeText := a.normalizer.Normalize(rawResume)
	jdText := a.normalizer.Normalize(rawJD)

	keywords := a.keywords.ExtractKeywords(jdText, a.topKeywords)
	matched, missing := a.gaps.FindGaps(resumeText, keywords)
	score := a.scorer.Score(resumeText, jdText, matched, missing)
	suggestions := a.suggestions.Suggest(matched, missing)

	log.Printf("Analysis complete: score=%.1f matched=%d missing=%d keywords=%d",
		score, len(matched), len(missing), len(keywords))

	return &models.AnalysisResult{
		Score:            score,
		Matched:          matched,
		Missing:          missing,
		Suggestions:      suggestions,
		NormalizedResume: resumeText,
		NormalizedJD:     jdText,
		Profile:          a.profile.BuildProfile(rawResume),
	}, nil
}

// resolveText prefers pasted text over an uploaded document and signals
// MissingInput when neither is present.
func (a *analyzerService) resolveText(pasted string, doc *models.RawDocument, field string) (string, error) {
	if strings.TrimSpace(pasted) != "" {
		return pasted, nil
	}
	if doc == nil || len(doc.Data) == 0 {
		return "", &MissingInputError{Field: field}
	}
	return a.extractor.ExtractText(*doc)
}
