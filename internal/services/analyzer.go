package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/ats-checker/internal/models"
)

type Analyzer interface {
	Analyze(ctx context.Context, filename string, format DocumentFormat, data []byte) (*models.Analysis, error)
	AnalyzeText(text string) *models.Analysis
	Skills() []string
}

type analyzer struct {
	skills    []string
	extractor TextExtractor
	critic    SentenceCritic
	log       logrus.FieldLogger
}

// NewAnalyzer keeps its own copy of skills; later changes to the caller's
// slice do not affect analyses.
func NewAnalyzer(
	skills []string,
	extractor TextExtractor,
	critic SentenceCritic,
	log logrus.FieldLogger,
) Analyzer {
	return &analyzer{
		skills:    append([]string(nil), skills...),
		extractor: extractor,
		critic:    critic,
		log:       log,
	}
}

func (a *analyzer) Skills() []string {
	return append([]string(nil), a.skills...)
}

// Analyze extracts the document text and scores it.
func (a *analyzer) Analyze(ctx context.Context, filename string, format DocumentFormat, data []byte) (*models.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := a.log.WithFields(logrus.Fields{
		"filename": filename,
		"format":   format.String(),
		"bytes":    len(data),
	})

	log.Info("📄 Extracting resume text...")
	text, err := a.extractor.Extract(format, data)
	if err != nil {
		log.WithError(err).Error("❌ Failed to extract resume text")
		return nil, fmt.Errorf("failed to extract %s: %w", filename, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analysis := a.AnalyzeText(text)
	analysis.Filename = filename
	analysis.Format = format.String()

	log.WithFields(logrus.Fields{
		"id":    analysis.ID,
		"score": analysis.Score,
		"words": analysis.WordCount,
	}).Info("✅ Resume analyzed")

	return analysis, nil
}

// AnalyzeText runs matching, section detection, sentence critique, scoring and
// tip generation over already extracted, lowercased text.
func (a *analyzer) AnalyzeText(text string) *models.Analysis {
	match := MatchSkills(text, a.skills)
	sections := DetectSections(text)
	suggestions := a.critic.Critique(text)

	return &models.Analysis{
		ID:              uuid.New(),
		Score:           Score(text, match, sections, len(a.skills)),
		MatchedSkills:   match.Matched,
		MissingSkills:   match.Missing,
		PresentSections: sections.Present,
		MissingSections: sections.Missing,
		Suggestions:     suggestions,
		Tips:            BuildTips(match.Missing, sections.Missing, suggestions),
		WordCount:       WordCount(text),
		AnalyzedAt:      time.Now(),
	}
}
