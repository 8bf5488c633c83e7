package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxMissingSkillsShown caps how many missing skills are rendered to the user.
const MaxMissingSkillsShown = 10

type Analysis struct {
	ID              uuid.UUID `json:"id"`
	Filename        string    `json:"filename"`
	Format          string    `json:"format"`
	Score           float64   `json:"score"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	PresentSections []string  `json:"present_sections"`
	MissingSections []string  `json:"missing_sections"`
	Suggestions     []string  `json:"suggestions"`
	Tips            []string  `json:"tips"`
	WordCount       int       `json:"word_count"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

// ShownMissingSkills returns the leading missing skills that are displayed.
func (a *Analysis) ShownMissingSkills() []string {
	if len(a.MissingSkills) <= MaxMissingSkillsShown {
		return a.MissingSkills
	}
	return a.MissingSkills[:MaxMissingSkillsShown]
}

type AnalysisResponse struct {
	ID                string   `json:"id"`
	Filename          string   `json:"filename"`
	Format            string   `json:"format"`
	Score             float64  `json:"score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	MissingSkillCount int      `json:"missing_skill_count"`
	PresentSections   []string `json:"present_sections"`
	MissingSections   []string `json:"missing_sections"`
	Tips              []string `json:"tips"`
	WordCount         int      `json:"word_count"`
	AnalyzedAt        string   `json:"analyzed_at"`
}

func NewAnalysisResponse(a *Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:                a.ID.String(),
		Filename:          a.Filename,
		Format:            a.Format,
		Score:             a.Score,
		MatchedSkills:     a.MatchedSkills,
		MissingSkills:     a.ShownMissingSkills(),
		MissingSkillCount: len(a.MissingSkills),
		PresentSections:   a.PresentSections,
		MissingSections:   a.MissingSections,
		Tips:              a.Tips,
		WordCount:         a.WordCount,
		AnalyzedAt:        a.AnalyzedAt.Format(time.RFC3339),
	}
}

type SkillsResponse struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}
