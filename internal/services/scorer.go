package services

import (
	"math"
	"strings"
)

const (
	skillWeight   = 40.0
	sectionWeight = 30.0

	// sectionDivisor stays 6 although Sections holds 7 names, so the section
	// term can exceed its weight before the total is capped.
	sectionDivisor = 6.0

	actionPointsPerVerb = 5
	maxActionScore      = 20

	longResumeWords  = 250
	longResumeScore  = 10.0
	shortResumeScore = 5.0

	maxScore = 100.0
)

// Score combines skill coverage, section coverage, action verb usage and
// document length into a value in [0, 100] rounded to two decimals.
func Score(text string, match MatchResult, sections SectionResult, skillCount int) float64 {
	var skillScore float64
	if skillCount > 0 {
		skillScore = float64(len(match.Matched)) / float64(skillCount) * skillWeight
	}

	sectionScore := float64(len(sections.Present)) / sectionDivisor * sectionWeight

	actionScore := float64(min(CountActionVerbs(text)*actionPointsPerVerb, maxActionScore))

	lengthScore := shortResumeScore
	if WordCount(text) > longResumeWords {
		lengthScore = longResumeScore
	}

	total := math.Min(skillScore+sectionScore+actionScore+lengthScore, maxScore)
	return math.Round(total*100) / 100
}

// CountActionVerbs sums the non-overlapping occurrences of every action verb.
func CountActionVerbs(text string) int {
	count := 0
	for _, verb := range ActionVerbs {
		count += strings.Count(text, verb)
	}
	return count
}

func WordCount(text string) int {
	return len(strings.Fields(text))
}
