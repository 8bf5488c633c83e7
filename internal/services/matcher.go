package services

import "strings"

// Sections is the fixed heading vocabulary checked in every résumé.
var Sections = []string{
	"experience", "education", "projects", "skills", "summary", "objective", "certifications",
}

// MatchResult partitions a skill list by presence in the text.
type MatchResult struct {
	Matched []string
	Missing []string
}

// SectionResult partitions Sections by presence in the text.
type SectionResult struct {
	Present []string
	Missing []string
}

// MatchSkills checks every skill, case-insensitively, as a literal substring of
// the already lowercased text. Word boundaries are not considered, so "R" is
// found inside "director".
func MatchSkills(text string, skills []string) MatchResult {
	result := MatchResult{
		Matched: []string{},
		Missing: []string{},
	}

	for _, skill := range skills {
		if strings.Contains(text, strings.ToLower(skill)) {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	return result
}

// DetectSections applies the same substring policy as MatchSkills to Sections.
func DetectSections(text string) SectionResult {
	result := SectionResult{
		Present: []string{},
		Missing: []string{},
	}

	for _, section := range Sections {
		if strings.Contains(text, section) {
			result.Present = append(result.Present, section)
		} else {
			result.Missing = append(result.Missing, section)
		}
	}

	return result
}
