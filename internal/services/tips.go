package services

import (
	"fmt"
	"strings"
)

const maxSkillsInTip = 10

// BuildTips turns the gaps found in a résumé into an ordered list of tips.
func BuildTips(missingSkills, missingSections, suggestions []string) []string {
	tips := []string{}

	if len(missingSkills) > 0 {
		shown := missingSkills[:min(len(missingSkills), maxSkillsInTip)]
		tips = append(tips, fmt.Sprintf("Add missing skills: %s", strings.Join(shown, ", ")))
	}

	if len(missingSections) > 0 {
		tips = append(tips, fmt.Sprintf("Add missing sections: %s", strings.Join(missingSections, ", ")))
	}

	if len(suggestions) > 0 {
		tips = append(tips, "Improve weak sentences:")
		tips = append(tips, suggestions...)
	}

	return tips
}
