package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func score(text string, skills []string) float64 {
	return Score(text, MatchSkills(text, skills), DetectSections(text), len(skills))
}

func TestScore_EmptyTextGetsLengthFloor(t *testing.T) {
	assert.Equal(t, 5.0, score("", DefaultSkills))
}

func TestScore_EmptySkillListDoesNotDivideByZero(t *testing.T) {
	assert.Equal(t, 5.0, score("python", nil))
	assert.Equal(t, 5.0, score("python", []string{}))
}

func TestScore_SectionDivisorIsSix(t *testing.T) {
	text := "experience education projects skills summary objective certifications"

	// 7/6 * 30 = 35, plus the short document bonus.
	assert.Equal(t, 40.0, score(text, []string{"Haskell"}))
}

func TestScore_RoundsToTwoDecimals(t *testing.T) {
	// 1/3 * 40 = 13.333..., plus 5 for length.
	assert.Equal(t, 18.33, score("go", []string{"Go", "Rust", "Zig"}))
}

func TestScore_ActionScoreIsCapped(t *testing.T) {
	few := score("led led", []string{"Haskell"})
	many := score(strings.Repeat("led ", 10), []string{"Haskell"})

	assert.Equal(t, 15.0, few)
	assert.Equal(t, 25.0, many)
}

func TestScore_LongDocumentBonus(t *testing.T) {
	long := strings.Repeat("word ", 251)
	exact := strings.Repeat("word ", 250)

	assert.Equal(t, 10.0, score(long, []string{"Haskell"}))
	assert.Equal(t, 5.0, score(exact, []string{"Haskell"}))
}

func TestScore_CappedAtHundred(t *testing.T) {
	text := strings.Repeat("python sql led built ", 100) +
		"experience education projects skills summary objective certifications"

	// 40 + 35 + 20 + 10 = 105 before the cap.
	assert.Equal(t, 100.0, score(text, []string{"Python", "SQL"}))
}

func TestScore_BoundedAndDeterministic(t *testing.T) {
	texts := []string{
		"",
		"python",
		"experience with python, led and built things",
		strings.Repeat("managed designed automated ", 200),
	}

	for _, text := range texts {
		first := score(text, DefaultSkills)
		second := score(text, DefaultSkills)

		assert.GreaterOrEqual(t, first, 0.0)
		assert.LessOrEqual(t, first, 100.0)
		assert.Equal(t, first, second)
	}
}

func TestCountActionVerbs(t *testing.T) {
	assert.Equal(t, 0, CountActionVerbs(""))
	assert.Equal(t, 2, CountActionVerbs("ledled"))
	// "scheduled" contains "led".
	assert.Equal(t, 1, CountActionVerbs("scheduled the build"))
	assert.Equal(t, 3, CountActionVerbs("designed, developed and automated"))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 4, WordCount("led a  team\nof"))
}
