package services

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// ActionVerbs are the strong verbs whose presence marks a sentence as fine.
var ActionVerbs = []string{
	"led", "implemented", "optimized", "developed", "designed",
	"managed", "automated", "created", "built",
}

const (
	MaxSuggestions    = 5
	minSentenceWords  = 5
	suggestionPreview = 80
)

type SentenceCritic interface {
	Critique(text string) []string
}

type sentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

type sentenceCritic struct {
	tokenizer sentenceTokenizer
}

// NewSentenceCritic loads the English Punkt model bundled with the tokenizer.
func NewSentenceCritic() (SentenceCritic, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}

	return &sentenceCritic{
		tokenizer: tokenizer,
	}, nil
}

// Critique flags up to MaxSuggestions sentences of at least five words that
// use none of the ActionVerbs.
func (c *sentenceCritic) Critique(text string) []string {
	suggestions := []string{}
	if strings.TrimSpace(text) == "" {
		return suggestions
	}

	for _, sentence := range c.tokenizer.Tokenize(text) {
		clean := strings.TrimSpace(sentence.Text)
		if len(strings.Fields(clean)) < minSentenceWords || containsActionVerb(clean) {
			continue
		}

		suggestions = append(suggestions, fmt.Sprintf("Rewrite using action verbs + impact: '%s...'", preview(clean, suggestionPreview)))
		if len(suggestions) >= MaxSuggestions {
			break
		}
	}

	return suggestions
}

func containsActionVerb(sentence string) bool {
	for _, verb := range ActionVerbs {
		if strings.Contains(sentence, verb) {
			return true
		}
	}
	return false
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
