package segmenter

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"nlpwalk/internal/domain"
)

// Punkt segments text with the pretrained English Punkt model. Abbreviations
// such as "Mr." do not end a sentence.
type Punkt struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the pretrained model for language.
func NewPunkt(language string) (*Punkt, error) {
	switch strings.ToLower(language) {
	case "", "english":
	default:
		return nil, fmt.Errorf("no pretrained sentence model for language: %s", language)
	}
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load english sentence model: %w", err)
	}
	return &Punkt{tokenizer: tok}, nil
}

func (p *Punkt) Segment(text string) []domain.Sentence {
	text = Normalize(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return locate(text, sentenceTexts(p.tokenizer.Tokenize(text)))
}

func sentenceTexts(sents []*sentences.Sentence) []string {
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out
}
