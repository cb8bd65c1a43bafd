package tagger

import (
	"errors"
	"fmt"

	"github.com/jdkato/prose/tag"

	"nlpwalk/internal/domain"
)

// ErrLengthMismatch is returned when a backend does not produce exactly one
// tag per token.
var ErrLengthMismatch = errors.New("tagger returned a different number of tags than tokens")

// Perceptron tags tokens with the pretrained averaged perceptron model using
// the Penn Treebank tagset. It uses neighbouring tokens and capitalization,
// so a lowercase pronoun at the start of a sentence can be mis-tagged.
type Perceptron struct {
	model *tag.PerceptronTagger
}

func NewPerceptron() *Perceptron {
	return &Perceptron{model: tag.NewPerceptronTagger()}
}

func (p *Perceptron) Tag(tokens []string) ([]domain.TaggedToken, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	tagged := p.model.Tag(tokens)
	if len(tagged) != len(tokens) {
		return nil, fmt.Errorf("%w: %d tokens, %d tags", ErrLengthMismatch, len(tokens), len(tagged))
	}

	out := make([]domain.TaggedToken, len(tagged))
	for i, t := range tagged {
		out[i] = domain.TaggedToken{Text: tokens[i], Tag: t.Tag}
	}
	return out, nil
}
