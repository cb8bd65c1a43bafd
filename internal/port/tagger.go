package port

import "nlpwalk/internal/domain"

// Tagger assigns one part-of-speech tag per token.
type Tagger interface {
	Tag(tokens []string) ([]domain.TaggedToken, error)
}
