package port

import "nlpwalk/internal/domain"

// TextAnnotationPipeline exposes each annotation stage independently so that
// backends can be swapped without touching callers.
type TextAnnotationPipeline interface {
	Segment(text string) []domain.Sentence

	Tokenize(sentence string) []string

	FilterStopwords(tokens []string) []string

	Stem(tokens []string) []string

	Tag(tokens []string) ([]domain.TaggedToken, error)

	Chunk(tagged []domain.TaggedToken, grammar string) (domain.ChunkTree, error)
}
