package port

import "nlpwalk/internal/domain"

// SentenceSegmenter splits text into sentences.
type SentenceSegmenter interface {
	Segment(text string) []domain.Sentence
}

// WordTokenizer splits a single sentence into word tokens.
type WordTokenizer interface {
	Tokenize(sentence string) []string
}

// BoundaryModel is a trained sentence segmenter.
type BoundaryModel interface {
	SentenceSegmenter

	// Degenerate reports whether the model fell back to naive splitting.
	Degenerate() bool
}

// BoundaryTrainer learns a BoundaryModel from unlabeled text.
type BoundaryTrainer interface {
	Train(corpus string) BoundaryModel
}
