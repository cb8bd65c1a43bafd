package port

import "nlpwalk/internal/domain"

type Chunker interface {
	Chunk(tagged []domain.TaggedToken) domain.ChunkTree
}

// ChunkerSet resolves named chunk grammars. An empty name selects the
// default grammar.
type ChunkerSet interface {
	Chunker(name string) (Chunker, error)
}
