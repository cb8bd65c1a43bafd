package domain

import "strings"

// Sentence is a contiguous span of the input text.
// Text == input[Start:End].
type Sentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (s Sentence) String() string {
	return s.Text
}

// TaggedToken pairs a token with its part-of-speech tag.
type TaggedToken struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

func (t TaggedToken) String() string {
	return t.Text + "/" + t.Tag
}

// ChunkNode is one element of a chunk partition. Unmatched tokens have an
// empty Label and exactly one token.
type ChunkNode struct {
	Label  string        `json:"label,omitempty"`
	Tokens []TaggedToken `json:"tokens"`
}

func (n ChunkNode) IsChunk() bool {
	return n.Label != ""
}

// ChunkTree is an ordered, non-overlapping partition of a tagged sentence.
type ChunkTree struct {
	Label string      `json:"label"`
	Nodes []ChunkNode `json:"nodes"`
}

// Flatten returns the tagged tokens in their original order.
func (t ChunkTree) Flatten() []TaggedToken {
	var out []TaggedToken
	for _, n := range t.Nodes {
		out = append(out, n.Tokens...)
	}
	return out
}

// Chunks returns only the matched chunks.
func (t ChunkTree) Chunks() []ChunkNode {
	var out []ChunkNode
	for _, n := range t.Nodes {
		if n.IsChunk() {
			out = append(out, n)
		}
	}
	return out
}

// String renders the tree on one line in bracketed form:
// (S Hello/NNP (Chunk Mr./NNP Smith/NNP) ,/,)
func (t ChunkTree) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(t.Label)
	for _, n := range t.Nodes {
		b.WriteString(" ")
		writeNode(&b, n)
	}
	b.WriteString(")")
	return b.String()
}

// Pretty renders the tree with one node per line.
func (t ChunkTree) Pretty() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(t.Label)
	for _, n := range t.Nodes {
		b.WriteString("\n  ")
		writeNode(&b, n)
	}
	b.WriteString(")")
	return b.String()
}

func writeNode(b *strings.Builder, n ChunkNode) {
	if !n.IsChunk() {
		for i, tok := range n.Tokens {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(tok.String())
		}
		return
	}
	b.WriteString("(")
	b.WriteString(n.Label)
	for _, tok := range n.Tokens {
		b.WriteString(" ")
		b.WriteString(tok.String())
	}
	b.WriteString(")")
}

// SentenceSeq is a restartable cursor over segmented sentences.
type SentenceSeq struct {
	sentences []Sentence
	pos       int
}

func NewSentenceSeq(sentences []Sentence) *SentenceSeq {
	return &SentenceSeq{sentences: sentences}
}

// Next returns the next sentence and true, or false when exhausted.
func (s *SentenceSeq) Next() (Sentence, bool) {
	if s.pos >= len(s.sentences) {
		return Sentence{}, false
	}
	sent := s.sentences[s.pos]
	s.pos++
	return sent, true
}

// Reset rewinds the sequence to the first sentence.
func (s *SentenceSeq) Reset() {
	s.pos = 0
}

func (s *SentenceSeq) Len() int {
	return len(s.sentences)
}

// AnnotatedSentence is the per-sentence output of tagging and chunking.
type AnnotatedSentence struct {
	Index    int           `json:"index"`
	Sentence Sentence      `json:"sentence"`
	Tokens   []string      `json:"tokens"`
	Tagged   []TaggedToken `json:"tagged"`
	Tree     *ChunkTree    `json:"tree,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Document describes one document of a corpus collection.
type Document struct {
	Name    string `json:"name"`
	Source  string `json:"source,omitempty"`
	ModTime int64  `json:"mod_time,omitempty"`
	Size    int64  `json:"size"`
	Hash    string `json:"hash"`
}
