package chunker

import (
	"strings"

	"nlpwalk/internal/domain"
)

// Grammar is a compiled, immutable chunk grammar. It is safe for concurrent
// use.
type Grammar struct {
	name  string
	rules []Rule
}

func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Chunk partitions tagged into chunks and unmatched tokens. Every token
// appears exactly once, in its original order.
func (g *Grammar) Chunk(tagged []domain.TaggedToken) domain.ChunkTree {
	labels := make([]string, len(tagged))
	// chunkID marks tokens consumed by a chunk; consecutive tokens with the
	// same id form one chunk. 0 means unchunked.
	chunkID := make([]int, len(tagged))
	nextID := 1

	for _, rule := range g.rules {
		for _, run := range unchunkedRuns(chunkID) {
			for _, span := range rule.match(tagged[run[0]:run[1]]) {
				for i := run[0] + span[0]; i < run[0]+span[1]; i++ {
					chunkID[i] = nextID
					labels[i] = rule.Label
				}
				nextID++
			}
		}
	}

	tree := domain.ChunkTree{Label: "S"}
	for i := 0; i < len(tagged); {
		if chunkID[i] == 0 {
			tree.Nodes = append(tree.Nodes, domain.ChunkNode{Tokens: []domain.TaggedToken{tagged[i]}})
			i++
			continue
		}
		j := i
		for j < len(tagged) && chunkID[j] == chunkID[i] {
			j++
		}
		tree.Nodes = append(tree.Nodes, domain.ChunkNode{
			Label:  labels[i],
			Tokens: append([]domain.TaggedToken(nil), tagged[i:j]...),
		})
		i = j
	}
	return tree
}

// match returns token index spans [start, end) matched by the rule,
// leftmost and greedy, non-overlapping.
func (r Rule) match(tagged []domain.TaggedToken) [][2]int {
	var b strings.Builder
	startAt := make(map[int]int, len(tagged)+1)
	endAt := make(map[int]int, len(tagged)+1)
	for i, t := range tagged {
		startAt[b.Len()] = i
		b.WriteByte('<')
		b.WriteString(t.Tag)
		b.WriteByte('>')
		endAt[b.Len()] = i + 1
	}

	var spans [][2]int
	for _, loc := range r.re.FindAllStringIndex(b.String(), -1) {
		if loc[0] == loc[1] {
			continue
		}
		start, okStart := startAt[loc[0]]
		end, okEnd := endAt[loc[1]]
		if !okStart || !okEnd {
			continue
		}
		spans = append(spans, [2]int{start, end})
	}
	return spans
}

// unchunkedRuns returns maximal [start, end) runs of unchunked tokens.
func unchunkedRuns(chunkID []int) [][2]int {
	var runs [][2]int
	start := -1
	for i, id := range chunkID {
		if id == 0 && start < 0 {
			start = i
		}
		if id != 0 && start >= 0 {
			runs = append(runs, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(chunkID)})
	}
	return runs
}
