package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"nlpwalk/config"
	"nlpwalk/internal/adapter/analyzer"
	"nlpwalk/internal/adapter/cache"
	"nlpwalk/internal/adapter/chunker"
	"nlpwalk/internal/adapter/segmenter"
	"nlpwalk/internal/adapter/tagger"
	"nlpwalk/internal/domain"
	"nlpwalk/internal/port"
)

// Pipeline runs the annotation stages over swappable backends.
type Pipeline struct {
	segmenter port.SentenceSegmenter
	words     port.WordTokenizer
	stopwords port.StopwordFilter
	stemmer   port.Stemmer
	tagger    port.Tagger
	chunkers  port.ChunkerSet
	log       *logrus.Entry
}

var _ port.TextAnnotationPipeline = (*Pipeline)(nil)

// Backends groups the pipeline's dependencies.
type Backends struct {
	Segmenter port.SentenceSegmenter
	Words     port.WordTokenizer
	Stopwords port.StopwordFilter
	Stemmer   port.Stemmer
	Tagger    port.Tagger
	Chunkers  port.ChunkerSet
}

// NewPipeline creates a pipeline. All backends are required.
func NewPipeline(b Backends, log *logrus.Entry) (*Pipeline, error) {
	switch {
	case b.Segmenter == nil:
		return nil, fmt.Errorf("pipeline: missing sentence segmenter")
	case b.Words == nil:
		return nil, fmt.Errorf("pipeline: missing word tokenizer")
	case b.Stopwords == nil:
		return nil, fmt.Errorf("pipeline: missing stopword filter")
	case b.Stemmer == nil:
		return nil, fmt.Errorf("pipeline: missing stemmer")
	case b.Tagger == nil:
		return nil, fmt.Errorf("pipeline: missing tagger")
	case b.Chunkers == nil:
		return nil, fmt.Errorf("pipeline: missing chunk grammars")
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Pipeline{
		segmenter: b.Segmenter,
		words:     b.Words,
		stopwords: b.Stopwords,
		stemmer:   b.Stemmer,
		tagger:    b.Tagger,
		chunkers:  b.Chunkers,
		log:       log,
	}, nil
}

// NewPipelineFromConfig wires the default backends selected by cfg.
func NewPipelineFromConfig(cfg *config.Config, log *logrus.Entry) (*Pipeline, error) {
	seg, err := segmenter.New(cfg.Segment.Backend, cfg.Segment.Language)
	if err != nil {
		return nil, err
	}
	stops, err := analyzer.NewStopwordSet(cfg.Stopwords.Language, analyzer.MatchPolicy(cfg.Stopwords.Match), cfg.Stopwords.Extra)
	if err != nil {
		return nil, err
	}
	stem, err := analyzer.NewStemmer(cfg.Stem.Algorithm)
	if err != nil {
		return nil, err
	}
	grammars, err := chunker.NewRegistry(cfg.GrammarTexts())
	if err != nil {
		return nil, err
	}
	var tag port.Tagger = tagger.NewPerceptron()
	if cfg.Tag.CacheSize > 0 {
		tag = cache.NewCachedTagger(tag, cache.NewTagCache(cfg.Tag.CacheSize, cfg.Tag.CacheTTL))
	}
	return NewPipeline(Backends{
		Segmenter: seg,
		Words:     segmenter.NewTreebankWords(),
		Stopwords: stops,
		Stemmer:   stem,
		Tagger:    tag,
		Chunkers:  grammars,
	}, log)
}

// WithSegmenter returns a copy of p that segments with seg.
func (p *Pipeline) WithSegmenter(seg port.SentenceSegmenter) *Pipeline {
	cp := *p
	cp.segmenter = seg
	return &cp
}

// Tagger returns the tagging backend, including any cache wrapping it.
func (p *Pipeline) Tagger() port.Tagger {
	return p.tagger
}

func (p *Pipeline) Segment(text string) []domain.Sentence {
	return p.segmenter.Segment(text)
}

// Sentences returns a restartable sequence over the sentences of text.
func (p *Pipeline) Sentences(text string) *domain.SentenceSeq {
	return domain.NewSentenceSeq(p.Segment(text))
}

func (p *Pipeline) Tokenize(sentence string) []string {
	return p.words.Tokenize(sentence)
}

// Words segments text and tokenizes each sentence in turn.
func (p *Pipeline) Words(text string) []string {
	return segmenter.WordsOf(p.segmenter, p.words, text)
}

func (p *Pipeline) FilterStopwords(tokens []string) []string {
	return p.stopwords.Filter(tokens)
}

func (p *Pipeline) Stem(tokens []string) []string {
	return analyzer.StemAll(p.stemmer, tokens)
}

func (p *Pipeline) Tag(tokens []string) ([]domain.TaggedToken, error) {
	return p.tagger.Tag(tokens)
}

// Chunk chunks tagged tokens with the named grammar; "" selects the default.
func (p *Pipeline) Chunk(tagged []domain.TaggedToken, grammar string) (domain.ChunkTree, error) {
	c, err := p.chunkers.Chunker(grammar)
	if err != nil {
		return domain.ChunkTree{}, err
	}
	return c.Chunk(tagged), nil
}

// AnnotateOptions controls a batch annotation run.
type AnnotateOptions struct {
	// Chunk enables chunking with Grammar ("" selects the default).
	Chunk   bool
	Grammar string
	// Workers is the number of sentences processed concurrently; values
	// below 1 mean 1.
	Workers int
	// Progress, if set, is called after each sentence with the number of
	// sentences done so far.
	Progress func(done, total int)
}

// AnnotateResult holds one entry per input sentence, in input order, and
// the sentence-level failures.
type AnnotateResult struct {
	Sentences []domain.AnnotatedSentence
	Errors    []*SentenceError
}

// Err returns the failure recorded for sentence i, or nil.
func (r *AnnotateResult) Err(i int) error {
	for _, e := range r.Errors {
		if e.Index == i {
			return e
		}
	}
	return nil
}

// Annotate tokenizes, tags and optionally chunks each sentence. A failure or
// panic in one sentence is logged and recorded in the result, and the batch
// continues. Context cancellation stops the batch and is returned together
// with the sentences finished so far.
func (p *Pipeline) Annotate(ctx context.Context, sentences []domain.Sentence, opts AnnotateOptions) (*AnnotateResult, error) {
	var grammar port.Chunker
	if opts.Chunk {
		g, err := p.chunkers.Chunker(opts.Grammar)
		if err != nil {
			return nil, err
		}
		grammar = g
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	total := len(sentences)
	out := make([]domain.AnnotatedSentence, total)
	errs := make([]*SentenceError, total)
	done := make([]bool, total)

	jobs := make(chan int)
	var mu sync.Mutex
	finished := 0

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ann, err := p.annotateOne(i, sentences[i], grammar)
				if err != nil {
					ann.Error = err.Error()
					errs[i] = err
					p.log.WithFields(logrus.Fields{
						"stage":    err.Stage,
						"sentence": i,
						"error":    err.Err,
					}).Warn("sentence skipped")
				}
				out[i] = ann
				done[i] = true
				if opts.Progress != nil {
					mu.Lock()
					finished++
					opts.Progress(finished, total)
					mu.Unlock()
				}
			}
		}()
	}

	var ctxErr error
feed:
	for i := range sentences {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	result := &AnnotateResult{}
	for i := range sentences {
		if !done[i] {
			continue
		}
		result.Sentences = append(result.Sentences, out[i])
		if errs[i] != nil {
			result.Errors = append(result.Errors, errs[i])
		}
	}
	if ctxErr != nil {
		return result, ctxErr
	}
	return result, nil
}

func (p *Pipeline) annotateOne(i int, s domain.Sentence, grammar port.Chunker) (ann domain.AnnotatedSentence, serr *SentenceError) {
	ann = domain.AnnotatedSentence{Index: i, Sentence: s}
	stage := StageTokenize
	defer func() {
		if r := recover(); r != nil {
			serr = &SentenceError{Stage: stage, Index: i, Err: fmt.Errorf("%w: %v", ErrBackendPanic, r)}
		}
	}()

	ann.Tokens = p.words.Tokenize(s.Text)

	stage = StageTag
	tagged, err := p.tagger.Tag(ann.Tokens)
	if err != nil {
		return ann, &SentenceError{Stage: stage, Index: i, Err: err}
	}
	ann.Tagged = tagged

	if grammar == nil {
		return ann, nil
	}
	stage = StageChunk
	tree := grammar.Chunk(tagged)
	ann.Tree = &tree
	return ann, nil
}
