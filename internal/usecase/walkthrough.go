package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"nlpwalk/internal/domain"
	"nlpwalk/internal/port"
)

// ExampleText is the paragraph used by the tokenization and stopword
// sections.
const ExampleText = "Hello Mr. Smith, how are you doing today? The weather is great, and Python is awesome. " +
	"The sky is pinkish-blue. You shouldn't eat cardboard."

// StemText is tokenized and stemmed word by word in the stem-text section.
const StemText = "It is very important to be pythonly while you are pythoning with python. " +
	"All pythoners have pythoned at least once"

// ExampleWords share a stem under the Porter algorithm.
var ExampleWords = []string{"python", "pythoner", "pythoning", "pythoned", "pythonly"}

// Section is one printed part of the walkthrough.
type Section string

const (
	SectionSentences Section = "sentences"
	SectionWords     Section = "words"
	SectionStopwords Section = "stopwords"
	SectionStem      Section = "stem"
	SectionStemText  Section = "stem-text"
	SectionTrain     Section = "train"
	SectionTag       Section = "tag"
	SectionChunk     Section = "chunk"
)

// Sections lists every section in run order.
var Sections = []Section{
	SectionSentences, SectionWords, SectionStopwords, SectionStem,
	SectionStemText, SectionTrain, SectionTag, SectionChunk,
}

func (s Section) needsCorpus() bool {
	return s == SectionTrain || s == SectionTag || s == SectionChunk
}

// ParseSections parses a comma-separated section list. An empty list
// selects every section.
func ParseSections(list string) ([]Section, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var out []Section
	for _, name := range strings.Split(list, ",") {
		s := Section(strings.TrimSpace(name))
		known := false
		for _, k := range Sections {
			if s == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown section %q", s)
		}
		out = append(out, s)
	}
	return out, nil
}

// WalkthroughOptions controls a walkthrough run.
type WalkthroughOptions struct {
	Sections   []Section // empty means all
	SkipCorpus bool
	TrainDoc   string
	TargetDoc  string
	Grammar    string
	Pretty     bool
	Workers    int
	Progress   func(done, total int)
}

// WalkthroughReport summarizes a run.
type WalkthroughReport struct {
	Sections       []Section
	Sentences      int
	SentenceErrors int
	Degenerate     bool
}

// Walkthrough prints each annotation stage in turn: segmentation, word
// tokenization, stopword filtering, stemming, boundary-model training,
// tagging and chunking.
type Walkthrough struct {
	pipeline *Pipeline
	corpus   port.Corpus
	trainer  port.BoundaryTrainer
	out      io.Writer
	log      *logrus.Entry
}

// NewWalkthrough creates a walkthrough. corpus may be nil when only the
// literal-text sections run.
func NewWalkthrough(p *Pipeline, corpus port.Corpus, trainer port.BoundaryTrainer, out io.Writer, log *logrus.Entry) *Walkthrough {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Walkthrough{
		pipeline: p,
		corpus:   corpus,
		trainer:  trainer,
		out:      out,
		log:      log,
	}
}

// Run prints the selected sections. Errors other than per-sentence failures
// abort the run.
func (w *Walkthrough) Run(ctx context.Context, opts WalkthroughOptions) (*WalkthroughReport, error) {
	selected := opts.Sections
	if len(selected) == 0 {
		selected = Sections
	}
	want := make(map[Section]bool, len(selected))
	for _, s := range selected {
		if opts.SkipCorpus && s.needsCorpus() {
			continue
		}
		want[s] = true
	}

	report := &WalkthroughReport{}
	p := w.pipeline

	if want[SectionSentences] {
		w.header(SectionSentences)
		var texts []string
		seq := p.Sentences(ExampleText)
		for s, ok := seq.Next(); ok; s, ok = seq.Next() {
			texts = append(texts, s.Text)
		}
		w.printf("%q\n", texts)
		report.Sections = append(report.Sections, SectionSentences)
	}

	words := p.Words(ExampleText)
	if want[SectionWords] {
		w.header(SectionWords)
		w.printf("%q\n", words)
		report.Sections = append(report.Sections, SectionWords)
	}

	if want[SectionStopwords] {
		w.header(SectionStopwords)
		w.printf("%q\n", p.FilterStopwords(words))
		report.Sections = append(report.Sections, SectionStopwords)
	}

	if want[SectionStem] {
		w.header(SectionStem)
		for _, s := range p.Stem(ExampleWords) {
			w.printf("%s\n", s)
		}
		report.Sections = append(report.Sections, SectionStem)
	}

	if want[SectionStemText] {
		w.header(SectionStemText)
		for _, s := range p.Stem(p.Words(StemText)) {
			w.printf("%s\n", s)
		}
		report.Sections = append(report.Sections, SectionStemText)
	}

	if !want[SectionTrain] && !want[SectionTag] && !want[SectionChunk] {
		return report, nil
	}

	sentences, degenerate, err := w.trainAndSegment(opts, want[SectionTrain])
	if err != nil {
		return report, err
	}
	report.Degenerate = degenerate
	report.Sentences = len(sentences)
	if want[SectionTrain] {
		report.Sections = append(report.Sections, SectionTrain)
	}

	if !want[SectionTag] && !want[SectionChunk] {
		return report, nil
	}

	result, err := p.Annotate(ctx, sentences, AnnotateOptions{
		Chunk:    want[SectionChunk],
		Grammar:  opts.Grammar,
		Workers:  opts.Workers,
		Progress: opts.Progress,
	})
	if err != nil {
		return report, err
	}
	report.SentenceErrors = len(result.Errors)

	if want[SectionTag] {
		w.header(SectionTag)
		for _, ann := range result.Sentences {
			if err := result.Err(ann.Index); err != nil {
				w.printf("%v\n", err)
				continue
			}
			w.printf("%v\n", ann.Tagged)
		}
		report.Sections = append(report.Sections, SectionTag)
	}

	if want[SectionChunk] {
		w.header(SectionChunk)
		for _, ann := range result.Sentences {
			if err := result.Err(ann.Index); err != nil {
				w.printf("%v\n", err)
				continue
			}
			if opts.Pretty {
				w.printf("%s\n", ann.Tree.Pretty())
			} else {
				w.printf("%s\n", ann.Tree.String())
			}
		}
		report.Sections = append(report.Sections, SectionChunk)
	}

	return report, nil
}

// modelSummary is implemented by trained models that expose what they
// learned.
type modelSummary interface {
	Abbreviations() []string
	SentenceStarters() []string
	Collocations() []string
}

func (w *Walkthrough) trainAndSegment(opts WalkthroughOptions, show bool) ([]domain.Sentence, bool, error) {
	if w.corpus == nil {
		return nil, false, fmt.Errorf("corpus sections need a corpus collection")
	}
	if w.trainer == nil {
		return nil, false, fmt.Errorf("corpus sections need a boundary trainer")
	}

	trainText, err := w.corpus.Raw(opts.TrainDoc)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load training document: %w", err)
	}
	targetText, err := w.corpus.Raw(opts.TargetDoc)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load target document: %w", err)
	}

	model := w.trainer.Train(trainText)
	sentences := model.Segment(targetText)
	w.log.WithFields(logrus.Fields{
		"train":      opts.TrainDoc,
		"target":     opts.TargetDoc,
		"sentences":  len(sentences),
		"degenerate": model.Degenerate(),
	}).Debug("boundary model trained")

	if show {
		w.header(SectionTrain)
		if model.Degenerate() {
			w.printf("%s: nothing to learn, using naive splitting\n", opts.TrainDoc)
		} else if sum, ok := model.(modelSummary); ok {
			w.printf("%s: %d abbreviations, %d sentence starters, %d collocations\n",
				opts.TrainDoc, len(sum.Abbreviations()), len(sum.SentenceStarters()), len(sum.Collocations()))
		}
		w.printf("%s: %d sentences\n", opts.TargetDoc, len(sentences))
	}
	return sentences, model.Degenerate(), nil
}

func (w *Walkthrough) header(s Section) {
	w.printf("== %s ==\n", s)
}

func (w *Walkthrough) printf(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}
