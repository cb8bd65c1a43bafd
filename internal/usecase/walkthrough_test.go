package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlpwalk/config"
	"nlpwalk/internal/adapter/segmenter"
	"nlpwalk/internal/logging"
	"nlpwalk/internal/port"
)

type mapCorpus map[string]string

func (c mapCorpus) Raw(name string) (string, error) {
	text, ok := c[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", port.ErrDocumentNotFound, name)
	}
	return text, nil
}

func (c mapCorpus) Names() ([]string, error) { return nil, nil }
func (c mapCorpus) Close() error             { return nil }

const trainParagraph = "Dr. Brown met Mr. Smith yesterday afternoon. They discussed the weather together. " +
	"Mr. Smith said the afternoon was lovely and pleasant.\n"

func testCorpus() mapCorpus {
	return mapCorpus{
		"2005-GWBush.txt": strings.Repeat(trainParagraph, 40),
		"2006-GWBush.txt": "Mr. Smith visited Washington yesterday. The President spoke warmly.",
	}
}

func runWalkthrough(t *testing.T, corpus port.Corpus, opts WalkthroughOptions) (string, *WalkthroughReport, error) {
	t.Helper()
	p, err := NewPipelineFromConfig(config.DefaultConfig(), logging.Discard())
	require.NoError(t, err)

	var out bytes.Buffer
	w := NewWalkthrough(p, corpus, segmenter.NewTrainer(logging.Discard()), &out, logging.Discard())
	if opts.TrainDoc == "" {
		opts.TrainDoc = "2005-GWBush.txt"
	}
	if opts.TargetDoc == "" {
		opts.TargetDoc = "2006-GWBush.txt"
	}
	report, err := w.Run(context.Background(), opts)
	return out.String(), report, err
}

func sectionBody(out string, s Section) []string {
	parts := strings.Split(out, "== "+string(s)+" ==\n")
	if len(parts) < 2 {
		return nil
	}
	body := parts[1]
	if i := strings.Index(body, "== "); i >= 0 {
		body = body[:i]
	}
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}

func TestWalkthroughLiteralSections(t *testing.T) {
	out, report, err := runWalkthrough(t, nil, WalkthroughOptions{SkipCorpus: true})
	require.NoError(t, err)

	assert.Equal(t, []Section{SectionSentences, SectionWords, SectionStopwords, SectionStem, SectionStemText}, report.Sections)

	sents := sectionBody(out, SectionSentences)
	require.Len(t, sents, 1)
	assert.Contains(t, sents[0], `"Hello Mr. Smith, how are you doing today?"`)
	assert.Contains(t, sents[0], `"You shouldn't eat cardboard."`)

	words := sectionBody(out, SectionWords)
	require.Len(t, words, 1)
	assert.Contains(t, words[0], `"n't"`)

	assert.Equal(t, []string{"python", "python", "python", "python", "pythonli"}, sectionBody(out, SectionStem))

	stems := sectionBody(out, SectionStemText)
	assert.Equal(t, "it", stems[0])
	assert.Contains(t, stems, "import")
	assert.Contains(t, stems, "pythonli")
	assert.Contains(t, stems, "onc")

	assert.NotContains(t, out, "== tag ==")
}

func TestWalkthroughCorpusSections(t *testing.T) {
	out, report, err := runWalkthrough(t, testCorpus(), WalkthroughOptions{
		Sections: []Section{SectionTrain, SectionTag, SectionChunk},
	})
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionTrain, SectionTag, SectionChunk}, report.Sections)
	assert.False(t, report.Degenerate)
	assert.Equal(t, 2, report.Sentences)
	assert.Zero(t, report.SentenceErrors)

	train := sectionBody(out, SectionTrain)
	require.Len(t, train, 2)
	assert.Contains(t, train[0], "2005-GWBush.txt:")
	assert.Equal(t, "2006-GWBush.txt: 2 sentences", train[1])

	tags := sectionBody(out, SectionTag)
	require.Len(t, tags, 2)
	assert.True(t, strings.HasPrefix(tags[0], "[Mr./"), tags[0])
	assert.Contains(t, tags[0], "Smith/NNP")

	chunks := sectionBody(out, SectionChunk)
	require.Len(t, chunks, 2)
	for _, c := range chunks {
		assert.True(t, strings.HasPrefix(c, "(S "), c)
	}
	assert.Contains(t, chunks[0], "(Chunk")
}

func TestWalkthroughChunkOnlyTrainsSilently(t *testing.T) {
	out, report, err := runWalkthrough(t, testCorpus(), WalkthroughOptions{
		Sections: []Section{SectionChunk},
		Pretty:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionChunk}, report.Sections)
	assert.NotContains(t, out, "== train ==")
	assert.Contains(t, out, "(S\n  ")
}

func TestWalkthroughMissingCorpus(t *testing.T) {
	_, _, err := runWalkthrough(t, nil, WalkthroughOptions{Sections: []Section{SectionTag}})
	assert.Error(t, err)

	_, _, err = runWalkthrough(t, testCorpus(), WalkthroughOptions{
		Sections:  []Section{SectionTrain},
		TargetDoc: "2007-GWBush.txt",
	})
	assert.ErrorIs(t, err, port.ErrDocumentNotFound)
}

func TestWalkthroughEmptyTrainingDocument(t *testing.T) {
	corpus := testCorpus()
	corpus["empty.txt"] = "   \n"
	out, report, err := runWalkthrough(t, corpus, WalkthroughOptions{
		Sections: []Section{SectionTrain},
		TrainDoc: "empty.txt",
	})
	require.NoError(t, err)
	assert.True(t, report.Degenerate)
	assert.Contains(t, out, "naive splitting")
	// Without a learned abbreviation list "Mr." ends a sentence.
	assert.Equal(t, 3, report.Sentences)
}

func TestParseSections(t *testing.T) {
	got, err := ParseSections("stem, tag")
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionStem, SectionTag}, got)

	got, err = ParseSections("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseSections("stem,draw")
	assert.Error(t, err)
}
