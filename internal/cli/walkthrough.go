package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nlpwalk/internal/adapter/segmenter"
	"nlpwalk/internal/port"
	"nlpwalk/internal/usecase"
)

var (
	walkOnly       string
	walkSkipCorpus bool
	walkPretty     bool
	walkWorkers    int
	walkGrammar    string
	walkTrainDoc   string
	walkTargetDoc  string
	walkNoProgress bool
)

var walkthroughCmd = &cobra.Command{
	Use:   "walkthrough",
	Short: "Run every stage and print its output (default command)",
	Long: `Run the walkthrough sections in order:

  sentences  split the example paragraph into sentences
  words      split it into word tokens
  stopwords  drop English stopwords from those tokens
  stem       stem python, pythoner, pythoning, pythoned, pythonly
  stem-text  stem each word of a second example text
  train      train a sentence boundary model on the training document
             and split the target document with it
  tag        part-of-speech tag each target sentence
  chunk      chunk each tagged sentence with the chunk grammar

The last three sections read the corpus configured under "corpus".

Examples:
  nlpwalk walkthrough
  nlpwalk walkthrough --only stem,stem-text
  nlpwalk walkthrough --skip-corpus
  nlpwalk walkthrough --only chunk --pretty --workers 4`,
	Args: cobra.NoArgs,
	RunE: runWalkthrough,
}

func init() {
	rootCmd.AddCommand(walkthroughCmd)
	addWalkthroughFlags(walkthroughCmd)
}

func addWalkthroughFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&walkOnly, "only", "", "comma-separated sections to run (default all)")
	cmd.Flags().BoolVar(&walkSkipCorpus, "skip-corpus", false, "skip the sections that need the corpus")
	cmd.Flags().BoolVar(&walkPretty, "pretty", false, "print chunk trees one node per line")
	cmd.Flags().IntVar(&walkWorkers, "workers", 1, "sentences tagged concurrently")
	cmd.Flags().StringVar(&walkGrammar, "grammar", "", "chunk grammar name (default is the first configured)")
	cmd.Flags().StringVar(&walkTrainDoc, "train-doc", "", "corpus document to train on (default from config)")
	cmd.Flags().StringVar(&walkTargetDoc, "target-doc", "", "corpus document to tag (default from config)")
	cmd.Flags().BoolVar(&walkNoProgress, "no-progress", false, "disable the progress bar")
}

func runWalkthrough(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	sections, err := usecase.ParseSections(walkOnly)
	if err != nil {
		return err
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}

	needCorpus := !walkSkipCorpus
	if needCorpus && len(sections) > 0 {
		needCorpus = false
		for _, s := range sections {
			if s == usecase.SectionTrain || s == usecase.SectionTag || s == usecase.SectionChunk {
				needCorpus = true
			}
		}
	}

	var docs port.Corpus
	if needCorpus {
		docs, err = openCorpus()
		if err != nil {
			return fmt.Errorf("%w (use --skip-corpus to run without it)", err)
		}
		defer docs.Close()
	}

	opts := usecase.WalkthroughOptions{
		Sections:   sections,
		SkipCorpus: walkSkipCorpus,
		TrainDoc:   firstNonEmpty(walkTrainDoc, cfg.Corpus.TrainDoc),
		TargetDoc:  firstNonEmpty(walkTargetDoc, cfg.Corpus.TargetDoc),
		Grammar:    walkGrammar,
		Pretty:     walkPretty,
		Workers:    walkWorkers,
		Progress:   newProgress("Annotating", walkNoProgress),
	}

	trainer := segmenter.NewTrainer(componentLog("trainer"))
	w := usecase.NewWalkthrough(p, docs, trainer, cmd.OutOrStdout(), componentLog("walkthrough"))
	report, err := w.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	componentLog("walkthrough").WithFields(logrus.Fields{
		"sections":        len(report.Sections),
		"sentences":       report.Sentences,
		"sentence_errors": report.SentenceErrors,
	}).Info("walkthrough complete")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
