package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nlpwalk/internal/adapter/segmenter"
)

var (
	trainDoc     string
	trainFile    string
	trainSegment string
	trainJSON    bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a sentence boundary model and show what it learned",
	Long: `Train an unsupervised sentence boundary model on a corpus document (or a
file) and print the abbreviations, sentence starters and collocations it
learned. With --segment, split another corpus document with the model.

The model is printed, never saved.

Examples:
  nlpwalk train
  nlpwalk train --doc 2005-GWBush.txt --segment 2006-GWBush.txt
  nlpwalk train -f speeches.txt --json`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().StringVar(&trainDoc, "doc", "", "corpus document to train on (default from config)")
	trainCmd.Flags().StringVarP(&trainFile, "file", "f", "", "train on a file instead of a corpus document")
	trainCmd.Flags().StringVar(&trainSegment, "segment", "", "corpus document to split with the trained model")
	trainCmd.Flags().BoolVar(&trainJSON, "json", false, "output the learned parameters as JSON")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	var trainText, target string
	var err error
	name := trainFile
	if trainFile != "" && trainSegment == "" {
		trainText, err = readDocument(trainFile)
		if err != nil {
			return err
		}
	} else {
		docs, err := openCorpus()
		if err != nil {
			return err
		}
		defer docs.Close()

		if trainFile != "" {
			trainText, err = readDocument(trainFile)
		} else {
			name = firstNonEmpty(trainDoc, cfg.Corpus.TrainDoc)
			trainText, err = docs.Raw(name)
		}
		if err != nil {
			return fmt.Errorf("failed to load training text: %w", err)
		}
		if trainSegment != "" {
			target, err = docs.Raw(trainSegment)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", trainSegment, err)
			}
		}
	}

	model := segmenter.NewTrainer(componentLog("trainer")).Fit(trainText)

	if trainJSON {
		return writeJSON(out, model)
	}

	stats := model.Stats()
	fmt.Fprintf(out, "Trained on %s\n", name)
	fmt.Fprintf(out, "  Tokens:            %d\n", stats.Tokens)
	fmt.Fprintf(out, "  Period tokens:     %d\n", stats.PeriodTokens)
	fmt.Fprintf(out, "  Sentence breaks:   %d\n", stats.SentBreaks)
	if model.Degenerate() {
		fmt.Fprintln(out, "\nNothing to learn; the model splits naively.")
	} else {
		printList(cmd, "Abbreviations", model.Abbreviations())
		printList(cmd, "Sentence starters", model.SentenceStarters())
		printList(cmd, "Collocations", model.Collocations())
	}

	if trainSegment != "" {
		sents := model.Segment(target)
		fmt.Fprintf(out, "\n%s: %d sentences\n", trainSegment, len(sents))
		for _, s := range sents {
			fmt.Fprintf(out, "  %s\n", s.Text)
		}
	}
	return nil
}

func printList(cmd *cobra.Command, title string, items []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s (%d):\n", title, len(items))
	for _, it := range items {
		fmt.Fprintf(out, "  %s\n", it)
	}
}
