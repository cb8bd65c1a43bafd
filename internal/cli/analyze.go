package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nlpwalk/config"
	"nlpwalk/internal/adapter/analyzer"
	"nlpwalk/internal/domain"
	"nlpwalk/internal/usecase"
)

var (
	sentencesIn inputFlags
	wordsIn     inputFlags

	stopwordsIn        inputFlags
	stopwordsLowercase bool
	stopwordsList      bool

	stemIn        inputFlags
	stemAlgorithm string

	tagIn      inputFlags
	tagWorkers int

	chunkIn      inputFlags
	chunkGrammar string
	chunkRules   string
	chunkPretty  bool
	chunkWorkers int
)

var sentencesCmd = &cobra.Command{
	Use:   "sentences",
	Short: "Split text into sentences",
	Long: `Split text into sentences with the configured segmenter.

Examples:
  nlpwalk sentences -t "Hello Mr. Smith, how are you? Fine."
  nlpwalk sentences -f speech.txt --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, text, err := pipelineAndInput(cmd, &sentencesIn)
		if err != nil {
			return err
		}
		sents := p.Segment(text)
		if sentencesIn.json {
			return writeJSON(cmd.OutOrStdout(), sents)
		}
		lines := make([]string, len(sents))
		for i, s := range sents {
			lines[i] = s.Text
		}
		writeLines(cmd.OutOrStdout(), lines)
		return nil
	},
}

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Split text into word tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, text, err := pipelineAndInput(cmd, &wordsIn)
		if err != nil {
			return err
		}
		words := p.Words(text)
		if wordsIn.json {
			return writeJSON(cmd.OutOrStdout(), words)
		}
		writeLines(cmd.OutOrStdout(), words)
		return nil
	},
}

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Remove stopwords from the word tokens of a text",
	Long: `Tokenize text and drop the configured stopwords, keeping the order of
the remaining tokens. Matching is exact unless --lowercase is given or
stopwords.match is "lowercase".

Examples:
  nlpwalk stopwords -t "This is a sample sentence."
  nlpwalk stopwords --list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := GetConfig().Stopwords
		policy := analyzer.MatchPolicy(sc.Match)
		if stopwordsLowercase {
			policy = analyzer.MatchLowercase
		}
		stops, err := analyzer.NewStopwordSet(sc.Language, policy, sc.Extra)
		if err != nil {
			return err
		}
		if stopwordsList {
			if stopwordsIn.json {
				return writeJSON(cmd.OutOrStdout(), stops.Words())
			}
			writeLines(cmd.OutOrStdout(), stops.Words())
			return nil
		}

		p, text, err := pipelineAndInput(cmd, &stopwordsIn)
		if err != nil {
			return err
		}
		kept := stops.Filter(p.Words(text))
		if stopwordsIn.json {
			return writeJSON(cmd.OutOrStdout(), kept)
		}
		writeLines(cmd.OutOrStdout(), kept)
		return nil
	},
}

var stemCmd = &cobra.Command{
	Use:   "stem [word...]",
	Short: "Stem words",
	Long: `Stem each word given as an argument, or each word token of the input
text when no arguments are given.

Examples:
  nlpwalk stem python pythoner pythoning pythoned pythonly
  nlpwalk stem -t "All pythoners have pythoned at least once" --algorithm snowball`,
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm := GetConfig().Stem.Algorithm
		if stemAlgorithm != "" {
			algorithm = stemAlgorithm
		}
		stemmer, err := analyzer.NewStemmer(algorithm)
		if err != nil {
			return err
		}

		words := args
		if len(words) == 0 {
			p, text, err := pipelineAndInput(cmd, &stemIn)
			if err != nil {
				return err
			}
			words = p.Words(text)
		}

		stems := analyzer.StemAll(stemmer, words)
		if stemIn.json {
			pairs := make([]map[string]string, len(words))
			for i := range words {
				pairs[i] = map[string]string{"word": words[i], "stem": stems[i]}
			}
			return writeJSON(cmd.OutOrStdout(), pairs)
		}
		writeLines(cmd.OutOrStdout(), stems)
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Part-of-speech tag each sentence of a text",
	Long: `Split text into sentences and tag every word token with a Penn Treebank
tag. Run "nlpwalk tags" for the meaning of each tag.

Examples:
  nlpwalk tag -t "Hello Mr. Smith, how are you doing today?"
  nlpwalk tag -f speech.txt --workers 4 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(cmd, &tagIn, usecase.AnnotateOptions{Workers: tagWorkers}, false)
	},
}

var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Chunk each tagged sentence with a chunk grammar",
	Long: `Tag each sentence and group tokens with a regular-expression chunk
grammar. Grammar rules have the form

  Label: {<RB.?>*<VB.?>*<NNP><NN>?}

where each <...> matches one tag and '.' inside the brackets matches any
tag character. Several rules may be given on separate lines.

Examples:
  nlpwalk chunk -t "He quickly visited Paris today."
  nlpwalk chunk -f speech.txt --rules "NP: {<DT>?<JJ>*<NN>}" --pretty`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := usecase.AnnotateOptions{Chunk: true, Grammar: chunkGrammar, Workers: chunkWorkers}
		return runAnnotate(cmd, &chunkIn, opts, chunkPretty)
	},
}

func init() {
	rootCmd.AddCommand(sentencesCmd, wordsCmd, stopwordsCmd, stemCmd, tagCmd, chunkCmd)

	addInputFlags(sentencesCmd, &sentencesIn)
	addInputFlags(wordsCmd, &wordsIn)

	addInputFlags(stopwordsCmd, &stopwordsIn)
	stopwordsCmd.Flags().BoolVar(&stopwordsLowercase, "lowercase", false, "match tokens case-insensitively")
	stopwordsCmd.Flags().BoolVar(&stopwordsList, "list", false, "print the stopword list")

	addInputFlags(stemCmd, &stemIn)
	stemCmd.Flags().StringVarP(&stemAlgorithm, "algorithm", "a", "", "porter or snowball (default from config)")

	addInputFlags(tagCmd, &tagIn)
	tagCmd.Flags().IntVar(&tagWorkers, "workers", 1, "sentences tagged concurrently")

	addInputFlags(chunkCmd, &chunkIn)
	chunkCmd.Flags().StringVarP(&chunkGrammar, "grammar", "g", "", "configured grammar name (default is the first)")
	chunkCmd.Flags().StringVar(&chunkRules, "rules", "", "grammar rules to use instead of the configured grammars")
	chunkCmd.Flags().BoolVar(&chunkPretty, "pretty", false, "print trees one node per line")
	chunkCmd.Flags().IntVar(&chunkWorkers, "workers", 1, "sentences chunked concurrently")
}

func pipelineAndInput(cmd *cobra.Command, in *inputFlags) (*usecase.Pipeline, string, error) {
	text, err := in.read(cmd)
	if err != nil {
		return nil, "", err
	}
	p, err := newPipeline()
	if err != nil {
		return nil, "", err
	}
	return p, text, nil
}

func runAnnotate(cmd *cobra.Command, in *inputFlags, opts usecase.AnnotateOptions, pretty bool) error {
	text, err := in.read(cmd)
	if err != nil {
		return err
	}

	c := *GetConfig()
	if opts.Chunk && chunkRules != "" {
		c.Chunk.Grammars = []config.GrammarConfig{{Name: "inline", Rules: chunkRules}}
		opts.Grammar = ""
	}
	p, err := usecase.NewPipelineFromConfig(&c, componentLog("pipeline"))
	if err != nil {
		return fmt.Errorf("failed to set up pipeline: %w", err)
	}

	opts.Progress = newProgress("Annotating", in.json)
	result, err := p.Annotate(cmd.Context(), p.Segment(text), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if in.json {
		return writeJSON(out, result.Sentences)
	}
	for _, ann := range result.Sentences {
		if err := result.Err(ann.Index); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		fmt.Fprintln(out, formatAnnotation(ann, opts.Chunk, pretty))
	}
	return nil
}

func formatAnnotation(ann domain.AnnotatedSentence, chunked, pretty bool) string {
	if !chunked || ann.Tree == nil {
		return fmt.Sprintf("%v", ann.Tagged)
	}
	if pretty {
		return ann.Tree.Pretty()
	}
	return ann.Tree.String()
}
