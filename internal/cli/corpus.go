package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"nlpwalk/config"
	"nlpwalk/internal/adapter/corpus"
	"nlpwalk/internal/adapter/fs"
	"nlpwalk/internal/adapter/store"
)

var (
	corpusListJSON bool
	corpusPackOut  string
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect or pack the corpus collection",
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the documents of the configured corpus",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := openCorpus()
		if err != nil {
			return err
		}
		defer docs.Close()

		names, err := docs.Names()
		if err != nil {
			return fmt.Errorf("failed to list corpus: %w", err)
		}

		out := cmd.OutOrStdout()
		if packed, ok := docs.(*store.BoltCorpus); ok {
			list, err := packed.ListDocs()
			if err != nil {
				return err
			}
			if corpusListJSON {
				return writeJSON(out, list)
			}
			for _, d := range list {
				fmt.Fprintf(out, "%-40s %8d bytes  %s\n", d.Name, d.Size, d.Hash)
			}
			return nil
		}

		if corpusListJSON {
			return writeJSON(out, names)
		}
		writeLines(out, names)
		return nil
	},
}

var corpusPackCmd = &cobra.Command{
	Use:   "pack [dir]",
	Short: "Pack a corpus directory into a single read-only database",
	Long: `Read every supported document under dir (default: corpus.dir from the
config) and store its text in a bbolt database. Point corpus.bolt_path at
the result to use it instead of the directory.

Examples:
  nlpwalk corpus pack
  nlpwalk corpus pack ~/nltk_data/corpora/state_union -o state_union.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		dir := cfg.Corpus.Dir
		if len(args) > 0 {
			dir = args[0]
		}

		out := corpusPackOut
		if out == "" {
			if err := config.EnsureConfigDir(GetRootDir()); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			out = config.CorpusDBPath(GetRootDir())
		}

		src, err := corpus.NewDirCollection(dir, fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Packing %s...\n", src.Root())
		n, err := corpus.Pack(src, out, newProgress("Packing", false))
		if err != nil {
			return fmt.Errorf("packing failed: %w", err)
		}

		abs, _ := filepath.Abs(out)
		fmt.Fprintf(cmd.OutOrStdout(), "Packed %d documents into %s\n", n, abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusListCmd, corpusPackCmd)
	corpusListCmd.Flags().BoolVar(&corpusListJSON, "json", false, "output as JSON")
	corpusPackCmd.Flags().StringVarP(&corpusPackOut, "out", "o", "", "database path (default .nlpwalk/corpus.db)")
}
