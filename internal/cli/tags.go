package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nlpwalk/internal/adapter/tagger"
)

var (
	tagsAll  bool
	tagsJSON bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags [tag...]",
	Short: "Describe the part-of-speech tags",
	Long: `Print the Penn Treebank word tags with a description and examples, or
describe only the given tags.

Examples:
  nlpwalk tags
  nlpwalk tags NNP VBZ
  nlpwalk tags --all --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := tagger.WordTags()
		if tagsAll {
			infos = tagger.Tagset()
		}
		if len(args) > 0 {
			infos = infos[:0:0]
			for _, a := range args {
				if !tagger.IsKnown(a) {
					return fmt.Errorf("unknown tag: %s", a)
				}
				for _, info := range tagger.Tagset() {
					if info.Tag == a {
						infos = append(infos, info)
					}
				}
			}
		}

		out := cmd.OutOrStdout()
		if tagsJSON {
			return writeJSON(out, infos)
		}
		for _, info := range infos {
			fmt.Fprintf(out, "%-6s %-42s %s\n", info.Tag, info.Description, info.Example)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsAll, "all", false, "include punctuation tags")
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "output as JSON")
}
