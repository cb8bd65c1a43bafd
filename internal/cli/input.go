package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nlpwalk/internal/adapter/corpus"
)

// inputFlags selects the text an analysis command works on.
type inputFlags struct {
	text string
	file string
	json bool
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	cmd.Flags().StringVarP(&in.text, "text", "t", "", "text to analyse")
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "read text from a file (txt, md, html, pdf, docx)")
	cmd.Flags().BoolVar(&in.json, "json", false, "output as JSON")
}

// read returns the command input: --text, then --file, then stdin.
func (in *inputFlags) read(cmd *cobra.Command) (string, error) {
	if in.text != "" {
		return in.text, nil
	}
	if in.file != "" {
		return readDocument(in.file)
	}

	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no input: use --text, --file or pipe text on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func readDocument(path string) (string, error) {
	reader, err := corpus.ReaderFor(path)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return reader.Read(f, path)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeLines(w io.Writer, lines []string) {
	if len(lines) > 0 {
		fmt.Fprintln(w, strings.Join(lines, "\n"))
	}
}
