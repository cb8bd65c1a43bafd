package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--dir", dir, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStemCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "stem", "python", "pythoner", "pythoning", "pythoned", "pythonly")
	require.NoError(t, err)
	assert.Equal(t, "python\npython\npython\npython\npythonli\n", out)
}

func TestSentencesCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "sentences", "-t",
		"Hello Mr. Smith, how are you doing today? The weather is great, and Python is awesome. "+
			"The sky is pinkish-blue. You shouldn't eat cardboard.")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Hello Mr. Smith, how are you doing today?", lines[0])
}

func TestTagsCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "tags", "NNP")
	require.NoError(t, err)
	assert.Contains(t, out, "proper noun, singular")
	assert.Contains(t, out, "Harrison")

	_, err = execute(t, t.TempDir(), "tags", "XYZ")
	assert.Error(t, err)
}

func TestChunkCommandInlineRules(t *testing.T) {
	out, err := execute(t, t.TempDir(), "chunk", "-t", "Mr. Smith met Jane.", "--rules", "NAME: {<NNP>+}")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(S "), out)
	assert.Contains(t, out, "(NAME")
}

func TestReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nSome *words* here.\n"), 0644))

	out, err := execute(t, dir, "words", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "Title\nSome\nwords\nhere\n.\n", out)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "nlpwalk.yaml")
	assert.FileExists(t, filepath.Join(dir, "nlpwalk.yaml"))

	_, err = execute(t, dir, "config", "init")
	assert.Error(t, err)
}

func TestWalkthroughWithoutCorpus(t *testing.T) {
	out, err := execute(t, t.TempDir(), "walkthrough", "--skip-corpus", "--only", "stem")
	require.NoError(t, err)
	assert.Equal(t, "== stem ==\npython\npython\npython\npython\npythonli\n", out)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500ms", "<1s"},
		{"42s", "42s"},
		{"3m7s", "3m7s"},
		{"2h5m", "2h5m"},
	}
	for _, tt := range tests {
		d, err := time.ParseDuration(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, formatDuration(d))
	}
}
