package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2005-GWBush.txt"), "a")
	writeFile(t, filepath.Join(root, "notes", "draft.md"), "b")
	writeFile(t, filepath.Join(root, "notes", "skip.txt"), "c")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "d")

	tests := []struct {
		name     string
		includes []string
		excludes []string
		want     []string
	}{
		{"all", nil, nil, []string{"2005-GWBush.txt", "notes/draft.md", "notes/skip.txt"}},
		{"txt only", []string{"**/*.txt"}, nil, []string{"2005-GWBush.txt", "notes/skip.txt"}},
		{"exclude file", nil, []string{"**/skip.txt"}, []string{"2005-GWBush.txt", "notes/draft.md"}},
		{"exclude dir", nil, []string{"notes/"}, []string{"2005-GWBush.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := NewWalker(tt.includes, tt.excludes).Walk(root)
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			var got []string
			for _, f := range files {
				got = append(got, f.Name)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Walk() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Walk()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWalkerMissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/nltk_data"); got != filepath.Join(home, "nltk_data") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome() = %q", got)
	}
}
