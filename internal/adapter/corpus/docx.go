package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXReader returns the text of each paragraph of a Word document.
type DOCXReader struct{}

func (DOCXReader) Read(r io.Reader, _ string) (string, error) {
	tmpPath, err := spool(r, "nlpwalk-*.docx")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	f, err := os.Open(tmpPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var paras []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		var buf strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if t, ok := rc.(*docx.Text); ok {
					buf.WriteString(t.Text)
				}
			}
		}
		paras = append(paras, buf.String())
	}
	return joinParagraphs(paras), nil
}
