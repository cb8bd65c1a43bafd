package corpus

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownReader returns the prose of a Markdown document: headings and
// paragraphs as separate paragraphs, markup and code blocks dropped.
type MarkdownReader struct{}

func (MarkdownReader) Read(r io.Reader, _ string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var paras []string
	var cur strings.Builder
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				cur.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					cur.WriteByte(' ')
				}
			}
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				paras = append(paras, cur.String())
				cur.Reset()
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return joinParagraphs(paras), nil
}
