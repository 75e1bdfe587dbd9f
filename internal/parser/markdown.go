package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/resumegen/internal/document"
)

// MarkdownParser handles Markdown files using goldmark. Headings and
// paragraph lines become lines; list items become bullet lines.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	root := goldmark.New().Parser().Parse(text.NewReader(src))

	doc := &document.Document{Title: titleFromFilename(filename)}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		appendMarkdownBlock(doc, n, src)
	}
	return doc, nil
}

func appendMarkdownBlock(doc *document.Document, n ast.Node, src []byte) {
	switch node := n.(type) {
	case *ast.Heading:
		doc.Append(strings.Join(inlineLines(node, src), " "))
	case *ast.Paragraph, *ast.TextBlock:
		for _, l := range inlineLines(node, src) {
			doc.Append(l)
		}
	case *ast.List:
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			appendListItem(doc, item, src)
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			doc.Append(strings.TrimRight(string(seg.Value(src)), "\n"))
		}
	case *ast.ThematicBreak:
		doc.Append("")
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			appendMarkdownBlock(doc, c, src)
		}
	}
}

func appendListItem(doc *document.Document, item ast.Node, src []byte) {
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			line := strings.Join(inlineLines(c, src), " ")
			if first {
				line = "• " + line
				first = false
			}
			doc.Append(line)
		default:
			appendMarkdownBlock(doc, c, src)
		}
	}
}

// inlineLines flattens the inline children of n, starting a new line at
// every soft or hard line break.
func inlineLines(n ast.Node, src []byte) []string {
	var lines []string
	var buf bytes.Buffer
	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			lines = append(lines, s)
		}
		buf.Reset()
	}

	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					flush()
				}
			case *ast.String:
				buf.Write(t.Value)
			case *ast.AutoLink:
				buf.Write(t.Label(src))
			default:
				walk(c)
			}
		}
	}
	walk(n)
	flush()
	return lines
}
