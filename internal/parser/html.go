package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/resumegen/internal/document"
)

// HTMLParser handles HTML files. Block elements become lines, <br> splits
// a block, and list items become bullet lines.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &document.Document{Title: titleFromFilename(filename)}
	if title := findTitle(root); title != "" {
		doc.Title = title
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "head", "script", "style", "noscript", "template":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "td", "th", "blockquote", "dt", "dd":
				for _, l := range blockLines(n) {
					doc.Append(l)
				}
				return
			case "li":
				for i, l := range blockLines(n) {
					if i == 0 {
						l = "• " + l
					}
					doc.Append(l)
				}
				return
			case "hr":
				doc.Append("")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findElement(root, "body"); body != nil {
		walk(body)
	} else {
		walk(root)
	}
	return doc, nil
}

// blockLines returns the text of n split at <br> elements, with runs of
// whitespace collapsed.
func blockLines(n *html.Node) []string {
	var lines []string
	var buf strings.Builder
	flush := func() {
		if s := strings.Join(strings.Fields(buf.String()), " "); s != "" {
			lines = append(lines, s)
		}
		buf.Reset()
	}

	var extract func(*html.Node)
	extract = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			buf.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			flush()
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	flush()
	return lines
}

func findTitle(n *html.Node) string {
	t := findElement(n, "title")
	if t == nil {
		return ""
	}
	return strings.Join(blockLines(t), " ")
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
