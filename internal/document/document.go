// Package document holds the line model shared by every conversion path.
package document

import (
	"strings"

	"github.com/dgallion1/resumegen/internal/classify"
)

// Document is an ordered sequence of resume lines read from one source.
type Document struct {
	Title string // Source name without extension
	Lines []Line
}

// Line is one newline-delimited line and its zero-based position in the
// whole document. Blank lines keep their position.
type Line struct {
	Index int    `json:"index"`
	Raw   string `json:"-"`    // As read, minus any trailing carriage return
	Text  string `json:"text"` // Raw with surrounding whitespace trimmed
}

// Classified pairs a line with the role the classifier gave it.
type Classified struct {
	Line
	Role classify.Role `json:"role"`
}

// FromText splits text on newlines. A trailing newline yields a trailing
// blank line, so positions match a plain split of the file contents.
func FromText(title, text string) *Document {
	raw := strings.Split(text, "\n")
	doc := &Document{Title: title, Lines: make([]Line, 0, len(raw))}
	for _, r := range raw {
		doc.Append(strings.TrimSuffix(r, "\r"))
	}
	return doc
}

// FromLines builds a document from already separated lines.
func FromLines(title string, lines []string) *Document {
	doc := &Document{Title: title, Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		doc.Append(l)
	}
	return doc
}

// Append adds raw as the next line.
func (d *Document) Append(raw string) {
	d.Lines = append(d.Lines, Line{
		Index: len(d.Lines),
		Raw:   raw,
		Text:  strings.TrimSpace(raw),
	})
}

// Texts returns the trimmed text of every line.
func (d *Document) Texts() []string {
	out := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		out[i] = l.Text
	}
	return out
}

// Classify assigns a role to every line by its position.
func (d *Document) Classify() []Classified {
	out := make([]Classified, len(d.Lines))
	for i, l := range d.Lines {
		out[i] = Classified{Line: l, Role: classify.Classify(l.Text, l.Index)}
	}
	return out
}

// Roles returns just the role sequence.
func (d *Document) Roles() []classify.Role {
	return classify.ClassifyAll(d.Texts())
}

// String joins the trimmed lines with newlines.
func (d *Document) String() string {
	return strings.Join(d.Texts(), "\n")
}

// NonBlank counts lines with visible text.
func (d *Document) NonBlank() int {
	n := 0
	for _, l := range d.Lines {
		if l.Text != "" {
			n++
		}
	}
	return n
}
