package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/resumegen/internal/document"
)

// BulletStyle is the paragraph style given to bullet lines. The reader
// puts a bullet glyph back in front of such paragraphs.
const BulletStyle = "ListBullet"

// DOCXParser handles .docx files. Each body paragraph is one line; table
// cells are read row by row.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	out := &document.Document{Title: titleFromFilename(filename)}
	for _, item := range doc.Document.Body.Items {
		switch o := item.(type) {
		case *docx.Paragraph:
			out.Append(docxLine(o))
		case *docx.Table:
			for _, row := range o.TableRows {
				for _, cell := range row.TableCells {
					for _, para := range cell.Paragraphs {
						out.Append(docxLine(para))
					}
				}
			}
		}
	}
	return out, nil
}

func docxLine(para *docx.Paragraph) string {
	text := docxParagraphText(para)
	if text != "" && isBulletStyle(para) {
		return "• " + text
	}
	return text
}

// isBulletStyle reports whether para is a list item, either through the
// bullet style or direct numbering.
func isBulletStyle(para *docx.Paragraph) bool {
	props := para.Properties
	if props == nil {
		return false
	}
	if props.NumProperties != nil && props.NumProperties.NumID != nil {
		return true
	}
	if props.Style == nil {
		return false
	}
	style := strings.ReplaceAll(props.Style.Val, " ", "")
	return strings.EqualFold(style, BulletStyle)
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.Tab:
				buf.WriteByte('\t')
			case *docx.BarterRabbet:
				// Soft breaks stay inside one line.
				buf.WriteByte(' ')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
