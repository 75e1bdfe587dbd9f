package render

import (
	"archive/zip"
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/resumegen/internal/document"
	"github.com/dgallion1/resumegen/internal/parser"
)

// docxTemplate is the package every DOCX starts from. Besides styles it
// carries a numbering part, so ListBullet paragraphs show a real bullet.
//
//go:embed all:docxtmpl
var docxTemplate embed.FS

const docxTemplateRoot = "docxtmpl"

// DOCXWriter renders a document as one Word paragraph per line.
type DOCXWriter struct {
	Styles   StyleSheet
	Font     string  // Run font for every paragraph
	FontSize float64 // Points, used when a style has no size
}

// NewDOCXWriter returns a writer with the default styles in Calibri 11pt.
func NewDOCXWriter() *DOCXWriter {
	return &DOCXWriter{
		Styles:   DefaultDOCXStyles(),
		Font:     "Calibri",
		FontSize: 11,
	}
}

// Write renders doc to out.
func (w *DOCXWriter) Write(out io.Writer, doc *document.Document) error {
	f, err := newDOCXFile()
	if err != nil {
		return err
	}

	lines, styles := styledLines(doc, w.Styles)
	for i, l := range lines {
		para := f.AddParagraph()
		if l.Text == "" {
			continue
		}
		w.addParagraph(para, LineText(l.Text, styles[i]), styles[i])
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func (w *DOCXWriter) addParagraph(para *docx.Paragraph, text string, st Style) {
	if jc := docxJustification(st.Align); jc != "" {
		para.Justification(jc)
	}
	if st.Bullet {
		para.Style(parser.BulletStyle)
	}
	if st.SpaceBefore > 0 || st.Indent > 0 {
		if para.Properties == nil {
			para.Properties = &docx.ParagraphProperties{}
		}
		if st.SpaceBefore > 0 {
			para.Properties.Spacing = &docx.Spacing{Before: twips(st.SpaceBefore)}
		}
		if st.Indent > 0 {
			para.Properties.Ind = &docx.Ind{Left: twips(st.Indent)}
			if st.Bullet {
				para.Properties.Ind.Hanging = twips(st.Indent)
			}
		}
	}

	run := para.AddText(text)
	if w.Font != "" {
		run.Font(w.Font, w.Font, w.Font, "")
	}
	size := st.Size
	if size == 0 {
		size = w.FontSize
	}
	if size > 0 {
		run.Size(strconv.Itoa(int(size * 2)))
	}
	if st.Bold {
		run.Bold()
	}
	if st.Italic {
		run.Italic()
	}
	if st.Color != Black {
		run.Color(fmt.Sprintf("%02X%02X%02X", st.Color.R, st.Color.G, st.Color.B))
	}
}

func docxJustification(a Align) string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "end"
	case AlignJustify:
		return "both"
	}
	return ""
}

// twips converts points to twentieths of a point.
func twips(pt float64) int {
	return int(pt * 20)
}

// newDOCXFile zips the embedded template and opens it with go-docx, which
// keeps the template's extra parts and relationships when writing.
func newDOCXFile() (*docx.Docx, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	err := fs.WalkDir(docxTemplate, docxTemplateRoot, func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := docxTemplate.ReadFile(name)
		if err != nil {
			return err
		}
		w, err := zw.Create(strings.TrimPrefix(name, docxTemplateRoot+"/"))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("pack docx template: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("pack docx template: %w", err)
	}

	f, err := docx.Parse(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, fmt.Errorf("open docx template: %w", err)
	}
	return f, nil
}
