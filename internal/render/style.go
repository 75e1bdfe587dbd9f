// Package render writes classified resume lines to DOCX and PDF.
//
// Both writers look up a Style for each line's role in a StyleSheet, so
// the same text gets the same emphasis in every output format.
package render

import (
	"strings"

	"github.com/dgallion1/resumegen/internal/classify"
	"github.com/dgallion1/resumegen/internal/document"
)

// Align is horizontal paragraph alignment.
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// RGB is a text colour with 0-255 channels.
type RGB struct {
	R, G, B int
}

// Black is the default text colour.
var Black = RGB{}

// Style is the presentation of one paragraph. Sizes and spacing are in points.
type Style struct {
	Font        string  `yaml:"font,omitempty"` // PDF core font family; empty means Helvetica
	Bold        bool    `yaml:"bold,omitempty"`
	Italic      bool    `yaml:"italic,omitempty"`
	Size        float64 `yaml:"size,omitempty"` // 0 inherits the writer default
	Leading     float64 `yaml:"leading,omitempty"`
	Align       Align   `yaml:"align,omitempty"`
	SpaceBefore float64 `yaml:"space_before,omitempty"`
	SpaceAfter  float64 `yaml:"space_after,omitempty"`
	Indent      float64 `yaml:"indent,omitempty"`
	Color       RGB     `yaml:"color,omitempty"`
	Alpha       float64 `yaml:"alpha,omitempty"` // 0 or 1 is opaque

	// Bullet strips the leading glyph and renders the line as a list item.
	Bullet bool `yaml:"bullet,omitempty"`
}

// StyleSheet maps roles to styles.
type StyleSheet map[classify.Role]Style

// For returns the style for role, falling back to the Body style.
func (s StyleSheet) For(role classify.Role) Style {
	if st, ok := s[role]; ok {
		return st
	}
	return s[classify.Body]
}

// Clone returns a copy that can be modified independently.
func (s StyleSheet) Clone() StyleSheet {
	out := make(StyleSheet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// LineText is the text a writer emits for a classified line. A bullet with
// nothing after the glyph keeps it, otherwise the line would read back blank.
func LineText(text string, st Style) string {
	if st.Bullet {
		if stripped := classify.StripBullet(text); stripped != "" {
			return stripped
		}
	}
	return strings.TrimSpace(text)
}

// DefaultDOCXStyles mirrors the emphasis applied when converting text to DOCX.
func DefaultDOCXStyles() StyleSheet {
	return StyleSheet{
		classify.Title:         {Bold: true, Size: 14, Align: AlignCenter},
		classify.Contact:       {Bold: true, Size: 11, Align: AlignCenter},
		classify.SectionHeader: {Bold: true, Size: 12, SpaceBefore: 6},
		classify.JobTitle:      {Bold: true},
		classify.Bullet:        {Bullet: true, Indent: 18},
		classify.Body:          {},
		classify.Blank:         {},
	}
}

// DefaultPDFStyles mirrors the emphasis applied when converting DOCX to PDF.
func DefaultPDFStyles() StyleSheet {
	return StyleSheet{
		classify.Title:         {Font: "Helvetica", Bold: true, Size: 16, Align: AlignCenter, SpaceAfter: 12},
		classify.Contact:       {Font: "Helvetica", Bold: true, Size: 12, Align: AlignCenter, SpaceAfter: 6},
		classify.SectionHeader: {Font: "Helvetica", Bold: true, Size: 12, SpaceBefore: 12, SpaceAfter: 6},
		classify.JobTitle:      {Font: "Helvetica", Bold: true, Size: 10, SpaceAfter: 6},
		classify.Bullet:        {Font: "Helvetica", Size: 10, Leading: 12, Indent: 14, SpaceAfter: 6, Bullet: true},
		classify.Body:          {Font: "Helvetica", Size: 10, Leading: 12, SpaceAfter: 6},
		classify.Blank:         {SpaceBefore: 6},
	}
}

// SimplePDFStyles is used when a PDF is rendered straight from text after
// the DOCX path failed: titles and headers stand out, the rest is plain.
func SimplePDFStyles() StyleSheet {
	heading := Style{Font: "Helvetica", Bold: true, Size: 14, SpaceBefore: 10, SpaceAfter: 6}
	normal := Style{Font: "Helvetica", Size: 10, Leading: 12}
	return StyleSheet{
		classify.Title:         heading,
		classify.SectionHeader: heading,
		classify.Contact:       normal,
		classify.JobTitle:      normal,
		classify.Bullet:        normal,
		classify.Body:          normal,
		classify.Blank:         {SpaceBefore: 6},
	}
}

// styledLines classifies doc and looks up the style of every line.
func styledLines(doc *document.Document, sheet StyleSheet) ([]document.Classified, []Style) {
	lines := doc.Classify()
	styles := make([]Style, len(lines))
	for i, l := range lines {
		styles[i] = sheet.For(l.Role)
	}
	return lines, styles
}
