package render

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/dgallion1/resumegen/internal/classify"
	"github.com/dgallion1/resumegen/internal/document"
)

const pointsPerInch = 72.0

// FixedDate stamps documents whose Info carries no dates, so the same
// input always produces the same bytes.
var FixedDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info is the PDF document information dictionary plus optional XMP.
type Info struct {
	Title    string    `yaml:"title,omitempty"`
	Author   string    `yaml:"author,omitempty"`
	Subject  string    `yaml:"subject,omitempty"`
	Creator  string    `yaml:"creator,omitempty"`
	Producer string    `yaml:"producer,omitempty"`
	Keywords string    `yaml:"keywords,omitempty"`
	Created  time.Time `yaml:"created,omitempty"`
	Modified time.Time `yaml:"modified,omitempty"`
	XMP      []byte    `yaml:"-"`
}

// PageOptions describe page geometry and metadata.
type PageOptions struct {
	Size     string  // fpdf size name such as "Letter" or "A4"
	MarginIn float64 // Margin on every side, in inches
	Info     Info
}

// LetterPage is a US letter page with 0.75in margins.
func LetterPage() PageOptions {
	return PageOptions{Size: "Letter", MarginIn: 0.75}
}

// Canvas is a flowing single-page-at-a-time PDF builder. Paragraphs are
// placed top to bottom and wrap onto new pages automatically.
type Canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewCanvas starts a document with one blank page.
func NewCanvas(opts PageOptions) *Canvas {
	if opts.Size == "" {
		opts.Size = "Letter"
	}
	margin := opts.MarginIn * pointsPerInch

	pdf := fpdf.New("P", "pt", opts.Size, "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCatalogSort(true)
	applyInfo(pdf, opts.Info)
	pdf.AddPage()

	return &Canvas{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func applyInfo(pdf *fpdf.Fpdf, info Info) {
	if info.Title != "" {
		pdf.SetTitle(info.Title, true)
	}
	if info.Author != "" {
		pdf.SetAuthor(info.Author, true)
	}
	if info.Subject != "" {
		pdf.SetSubject(info.Subject, true)
	}
	if info.Creator != "" {
		pdf.SetCreator(info.Creator, true)
	}
	if info.Producer != "" {
		pdf.SetProducer(info.Producer, true)
	}
	if info.Keywords != "" {
		pdf.SetKeywords(info.Keywords, true)
	}
	if len(info.XMP) > 0 {
		pdf.SetXmpMetadata(info.XMP)
	}

	created := info.Created
	if created.IsZero() {
		created = FixedDate
	}
	modified := info.Modified
	if modified.IsZero() {
		modified = created
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(modified)
}

// Paragraph writes text in style st, wrapping within the current margins.
func (c *Canvas) Paragraph(text string, st Style) {
	if st.SpaceBefore > 0 {
		c.pdf.Ln(st.SpaceBefore)
	}

	size, leading := metrics(st)

	c.pdf.SetFont(fontFamily(st), fontStyle(st), size)
	c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	faint := st.Alpha > 0 && st.Alpha < 1
	if faint {
		c.pdf.SetAlpha(st.Alpha, "Normal")
	}

	left, _, _, _ := c.pdf.GetMargins()
	if st.Indent > 0 {
		if st.Bullet {
			c.pdf.SetFillColor(st.Color.R, st.Color.G, st.Color.B)
			c.pdf.Circle(left+st.Indent/2, c.pdf.GetY()+leading/2, size/6, "F")
		}
		c.pdf.SetX(left + st.Indent)
	}
	c.pdf.MultiCell(0, leading, c.tr(text), "", fpdfAlign(st.Align), false)

	if faint {
		c.pdf.SetAlpha(1, "Normal")
	}
	if st.SpaceAfter > 0 {
		c.pdf.Ln(st.SpaceAfter)
	}
}

// LeadParagraph writes a bold lead-in such as "Frontend:" followed by
// text in style st, flowing both as one wrapped paragraph.
func (c *Canvas) LeadParagraph(lead, text string, st Style) {
	if st.SpaceBefore > 0 {
		c.pdf.Ln(st.SpaceBefore)
	}
	size, leading := metrics(st)

	c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	c.pdf.SetFont(fontFamily(st), "B", size)
	c.pdf.Write(leading, c.tr(lead+" "))
	c.pdf.SetFont(fontFamily(st), fontStyle(st), size)
	c.pdf.Write(leading, c.tr(text))
	c.pdf.Ln(leading)

	if st.SpaceAfter > 0 {
		c.pdf.Ln(st.SpaceAfter)
	}
}

// Spacer adds vertical space.
func (c *Canvas) Spacer(pt float64) {
	c.pdf.Ln(pt)
}

// Columns lays out n side-by-side columns separated by gap points. fill is
// called once per column with the margins narrowed to that column; the
// cursor continues below the tallest column.
func (c *Canvas) Columns(n int, gap float64, fill func(col int)) {
	if n <= 0 {
		return
	}
	left, top, right, _ := c.pdf.GetMargins()
	pageW, _ := c.pdf.GetPageSize()
	colW := (pageW - left - right - gap*float64(n-1)) / float64(n)
	startY := c.pdf.GetY()
	bottom := startY

	for i := 0; i < n; i++ {
		colLeft := left + float64(i)*(colW+gap)
		c.pdf.SetLeftMargin(colLeft)
		c.pdf.SetRightMargin(pageW - colLeft - colW)
		c.pdf.SetXY(colLeft, startY)
		fill(i)
		if y := c.pdf.GetY(); y > bottom {
			bottom = y
		}
	}

	c.pdf.SetMargins(left, top, right)
	c.pdf.SetXY(left, bottom)
}

// PageCount reports pages started so far.
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// Close finishes the document and writes it to w.
func (c *Canvas) Close(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// metrics returns font size and line height, defaulting to 10pt on 1.2x.
func metrics(st Style) (size, leading float64) {
	size = st.Size
	if size == 0 {
		size = 10
	}
	leading = st.Leading
	if leading == 0 {
		leading = size * 1.2
	}
	return size, leading
}

func fontFamily(st Style) string {
	if st.Font == "" {
		return "Helvetica"
	}
	return st.Font
}

func fontStyle(st Style) string {
	s := ""
	if st.Bold {
		s += "B"
	}
	if st.Italic {
		s += "I"
	}
	return s
}

func fpdfAlign(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	case AlignJustify:
		return "J"
	}
	return "L"
}

// PDFWriter renders a document to PDF, one paragraph per line.
type PDFWriter struct {
	Styles StyleSheet
	Page   PageOptions
}

// NewPDFWriter returns a writer with the default styles on page.
func NewPDFWriter(page PageOptions) *PDFWriter {
	return &PDFWriter{Styles: DefaultPDFStyles(), Page: page}
}

// NewSimplePDFWriter returns the plain writer used for the text fallback:
// letter paper with one-inch margins and minimal styling.
func NewSimplePDFWriter() *PDFWriter {
	return &PDFWriter{
		Styles: SimplePDFStyles(),
		Page:   PageOptions{Size: "Letter", MarginIn: 1},
	}
}

// Write renders doc to out. Lines are classified on their original text;
// glyph clean-up happens afterwards so every path sees the same roles.
func (w *PDFWriter) Write(out io.Writer, doc *document.Document) error {
	page := w.Page
	if page.Info.Title == "" {
		page.Info.Title = doc.Title
	}
	c := NewCanvas(page)

	lines, styles := styledLines(doc, w.Styles)
	for i, l := range lines {
		if l.Role == classify.Blank {
			c.Spacer(styles[i].SpaceBefore)
			continue
		}
		c.Paragraph(CleanText(LineText(l.Text, styles[i])), styles[i])
	}
	return c.Close(out)
}
