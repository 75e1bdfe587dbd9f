package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/dgallion1/resumegen/internal/document"
)

// PDFParser handles PDF files. It reads text lines with the Go library
// first, then falls back to pdftotext if enabled.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// ledongthuc/pdf wants a file path, so spool to a temp file.
	tmp, err := os.CreateTemp("", "resumegen-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	lines, err := extractPDFLines(tmpPath)
	if err != nil && p.FallbackPdftotext {
		var text string
		text, err = extractPdftotext(tmpPath)
		lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return document.FromLines(titleFromFilename(filename), lines), nil
}

// extractPDFLines returns the non-empty text lines of every page in order.
// The reader starts a new line for each text object, and the PDF writers
// put each wrapped line of a paragraph in its own text object.
func extractPDFLines(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		for _, l := range strings.Split(text, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
	}
	return lines, nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return strings.ReplaceAll(string(out), "\f", "\n"), nil
}

// PDFInfo is the document information dictionary of a PDF.
type PDFInfo struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
	Keywords string
	Pages    int
}

// ReadPDFInfo reads the info dictionary and page count of the PDF at path.
func ReadPDFInfo(path string) (PDFInfo, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return PDFInfo{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info := reader.Trailer().Key("Info")
	return PDFInfo{
		Title:    info.Key("Title").Text(),
		Author:   info.Key("Author").Text(),
		Subject:  info.Key("Subject").Text(),
		Creator:  info.Key("Creator").Text(),
		Producer: info.Key("Producer").Text(),
		Keywords: info.Key("Keywords").Text(),
		Pages:    reader.NumPage(),
	}, nil
}
