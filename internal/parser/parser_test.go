package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"resume-a.txt", "*parser.TextParser", false},
		{"resume-a.DOCX", "*parser.DOCXParser", false},
		{"resume-a.pdf", "*parser.PDFParser", false},
		{"notes.md", "*parser.MarkdownParser", false},
		{"page.htm", "*parser.HTMLParser", false},
		{"data.csv", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ForFile(tt.name, Options{})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := typeName(p); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestForFile_PassesPdftotextOption(t *testing.T) {
	p, err := ForFile("x.pdf", Options{FallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.(*PDFParser).FallbackPdftotext {
		t.Error("expected FallbackPdftotext to be set")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("A.TXT") {
		t.Error("expected .TXT to be supported")
	}
	if IsSupportedExtension("a.csv") {
		t.Error("expected .csv to be unsupported")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume-x.txt")
	if err := os.WriteFile(path, []byte("Name\nSKILLS\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "resume-x" || len(doc.Lines) != 3 {
		t.Errorf("unexpected document: %q %q", doc.Title, doc.Texts())
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func typeName(p Parser) string {
	switch p.(type) {
	case *TextParser:
		return "*parser.TextParser"
	case *DOCXParser:
		return "*parser.DOCXParser"
	case *PDFParser:
		return "*parser.PDFParser"
	case *MarkdownParser:
		return "*parser.MarkdownParser"
	case *HTMLParser:
		return "*parser.HTMLParser"
	}
	return "unknown"
}
