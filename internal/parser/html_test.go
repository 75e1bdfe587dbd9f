package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_Lines(t *testing.T) {
	input := `<html><head><title>Jane Doe Resume</title><style>p{color:red}</style></head>
<body>
<h1>Jane   Doe</h1>
<p>jane@example.com<br>(555) 123-4567</p>
<h2>SKILLS</h2>
<ul><li>Go</li><li>SQL &amp; data</li></ul>
<script>var x = "ignored";</script>
</body></html>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "resume.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Jane Doe Resume" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}
	want := []string{"Jane Doe", "jane@example.com", "(555) 123-4567", "SKILLS", "• Go", "• SQL & data"}
	got := doc.Texts()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestHTMLParser_TitleFallsBackToFilename(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<p>hello</p>"), "cv.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "cv" {
		t.Errorf("expected title %q, got %q", "cv", doc.Title)
	}
}
