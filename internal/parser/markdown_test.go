package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_Lines(t *testing.T) {
	input := `# Jane Doe

jane@example.com

## EXPERIENCE

Engineer | Acme | Remote

- Built **fast** pipelines
- Cut costs by 30%

Plain summary line one
line two
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "resume.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Jane Doe",
		"jane@example.com",
		"EXPERIENCE",
		"Engineer | Acme | Remote",
		"• Built fast pipelines",
		"• Cut costs by 30%",
		"Plain summary line one",
		"line two",
	}
	got := doc.Texts()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, got[i])
		}
	}
	if doc.Title != "resume" {
		t.Errorf("expected title %q, got %q", "resume", doc.Title)
	}
}

func TestMarkdownParser_NestedList(t *testing.T) {
	input := "- outer\n  - inner\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "nested.markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := doc.Texts()
	if len(got) != 2 || got[0] != "• outer" || got[1] != "• inner" {
		t.Errorf("unexpected lines: %q", got)
	}
}

func TestMarkdownParser_Empty(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 0 {
		t.Errorf("expected no lines, got %q", doc.Texts())
	}
}
