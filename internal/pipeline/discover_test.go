package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"resume-b.txt", "resume-a.txt", "notes.txt", "resume-c.docx", "resume-.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "resume-dir.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(dir, "resume-*.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"resume-.txt", "resume-a.txt", "resume-b.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if filepath.Base(got[i]) != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], filepath.Base(got[i]))
		}
	}
}

func TestDiscover_NoMatches(t *testing.T) {
	got, err := Discover(t.TempDir(), "resume-*.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no files, got %v", got)
	}
}

func TestDiscover_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		dir     string
		pattern string
	}{
		{"missing dir", filepath.Join(dir, "nope"), "*.txt"},
		{"file not dir", file, "*.txt"},
		{"bad pattern", dir, "resume-[.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Discover(tt.dir, tt.pattern); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		src, ext, want string
	}{
		{"resume-a.txt", ".docx", "resume-a.docx"},
		{"dir/resume-a.docx", ".pdf", "dir/resume-a.pdf"},
		{"resume.txt.backup.txt", ".docx", "resume.txt.backup.docx"},
		{"noext", ".pdf", "noext.pdf"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.src, tt.ext); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.src, tt.ext, got, tt.want)
		}
	}
}
