package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dgallion1/resumegen/internal/document"
	"github.com/dgallion1/resumegen/internal/fixture"
	"github.com/dgallion1/resumegen/internal/parser"
	"github.com/dgallion1/resumegen/internal/render"
)

// Converter turns job.Source into job.Output.
type Converter interface {
	Convert(ctx context.Context, job *Job) error
}

// DocumentWriter renders a parsed document.
type DocumentWriter interface {
	Write(w io.Writer, doc *document.Document) error
}

// TextToDOCX converts plain-text resumes to Word documents.
type TextToDOCX struct {
	Writer DocumentWriter
}

func (c *TextToDOCX) Convert(ctx context.Context, job *Job) error {
	return convertFile(job.Source, job.Output, parser.Options{}, c.Writer, job)
}

// DOCXToPDF converts Word documents to PDF. When that fails and Fallback
// is set, the sibling .txt source is rendered with Fallback instead.
type DOCXToPDF struct {
	Writer   DocumentWriter
	Fallback DocumentWriter
}

func (c *DOCXToPDF) Convert(ctx context.Context, job *Job) error {
	err := convertFile(job.Source, job.Output, parser.Options{}, c.Writer, job)
	if err == nil || c.Fallback == nil {
		return err
	}

	text := OutputPath(job.Source, ".txt")
	if ferr := convertFile(text, job.Output, parser.Options{}, c.Fallback, job); ferr != nil {
		return errors.Join(err, fmt.Errorf("fallback from %s: %w", filepath.Base(text), ferr))
	}
	job.AddError(err)
	job.SetStatus(StatusFallback)
	return nil
}

// RenderFixture writes a fixture resume to job.Output.
type RenderFixture struct {
	Fixture *fixture.Fixture
}

func (c *RenderFixture) Convert(ctx context.Context, job *Job) error {
	job.Record(document.FromLines(c.Fixture.Name, c.Fixture.Lines()))
	return writeOutput(job.Output, c.Fixture.Render)
}

func convertFile(src, dst string, opts parser.Options, w DocumentWriter, job *Job) error {
	doc, err := parser.ParseFile(src, opts)
	if err != nil {
		return err
	}
	job.Record(doc)
	return writeOutput(dst, func(out io.Writer) error {
		return w.Write(out, doc)
	})
}

// writeOutput renders into a temp file next to dst and renames it into
// place, so a failed render never leaves a truncated output behind.
func writeOutput(dst string, render func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+"-*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := render(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ DocumentWriter = (*render.DOCXWriter)(nil)
	_ DocumentWriter = (*render.PDFWriter)(nil)
)
