package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dgallion1/resumegen/internal/document"
	"github.com/dgallion1/resumegen/internal/fixture"
	"github.com/dgallion1/resumegen/internal/parser"
)

// Step is one batch conversion: every file in the directory matching
// Pattern is converted to a file with the same stem and OutputExt.
type Step struct {
	Name      string
	Pattern   string
	OutputExt string
	// NoInput is logged when nothing matches Pattern.
	NoInput   string
	Converter Converter
}

// TextToDOCXStep converts resume-*.txt style inputs to DOCX.
func TextToDOCXStep(pattern string, w DocumentWriter) Step {
	return Step{
		Name:      "docx",
		Pattern:   pattern,
		OutputExt: ".docx",
		NoInput:   "no resume text files found",
		Converter: &TextToDOCX{Writer: w},
	}
}

// DOCXToPDFStep converts DOCX inputs to PDF, falling back to the sibling
// text file rendered with fallback.
func DOCXToPDFStep(pattern string, w, fallback DocumentWriter) Step {
	return Step{
		Name:      "pdf",
		Pattern:   pattern,
		OutputExt: ".pdf",
		NoInput:   "no DOCX files found",
		Converter: &DOCXToPDF{Writer: w, Fallback: fallback},
	}
}

// Runner executes steps sequentially over the files in Dir.
type Runner struct {
	Dir string
	Log *slog.Logger
}

// NewRunner creates a runner for dir.
func NewRunner(dir string, log *slog.Logger) *Runner {
	return &Runner{Dir: dir, Log: log}
}

type task struct {
	job  *Job
	conv Converter
}

// Run discovers the step's inputs and converts each one. A failing file is
// recorded in the batch and the run moves on; only discovery errors are
// returned.
func (r *Runner) Run(ctx context.Context, step Step) (*Batch, error) {
	files, err := Discover(r.Dir, step.Pattern)
	if err != nil {
		return nil, fmt.Errorf("discover %s inputs: %w", step.Name, err)
	}

	batch := &Batch{Step: step.Name}
	if len(files) == 0 {
		r.Log.Info(step.NoInput, "dir", r.Dir, "pattern", step.Pattern)
		return batch, nil
	}

	tasks := make([]task, len(files))
	for i, f := range files {
		tasks[i] = task{job: NewJob(f, OutputPath(f, step.OutputExt)), conv: step.Converter}
	}
	r.process(ctx, batch, tasks)
	return batch, nil
}

// RenderFixtures writes each fixture's PDF into Dir.
func (r *Runner) RenderFixtures(ctx context.Context, fixtures []*fixture.Fixture) *Batch {
	batch := &Batch{Step: "fixtures"}
	if len(fixtures) == 0 {
		r.Log.Info("no fixtures found")
		return batch
	}

	tasks := make([]task, len(fixtures))
	for i, f := range fixtures {
		tasks[i] = task{
			job:  NewJob(f.Name, filepath.Join(r.Dir, f.Output)),
			conv: &RenderFixture{Fixture: f},
		}
	}
	r.process(ctx, batch, tasks)
	return batch
}

func (r *Runner) process(ctx context.Context, batch *Batch, tasks []task) {
	stats := NewDurationStats()

	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			for _, rest := range tasks[i:] {
				rest.job.SetStatus(StatusSkipped)
				batch.Add(rest.job)
			}
			r.Log.Warn("batch interrupted", "step", batch.Step, "skipped", len(tasks)-i, "error", err)
			break
		}
		batch.Add(t.job)
		r.convert(ctx, t, stats)
	}

	batch.Stats = stats.Snapshot()
}

func (r *Runner) convert(ctx context.Context, t task, stats *DurationStats) {
	job := t.job
	log := r.Log.With("file", filepath.Base(job.Source))

	start := time.Now()
	err := t.conv.Convert(ctx, job)
	job.Duration = time.Since(start)
	stats.Record(job.Duration)

	switch {
	case err != nil:
		job.AddError(err)
		job.SetStatus(StatusFailed)
		log.Error("conversion failed", "error", err)
	case job.Status == StatusFallback:
		log.Warn("converted from text fallback", "output", filepath.Base(job.Output), "error", job.Errors[0])
	default:
		job.SetStatus(StatusConverted)
		log.Info("converted", "output", filepath.Base(job.Output), "lines", job.Lines, "duration_ms", job.Duration.Milliseconds())
	}
}

// Inspection is the classified view of one file.
type Inspection struct {
	File     string                `json:"file"`
	Lines    []document.Classified `json:"lines"`
	RoleHash string                `json:"role_hash"`
}

// Inspect parses path and classifies every line.
func Inspect(path string, opts parser.Options) (*Inspection, error) {
	doc, err := parser.ParseFile(path, opts)
	if err != nil {
		return nil, err
	}
	return &Inspection{
		File:     path,
		Lines:    doc.Classify(),
		RoleHash: RoleHash(doc.Roles()),
	}, nil
}
