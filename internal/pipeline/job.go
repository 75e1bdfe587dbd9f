package pipeline

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/dgallion1/resumegen/internal/classify"
	"github.com/dgallion1/resumegen/internal/document"
)

// JobStatus represents the outcome of converting one file.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusConverted JobStatus = "converted"
	StatusFallback  JobStatus = "fallback"
	StatusFailed    JobStatus = "failed"
	StatusSkipped   JobStatus = "skipped"
)

// Job tracks the conversion of a single source file.
type Job struct {
	Source   string        `json:"source"`
	Output   string        `json:"output"`
	Status   JobStatus     `json:"status"`
	Lines    int           `json:"lines"`
	RoleHash string        `json:"role_hash,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Errors   []string      `json:"errors,omitempty"`
}

// NewJob returns a pending job.
func NewJob(source, output string) *Job {
	return &Job{Source: source, Output: output, Status: StatusPending}
}

// SetStatus updates job status.
func (j *Job) SetStatus(status JobStatus) {
	j.Status = status
}

// AddError records an error.
func (j *Job) AddError(err error) {
	j.Errors = append(j.Errors, err.Error())
}

// Record notes the size and role sequence of the document being converted.
func (j *Job) Record(doc *document.Document) {
	j.Lines = len(doc.Lines)
	j.RoleHash = RoleHash(doc.Roles())
}

// Summary counts jobs per outcome.
type Summary struct {
	Total     int `json:"total"`
	Converted int `json:"converted"`
	Fallback  int `json:"fallback"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Batch is the result of one pipeline run.
type Batch struct {
	Step  string        `json:"step"`
	Jobs  []*Job        `json:"jobs"`
	Stats StatsSnapshot `json:"stats"`
}

// Add appends job to the batch.
func (b *Batch) Add(job *Job) {
	b.Jobs = append(b.Jobs, job)
}

// Summary counts the batch's jobs by status.
func (b *Batch) Summary() Summary {
	s := Summary{Total: len(b.Jobs)}
	for _, j := range b.Jobs {
		switch j.Status {
		case StatusConverted:
			s.Converted++
		case StatusFallback:
			s.Fallback++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// RoleHash fingerprints a role sequence. Two runs over unchanged input
// produce the same hash.
func RoleHash(roles []classify.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return ContentHashHex([]byte(strings.Join(names, "\n")))
}
