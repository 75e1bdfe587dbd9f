// Package fixture renders hand-authored test resumes described in YAML.
//
// A fixture is a page setup, a PDF info dictionary, a set of named styles
// and an ordered list of blocks. Blocks are paragraphs, spacers, or
// side-by-side columns of further blocks.
package fixture

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/resumegen/internal/render"
)

//go:embed fixtures/*.yaml
var builtinFS embed.FS

// DocumentIDToken is replaced with the fixture's DocumentID in block
// text and XMP metadata.
const DocumentIDToken = "{document_id}"

// Fixture describes one generated test resume.
type Fixture struct {
	Name   string                  `yaml:"name"`
	Output string                  `yaml:"output"`
	Tests  string                  `yaml:"tests,omitempty"` // What the downstream checks exercise
	Page   Page                    `yaml:"page"`
	Info   render.Info             `yaml:"info,omitempty"`
	XMP    string                  `yaml:"xmp,omitempty"`
	Styles map[string]render.Style `yaml:"styles"`
	Blocks []Block                 `yaml:"blocks"`
}

// Page is the page geometry of a fixture.
type Page struct {
	Size     string  `yaml:"size"`
	MarginIn float64 `yaml:"margin_in"`
}

// Block is one entry in a fixture's flow. Exactly one of Text, Spacer or
// Columns is set.
type Block struct {
	Style   string   `yaml:"style,omitempty"`
	Text    string   `yaml:"text,omitempty"`
	Lead    string   `yaml:"lead,omitempty"` // Bold lead-in before Text
	Spacer  float64  `yaml:"spacer,omitempty"`
	Columns *Columns `yaml:"columns,omitempty"`
}

// Columns places each entry of Cols side by side.
type Columns struct {
	Gap  float64   `yaml:"gap,omitempty"`
	Cols [][]Block `yaml:"cols"`
}

// Load decodes and validates one fixture.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Builtin returns the fixtures shipped with the binary, sorted by file name.
func Builtin() ([]*Fixture, error) {
	return loadFS(builtinFS, "fixtures")
}

// LoadDir loads every *.yaml file in dir, sorted by file name.
func LoadDir(dir string) ([]*Fixture, error) {
	return loadFS(os.DirFS(dir), ".")
}

func loadFS(fsys fs.FS, dir string) ([]*Fixture, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	sort.Strings(names)

	fixtures := make([]*Fixture, 0, len(names))
	for _, name := range names {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open fixture %s: %w", name, err)
		}
		fx, err := Load(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		fixtures = append(fixtures, fx)
	}
	return fixtures, nil
}

// Validate checks that the fixture can be rendered.
func (f *Fixture) Validate() error {
	if f.Name == "" {
		return errors.New("fixture name is required")
	}
	if !strings.EqualFold(filepath.Ext(f.Output), ".pdf") {
		return fmt.Errorf("fixture %s: output %q must be a .pdf file", f.Name, f.Output)
	}
	if filepath.Base(f.Output) != f.Output {
		return fmt.Errorf("fixture %s: output %q must be a bare file name", f.Name, f.Output)
	}
	if f.Page.MarginIn < 0 {
		return fmt.Errorf("fixture %s: negative margin", f.Name)
	}
	if len(f.Blocks) == 0 {
		return fmt.Errorf("fixture %s: no blocks", f.Name)
	}
	return f.validateBlocks(f.Blocks, "blocks")
}

func (f *Fixture) validateBlocks(blocks []Block, where string) error {
	for i, b := range blocks {
		at := fmt.Sprintf("%s[%d]", where, i)
		set := 0
		if b.Text != "" || b.Lead != "" {
			set++
		}
		if b.Spacer != 0 {
			set++
		}
		if b.Columns != nil {
			set++
		}
		if set != 1 {
			return fmt.Errorf("fixture %s: %s: exactly one of text, spacer or columns is required", f.Name, at)
		}
		if b.Spacer < 0 {
			return fmt.Errorf("fixture %s: %s: negative spacer", f.Name, at)
		}
		if b.Style != "" {
			if _, ok := f.Styles[b.Style]; !ok {
				return fmt.Errorf("fixture %s: %s: unknown style %q", f.Name, at, b.Style)
			}
		}
		if b.Columns != nil {
			if len(b.Columns.Cols) == 0 {
				return fmt.Errorf("fixture %s: %s: columns need at least one column", f.Name, at)
			}
			for c, col := range b.Columns.Cols {
				if err := f.validateBlocks(col, fmt.Sprintf("%s.cols[%d]", at, c)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// DocumentID is a stable UUID derived from the fixture name.
func (f *Fixture) DocumentID() string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("resumegen:fixture:"+f.Name)).String()
}

func (f *Fixture) expand(s string) string {
	return strings.ReplaceAll(s, DocumentIDToken, f.DocumentID())
}

// PageOptions returns the canvas setup for the fixture.
func (f *Fixture) PageOptions() render.PageOptions {
	info := f.Info
	if f.XMP != "" {
		info.XMP = []byte(f.expand(f.XMP))
	}
	return render.PageOptions{
		Size:     f.Page.Size,
		MarginIn: f.Page.MarginIn,
		Info:     info,
	}
}

// Render writes the fixture as a PDF.
func (f *Fixture) Render(w io.Writer) error {
	c := render.NewCanvas(f.PageOptions())
	f.renderBlocks(c, f.Blocks)
	if err := c.Close(w); err != nil {
		return fmt.Errorf("render fixture %s: %w", f.Name, err)
	}
	return nil
}

func (f *Fixture) renderBlocks(c *render.Canvas, blocks []Block) {
	for _, b := range blocks {
		switch {
		case b.Spacer > 0:
			c.Spacer(b.Spacer)
		case b.Columns != nil:
			cols := b.Columns.Cols
			c.Columns(len(cols), b.Columns.Gap, func(i int) {
				f.renderBlocks(c, cols[i])
			})
		case b.Lead != "":
			c.LeadParagraph(f.expand(b.Lead), f.expand(b.Text), f.Styles[b.Style])
		default:
			c.Paragraph(f.expand(b.Text), f.Styles[b.Style])
		}
	}
}

// Lines returns the text of every paragraph block in document order,
// columns flattened left to right.
func (f *Fixture) Lines() []string {
	var out []string
	var walk func([]Block)
	walk = func(blocks []Block) {
		for _, b := range blocks {
			switch {
			case b.Columns != nil:
				for _, col := range b.Columns.Cols {
					walk(col)
				}
			case b.Lead != "":
				out = append(out, f.expand(b.Lead+" "+b.Text))
			case b.Text != "":
				out = append(out, f.expand(b.Text))
			}
		}
	}
	walk(f.Blocks)
	return out
}
