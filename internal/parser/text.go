package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dgallion1/resumegen/internal/document"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ErrInvalidUTF8 is returned for text sources that are not UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// TextParser handles plain text files. Every newline starts a new line,
// including blank ones, so positions match the file.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return document.FromText(titleFromFilename(filename), string(data)), nil
}
