package render

import "strings"

var pdfReplacer = strings.NewReplacer(
	"•", "-",
	"—", "-",
	"–", "-",
)

// CleanText replaces glyphs the PDF core fonts handle poorly with ASCII.
func CleanText(s string) string {
	return pdfReplacer.Replace(s)
}
