// Package classify assigns a semantic role to each line of resume text.
//
// Every conversion path (text to DOCX, DOCX to PDF, plain-text fallback)
// calls Classify so that the same line gets the same formatting no matter
// which source format it came from.
package classify

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Role is the semantic category of one line of resume text.
type Role int

const (
	Blank Role = iota
	Title
	Contact
	SectionHeader
	JobTitle
	Bullet
	Body
)

var roleNames = [...]string{
	Blank:         "blank",
	Title:         "title",
	Contact:       "contact",
	SectionHeader: "section_header",
	JobTitle:      "job_title",
	Bullet:        "bullet",
	Body:          "body",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// MarshalText renders the role name for JSON and YAML output.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRole maps a role name back to its Role.
func ParseRole(name string) (Role, error) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), nil
		}
	}
	return Body, fmt.Errorf("unknown role %q", name)
}

const (
	titleMaxLen   = 100
	headerMaxLen  = 50
	contactWindow = 3

	columnSeparator = "|"
)

// contactMarkers are matched case-insensitively against lines near the top.
var contactMarkers = []string{"@", "phone", "tel", "linkedin", "location", "ubicación"}

// SectionKeywords are the section names recognised at the start of a line.
var SectionKeywords = []string{
	"EXPERIENCE",
	"EDUCATION",
	"SKILLS",
	"EXPERIENCIA",
	"EDUCACIÓN",
	"HABILIDADES",
	"WORK EXPERIENCE",
	"CAREER HISTORY",
	"PROFESSIONAL SUMMARY",
	"TECHNICAL SKILLS",
	"CERTIFICATIONS",
	"PROJECTS",
	"PUBLICATIONS",
	"AWARDS",
	"LANGUAGES",
}

// BulletGlyphs are the leading characters that mark a bullet line.
const BulletGlyphs = "•-*"

type rule struct {
	role  Role
	match func(line string, position int) bool
}

// rules are evaluated in order and the first match wins. The predicates
// overlap, so the order is part of the contract: an all-caps line with a
// column separator is a SectionHeader, not a JobTitle.
var rules = []rule{
	{Blank, isBlank},
	{Title, isTitle},
	{Contact, isContact},
	{SectionHeader, isSectionHeader},
	{JobTitle, isJobTitle},
	{Bullet, isBullet},
}

// Classify returns the role of line at the given zero-based position.
// It is total: every input, including empty or negative positions, yields
// exactly one role.
func Classify(line string, position int) Role {
	line = norm.NFC.String(strings.TrimSpace(line))
	for _, r := range rules {
		if r.match(line, position) {
			return r.role
		}
	}
	return Body
}

// ClassifyAll classifies lines using their slice index as position.
func ClassifyAll(lines []string) []Role {
	roles := make([]Role, len(lines))
	for i, line := range lines {
		roles[i] = Classify(line, i)
	}
	return roles
}

// StripBullet removes leading bullet glyphs and spaces. Renderers apply it
// to Bullet lines so the glyph never reaches the output text.
func StripBullet(line string) string {
	return strings.TrimLeft(strings.TrimSpace(line), BulletGlyphs+" ")
}

func isBlank(line string, _ int) bool {
	return line == ""
}

func isTitle(line string, position int) bool {
	return position == 0 && utf8.RuneCountInString(line) < titleMaxLen
}

func isContact(line string, position int) bool {
	if position < 0 || position >= contactWindow {
		return false
	}
	lower := strings.ToLower(line)
	for _, m := range contactMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func isSectionHeader(line string, _ int) bool {
	if isAllUpper(line) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(line)
	if utf8.RuneCountInString(line) < headerMaxLen && unicode.IsUpper(first) && !strings.Contains(line, columnSeparator) {
		return true
	}
	for _, kw := range SectionKeywords {
		if strings.HasPrefix(line, kw) {
			return true
		}
	}
	return false
}

func isJobTitle(line string, _ int) bool {
	if !strings.Contains(line, columnSeparator) {
		return false
	}
	segments := 0
	for _, s := range strings.Split(line, columnSeparator) {
		if strings.TrimSpace(s) != "" {
			segments++
		}
	}
	return segments >= 2
}

func isBullet(line string, _ int) bool {
	first, _ := utf8.DecodeRuneInString(line)
	return first != utf8.RuneError && strings.ContainsRune(BulletGlyphs, first)
}

// isAllUpper reports whether line has at least one cased letter and no
// lower-case letters.
func isAllUpper(line string) bool {
	cased := false
	for _, r := range line {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r), unicode.IsTitle(r):
			cased = true
		}
	}
	return cased
}
