package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		position int
		want     Role
	}{
		{"empty line", "", 4, Blank},
		{"whitespace only", "   \t ", 0, Blank},
		{"first line is title", "Sarah Johnson", 0, Title},
		{"first line lower case is title", "just a name", 0, Title},
		{"long first line is not title", strings.Repeat("word ", 25), 0, Body},
		{"email near top", "sarah.johnson@email.com", 1, Contact},
		{"phone marker case-insensitive", "PHONE: 555 123 4567", 2, Contact},
		{"linkedin marker", "linkedin.com/in/sarah", 1, Contact},
		{"spanish location marker", "Ubicación: Madrid", 2, Contact},
		{"email below contact window", "reach me at sarah@email.com", 3, Body},
		{"keyword header", "SKILLS", 3, SectionHeader},
		{"keyword prefix header", "WORK EXPERIENCE (2016 - 2024)", 12, SectionHeader},
		{"spanish keyword header", "EDUCACIÓN", 7, SectionHeader},
		{"short title case header", "Bachelor of Science", 9, SectionHeader},
		{"all caps header", "PROFESSIONAL EXPERIENCE", 4, SectionHeader},
		{"job title with pipes", "Senior Engineer | TechCorp | SF", 5, JobTitle},
		{"all caps with pipe stays header", "SENIOR ENGINEER | TECHCORP", 5, SectionHeader},
		{"pipe with one segment is body", "| trailing separator only |", 6, Body},
		{"round bullet", "• Built pipelines", 10, Bullet},
		{"dash bullet", "- Reduced deploy time by 60%", 11, Bullet},
		{"star bullet", "* Mentored five engineers", 11, Bullet},
		{"long sentence is body", "Results-driven engineer with eight years of experience in distributed systems.", 4, Body},
		{"digits only is body", "2019 - 2021", 8, Body},
		{"punctuation only is body", "...", 8, Body},
		{"negative position does not panic", "someone@example.com", -1, Body},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line, tt.position))
		})
	}
}

func TestClassify_BlankForAnyPosition(t *testing.T) {
	for _, pos := range []int{0, 1, 2, 3, 50, 10000} {
		assert.Equal(t, Blank, Classify("", pos), "position %d", pos)
	}
}

func TestClassify_TitleAtPositionZero(t *testing.T) {
	lines := []string{"SKILLS", "• bullet at the top", "a | b | c", "x@y.z", "lower case words"}
	for _, line := range lines {
		assert.Equal(t, Title, Classify(line, 0), "line %q", line)
	}
}

func TestClassify_SkillsHeaderBelowContactWindow(t *testing.T) {
	for pos := 3; pos < 40; pos++ {
		require.Equal(t, SectionHeader, Classify("SKILLS", pos), "position %d", pos)
	}
}

func TestClassify_DecomposedAccentsMatch(t *testing.T) {
	// Combining acute accents; long enough that only the keyword prefix
	// can make the first line a header.
	header := "EDUCACIO\u0301N y formacio\u0301n continua en ingenieri\u0301a de software"
	assert.Equal(t, SectionHeader, Classify(header, 20))
	assert.Equal(t, Contact, Classify("ubicacio\u0301n: Sevilla", 1))
}

func TestClassify_TrimsInput(t *testing.T) {
	assert.Equal(t, Bullet, Classify("   • indented bullet", 10))
	assert.Equal(t, JobTitle, Classify("  Engineer | Acme  ", 10))
}

func TestClassify_Deterministic(t *testing.T) {
	lines := sampleResume()
	first := ClassifyAll(lines)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ClassifyAll(lines))
	}
}

func TestClassifyAll_RegressionFixture(t *testing.T) {
	want := []Role{
		Title,
		Contact,
		Blank,
		SectionHeader,
		Body,
		JobTitle,
		Bullet,
		Bullet,
		SectionHeader,
		SectionHeader,
	}
	assert.Equal(t, want, ClassifyAll(sampleResume()))
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"• Built pipelines", "Built pipelines"},
		{"- Reduced cost", "Reduced cost"},
		{"* Led team", "Led team"},
		{"•  - * mixed glyphs", "mixed glyphs"},
		{"No glyph", "No glyph"},
		{"  • padded", "padded"},
		{"•", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripBullet(tt.in), "input %q", tt.in)
	}
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "section_header", SectionHeader.String())
	assert.Equal(t, "job_title", JobTitle.String())
	assert.Equal(t, "role(42)", Role(42).String())

	text, err := Bullet.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "bullet", string(text))
}

func TestParseRole(t *testing.T) {
	for _, r := range []Role{Blank, Title, Contact, SectionHeader, JobTitle, Bullet, Body} {
		got, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("footer")
	assert.Error(t, err)
}

func sampleResume() []string {
	return []string{
		"Sarah Johnson",
		"San Francisco, CA | sarah.johnson@email.com | (555) 123-4567",
		"",
		"PROFESSIONAL SUMMARY",
		"Results-driven engineer with 8+ years of experience in distributed systems.",
		"Senior Software Engineer | TechCorp Inc. | San Francisco, CA",
		"• Led development of microservices architecture",
		"- Mentored team of 5 junior engineers",
		"EDUCATION",
		"Bachelor of Science in Computer Science",
	}
}

func FuzzClassify(f *testing.F) {
	for i, line := range sampleResume() {
		f.Add(line, i)
	}
	f.Add("", -1)
	f.Add("\xff\xfe•", 7)
	f.Add("EDUCACIÓN", 3)
	f.Add("| |", 9)

	f.Fuzz(func(t *testing.T, line string, position int) {
		role := Classify(line, position)
		if role < Blank || role > Body {
			t.Fatalf("Classify(%q, %d) = %d, not a known role", line, position, int(role))
		}
		if got := Classify(line, position); got != role {
			t.Fatalf("Classify(%q, %d) not deterministic: %s then %s", line, position, role, got)
		}
		if blank := strings.TrimSpace(line) == ""; blank != (role == Blank) {
			t.Fatalf("Classify(%q, %d) = %s, blank input %v", line, position, role, blank)
		}
		if _, err := ParseRole(role.String()); err != nil {
			t.Fatalf("role %d has no name: %v", int(role), err)
		}
	})
}
