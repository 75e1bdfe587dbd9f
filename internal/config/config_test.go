package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, cfgFile string) Config {
	t.Helper()
	v, err := New(cfgFile)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := load(t, "")
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, "resume-*.txt", cfg.TextPattern)
	assert.Equal(t, "resume-*.docx", cfg.DOCXPattern)
	assert.True(t, cfg.PDFFallbackPdftotext)
	assert.Equal(t, DOCXConfig{Font: "Calibri", FontSize: 11}, cfg.DOCX)
	assert.Equal(t, PDFConfig{PageSize: "Letter", MarginIn: 0.75}, cfg.PDF)
	assert.Equal(t, LogConfig{Level: "info", Format: "text"}, cfg.Log)
	assert.Empty(t, cfg.Fixtures.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := `dir: out
docx:
  font: Arial
pdf:
  page_size: A4
log:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resumegen.yaml"), []byte(yaml), 0o644))

	cfg := load(t, "")
	assert.Equal(t, "out", cfg.Dir)
	assert.Equal(t, "Arial", cfg.DOCX.Font)
	assert.Equal(t, 11.0, cfg.DOCX.FontSize)
	assert.Equal(t, "A4", cfg.PDF.PageSize)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestExplicitConfigFileMissing(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESUMEGEN_TEXT_PATTERN", "cv-*.txt")
	t.Setenv("RESUMEGEN_DOCX_FONT_SIZE", "12.5")
	t.Setenv("RESUMEGEN_PDF_FALLBACK_PDFTOTEXT", "false")
	t.Setenv("RESUMEGEN_LOG_LEVEL", "debug")

	cfg := load(t, "")
	assert.Equal(t, "cv-*.txt", cfg.TextPattern)
	assert.Equal(t, 12.5, cfg.DOCX.FontSize)
	assert.False(t, cfg.PDFFallbackPdftotext)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Dir:         ".",
			TextPattern: "resume-*.txt",
			DOCXPattern: "resume-*.docx",
			DOCX:        DOCXConfig{Font: "Calibri", FontSize: 11},
			PDF:         PDFConfig{PageSize: "letter", MarginIn: 0.75},
			Log:         LogConfig{Level: "warn", Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty dir", func(c *Config) { c.Dir = "" }, true},
		{"empty text pattern", func(c *Config) { c.TextPattern = "" }, true},
		{"bad docx pattern", func(c *Config) { c.DOCXPattern = "resume-[.docx" }, true},
		{"pattern with directory", func(c *Config) { c.TextPattern = filepath.Join("sub", "*.txt") }, true},
		{"no font", func(c *Config) { c.DOCX.Font = "" }, true},
		{"zero font size", func(c *Config) { c.DOCX.FontSize = 0 }, true},
		{"unknown page size", func(c *Config) { c.PDF.PageSize = "tabloid" }, true},
		{"negative margin", func(c *Config) { c.PDF.MarginIn = -1 }, true},
		{"zero margin", func(c *Config) { c.PDF.MarginIn = 0 }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
