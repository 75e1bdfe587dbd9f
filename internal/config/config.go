// Package config resolves resumegen settings from defaults, an optional
// resumegen.yaml file and RESUMEGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, so docx.font is
// read from RESUMEGEN_DOCX_FONT.
const EnvPrefix = "RESUMEGEN"

type Config struct {
	// Working directory scanned for inputs and written to.
	Dir string `mapstructure:"dir"`

	// Input patterns, matched against file names in Dir.
	TextPattern string `mapstructure:"text_pattern"`
	DOCXPattern string `mapstructure:"docx_pattern"`

	// PDF
	PDFFallbackPdftotext bool `mapstructure:"pdf_fallback_pdftotext"`

	DOCX     DOCXConfig     `mapstructure:"docx"`
	PDF      PDFConfig      `mapstructure:"pdf"`
	Log      LogConfig      `mapstructure:"log"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
}

type DOCXConfig struct {
	Font     string  `mapstructure:"font"`
	FontSize float64 `mapstructure:"font_size"`
}

type PDFConfig struct {
	PageSize string  `mapstructure:"page_size"`
	MarginIn float64 `mapstructure:"margin_in"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FixturesConfig points at a directory of fixture YAML files. Empty means
// the built-in fixtures.
type FixturesConfig struct {
	Dir string `mapstructure:"dir"`
}

var pageSizes = map[string]bool{"a3": true, "a4": true, "a5": true, "letter": true, "legal": true}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dir", ".")
	v.SetDefault("text_pattern", "resume-*.txt")
	v.SetDefault("docx_pattern", "resume-*.docx")
	v.SetDefault("pdf_fallback_pdftotext", true)
	v.SetDefault("docx.font", "Calibri")
	v.SetDefault("docx.font_size", 11)
	v.SetDefault("pdf.page_size", "Letter")
	v.SetDefault("pdf.margin_in", 0.75)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("fixtures.dir", "")
}

// New returns a viper instance with defaults, environment binding and, if
// present, the config file applied. cfgFile may be empty, in which case
// ./resumegen.yaml is used when it exists.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("resumegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes the resolved settings.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	for key, pattern := range map[string]string{"text_pattern": c.TextPattern, "docx_pattern": c.DOCXPattern} {
		if pattern == "" {
			return fmt.Errorf("%s is required", key)
		}
		if strings.ContainsRune(pattern, filepath.Separator) {
			return fmt.Errorf("%s must match file names, got %q", key, pattern)
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%s %q: %w", key, pattern, err)
		}
	}
	if c.DOCX.Font == "" {
		return fmt.Errorf("docx.font is required")
	}
	if c.DOCX.FontSize <= 0 {
		return fmt.Errorf("docx.font_size must be positive, got %v", c.DOCX.FontSize)
	}
	if !pageSizes[strings.ToLower(c.PDF.PageSize)] {
		return fmt.Errorf("pdf.page_size %q is not one of A3, A4, A5, Letter, Legal", c.PDF.PageSize)
	}
	if c.PDF.MarginIn < 0 || c.PDF.MarginIn > 3 {
		return fmt.Errorf("pdf.margin_in must be between 0 and 3, got %v", c.PDF.MarginIn)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
