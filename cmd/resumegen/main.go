// Package main is the entry point for the resumegen CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/resumegen/internal/config"
	"github.com/dgallion1/resumegen/internal/pipeline"
	"github.com/dgallion1/resumegen/internal/render"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg config.Config
	log *slog.Logger
)

// rootCmd is the base command for the resumegen CLI.
var rootCmd = &cobra.Command{
	Use:   "resumegen",
	Short: "Generate sample resume documents for ATS testing",
	Long: `resumegen builds the sample resumes used to exercise ATS analysis tools.

Plain-text resumes (resume-*.txt) become Word documents with the docx
command, Word documents become PDFs with the pdf command, and the fixtures
command renders the hand-built PDF test resumes. Every path assigns each
line the same role (title, contact, section header, job title, bullet,
body) so the formatting matches across formats.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Root().PersistentFlags()
		cfgFile, _ := flags.GetString("config")

		v, err := config.New(cfgFile)
		if err != nil {
			return err
		}
		for key, flag := range map[string]string{"dir": "dir", "log.level": "log-level", "log.format": "log-format"} {
			if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}

		cfg, err = config.Load(v)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		log, err = newLogger(cfg.Log)
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			log.Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./resumegen.yaml)")
	flags.String("dir", ".", "directory to read inputs from and write outputs to")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
}

func newLogger(lc config.LogConfig) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func newRunner() *pipeline.Runner {
	return pipeline.NewRunner(cfg.Dir, log)
}

func docxWriter() *render.DOCXWriter {
	w := render.NewDOCXWriter()
	w.Font = cfg.DOCX.Font
	w.FontSize = cfg.DOCX.FontSize
	return w
}

func pdfWriter() *render.PDFWriter {
	return render.NewPDFWriter(render.PageOptions{
		Size:     cfg.PDF.PageSize,
		MarginIn: cfg.PDF.MarginIn,
	})
}

// logSummary reports a finished batch. Per-file failures are already
// logged and never fail the command.
func logSummary(batch *pipeline.Batch) {
	s := batch.Summary()
	if s.Total == 0 {
		return
	}
	log.Info("batch complete",
		"step", batch.Step,
		"total", s.Total,
		"converted", s.Converted,
		"fallback", s.Fallback,
		"failed", s.Failed,
		"skipped", s.Skipped,
		"p50_ms", batch.Stats.P50Ms,
		"max_ms", batch.Stats.MaxMs,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
