package main

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/resumegen/internal/pipeline"
	"github.com/dgallion1/resumegen/internal/render"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Convert resume Word documents to PDF",
	Long: `Convert every file in the working directory matching docx_pattern
(resume-*.docx by default) to a PDF with the same name. When a document
cannot be converted, the sibling .txt resume is rendered in a plain layout
instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		step := pipeline.DOCXToPDFStep(cfg.DOCXPattern, pdfWriter(), render.NewSimplePDFWriter())
		batch, err := newRunner().Run(cmd.Context(), step)
		if err != nil {
			return err
		}
		logSummary(batch)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pdfCmd)
}
