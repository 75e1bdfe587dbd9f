package main

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/resumegen/internal/pipeline"
)

var docxCmd = &cobra.Command{
	Use:   "docx",
	Short: "Convert resume text files to Word documents",
	Long: `Convert every file in the working directory matching text_pattern
(resume-*.txt by default) to a .docx file with the same name. Each line is
classified and formatted by role; bullet lines use the ListBullet style.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := newRunner().Run(cmd.Context(), pipeline.TextToDOCXStep(cfg.TextPattern, docxWriter()))
		if err != nil {
			return err
		}
		logSummary(batch)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docxCmd)
}
