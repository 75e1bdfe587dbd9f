package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dgallion1/resumegen/internal/parser"
	"github.com/dgallion1/resumegen/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Show the role assigned to each line of a resume",
	Long: `Inspect reads each file (.txt, .docx, .pdf, .md, .html), classifies
every line and prints its position, role and text followed by a hash of
the role sequence. Two files with the same hash format identically.
Files that cannot be read are logged and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		opts := parser.Options{FallbackPdftotext: cfg.PDFFallbackPdftotext}

		results := make([]*pipeline.Inspection, 0, len(args))
		for _, path := range args {
			in, err := pipeline.Inspect(path, opts)
			if err != nil {
				log.Error("inspect failed", "file", path, "error", err)
				continue
			}
			results = append(results, in)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		for i, in := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := printInspection(out, in); err != nil {
				return err
			}
		}
		return nil
	},
}

func printInspection(w io.Writer, in *pipeline.Inspection) error {
	fmt.Fprintf(w, "%s\n", in.File)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tROLE\tTEXT")
	for _, l := range in.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.Index, l.Role, l.Text)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "roles %s\n", in.RoleHash)
	return nil
}

func init() {
	inspectCmd.Flags().Bool("json", false, "print results as JSON")
	rootCmd.AddCommand(inspectCmd)
}
