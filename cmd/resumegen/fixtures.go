package main

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/resumegen/internal/fixture"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Render the PDF test resumes",
	Long: `Render the fixture resumes (clean ATS layout, complex metadata, edge
cases) to PDF in the working directory. The built-in fixtures are used
unless fixtures.dir points at a directory of fixture YAML files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			fixtures []*fixture.Fixture
			err      error
		)
		if cfg.Fixtures.Dir != "" {
			fixtures, err = fixture.LoadDir(cfg.Fixtures.Dir)
		} else {
			fixtures, err = fixture.Builtin()
		}
		if err != nil {
			return err
		}

		logSummary(newRunner().RenderFixtures(cmd.Context(), fixtures))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
